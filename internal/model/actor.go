package model

import "github.com/google/uuid"

// Actor is the resolved identity performing a request. Either an
// authenticated user, or a synthetic demo identity when no session exists.
type Actor struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Role        Role        `json:"role"`
	Demo        bool        `json:"demo"`
	Muted       bool        `json:"muted"`                  // muted assistants may read but not mutate
	OwnerScope  uuid.UUID   `json:"owner_scope"`            // whose catalog this actor operates on
	StoreAccess []uuid.UUID `json:"store_access,omitempty"` // filled only for assistants
}

// demo actor IDs are derived deterministically so one demo session keeps
// hitting the same ephemeral collections
var demoNamespace = uuid.NameSpaceOID

// NewDemoActor builds the fallback identity used when no session exists.
// Demo actors behave like business owners over their own ephemeral catalog.
func NewDemoActor(sessionKey string) Actor {
	if sessionKey == "" {
		sessionKey = "default"
	}
	id := uuid.NewSHA1(demoNamespace, []byte("demo-session:"+sessionKey))
	return Actor{
		ID:         id,
		Name:       "Demo User",
		Role:       RoleBusinessOwner,
		Demo:       true,
		OwnerScope: id,
	}
}

// FromUser builds the actor for an authenticated user. Assistants get their
// owner's catalog scope plus the store access granted on the link row.
func FromUser(u *User, link *Assistant) Actor {
	actor := Actor{
		ID:         u.ID,
		Name:       u.Name,
		Role:       u.Role,
		OwnerScope: u.ID,
	}
	if u.Role == RoleAssistant && link != nil {
		actor.OwnerScope = link.BusinessOwnerID
		actor.Muted = link.IsMuted
		if link.IsActive {
			actor.StoreAccess = link.StoreIDs()
		}
	}
	return actor
}

// CanAccessStore reports whether the actor may touch products in the store.
// Owners and admins see every store in their scope; assistants only the
// stores granted to them.
func (a Actor) CanAccessStore(storeID uuid.UUID) bool {
	if a.Role != RoleAssistant {
		return true
	}
	for _, id := range a.StoreAccess {
		if id == storeID {
			return true
		}
	}
	return false
}
