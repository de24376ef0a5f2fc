package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyQuantityChange(t *testing.T) {
	assert.Equal(t, ActionProductRestock, ClassifyQuantityChange(1))
	assert.Equal(t, ActionProductRestock, ClassifyQuantityChange(500))
	assert.Equal(t, ActionProductRemoved, ClassifyQuantityChange(-1))
	assert.Equal(t, ActionProductRemoved, ClassifyQuantityChange(-500))
	assert.Equal(t, ActionQuantityUpdated, ClassifyQuantityChange(0))
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 0, ClampQuantity(-1))
	assert.Equal(t, 0, ClampQuantity(-1000))
	assert.Equal(t, 0, ClampQuantity(0))
	assert.Equal(t, 42, ClampQuantity(42))
}

func TestNewQuantityChangeLog(t *testing.T) {
	actor := Actor{ID: uuid.New(), Name: "Amina", Role: RoleBusinessOwner}
	product := &Product{
		BaseModel: BaseModel{ID: uuid.New()},
		Name:      "Cotton Fabric",
		Color:     "Blue",
		Category:  "Fabrics",
		Form:      FormRolls,
		StoreID:   uuid.New(),
	}

	entry := NewQuantityChangeLog(actor, product, 150, 140)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, actor.ID, entry.UserID)
	assert.Equal(t, ActionProductRemoved, entry.Action)
	assert.Equal(t, product.ID, *entry.ProductID)
	assert.Equal(t, product.StoreID, *entry.StoreID)
	assert.Equal(t, 150, *entry.PreviousQuantity)
	assert.Equal(t, 140, *entry.NewQuantity)
	assert.Equal(t, -10, *entry.QuantityChange)
	assert.False(t, entry.Timestamp.IsZero())

	var details ActivityDetails
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	assert.Equal(t, "Cotton Fabric", details.ProductName)
	assert.Equal(t, "Blue", details.Color)
	assert.Equal(t, FormRolls, details.Form)

	t.Run("Zero delta labels as quantity updated", func(t *testing.T) {
		entry := NewQuantityChangeLog(actor, product, 140, 140)
		assert.Equal(t, ActionQuantityUpdated, entry.Action)
		assert.Equal(t, 0, *entry.QuantityChange)
	})
}

func TestNewProductAddedLog(t *testing.T) {
	actor := Actor{ID: uuid.New(), Role: RoleBusinessOwner}
	product := &Product{
		BaseModel: BaseModel{ID: uuid.New()},
		Name:      "Cotton Fabric",
		Quantity:  150,
		StoreID:   uuid.New(),
	}

	entry := NewProductAddedLog(actor, product)
	assert.Equal(t, ActionProductAdded, entry.Action)
	assert.Equal(t, 0, *entry.PreviousQuantity)
	assert.Equal(t, 150, *entry.NewQuantity)
	assert.Equal(t, 150, *entry.QuantityChange)
}

func TestNewProductDeletedLog(t *testing.T) {
	actor := Actor{ID: uuid.New(), Role: RoleBusinessOwner}
	product := &Product{
		BaseModel: BaseModel{ID: uuid.New()},
		Name:      "Canvas",
		Quantity:  25,
		StoreID:   uuid.New(),
	}

	entry := NewProductDeletedLog(actor, product)
	assert.Equal(t, ActionProductDeleted, entry.Action)
	assert.Equal(t, 25, *entry.PreviousQuantity)
	assert.Equal(t, 0, *entry.NewQuantity)
	assert.Equal(t, -25, *entry.QuantityChange)
}

func TestNewDemoActor(t *testing.T) {
	a := NewDemoActor("session-1")
	b := NewDemoActor("session-1")
	c := NewDemoActor("session-2")

	// same session key resolves to the same identity
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)

	assert.True(t, a.Demo)
	assert.Equal(t, RoleBusinessOwner, a.Role)
	assert.Equal(t, a.ID, a.OwnerScope)
}

func TestActorCanAccessStore(t *testing.T) {
	storeID := uuid.New()

	owner := Actor{ID: uuid.New(), Role: RoleBusinessOwner}
	assert.True(t, owner.CanAccessStore(storeID))

	assistant := Actor{ID: uuid.New(), Role: RoleAssistant, StoreAccess: []uuid.UUID{storeID}}
	assert.True(t, assistant.CanAccessStore(storeID))
	assert.False(t, assistant.CanAccessStore(uuid.New()))

	noAccess := Actor{ID: uuid.New(), Role: RoleAssistant}
	assert.False(t, noAccess.CanAccessStore(storeID))
}
