package middleware

import (
	"strings"

	"textile-inventory-api/internal/model"
	"textile-inventory-api/internal/repository"
	"textile-inventory-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

const actorKey = "actor"

// ActorFromCtx returns the actor resolved by RequireAuth or ResolveActor
func ActorFromCtx(c *fiber.Ctx) model.Actor {
	if actor, ok := c.Locals(actorKey).(model.Actor); ok {
		return actor
	}
	// Shouldn't happen on wired routes; behave like an anonymous demo session
	return model.NewDemoActor("")
}

// RequireAuth validates the JWT token and sets the actor in context.
// Requests without a valid session are rejected.
func RequireAuth(userRepo repository.UserRepository, assistantRepo repository.AssistantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := authenticate(c, userRepo, assistantRepo)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		c.Locals(actorKey, *actor)
		return c.Next()
	}
}

// ResolveActor resolves the current actor, falling back to a demo identity
// when no session exists. The fallback targets the ephemeral in-memory
// backend; downstream code never branches on demo itself.
func ResolveActor(userRepo repository.UserRepository, assistantRepo repository.AssistantRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := authenticate(c, userRepo, assistantRepo)
		if err != nil {
			demo := model.NewDemoActor(c.Get("X-Demo-Session"))
			c.Locals(actorKey, demo)
			return c.Next()
		}
		c.Locals(actorKey, *actor)
		return c.Next()
	}
}

// RequireRole gates a route to the given roles. Demo actors never pass.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor := ActorFromCtx(c)
		if actor.Demo {
			return c.Status(403).JSON(fiber.Map{"error": "Not available in demo mode"})
		}
		for _, role := range roles {
			if actor.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Forbidden: insufficient role"})
	}
}

func authenticate(c *fiber.Ctx, userRepo repository.UserRepository, assistantRepo repository.AssistantRepository) (*model.Actor, error) {
	// Get Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, jwt.ErrMissingToken
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, jwt.ErrInvalidToken
	}

	claims, err := jwt.ValidateToken(parts[1])
	if err != nil {
		return nil, err
	}

	// Check session against DB: account must still exist and be active
	user, err := userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, jwt.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, jwt.ErrInvalidToken
	}

	// Assistants operate on their owner's catalog with granted store access
	var link *model.Assistant
	if user.Role == model.RoleAssistant {
		link, _ = assistantRepo.FindByAssistantUser(user.ID)
	}

	actor := model.FromUser(user, link)
	return &actor, nil
}
