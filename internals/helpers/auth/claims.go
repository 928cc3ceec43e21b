package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetStaffIDFromToken reads the staff id the auth middleware stored in locals.
func GetStaffIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("staff_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing staff id in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid staff id in token")
	}
	return id, nil
}

func GetRoleIDFromToken(c *fiber.Ctx) (int, error) {
	role, ok := c.Locals("role_id").(int)
	if !ok {
		return 0, errors.New("missing role in token")
	}
	return role, nil
}
