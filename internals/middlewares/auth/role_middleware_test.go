package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfh_backend/internals/constants"
)

func requestWithRole(t *testing.T, role interface{}, allowed ...int) int {
	t.Helper()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != nil {
			c.Locals("role_id", role)
		}
		return c.Next()
	})
	app.Get("/guarded",
		OnlyRoles("Only managers may access this.", allowed...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestOnlyRolesAllowsListedRole(t *testing.T) {
	assert.Equal(t, fiber.StatusOK,
		requestWithRole(t, constants.RoleManager, constants.RoleManager, constants.RoleAdmin))
	assert.Equal(t, fiber.StatusOK,
		requestWithRole(t, constants.RoleAdmin, constants.RoleManager, constants.RoleAdmin))
}

func TestOnlyRolesForbidsOtherRoles(t *testing.T) {
	assert.Equal(t, fiber.StatusForbidden,
		requestWithRole(t, constants.RoleEmployee, constants.RoleManager, constants.RoleAdmin))
}

func TestOnlyRolesRequiresRoleClaim(t *testing.T) {
	assert.Equal(t, fiber.StatusUnauthorized,
		requestWithRole(t, nil, constants.RoleManager))
}
