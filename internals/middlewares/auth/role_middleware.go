package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "wfh_backend/internals/helpers"
	helperAuth "wfh_backend/internals/helpers/auth"
)

// RoleMiddlewareWithCustomError validates the caller's role id against an allow-list.
func RoleMiddlewareWithCustomError(allowedRoles []int, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleID, err := helperAuth.GetRoleIDFromToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if roleID == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is a shortcut for the common case.
func OnlyRoles(customMessage string, roles ...int) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
