// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "wfh_backend/internals/features/users/auth/controller"
)

// AuthRoutes registers the public authentication endpoints.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/login", authController.Login)
	auth.Post("/forget", authController.ForgetPassword)
	auth.Post("/reset", authController.ResetPassword)
}
