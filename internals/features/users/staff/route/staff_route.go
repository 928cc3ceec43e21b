// internals/features/users/staff/route/staff_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wfh_backend/internals/constants"
	controller "wfh_backend/internals/features/users/staff/controller"
	authMiddleware "wfh_backend/internals/middlewares/auth"
)

// StaffRoutes registers the staff directory and administration endpoints.
func StaffRoutes(router fiber.Router, db *gorm.DB) {
	staffController := controller.NewStaffController(db)

	staff := router.Group("/staff")
	staff.Get("/me", staffController.Me)
	staff.Get("/team", staffController.Team)

	admin := staff.Group("/",
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("manage staff"),
			constants.RoleAdmin,
		),
	)
	admin.Post("/", staffController.Create)
	admin.Get("/", staffController.List)
	admin.Get("/:staffId", staffController.GetByID)
	admin.Put("/:staffId", staffController.Update)
	admin.Delete("/:staffId", staffController.Deactivate)
}
