// internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "wfh_backend/internals/features/users/auth/route"
	notificationRoute "wfh_backend/internals/features/users/notifications/route"
	staffRoute "wfh_backend/internals/features/users/staff/route"
	arrangementRoute "wfh_backend/internals/features/wfh/arrangements/route"
	holidayRoute "wfh_backend/internals/features/wfh/holidays/route"
	scheduleRoute "wfh_backend/internals/features/wfh/schedules/route"
	authMiddleware "wfh_backend/internals/middlewares/auth"
)

// SetupRoutes mounts every feature router on the application.
// Everything except /auth sits behind the JWT middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	protected := app.Group("/", authMiddleware.AuthMiddleware(db))
	staffRoute.StaffRoutes(protected, db)
	arrangementRoute.ArrangementRoutes(protected, db)
	scheduleRoute.ScheduleRoutes(protected, db)
	holidayRoute.HolidayRoutes(protected, db)
	notificationRoute.NotificationRoutes(protected, db)
}
