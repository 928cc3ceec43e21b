package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifCtl "wfh_backend/internals/features/users/notifications/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtl.NewNotificationController(db)

	grp := r.Group("/notification")

	grp.Get("/", ctl.List)
	grp.Put("/read_all", ctl.MarkAllRead)
	grp.Put("/:notificationId/read", ctl.MarkRead)
}
