package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wfh_backend/internals/constants"
	schedCtl "wfh_backend/internals/features/wfh/schedules/controller"
	authMw "wfh_backend/internals/middlewares/auth"
)

// ScheduleRoutes mounts /schedules behind AuthMiddleware.
func ScheduleRoutes(r fiber.Router, db *gorm.DB) {
	ctl := schedCtl.NewScheduleController(db)

	grp := r.Group("/schedules")

	grp.Get("/staff/", ctl.Personal)
	grp.Get("/staff/team/", ctl.Team)

	grp.Get("/manager/",
		authMw.OnlyRoles(constants.RoleErrorManager("department schedules"), constants.RoleManager, constants.RoleAdmin),
		ctl.Department)

	grp.Get("/hr/",
		authMw.OnlyRoles(constants.RoleErrorAdmin("organization-wide schedules"), constants.RoleAdmin),
		ctl.Global)
}
