package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wfh_backend/internals/constants"
	holidayCtl "wfh_backend/internals/features/wfh/holidays/controller"
	authMw "wfh_backend/internals/middlewares/auth"
)

// HolidayRoutes mounts /holidays. Reads are open to any authenticated
// staff; writes are admin-only.
func HolidayRoutes(r fiber.Router, db *gorm.DB) {
	ctl := holidayCtl.NewHolidayController(db)

	grp := r.Group("/holidays")

	grp.Get("/", ctl.List)

	admin := grp.Group("/",
		authMw.OnlyRoles(constants.RoleErrorAdmin("holiday management"), constants.RoleAdmin))
	admin.Post("/", ctl.Create)
	admin.Put("/:holidayId", ctl.Update)
	admin.Delete("/:holidayId", ctl.Delete)
}
