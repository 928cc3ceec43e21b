package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wfh_backend/internals/constants"
	arrCtl "wfh_backend/internals/features/wfh/arrangements/controller"
	authMw "wfh_backend/internals/middlewares/auth"
)

// ArrangementRoutes mounts /arrangements. The router passed in is already
// behind AuthMiddleware; manager endpoints get an extra role gate.
func ArrangementRoutes(r fiber.Router, db *gorm.DB) {
	ctl := arrCtl.NewArrangementController(db)

	grp := r.Group("/arrangements")

	grp.Post("/", ctl.Create)
	grp.Post("/batch/", ctl.CreateBatch)
	grp.Post("/staff/withdraw/:groupId", ctl.Withdraw)

	manager := grp.Group("/manager",
		authMw.OnlyRoles(constants.RoleErrorManager("arrangement approvals"), constants.RoleManager, constants.RoleAdmin))

	manager.Get("/", ctl.ListByManager)
	manager.Get("/approved/", ctl.ListApproved)
	manager.Post("/approve/:groupId", ctl.Approve)
	manager.Post("/approve_partial/:groupId", ctl.ApprovePartial)
	manager.Post("/reject/:groupId", ctl.Reject)
	manager.Post("/revoke/:groupId", ctl.Revoke)
	manager.Post("/undo/:groupId", ctl.Undo)
}
