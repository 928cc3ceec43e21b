package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "wfh_backend/internals/features/users/notifications/service"
	helper "wfh_backend/internals/helpers"
	helperAuth "wfh_backend/internals/helpers/auth"
)

type NotificationController struct {
	Service *service.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{Service: service.NewNotificationService(db)}
}

// GET /notification/
func (h *NotificationController) List(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	notifications, err := h.Service.GetByStaff(staffID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", notifications)
}

// PUT /notification/:notificationId/read
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	notificationID, err := uuid.Parse(c.Params("notificationId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}
	if err := h.Service.MarkRead(notificationID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Notification marked as read.", nil)
}

// PUT /notification/read_all
func (h *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if err := h.Service.MarkAllRead(staffID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "All notifications marked as read.", nil)
}
