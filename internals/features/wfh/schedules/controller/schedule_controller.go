// internals/features/wfh/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "wfh_backend/internals/features/wfh/schedules/service"
	helper "wfh_backend/internals/helpers"
	helperAuth "wfh_backend/internals/helpers/auth"
)

type ScheduleController struct {
	Service *service.ScheduleService
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{Service: service.NewScheduleService(db)}
}

// GET /schedules/staff/?start_date&end_date
func (h *ScheduleController) Personal(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	schedules, err := h.Service.GetSchedulePersonal(staffID, start, end)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"staff_id":  staffID,
		"schedules": schedules,
	})
}

// GET /schedules/staff/team/?start_date&end_date
func (h *ScheduleController) Team(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.Service.GetScheduleByTeam(staffID, start, end)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GET /schedules/manager/?start_date&end_date
func (h *ScheduleController) Department(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.Service.GetScheduleByDepartment(staffID, start, end)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// GET /schedules/hr/?start_date&end_date&dept&position
func (h *ScheduleController) Global(c *fiber.Ctx) error {
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := h.Service.GetScheduleGlobal(c.Query("dept"), c.Query("position"), start, end)
	if err != nil {
		return scheduleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := helper.ParseDate(c.Query("start_date"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start_date must be YYYY-MM-DD")
	}
	end, err := helper.ParseDate(c.Query("end_date"))
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end_date must be YYYY-MM-DD")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("end_date must not be before start_date")
	}
	return start, end, nil
}

func scheduleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrStaffNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
