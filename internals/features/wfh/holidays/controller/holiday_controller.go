// internals/features/wfh/holidays/controller/holiday_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wfh_backend/internals/features/wfh/holidays/dto"
	service "wfh_backend/internals/features/wfh/holidays/service"
	helper "wfh_backend/internals/helpers"
)

type HolidayController struct {
	Service *service.HolidayService
}

func NewHolidayController(db *gorm.DB) *HolidayController {
	return &HolidayController{Service: service.NewHolidayService(db)}
}

var validateHoliday = validator.New()

// POST /holidays/
func (h *HolidayController) Create(c *fiber.Ctx) error {
	var req dto.CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHoliday.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	date, err := helper.ParseDate(req.HolidayDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "holiday_date must be YYYY-MM-DD")
	}

	holiday, err := h.Service.Create(date, req.HolidayName, req.HolidayDescription)
	if err != nil {
		return holidayError(c, err)
	}
	return helper.JsonCreated(c, "Holiday created successfully.", dto.NewHolidayResponse(holiday))
}

// GET /holidays/  (?start_date&end_date optional)
func (h *HolidayController) List(c *fiber.Ctx) error {
	startRaw, endRaw := c.Query("start_date"), c.Query("end_date")
	if startRaw != "" || endRaw != "" {
		start, err := helper.ParseDate(startRaw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
		}
		end, err := helper.ParseDate(endRaw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_date must be YYYY-MM-DD")
		}
		holidays, err := h.Service.GetByDateRange(start, end)
		if err != nil {
			return holidayError(c, err)
		}
		return helper.JsonOK(c, "", dto.NewHolidayResponses(holidays))
	}

	holidays, err := h.Service.GetAll()
	if err != nil {
		return holidayError(c, err)
	}
	return helper.JsonOK(c, "", dto.NewHolidayResponses(holidays))
}

// PUT /holidays/:holidayId
func (h *HolidayController) Update(c *fiber.Ctx) error {
	holidayID, err := uuid.Parse(c.Params("holidayId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid holiday id")
	}

	var req dto.UpdateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateHoliday.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var date *time.Time
	if req.HolidayDate != nil {
		d, err := helper.ParseDate(*req.HolidayDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "holiday_date must be YYYY-MM-DD")
		}
		date = &d
	}

	holiday, err := h.Service.Update(holidayID, date, req.HolidayName, req.HolidayDescription)
	if err != nil {
		return holidayError(c, err)
	}
	return helper.JsonUpdated(c, "Holiday updated successfully.", dto.NewHolidayResponse(holiday))
}

// DELETE /holidays/:holidayId
func (h *HolidayController) Delete(c *fiber.Ctx) error {
	holidayID, err := uuid.Parse(c.Params("holidayId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid holiday id")
	}
	if err := h.Service.Delete(holidayID); err != nil {
		return holidayError(c, err)
	}
	return helper.JsonDeleted(c, "Holiday deleted successfully.", nil)
}

func holidayError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrHolidayNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrHolidayExists):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
