// internals/features/users/staff/controller/staff_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "wfh_backend/internals/features/users/staff/dto"
	service "wfh_backend/internals/features/users/staff/service"
	helper "wfh_backend/internals/helpers"
	helperAuth "wfh_backend/internals/helpers/auth"
)

type StaffController struct {
	Service *service.StaffService
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{Service: service.NewStaffService(db)}
}

var validateStaff = validator.New()

// POST /staff
func (h *StaffController) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStaff.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	staff, err := h.Service.CreateStaff(&req)
	if err != nil {
		return staffError(c, err)
	}
	return helper.JsonCreated(c, "Staff created successfully", dto.NewStaffResponse(staff))
}

// GET /staff
func (h *StaffController) List(c *fiber.Ctx) error {
	dept := c.Query("dept")
	onlyActive := c.Query("active", "true") != "false"

	staff, err := h.Service.ListStaff(dept, onlyActive)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Staff fetched successfully", dto.NewStaffResponses(staff))
}

// GET /staff/me
func (h *StaffController) Me(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	staff, err := h.Service.GetStaffByID(staffID)
	if err != nil {
		return staffError(c, err)
	}
	return helper.JsonOK(c, "Staff fetched successfully", dto.NewStaffResponse(staff))
}

// GET /staff/team
func (h *StaffController) Team(c *fiber.Ctx) error {
	managerID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	staff, err := h.Service.ListTeamMembers(managerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Team members fetched successfully", dto.NewStaffResponses(staff))
}

// GET /staff/:staffId
func (h *StaffController) GetByID(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	staff, err := h.Service.GetStaffByID(staffID)
	if err != nil {
		return staffError(c, err)
	}
	return helper.JsonOK(c, "Staff fetched successfully", dto.NewStaffResponse(staff))
}

// PUT /staff/:staffId
func (h *StaffController) Update(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStaff.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	staff, err := h.Service.UpdateStaff(staffID, &req)
	if err != nil {
		return staffError(c, err)
	}
	return helper.JsonUpdated(c, "Staff updated successfully", dto.NewStaffResponse(staff))
}

// DELETE /staff/:staffId
func (h *StaffController) Deactivate(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid staff id")
	}

	if err := h.Service.DeactivateStaff(staffID); err != nil {
		return staffError(c, err)
	}
	return helper.JsonDeleted(c, "Staff deactivated successfully", nil)
}

func staffError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrStaffNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrManagerNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
