// internals/features/wfh/arrangements/controller/arrangement_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationService "wfh_backend/internals/features/users/notifications/service"
	dto "wfh_backend/internals/features/wfh/arrangements/dto"
	service "wfh_backend/internals/features/wfh/arrangements/service"
	helper "wfh_backend/internals/helpers"
	helperAuth "wfh_backend/internals/helpers/auth"
)

type ArrangementController struct {
	Service *service.ArrangementService
}

func NewArrangementController(db *gorm.DB) *ArrangementController {
	notifier := notificationService.NewNotificationService(db)
	return &ArrangementController{Service: service.NewArrangementService(db, notifier)}
}

var validateArrangement = validator.New()

// ===================== CREATE =====================
// POST /arrangements/
func (h *ArrangementController) Create(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateArrangementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArrangement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	startDate, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}

	created, err := h.Service.CreateArrangement(staffID, req.SessionType, startDate, req.Description)
	if err != nil {
		return arrangementError(c, err)
	}
	return helper.JsonCreated(c, "WFH request created successfully.", dto.NewArrangementResponse(created))
}

// ===================== CREATE BATCH =====================
// POST /arrangements/batch/
func (h *ArrangementController) CreateBatch(c *fiber.Ctx) error {
	staffID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateBatchArrangementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArrangement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	startDate, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}

	newRequests, cancelled, err := h.Service.CreateBatchArrangement(
		staffID, req.SessionType, req.Description, req.NumOccurrences, req.RepeatType, startDate,
	)
	if err != nil {
		return arrangementError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.BatchCreateResponse{
		Message:           "Batch WFH request created successfully.",
		NewRequests:       dto.NewArrangementResponses(newRequests),
		CancelledRequests: cancelled,
	})
}

// ===================== MANAGER LIST =====================
// GET /arrangements/manager/?page&limit&status
func (h *ArrangementController) ListByManager(c *fiber.Ctx) error {
	managerID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 10, 100)
	statusFilter := c.Query("status", "All")

	result, err := h.Service.GetArrangementByManager(managerID, p.Page, p.Limit, statusFilter)
	if err != nil {
		return arrangementError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ManagerArrangementsResponse{
		ManagerID:     managerID,
		RequestGroups: dto.NewRequestGroupResponses(result.RequestGroups),
		Pagination: dto.PaginationMeta{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// GET /arrangements/manager/approved/
func (h *ArrangementController) ListApproved(c *fiber.Ctx) error {
	managerID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	groups, err := h.Service.GetApprovedRequests(managerID)
	if err != nil {
		return arrangementError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.ApprovedArrangementsResponse{
		ManagerID:     managerID,
		RequestGroups: dto.NewRequestGroupResponses(groups),
	})
}

// ===================== DECISIONS =====================
// POST /arrangements/manager/approve/:groupId
func (h *ArrangementController) Approve(c *fiber.Ctx) error {
	return h.decide(c, func(groupID, managerID uuid.UUID, comment string) error {
		_, err := h.Service.ApproveRequest(groupID, comment, managerID)
		return err
	}, "Request approved successfully.")
}

// POST /arrangements/manager/approve_partial/:groupId
func (h *ArrangementController) ApprovePartial(c *fiber.Ctx) error {
	managerID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.PartialApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArrangement.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	decisions := make(map[uuid.UUID]string, len(req.Data))
	for rawID, decision := range req.Data {
		id, err := uuid.Parse(rawID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "data contains an invalid arrangement id")
		}
		decisions[id] = decision
	}

	if _, err := h.Service.ApprovePartialRequest(groupID, req.Comment, decisions, managerID); err != nil {
		return arrangementError(c, err)
	}
	return helper.JsonOK(c, "Request reviewed successfully.", nil)
}

// POST /arrangements/manager/reject/:groupId
func (h *ArrangementController) Reject(c *fiber.Ctx) error {
	return h.decide(c, func(groupID, managerID uuid.UUID, comment string) error {
		_, err := h.Service.RejectRequest(groupID, comment, managerID)
		return err
	}, "Request rejected successfully.")
}

// POST /arrangements/manager/revoke/:groupId
func (h *ArrangementController) Revoke(c *fiber.Ctx) error {
	return h.decide(c, func(groupID, managerID uuid.UUID, comment string) error {
		_, err := h.Service.RevokeRequest(groupID, comment, managerID)
		return err
	}, "Request revoked successfully.")
}

// POST /arrangements/manager/undo/:groupId
func (h *ArrangementController) Undo(c *fiber.Ctx) error {
	return h.decide(c, func(groupID, managerID uuid.UUID, comment string) error {
		_, err := h.Service.Undo(groupID, comment, managerID)
		return err
	}, "Request reverted to pending.")
}

// POST /arrangements/staff/withdraw/:groupId
func (h *ArrangementController) Withdraw(c *fiber.Ctx) error {
	return h.decide(c, func(groupID, staffID uuid.UUID, comment string) error {
		_, _, err := h.Service.WithdrawRequest(groupID, comment, staffID)
		return err
	}, "Request withdrawn successfully.")
}

// decide factors the shared shape of the group-level decision endpoints:
// token identity + :groupId + optional {comment}.
func (h *ArrangementController) decide(c *fiber.Ctx, op func(groupID, callerID uuid.UUID, comment string) error, okMessage string) error {
	callerID, err := helperAuth.GetStaffIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	groupID, err := uuid.Parse(c.Params("groupId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.CommentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}

	if err := op(groupID, callerID, req.Comment); err != nil {
		return arrangementError(c, err)
	}
	return helper.JsonOK(c, okMessage, nil)
}

func arrangementError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrRequestGroupNotFound), errors.Is(err, service.ErrStaffNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateRequest),
		errors.Is(err, service.ErrInvalidRepeatType),
		errors.Is(err, service.ErrInvalidDecision):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
