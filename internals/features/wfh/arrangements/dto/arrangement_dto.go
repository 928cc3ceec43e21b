// internals/features/wfh/arrangements/dto/arrangement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	staffModel "wfh_backend/internals/features/users/staff/model"
	model "wfh_backend/internals/features/wfh/arrangements/model"
)

/* ===================== REQUESTS ===================== */

// Create: staff_id comes from the token, not the body.
type CreateArrangementRequest struct {
	SessionType string  `json:"session_type" validate:"required,oneof='Work home' 'Day off' 'Vacation' 'Official holiday'"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	Description *string `json:"description" validate:"omitempty,max=500"`
}

type CreateBatchArrangementRequest struct {
	SessionType    string  `json:"session_type" validate:"required,oneof='Work home' 'Day off' 'Vacation' 'Official holiday'"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
	NumOccurrences int     `json:"num_occurrences" validate:"required,min=1,max=52"`
	RepeatType     string  `json:"repeat_type" validate:"required,oneof=weekly bi-weekly"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
}

type CommentRequest struct {
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// Partial approval: arrangement id → "Approved" | "Rejected".
type PartialApprovalRequest struct {
	Comment string            `json:"comment" validate:"omitempty,max=500"`
	Data    map[string]string `json:"data" validate:"required,min=1"`
}

/* ===================== RESPONSES ===================== */

type ArrangementResponse struct {
	ArrangementID   uuid.UUID  `json:"arrangement_id"`
	RequestGroupID  uuid.UUID  `json:"request_group_id"`
	SessionType     string     `json:"session_type"`
	StartDate       string     `json:"start_date"`
	Description     *string    `json:"description,omitempty"`
	RequestStatus   string     `json:"request_status"`
	ApprovalComment *string    `json:"approval_comment,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewArrangementResponse(m *model.ArrangementRequestModel) ArrangementResponse {
	return ArrangementResponse{
		ArrangementID:   m.ArrangementID,
		RequestGroupID:  m.RequestGroupID,
		SessionType:     m.SessionType,
		StartDate:       m.StartDateKey(),
		Description:     m.Description,
		RequestStatus:   m.RequestStatus,
		ApprovalComment: m.ApprovalComment,
		ApprovedAt:      m.ApprovedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func NewArrangementResponses(ms []model.ArrangementRequestModel) []ArrangementResponse {
	out := make([]ArrangementResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewArrangementResponse(&ms[i]))
	}
	return out
}

type StaffSummary struct {
	StaffID    uuid.UUID `json:"staff_id"`
	StaffFName string    `json:"staff_fname"`
	StaffLName string    `json:"staff_lname"`
	Dept       string    `json:"dept"`
	Position   string    `json:"position"`
}

func NewStaffSummary(s *staffModel.StaffModel) *StaffSummary {
	if s == nil {
		return nil
	}
	return &StaffSummary{
		StaffID:    s.StaffID,
		StaffFName: s.StaffFName,
		StaffLName: s.StaffLName,
		Dept:       s.Dept,
		Position:   s.Position,
	}
}

type RequestGroupResponse struct {
	RequestGroupID      uuid.UUID             `json:"request_group_id"`
	Staff               *StaffSummary         `json:"staff,omitempty"`
	RequestCreatedDate  time.Time             `json:"request_created_date"`
	GroupStatus         string                `json:"group_status"`
	ArrangementRequests []ArrangementResponse `json:"arrangement_requests"`
}

func NewRequestGroupResponse(g *model.RequestGroupModel) RequestGroupResponse {
	return RequestGroupResponse{
		RequestGroupID:      g.RequestGroupID,
		Staff:               NewStaffSummary(g.Staff),
		RequestCreatedDate:  g.RequestCreatedDate,
		GroupStatus:         model.GroupStatus(g.ArrangementRequests),
		ArrangementRequests: NewArrangementResponses(g.ArrangementRequests),
	}
}

func NewRequestGroupResponses(gs []model.RequestGroupModel) []RequestGroupResponse {
	out := make([]RequestGroupResponse, 0, len(gs))
	for i := range gs {
		out = append(out, NewRequestGroupResponse(&gs[i]))
	}
	return out
}

// PaginationMeta matches the shape the dashboard consumes.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type ManagerArrangementsResponse struct {
	ManagerID     uuid.UUID              `json:"manager_id"`
	RequestGroups []RequestGroupResponse `json:"request_groups"`
	Pagination    PaginationMeta         `json:"pagination"`
}

type ApprovedArrangementsResponse struct {
	ManagerID     uuid.UUID              `json:"manager_id"`
	RequestGroups []RequestGroupResponse `json:"request_groups"`
}

type BatchCreateResponse struct {
	Message           string                `json:"message"`
	NewRequests       []ArrangementResponse `json:"new_requests"`
	CancelledRequests []string              `json:"cancelled_requests"`
}
