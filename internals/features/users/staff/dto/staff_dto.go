// internals/features/users/staff/dto/staff_dto.go
package dto

import (
	"github.com/google/uuid"

	staffModel "wfh_backend/internals/features/users/staff/model"
)

// ========================= REQUEST =========================

type CreateStaffRequest struct {
	StaffFName         string  `json:"staff_fname" validate:"required,min=1,max=50"`
	StaffLName         string  `json:"staff_lname" validate:"required,min=1,max=50"`
	Dept               string  `json:"dept" validate:"required,max=50"`
	Position           string  `json:"position" validate:"required,max=50"`
	Country            string  `json:"country" validate:"required,max=50"`
	Email              string  `json:"email" validate:"required,email"`
	Password           string  `json:"password" validate:"required,min=8"`
	ReportingManagerID *string `json:"reporting_manager_id" validate:"omitempty,uuid"`
	RoleID             int     `json:"role_id" validate:"required,oneof=1 2 3"`
}

type UpdateStaffRequest struct {
	StaffFName         *string `json:"staff_fname" validate:"omitempty,min=1,max=50"`
	StaffLName         *string `json:"staff_lname" validate:"omitempty,min=1,max=50"`
	Dept               *string `json:"dept" validate:"omitempty,max=50"`
	Position           *string `json:"position" validate:"omitempty,max=50"`
	Country            *string `json:"country" validate:"omitempty,max=50"`
	ReportingManagerID *string `json:"reporting_manager_id" validate:"omitempty,uuid"`
	RoleID             *int    `json:"role_id" validate:"omitempty,oneof=1 2 3"`
	IsActive           *bool   `json:"is_active"`
}

// ========================= RESPONSE =========================

type StaffResponse struct {
	StaffID            uuid.UUID  `json:"staff_id"`
	StaffFName         string     `json:"staff_fname"`
	StaffLName         string     `json:"staff_lname"`
	Dept               string     `json:"dept"`
	Position           string     `json:"position"`
	Country            string     `json:"country"`
	Email              string     `json:"email"`
	ReportingManagerID *uuid.UUID `json:"reporting_manager_id"`
	RoleID             int        `json:"role_id"`
	IsActive           bool       `json:"is_active"`
}

func NewStaffResponse(s *staffModel.StaffModel) StaffResponse {
	return StaffResponse{
		StaffID:            s.StaffID,
		StaffFName:         s.StaffFName,
		StaffLName:         s.StaffLName,
		Dept:               s.Dept,
		Position:           s.Position,
		Country:            s.Country,
		Email:              s.Email,
		ReportingManagerID: s.ReportingManagerID,
		RoleID:             s.RoleID,
		IsActive:           s.IsActive,
	}
}

func NewStaffResponses(models []staffModel.StaffModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(models))
	for i := range models {
		out = append(out, NewStaffResponse(&models[i]))
	}
	return out
}
