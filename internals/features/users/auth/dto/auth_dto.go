package dto

import (
	"github.com/google/uuid"

	staffModel "wfh_backend/internals/features/users/staff/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Staff        StaffClaims  `json:"staff"`
}

type StaffClaims struct {
	StaffID    uuid.UUID `json:"staff_id"`
	StaffFName string    `json:"staff_fname"`
	StaffLName string    `json:"staff_lname"`
	Dept       string    `json:"dept"`
	Position   string    `json:"position"`
	RoleID     int       `json:"role_id"`
}

func NewStaffClaims(s *staffModel.StaffModel) StaffClaims {
	return StaffClaims{
		StaffID:    s.StaffID,
		StaffFName: s.StaffFName,
		StaffLName: s.StaffLName,
		Dept:       s.Dept,
		Position:   s.Position,
		RoleID:     s.RoleID,
	}
}
