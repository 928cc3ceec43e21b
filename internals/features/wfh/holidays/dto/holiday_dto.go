package dto

import (
	"time"

	"github.com/google/uuid"

	model "wfh_backend/internals/features/wfh/holidays/model"
)

type CreateHolidayRequest struct {
	HolidayDate        string  `json:"holiday_date" validate:"required,datetime=2006-01-02"`
	HolidayName        string  `json:"holiday_name" validate:"required,min=2,max=120"`
	HolidayDescription *string `json:"holiday_description" validate:"omitempty,max=500"`
}

type UpdateHolidayRequest struct {
	HolidayDate        *string `json:"holiday_date" validate:"omitempty,datetime=2006-01-02"`
	HolidayName        *string `json:"holiday_name" validate:"omitempty,min=2,max=120"`
	HolidayDescription *string `json:"holiday_description" validate:"omitempty,max=500"`
}

type HolidayResponse struct {
	HolidayID          uuid.UUID `json:"holiday_id"`
	HolidayDate        string    `json:"holiday_date"`
	HolidayName        string    `json:"holiday_name"`
	HolidayDescription *string   `json:"holiday_description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func NewHolidayResponse(m *model.OfficialHolidayModel) HolidayResponse {
	return HolidayResponse{
		HolidayID:          m.HolidayID,
		HolidayDate:        m.HolidayDateKey(),
		HolidayName:        m.HolidayName,
		HolidayDescription: m.HolidayDescription,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func NewHolidayResponses(ms []model.OfficialHolidayModel) []HolidayResponse {
	out := make([]HolidayResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewHolidayResponse(&ms[i]))
	}
	return out
}
