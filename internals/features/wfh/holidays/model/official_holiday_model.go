package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OfficialHolidayModel struct {
	HolidayID          uuid.UUID      `gorm:"column:holiday_id;type:uuid;primaryKey" json:"holiday_id"`
	HolidayDate        datatypes.Date `gorm:"column:holiday_date;not null;uniqueIndex" json:"holiday_date"`
	HolidayName        string         `gorm:"column:holiday_name;type:varchar(120);not null" json:"holiday_name"`
	HolidayDescription *string        `gorm:"column:holiday_description;type:text" json:"holiday_description,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (OfficialHolidayModel) TableName() string { return "official_holidays" }

func (m *OfficialHolidayModel) BeforeCreate(tx *gorm.DB) error {
	if m.HolidayID == uuid.Nil {
		m.HolidayID = uuid.New()
	}
	return nil
}

func (m *OfficialHolidayModel) HolidayDateKey() string {
	return time.Time(m.HolidayDate).Format("2006-01-02")
}
