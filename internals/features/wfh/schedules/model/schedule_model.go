package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	staffModel "wfh_backend/internals/features/users/staff/model"
)

// ScheduleModel is the materialized calendar fact for an approved day.
// A row exists iff the originating request is Approved; the lifecycle
// engine creates it on approval and removes it on reject/revoke/withdraw/undo.
// (staff_id, start_date) is the natural key, so re-approval upserts.
type ScheduleModel struct {
	ScheduleID  uuid.UUID      `gorm:"column:schedule_id;type:uuid;primaryKey" json:"schedule_id"`
	StaffID     uuid.UUID      `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uq_schedules_staff_date" json:"staff_id"`
	StartDate   datatypes.Date `gorm:"column:start_date;not null;uniqueIndex:uq_schedules_staff_date" json:"start_date"`
	SessionType string         `gorm:"column:session_type;type:varchar(30);not null" json:"session_type"`
	RequestID   uuid.UUID      `gorm:"column:request_id;type:uuid;not null;index" json:"request_id"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`

	Staff *staffModel.StaffModel `gorm:"foreignKey:StaffID;references:StaffID" json:"staff,omitempty"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID == uuid.Nil {
		m.ScheduleID = uuid.New()
	}
	return nil
}

func (m *ScheduleModel) StartDateKey() string {
	return time.Time(m.StartDate).Format("2006-01-02")
}
