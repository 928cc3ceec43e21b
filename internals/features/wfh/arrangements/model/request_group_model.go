package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	staffModel "wfh_backend/internals/features/users/staff/model"
)

// RequestGroupModel is one submission event: a single ad-hoc day or a
// batch of recurring days. Children carry all mutable state; groups are
// never updated or deleted.
type RequestGroupModel struct {
	RequestGroupID     uuid.UUID `gorm:"column:request_group_id;type:uuid;primaryKey" json:"request_group_id"`
	StaffID            uuid.UUID `gorm:"column:staff_id;type:uuid;not null;index" json:"staff_id"`
	RequestCreatedDate time.Time `gorm:"column:request_created_date;not null;autoCreateTime" json:"request_created_date"`

	Staff               *staffModel.StaffModel    `gorm:"foreignKey:StaffID;references:StaffID" json:"staff,omitempty"`
	ArrangementRequests []ArrangementRequestModel `gorm:"foreignKey:RequestGroupID;references:RequestGroupID" json:"arrangement_requests,omitempty"`
}

func (RequestGroupModel) TableName() string { return "request_groups" }

func (m *RequestGroupModel) BeforeCreate(tx *gorm.DB) error {
	if m.RequestGroupID == uuid.Nil {
		m.RequestGroupID = uuid.New()
	}
	return nil
}
