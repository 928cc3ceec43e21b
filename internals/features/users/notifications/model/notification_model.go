package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

type NotificationModel struct {
	NotificationID uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	StaffID        uuid.UUID `gorm:"column:staff_id;type:uuid;not null;index" json:"staff_id"`
	Message        string    `gorm:"column:message;type:text;not null" json:"message"`
	Type           string    `gorm:"column:type;type:varchar(60);not null" json:"type"`
	Status         string    `gorm:"column:status;type:varchar(10);not null;default:unread" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
