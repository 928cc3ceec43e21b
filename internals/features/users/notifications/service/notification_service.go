package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notificationModel "wfh_backend/internals/features/users/notifications/model"
	staffModel "wfh_backend/internals/features/users/staff/model"
)

type NotificationService struct{ DB *gorm.DB }

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// CreateNotification is fire-and-forget: a missing or unknown recipient is
// skipped silently, any other failure is logged. It must never fail a
// lifecycle operation, so callers invoke it outside their transaction.
func (s *NotificationService) CreateNotification(staffID uuid.UUID, message, notifType string) {
	if staffID == uuid.Nil {
		log.Println("Skipping notification: no valid staff_id provided")
		return
	}

	var count int64
	if err := s.DB.Model(&staffModel.StaffModel{}).
		Where("staff_id = ?", staffID).
		Count(&count).Error; err != nil {
		log.Printf("notification recipient check failed: %v", err)
		return
	}
	if count == 0 {
		log.Printf("Skipping notification: staff %s does not exist", staffID)
		return
	}

	n := notificationModel.NotificationModel{
		StaffID: staffID,
		Message: message,
		Type:    notifType,
		Status:  notificationModel.NotificationUnread,
	}
	if err := s.DB.Create(&n).Error; err != nil {
		log.Printf("notification insert failed: %v", err)
	}
}

func (s *NotificationService) GetByStaff(staffID uuid.UUID) ([]notificationModel.NotificationModel, error) {
	var notifications []notificationModel.NotificationModel
	err := s.DB.
		Where("staff_id = ?", staffID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (s *NotificationService) MarkRead(notificationID uuid.UUID) error {
	return s.DB.Model(&notificationModel.NotificationModel{}).
		Where("notification_id = ?", notificationID).
		Update("status", notificationModel.NotificationRead).Error
}

func (s *NotificationService) MarkAllRead(staffID uuid.UUID) error {
	return s.DB.Model(&notificationModel.NotificationModel{}).
		Where("staff_id = ?", staffID).
		Update("status", notificationModel.NotificationRead).Error
}
