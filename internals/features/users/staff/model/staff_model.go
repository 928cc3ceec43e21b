package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffModel struct {
	StaffID    uuid.UUID `gorm:"column:staff_id;type:uuid;primaryKey" json:"staff_id"`
	StaffFName string    `gorm:"column:staff_fname;type:varchar(80);not null" json:"staff_fname"`
	StaffLName string    `gorm:"column:staff_lname;type:varchar(80);not null" json:"staff_lname"`
	Dept       string    `gorm:"column:dept;type:varchar(80);not null;index" json:"dept"`
	Position   string    `gorm:"column:position;type:varchar(80);not null;index" json:"position"`
	Country    string    `gorm:"column:country;type:varchar(80)" json:"country"`
	Email      string    `gorm:"column:email;type:varchar(120);not null;uniqueIndex" json:"email"`

	// Self-referential; NULL for staff with no reporting line (e.g. a Director).
	ReportingManagerID *uuid.UUID `gorm:"column:reporting_manager_id;type:uuid;index" json:"reporting_manager_id,omitempty"`

	RoleID   int  `gorm:"column:role_id;not null" json:"role_id"`
	IsActive bool `gorm:"column:is_active;not null;default:true" json:"is_active"`

	PasswordHash     string     `gorm:"column:password_hash;type:varchar(120);not null" json:"-"`
	ResetToken       *string    `gorm:"column:reset_token;type:varchar(120)" json:"-"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (StaffModel) TableName() string { return "staff" }

func (m *StaffModel) BeforeCreate(tx *gorm.DB) error {
	if m.StaffID == uuid.Nil {
		m.StaffID = uuid.New()
	}
	return nil
}

func (m *StaffModel) FullName() string {
	return m.StaffFName + " " + m.StaffLName
}
