package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ArrangementRequestModel is one day's remote-work/leave request.
// Rows are never deleted; the status field is the state machine:
// Pending → {Approved, Rejected, Revoked, Withdrawn},
// Approved → {Revoked, Pending(undo)}, Rejected → {Pending(undo)}.
type ArrangementRequestModel struct {
	ArrangementID  uuid.UUID      `gorm:"column:arrangement_id;type:uuid;primaryKey" json:"arrangement_id"`
	RequestGroupID uuid.UUID      `gorm:"column:request_group_id;type:uuid;not null;index" json:"request_group_id"`
	SessionType    string         `gorm:"column:session_type;type:varchar(30);not null" json:"session_type"`
	StartDate      datatypes.Date `gorm:"column:start_date;not null;index" json:"start_date"`
	Description    *string        `gorm:"column:description;type:text" json:"description,omitempty"`

	RequestStatus   string     `gorm:"column:request_status;type:varchar(20);not null;default:Pending;index" json:"request_status"`
	ApprovalComment *string    `gorm:"column:approval_comment;type:text" json:"approval_comment,omitempty"`
	ApprovedAt      *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`

	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (ArrangementRequestModel) TableName() string { return "arrangement_requests" }

func (m *ArrangementRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArrangementID == uuid.Nil {
		m.ArrangementID = uuid.New()
	}
	return nil
}

// StartDateKey is the YYYY-MM-DD form used in API payloads and schedule maps.
func (m *ArrangementRequestModel) StartDateKey() string {
	return time.Time(m.StartDate).Format("2006-01-02")
}
