// internals/features/wfh/arrangements/service/arrangement_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	staffModel "wfh_backend/internals/features/users/staff/model"
	model "wfh_backend/internals/features/wfh/arrangements/model"
	scheduleModel "wfh_backend/internals/features/wfh/schedules/model"
)

var (
	ErrDuplicateRequest     = errors.New("There is already a WFH request on this date for this staff member.")
	ErrRequestGroupNotFound = errors.New("Request group not found")
	ErrStaffNotFound        = errors.New("Staff not found")
	ErrInvalidRepeatType    = errors.New("repeat_type must be weekly or bi-weekly")
	ErrInvalidDecision      = errors.New("decision must be Approved or Rejected")
)

// Notifier is the fire-and-forget sink the lifecycle engine emits to.
// Implementations must never return an error into a lifecycle transaction.
type Notifier interface {
	CreateNotification(staffID uuid.UUID, message, notifType string)
}

// ArrangementService owns the request state machine. Every mutating
// operation runs inside exactly one transaction; notifications go out
// after commit on the outer handle.
type ArrangementService struct {
	DB       *gorm.DB
	Notifier Notifier
}

func NewArrangementService(db *gorm.DB, notifier Notifier) *ArrangementService {
	return &ArrangementService{DB: db, Notifier: notifier}
}

/* ===================== CREATE ===================== */

func (s *ArrangementService) CreateArrangement(staffID uuid.UUID, sessionType string, startDate time.Time, description *string) (*model.ArrangementRequestModel, error) {
	var created model.ArrangementRequestModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		dup, err := hasActiveRequestOn(tx, staffID, startDate)
		if err != nil {
			return err
		}
		if dup {
			return ErrDuplicateRequest
		}

		group := model.RequestGroupModel{StaffID: staffID}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		created = model.ArrangementRequestModel{
			RequestGroupID: group.RequestGroupID,
			SessionType:    sessionType,
			StartDate:      datatypes.Date(startDate),
			Description:    description,
			RequestStatus:  model.StatusPending,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}

	s.notifyManager(staffID, "submitted new ad-hoc WFH request")
	return &created, nil
}

func (s *ArrangementService) CreateBatchArrangement(staffID uuid.UUID, sessionType string, description *string, numOccurrences int, repeatType string, startDate time.Time) ([]model.ArrangementRequestModel, []string, error) {
	var interval int
	switch repeatType {
	case "weekly":
		interval = 7
	case "bi-weekly":
		interval = 14
	default:
		return nil, nil, ErrInvalidRepeatType
	}

	newRequests := []model.ArrangementRequestModel{}
	cancelled := []string{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		group := model.RequestGroupModel{StaffID: staffID}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		for i := 0; i < numOccurrences; i++ {
			date := startDate.AddDate(0, 0, i*interval)

			dup, err := hasActiveRequestOn(tx, staffID, date)
			if err != nil {
				return err
			}
			if dup {
				// Colliding dates are skipped, not fatal for the batch.
				cancelled = append(cancelled, date.Format("2006-01-02"))
				continue
			}

			req := model.ArrangementRequestModel{
				RequestGroupID: group.RequestGroupID,
				SessionType:    sessionType,
				StartDate:      datatypes.Date(date),
				Description:    description,
				RequestStatus:  model.StatusPending,
			}
			if err := tx.Create(&req).Error; err != nil {
				return err
			}
			newRequests = append(newRequests, req)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyManager(staffID, "submitted new repeating WFH request")
	return newRequests, cancelled, nil
}

// hasActiveRequestOn enforces the uniqueness invariant: at most one
// Pending/Approved request per (staff, date), scoped through the
// owning group's staff.
func hasActiveRequestOn(tx *gorm.DB, staffID uuid.UUID, date time.Time) (bool, error) {
	var n int64
	err := tx.Model(&model.ArrangementRequestModel{}).
		Joins("JOIN request_groups ON request_groups.request_group_id = arrangement_requests.request_group_id").
		Where("request_groups.staff_id = ?", staffID).
		Where("arrangement_requests.start_date = ?", datatypes.Date(date)).
		Where("arrangement_requests.request_status IN ?", []string{model.StatusPending, model.StatusApproved}).
		Count(&n).Error
	return n > 0, err
}

/* ===================== DECISIONS ===================== */

func (s *ArrangementService) ApproveRequest(groupID uuid.UUID, comment string, managerID uuid.UUID) (*model.RequestGroupModel, error) {
	var group model.RequestGroupModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadGroup(tx, groupID, &group); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&model.ArrangementRequestModel{}).
			Where("request_group_id = ?", groupID).
			Updates(map[string]interface{}{
				"request_status":   model.StatusApproved,
				"approval_comment": comment,
				"approved_at":      now,
			}).Error; err != nil {
			return err
		}

		requests, err := groupRequests(tx, groupID)
		if err != nil {
			return err
		}
		for i := range requests {
			if err := upsertSchedule(tx, group.StaffID, &requests[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.CreateNotification(group.StaffID, "Your WFH request has been approved", "WFH Request Approved")
	return &group, nil
}

func (s *ArrangementService) ApprovePartialRequest(groupID uuid.UUID, comment string, decisions map[uuid.UUID]string, managerID uuid.UUID) (*model.RequestGroupModel, error) {
	for _, decision := range decisions {
		if decision != model.StatusApproved && decision != model.StatusRejected {
			return nil, ErrInvalidDecision
		}
	}

	var group model.RequestGroupModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadGroup(tx, groupID, &group); err != nil {
			return err
		}

		requests, err := groupRequests(tx, groupID)
		if err != nil {
			return err
		}

		now := time.Now()
		for i := range requests {
			req := &requests[i]
			decision, ok := decisions[req.ArrangementID]
			if !ok {
				continue // untouched children keep their status
			}

			values := map[string]interface{}{
				"request_status":   decision,
				"approval_comment": comment,
			}
			if decision == model.StatusApproved {
				values["approved_at"] = now
			}
			if err := tx.Model(&model.ArrangementRequestModel{}).
				Where("arrangement_id = ?", req.ArrangementID).
				Updates(values).Error; err != nil {
				return err
			}

			req.RequestStatus = decision
			if decision == model.StatusApproved {
				if err := upsertSchedule(tx, group.StaffID, req); err != nil {
					return err
				}
			} else {
				// A child rejected after an earlier approval must lose its schedule row.
				if err := tx.Where("staff_id = ? AND start_date = ?", group.StaffID, req.StartDate).
					Delete(&scheduleModel.ScheduleModel{}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.CreateNotification(group.StaffID, "Your WFH request has been reviewed", "WFH Request Reviewed")
	return &group, nil
}

func (s *ArrangementService) RejectRequest(groupID uuid.UUID, comment string, managerID uuid.UUID) (*model.RequestGroupModel, error) {
	var group model.RequestGroupModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadGroup(tx, groupID, &group); err != nil {
			return err
		}

		if err := tx.Model(&model.ArrangementRequestModel{}).
			Where("request_group_id = ?", groupID).
			Updates(map[string]interface{}{
				"request_status":   model.StatusRejected,
				"approval_comment": comment,
			}).Error; err != nil {
			return err
		}

		requests, err := groupRequests(tx, groupID)
		if err != nil {
			return err
		}
		for i := range requests {
			if err := tx.Where("staff_id = ? AND start_date = ?", group.StaffID, requests[i].StartDate).
				Delete(&scheduleModel.ScheduleModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.CreateNotification(group.StaffID, "Your WFH request has been rejected", "WFH Request Rejected")
	return &group, nil
}

func (s *ArrangementService) RevokeRequest(groupID uuid.UUID, comment string, managerID uuid.UUID) (*model.RequestGroupModel, error) {
	var group model.RequestGroupModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadGroup(tx, groupID, &group); err != nil {
			return err
		}

		if err := tx.Model(&model.ArrangementRequestModel{}).
			Where("request_group_id = ?", groupID).
			Updates(map[string]interface{}{
				"request_status":   model.StatusRevoked,
				"approval_comment": comment,
			}).Error; err != nil {
			return err
		}

		requests, err := groupRequests(tx, groupID)
		if err != nil {
			return err
		}
		for i := range requests {
			// Scoped tighter than reject: session type and originating
			// request id too, in case entries ever coincide.
			if err := tx.Where(
				"staff_id = ? AND start_date = ? AND session_type = ? AND request_id = ?",
				group.StaffID, requests[i].StartDate, requests[i].SessionType, requests[i].ArrangementID,
			).Delete(&scheduleModel.ScheduleModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Notifier.CreateNotification(group.StaffID, "Your approved WFH arrangement has been revoked", "WFH Request Revoked")
	return &group, nil
}

func (s *ArrangementService) WithdrawRequest(groupID uuid.UUID, comment string, staffID uuid.UUID) (*model.RequestGroupModel, []model.ArrangementRequestModel, error) {
	var group model.RequestGroupModel
	var requests []model.ArrangementRequestModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadGroup(tx, groupID, &group); err != nil {
			return err
		}

		if err := tx.Model(&model.ArrangementRequestModel{}).
			Where("request_group_id = ?", groupID).
			Updates(map[string]interface{}{
				"request_status":   model.StatusWithdrawn,
				"approval_comment": comment,
			}).Error; err != nil {
			return err
		}

		var err error
		requests, err = groupRequests(tx, groupID)
		if err != nil {
			return err
		}
		for i := range requests {
			if err := tx.Where("staff_id = ? AND start_date = ?", group.StaffID, requests[i].StartDate).
				Delete(&scheduleModel.ScheduleModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.notifyManager(group.StaffID, "withdrew a WFH request")
	return &group, requests, nil
}

// Undo reverts all children to Pending so the manager can re-decide.
// Schedule rows for the group are removed in the same transaction; a
// Pending request must not leave approved calendar facts behind.
func (s *ArrangementService) Undo(groupID uuid.UUID, comment string, managerID uuid.UUID) (*model.RequestGroupModel, error) {
	var group model.RequestGroupModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := loadGroup(tx, groupID, &group); err != nil {
			return err
		}

		if err := tx.Model(&model.ArrangementRequestModel{}).
			Where("request_group_id = ?", groupID).
			Updates(map[string]interface{}{
				"request_status":   model.StatusPending,
				"approval_comment": comment,
				"approved_at":      nil,
			}).Error; err != nil {
			return err
		}

		requests, err := groupRequests(tx, groupID)
		if err != nil {
			return err
		}
		for i := range requests {
			if err := tx.Where("staff_id = ? AND start_date = ?", group.StaffID, requests[i].StartDate).
				Delete(&scheduleModel.ScheduleModel{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

/* ===================== MANAGER READS ===================== */

type ManagerArrangements struct {
	RequestGroups []model.RequestGroupModel
	Total         int64
	Page          int
	Limit         int
	TotalPages    int
}

func (s *ArrangementService) GetArrangementByManager(managerID uuid.UUID, page, limit int, statusFilter string) (*ManagerArrangements, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	reports := s.DB.Model(&staffModel.StaffModel{}).
		Select("staff_id").
		Where("reporting_manager_id = ?", managerID)

	base := s.DB.Model(&model.RequestGroupModel{}).
		Where("staff_id IN (?)", reports)

	// Partially Approved is a projection, not a stored value; it has to be
	// filtered after loading.
	if statusFilter == model.StatusPartiallyApproved {
		var groups []model.RequestGroupModel
		if err := base.
			Preload("Staff").
			Preload("ArrangementRequests").
			Order("request_created_date DESC").
			Find(&groups).Error; err != nil {
			return nil, err
		}

		filtered := groups[:0]
		for _, g := range groups {
			if model.GroupStatus(g.ArrangementRequests) == model.StatusPartiallyApproved {
				filtered = append(filtered, g)
			}
		}

		total := int64(len(filtered))
		start := (page - 1) * limit
		if start > len(filtered) {
			start = len(filtered)
		}
		end := start + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		return &ManagerArrangements{
			RequestGroups: filtered[start:end],
			Total:         total,
			Page:          page,
			Limit:         limit,
			TotalPages:    totalPages(total, limit),
		}, nil
	}

	if statusFilter != "" && statusFilter != "All" {
		if !model.IsValidStatus(statusFilter) {
			return nil, fmt.Errorf("unknown status filter %q", statusFilter)
		}
		base = base.Where(
			"EXISTS (SELECT 1 FROM arrangement_requests WHERE arrangement_requests.request_group_id = request_groups.request_group_id AND arrangement_requests.request_status = ?)",
			statusFilter,
		)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var groups []model.RequestGroupModel
	if err := base.Session(&gorm.Session{}).
		Preload("Staff").
		Preload("ArrangementRequests").
		Order("request_created_date DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, err
	}

	return &ManagerArrangements{
		RequestGroups: groups,
		Total:         total,
		Page:          page,
		Limit:         limit,
		TotalPages:    totalPages(total, limit),
	}, nil
}

// GetApprovedRequests feeds the revoke-candidates view: every group under
// the manager that still has Approved children. Only approved children are
// included in the payload.
func (s *ArrangementService) GetApprovedRequests(managerID uuid.UUID) ([]model.RequestGroupModel, error) {
	reports := s.DB.Model(&staffModel.StaffModel{}).
		Select("staff_id").
		Where("reporting_manager_id = ?", managerID)

	var groups []model.RequestGroupModel
	err := s.DB.Model(&model.RequestGroupModel{}).
		Where("staff_id IN (?)", reports).
		Where(
			"EXISTS (SELECT 1 FROM arrangement_requests WHERE arrangement_requests.request_group_id = request_groups.request_group_id AND arrangement_requests.request_status = ?)",
			model.StatusApproved,
		).
		Preload("Staff").
		Preload("ArrangementRequests", "request_status = ?", model.StatusApproved).
		Order("request_created_date DESC").
		Find(&groups).Error
	return groups, err
}

/* ===================== INTERNAL ===================== */

func loadGroup(tx *gorm.DB, groupID uuid.UUID, out *model.RequestGroupModel) error {
	if err := tx.Where("request_group_id = ?", groupID).First(out).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestGroupNotFound
		}
		return err
	}
	return nil
}

func groupRequests(tx *gorm.DB, groupID uuid.UUID) ([]model.ArrangementRequestModel, error) {
	var requests []model.ArrangementRequestModel
	err := tx.Where("request_group_id = ?", groupID).Find(&requests).Error
	return requests, err
}

// upsertSchedule materializes one approved day; (staff_id, start_date) is
// the natural key, so re-approval is idempotent.
func upsertSchedule(tx *gorm.DB, staffID uuid.UUID, req *model.ArrangementRequestModel) error {
	entry := scheduleModel.ScheduleModel{
		StaffID:     staffID,
		StartDate:   req.StartDate,
		SessionType: req.SessionType,
		RequestID:   req.ArrangementID,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "start_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"session_type", "request_id"}),
	}).Create(&entry).Error
}

func (s *ArrangementService) notifyManager(staffID uuid.UUID, action string) {
	var staff staffModel.StaffModel
	if err := s.DB.Where("staff_id = ?", staffID).First(&staff).Error; err != nil {
		return
	}
	if staff.ReportingManagerID == nil {
		return
	}
	s.Notifier.CreateNotification(
		*staff.ReportingManagerID,
		fmt.Sprintf("%s %s", staff.FullName(), action),
		"New WFH Request",
	)
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
