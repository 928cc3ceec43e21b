// internals/features/users/staff/service/staff_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "wfh_backend/internals/features/users/staff/dto"
	staffModel "wfh_backend/internals/features/users/staff/model"
)

var (
	ErrStaffNotFound   = errors.New("Staff not found")
	ErrEmailTaken      = errors.New("Email is already registered")
	ErrManagerNotFound = errors.New("Reporting manager not found")
)

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

// ========================= CREATE =========================

func (s *StaffService) CreateStaff(req *dto.CreateStaffRequest) (*staffModel.StaffModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := s.DB.Model(&staffModel.StaffModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	managerID, err := s.resolveManagerID(req.ReportingManagerID)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &staffModel.StaffModel{
		StaffFName:         req.StaffFName,
		StaffLName:         req.StaffLName,
		Dept:               req.Dept,
		Position:           req.Position,
		Country:            req.Country,
		Email:              email,
		PasswordHash:       string(hash),
		ReportingManagerID: managerID,
		RoleID:             req.RoleID,
		IsActive:           true,
	}
	if err := s.DB.Create(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// ========================= READ =========================

func (s *StaffService) GetStaffByID(staffID uuid.UUID) (*staffModel.StaffModel, error) {
	var staff staffModel.StaffModel
	if err := s.DB.First(&staff, "staff_id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// ListStaff returns the staff directory, optionally narrowed by
// department and active flag.
func (s *StaffService) ListStaff(dept string, onlyActive bool) ([]staffModel.StaffModel, error) {
	query := s.DB.Model(&staffModel.StaffModel{}).
		Order("staff_fname ASC, staff_lname ASC")
	if dept != "" {
		query = query.Where("dept = ?", dept)
	}
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}

	var staff []staffModel.StaffModel
	if err := query.Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// ListTeamMembers returns the direct reports of a manager.
func (s *StaffService) ListTeamMembers(managerID uuid.UUID) ([]staffModel.StaffModel, error) {
	var staff []staffModel.StaffModel
	if err := s.DB.
		Where("reporting_manager_id = ? AND is_active = ?", managerID, true).
		Order("staff_fname ASC, staff_lname ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// ========================= UPDATE =========================

func (s *StaffService) UpdateStaff(staffID uuid.UUID, req *dto.UpdateStaffRequest) (*staffModel.StaffModel, error) {
	staff, err := s.GetStaffByID(staffID)
	if err != nil {
		return nil, err
	}

	if req.StaffFName != nil {
		staff.StaffFName = *req.StaffFName
	}
	if req.StaffLName != nil {
		staff.StaffLName = *req.StaffLName
	}
	if req.Dept != nil {
		staff.Dept = *req.Dept
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Country != nil {
		staff.Country = *req.Country
	}
	if req.ReportingManagerID != nil {
		managerID, err := s.resolveManagerID(req.ReportingManagerID)
		if err != nil {
			return nil, err
		}
		staff.ReportingManagerID = managerID
	}
	if req.RoleID != nil {
		staff.RoleID = *req.RoleID
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := s.DB.Save(staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// DeactivateStaff soft-disables a login without deleting history.
func (s *StaffService) DeactivateStaff(staffID uuid.UUID) error {
	result := s.DB.Model(&staffModel.StaffModel{}).
		Where("staff_id = ?", staffID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// ========================= HELPERS =========================

func (s *StaffService) resolveManagerID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	managerID, err := uuid.Parse(*raw)
	if err != nil {
		return nil, ErrManagerNotFound
	}
	var count int64
	if err := s.DB.Model(&staffModel.StaffModel{}).
		Where("staff_id = ?", managerID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrManagerNotFound
	}
	return &managerID, nil
}
