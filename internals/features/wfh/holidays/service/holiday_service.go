package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	model "wfh_backend/internals/features/wfh/holidays/model"
)

var (
	ErrHolidayExists   = errors.New("A holiday already exists for this date")
	ErrHolidayNotFound = errors.New("Holiday not found")
)

type HolidayService struct{ DB *gorm.DB }

func NewHolidayService(db *gorm.DB) *HolidayService {
	return &HolidayService{DB: db}
}

func (s *HolidayService) Create(date time.Time, name string, description *string) (*model.OfficialHolidayModel, error) {
	var count int64
	if err := s.DB.Model(&model.OfficialHolidayModel{}).
		Where("holiday_date = ?", datatypes.Date(date)).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrHolidayExists
	}

	holiday := model.OfficialHolidayModel{
		HolidayDate:        datatypes.Date(date),
		HolidayName:        name,
		HolidayDescription: description,
	}
	if err := s.DB.Create(&holiday).Error; err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (s *HolidayService) GetAll() ([]model.OfficialHolidayModel, error) {
	var holidays []model.OfficialHolidayModel
	err := s.DB.Order("holiday_date ASC").Find(&holidays).Error
	return holidays, err
}

func (s *HolidayService) GetByDateRange(startDate, endDate time.Time) ([]model.OfficialHolidayModel, error) {
	var holidays []model.OfficialHolidayModel
	err := s.DB.
		Where("holiday_date >= ? AND holiday_date <= ?", datatypes.Date(startDate), datatypes.Date(endDate)).
		Order("holiday_date ASC").
		Find(&holidays).Error
	return holidays, err
}

func (s *HolidayService) Update(holidayID uuid.UUID, date *time.Time, name, description *string) (*model.OfficialHolidayModel, error) {
	var holiday model.OfficialHolidayModel
	if err := s.DB.Where("holiday_id = ?", holidayID).First(&holiday).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHolidayNotFound
		}
		return nil, err
	}

	if date != nil {
		var count int64
		if err := s.DB.Model(&model.OfficialHolidayModel{}).
			Where("holiday_date = ? AND holiday_id <> ?", datatypes.Date(*date), holidayID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrHolidayExists
		}
		holiday.HolidayDate = datatypes.Date(*date)
	}
	if name != nil {
		holiday.HolidayName = *name
	}
	if description != nil {
		holiday.HolidayDescription = description
	}

	if err := s.DB.Save(&holiday).Error; err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (s *HolidayService) Delete(holidayID uuid.UUID) error {
	res := s.DB.Where("holiday_id = ?", holidayID).Delete(&model.OfficialHolidayModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}
