// internals/features/wfh/schedules/service/schedule_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	staffModel "wfh_backend/internals/features/users/staff/model"
	arrangementModel "wfh_backend/internals/features/wfh/arrangements/model"
	holidayModel "wfh_backend/internals/features/wfh/holidays/model"
	scheduleModel "wfh_backend/internals/features/wfh/schedules/model"
	helper "wfh_backend/internals/helpers"
)

var ErrStaffNotFound = errors.New("Staff not found")

// Classification labels. ClassInOffice is the default when nothing else
// matches; ClassPending only appears in the personal view.
const (
	ClassInOffice        = "In office"
	ClassPendingRequest  = "Pending Request"
	ClassOfficialHoliday = arrangementModel.SessionOfficialHoliday
)

// NestedSchedule is date → department → position → classification → staff names.
type NestedSchedule = map[string]map[string]map[string]map[string][]string

// ScheduleService is the read-side projector. It never mutates state; all
// lookup tables are built per call.
type ScheduleService struct{ DB *gorm.DB }

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

/* ===================== PERSONAL ===================== */

// GetSchedulePersonal returns date → classification for one staff member.
// Precedence per date: official holiday > pending request > approved
// schedule entry > "In office". Weekends are excluded.
func (s *ScheduleService) GetSchedulePersonal(staffID uuid.UUID, startDate, endDate time.Time) (map[string]string, error) {
	var schedules []scheduleModel.ScheduleModel
	if err := s.dateRange(startDate, endDate).
		Where("staff_id = ?", staffID).
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	var pending []arrangementModel.ArrangementRequestModel
	if err := s.DB.Model(&arrangementModel.ArrangementRequestModel{}).
		Joins("JOIN request_groups ON request_groups.request_group_id = arrangement_requests.request_group_id").
		Where("request_groups.staff_id = ?", staffID).
		Where("arrangement_requests.request_status = ?", arrangementModel.StatusPending).
		Where("arrangement_requests.start_date >= ? AND arrangement_requests.start_date <= ?",
			datatypes.Date(startDate), datatypes.Date(endDate)).
		Find(&pending).Error; err != nil {
		return nil, err
	}

	holidays, err := s.holidaysInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	scheduleLookup := map[string]string{}
	for i := range schedules {
		key := schedules[i].StartDateKey()
		if _, ok := scheduleLookup[key]; !ok {
			scheduleLookup[key] = schedules[i].SessionType
		}
	}

	pendingLookup := map[string]bool{}
	for i := range pending {
		pendingLookup[pending[i].StartDateKey()] = true
	}

	result := map[string]string{}
	for _, date := range helper.BusinessDates(startDate, endDate) {
		switch {
		case holidays[date]:
			result[date] = ClassOfficialHoliday
		case pendingLookup[date]:
			result[date] = ClassPendingRequest
		default:
			st, ok := scheduleLookup[date]
			if ok && arrangementModel.IsValidSessionType(st) {
				result[date] = st
			} else {
				result[date] = ClassInOffice
			}
		}
	}
	return result, nil
}

/* ===================== GROUP VIEWS ===================== */

// GetScheduleByTeam groups staff sharing the caller's department and position.
func (s *ScheduleService) GetScheduleByTeam(staffID uuid.UUID, startDate, endDate time.Time) (NestedSchedule, error) {
	current, err := s.findStaff(staffID)
	if err != nil {
		return nil, err
	}

	var staff []staffModel.StaffModel
	if err := s.DB.
		Where("dept = ? AND position = ?", current.Dept, current.Position).
		Find(&staff).Error; err != nil {
		return nil, err
	}

	return s.buildNested(staff, startDate, endDate)
}

// GetScheduleByDepartment groups every non-Director in the caller's department.
func (s *ScheduleService) GetScheduleByDepartment(staffID uuid.UUID, startDate, endDate time.Time) (NestedSchedule, error) {
	current, err := s.findStaff(staffID)
	if err != nil {
		return nil, err
	}

	var staff []staffModel.StaffModel
	if err := s.DB.
		Where("dept = ? AND position <> ?", current.Dept, "Director").
		Find(&staff).Error; err != nil {
		return nil, err
	}

	return s.buildNested(staff, startDate, endDate)
}

// GetScheduleGlobal is the org-wide view with optional dept/position filters.
func (s *ScheduleService) GetScheduleGlobal(dept, position string, startDate, endDate time.Time) (NestedSchedule, error) {
	q := s.DB.Model(&staffModel.StaffModel{})
	if dept != "" {
		q = q.Where("dept = ?", dept)
	}
	if position != "" {
		q = q.Where("position = ?", position)
	}

	var staff []staffModel.StaffModel
	if err := q.Find(&staff).Error; err != nil {
		return nil, err
	}

	return s.buildNested(staff, startDate, endDate)
}

/* ===================== INTERNAL ===================== */

func (s *ScheduleService) findStaff(staffID uuid.UUID) (*staffModel.StaffModel, error) {
	var staff staffModel.StaffModel
	if err := s.DB.Where("staff_id = ?", staffID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return &staff, nil
}

func (s *ScheduleService) dateRange(startDate, endDate time.Time) *gorm.DB {
	return s.DB.Model(&scheduleModel.ScheduleModel{}).
		Where("start_date >= ? AND start_date <= ?", datatypes.Date(startDate), datatypes.Date(endDate))
}

func (s *ScheduleService) holidaysInRange(startDate, endDate time.Time) (map[string]bool, error) {
	var holidays []holidayModel.OfficialHolidayModel
	if err := s.DB.
		Where("holiday_date >= ? AND holiday_date <= ?", datatypes.Date(startDate), datatypes.Date(endDate)).
		Find(&holidays).Error; err != nil {
		return nil, err
	}
	lookup := map[string]bool{}
	for i := range holidays {
		lookup[holidays[i].HolidayDateKey()] = true
	}
	return lookup, nil
}

// buildNested projects the given staff set onto the calendar grid. Every
// staff member lands in exactly one classification bucket per business date.
func (s *ScheduleService) buildNested(staff []staffModel.StaffModel, startDate, endDate time.Time) (NestedSchedule, error) {
	ids := make([]uuid.UUID, 0, len(staff))
	for i := range staff {
		ids = append(ids, staff[i].StaffID)
	}

	var schedules []scheduleModel.ScheduleModel
	if len(ids) > 0 {
		if err := s.dateRange(startDate, endDate).
			Where("staff_id IN ?", ids).
			Find(&schedules).Error; err != nil {
			return nil, err
		}
	}

	holidays, err := s.holidaysInRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	// staff → date → session type
	scheduleLookup := map[uuid.UUID]map[string]string{}
	for i := range schedules {
		sched := &schedules[i]
		if scheduleLookup[sched.StaffID] == nil {
			scheduleLookup[sched.StaffID] = map[string]string{}
		}
		key := sched.StartDateKey()
		if _, ok := scheduleLookup[sched.StaffID][key]; !ok {
			scheduleLookup[sched.StaffID][key] = sched.SessionType
		}
	}

	dates := helper.BusinessDates(startDate, endDate)

	result := NestedSchedule{}
	for _, date := range dates {
		result[date] = map[string]map[string]map[string][]string{}
	}

	for i := range staff {
		member := &staff[i]
		name := member.FullName()

		for _, date := range dates {
			deptMap := result[date]
			if deptMap[member.Dept] == nil {
				deptMap[member.Dept] = map[string]map[string][]string{}
			}
			if deptMap[member.Dept][member.Position] == nil {
				deptMap[member.Dept][member.Position] = map[string][]string{
					ClassInOffice:                           {},
					arrangementModel.SessionWorkHome:        {},
					arrangementModel.SessionDayOff:          {},
					arrangementModel.SessionVacation:        {},
					arrangementModel.SessionOfficialHoliday: {},
				}
			}
			buckets := deptMap[member.Dept][member.Position]

			classification := ClassInOffice
			if holidays[date] {
				classification = ClassOfficialHoliday
			} else if st, ok := scheduleLookup[member.StaffID][date]; ok && arrangementModel.IsValidSessionType(st) {
				classification = st
			}
			buckets[classification] = append(buckets[classification], name)
		}
	}
	return result, nil
}
