package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	staffModel "wfh_backend/internals/features/users/staff/model"
	arrangementModel "wfh_backend/internals/features/wfh/arrangements/model"
	holidayModel "wfh_backend/internals/features/wfh/holidays/model"
	scheduleModel "wfh_backend/internals/features/wfh/schedules/model"
	helper "wfh_backend/internals/helpers"
)

/* ===================== FIXTURE ===================== */

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&staffModel.StaffModel{},
		&arrangementModel.RequestGroupModel{},
		&arrangementModel.ArrangementRequestModel{},
		&scheduleModel.ScheduleModel{},
		&holidayModel.OfficialHolidayModel{},
	))
	return db
}

func seedStaff(t *testing.T, db *gorm.DB, fname, lname, dept, position string) *staffModel.StaffModel {
	t.Helper()
	staff := &staffModel.StaffModel{
		StaffFName:   fname,
		StaffLName:   lname,
		Dept:         dept,
		Position:     position,
		Country:      "Singapore",
		Email:        fname + "." + lname + "@" + uuid.NewString()[:8] + ".test",
		PasswordHash: "x",
		RoleID:       2,
		IsActive:     true,
	}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := helper.ParseDate(s)
	require.NoError(t, err)
	return d
}

func seedSchedule(t *testing.T, db *gorm.DB, staffID uuid.UUID, date, sessionType string) {
	t.Helper()
	require.NoError(t, db.Create(&scheduleModel.ScheduleModel{
		StaffID:     staffID,
		StartDate:   datatypes.Date(mustDate(t, date)),
		SessionType: sessionType,
		RequestID:   uuid.New(),
	}).Error)
}

func seedPending(t *testing.T, db *gorm.DB, staffID uuid.UUID, date string) {
	t.Helper()
	group := arrangementModel.RequestGroupModel{StaffID: staffID}
	require.NoError(t, db.Create(&group).Error)
	require.NoError(t, db.Create(&arrangementModel.ArrangementRequestModel{
		RequestGroupID: group.RequestGroupID,
		SessionType:    arrangementModel.SessionWorkHome,
		StartDate:      datatypes.Date(mustDate(t, date)),
		RequestStatus:  arrangementModel.StatusPending,
	}).Error)
}

func seedHoliday(t *testing.T, db *gorm.DB, date, name string) {
	t.Helper()
	require.NoError(t, db.Create(&holidayModel.OfficialHolidayModel{
		HolidayDate: datatypes.Date(mustDate(t, date)),
		HolidayName: name,
	}).Error)
}

/* ===================== PERSONAL ===================== */

func TestGetSchedulePersonal(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	staff := seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")

	seedSchedule(t, db, staff.StaffID, "2026-03-02", arrangementModel.SessionWorkHome)
	seedPending(t, db, staff.StaffID, "2026-03-03")
	seedHoliday(t, db, "2026-03-04", "Founders Day")

	result, err := svc.GetSchedulePersonal(staff.StaffID, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-08"))
	require.NoError(t, err)

	// Weekend dates (03-07, 03-08) never appear.
	assert.Equal(t, map[string]string{
		"2026-03-02": arrangementModel.SessionWorkHome,
		"2026-03-03": ClassPendingRequest,
		"2026-03-04": ClassOfficialHoliday,
		"2026-03-05": ClassInOffice,
		"2026-03-06": ClassInOffice,
	}, result)
}

func TestGetSchedulePersonalPrecedence(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	staff := seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")

	// Holiday outranks an approved schedule entry on the same date.
	seedSchedule(t, db, staff.StaffID, "2026-03-02", arrangementModel.SessionVacation)
	seedHoliday(t, db, "2026-03-02", "Founders Day")

	// Pending outranks an approved schedule entry.
	seedSchedule(t, db, staff.StaffID, "2026-03-03", arrangementModel.SessionWorkHome)
	seedPending(t, db, staff.StaffID, "2026-03-03")

	result, err := svc.GetSchedulePersonal(staff.StaffID, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-03"))
	require.NoError(t, err)
	assert.Equal(t, ClassOfficialHoliday, result["2026-03-02"])
	assert.Equal(t, ClassPendingRequest, result["2026-03-03"])
}

func TestGetSchedulePersonalIgnoresOtherStaff(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)
	staff := seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")
	other := seedStaff(t, db, "Bob", "Ng", "Engineering", "Developer")

	seedSchedule(t, db, other.StaffID, "2026-03-02", arrangementModel.SessionWorkHome)
	seedPending(t, db, other.StaffID, "2026-03-03")

	result, err := svc.GetSchedulePersonal(staff.StaffID, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-03"))
	require.NoError(t, err)
	assert.Equal(t, ClassInOffice, result["2026-03-02"])
	assert.Equal(t, ClassInOffice, result["2026-03-03"])
}

/* ===================== GROUP VIEWS ===================== */

func TestGetScheduleByTeam(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	alice := seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")
	seedStaff(t, db, "Carol", "Lee", "Engineering", "Developer")
	seedStaff(t, db, "Bob", "Ng", "Engineering", "QA") // different position, not teammates

	seedSchedule(t, db, alice.StaffID, "2026-03-02", arrangementModel.SessionWorkHome)

	result, err := svc.GetScheduleByTeam(alice.StaffID, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	require.NoError(t, err)

	day := result["2026-03-02"]
	require.Contains(t, day, "Engineering")
	require.Contains(t, day["Engineering"], "Developer")
	assert.NotContains(t, day["Engineering"], "QA")

	buckets := day["Engineering"]["Developer"]
	assert.Equal(t, []string{"Alice Tan"}, buckets[arrangementModel.SessionWorkHome])
	assert.Equal(t, []string{"Carol Lee"}, buckets[ClassInOffice])

	// Every classification bucket exists even when empty.
	for _, class := range []string{
		ClassInOffice,
		arrangementModel.SessionWorkHome,
		arrangementModel.SessionDayOff,
		arrangementModel.SessionVacation,
		arrangementModel.SessionOfficialHoliday,
	} {
		assert.Contains(t, buckets, class)
	}
}

func TestGetScheduleByDepartmentExcludesDirectors(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	alice := seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")
	seedStaff(t, db, "Bob", "Ng", "Engineering", "QA")
	seedStaff(t, db, "Mei", "Lim", "Engineering", "Director")
	seedStaff(t, db, "Raj", "Kumar", "Sales", "Account Manager")

	result, err := svc.GetScheduleByDepartment(alice.StaffID, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	require.NoError(t, err)

	day := result["2026-03-02"]
	require.Contains(t, day, "Engineering")
	assert.Contains(t, day["Engineering"], "Developer")
	assert.Contains(t, day["Engineering"], "QA")
	assert.NotContains(t, day["Engineering"], "Director")
	assert.NotContains(t, day, "Sales")
}

func TestGetScheduleGlobalFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")
	seedStaff(t, db, "Raj", "Kumar", "Sales", "Account Manager")

	all, err := svc.GetScheduleGlobal("", "", mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	require.NoError(t, err)
	assert.Contains(t, all["2026-03-02"], "Engineering")
	assert.Contains(t, all["2026-03-02"], "Sales")

	engOnly, err := svc.GetScheduleGlobal("Engineering", "", mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	require.NoError(t, err)
	assert.Contains(t, engOnly["2026-03-02"], "Engineering")
	assert.NotContains(t, engOnly["2026-03-02"], "Sales")

	none, err := svc.GetScheduleGlobal("Engineering", "Account Manager", mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	require.NoError(t, err)
	assert.Empty(t, none["2026-03-02"])
}

func TestGetScheduleByTeamHolidayOverridesSessions(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	alice := seedStaff(t, db, "Alice", "Tan", "Engineering", "Developer")
	seedStaff(t, db, "Carol", "Lee", "Engineering", "Developer")

	seedSchedule(t, db, alice.StaffID, "2026-03-02", arrangementModel.SessionVacation)
	seedHoliday(t, db, "2026-03-02", "Founders Day")

	result, err := svc.GetScheduleByTeam(alice.StaffID, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	require.NoError(t, err)

	buckets := result["2026-03-02"]["Engineering"]["Developer"]
	assert.ElementsMatch(t, []string{"Alice Tan", "Carol Lee"}, buckets[ClassOfficialHoliday])
	assert.Empty(t, buckets[arrangementModel.SessionVacation])
	assert.Empty(t, buckets[ClassInOffice])
}

func TestGroupViewsUnknownStaff(t *testing.T) {
	db := newTestDB(t)
	svc := NewScheduleService(db)

	_, err := svc.GetScheduleByTeam(uuid.New(), mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = svc.GetScheduleByDepartment(uuid.New(), mustDate(t, "2026-03-02"), mustDate(t, "2026-03-02"))
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
