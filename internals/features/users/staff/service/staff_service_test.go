package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	dto "wfh_backend/internals/features/users/staff/dto"
	staffModel "wfh_backend/internals/features/users/staff/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&staffModel.StaffModel{}))
	return db
}

func createReq(email string) *dto.CreateStaffRequest {
	return &dto.CreateStaffRequest{
		StaffFName: "Alice",
		StaffLName: "Tan",
		Dept:       "Engineering",
		Position:   "Developer",
		Country:    "Singapore",
		Email:      email,
		Password:   "s3cret-pass",
		RoleID:     2,
	}
}

func TestCreateStaff(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	staff, err := svc.CreateStaff(createReq("Alice.Tan@Test.Local"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, staff.StaffID)
	assert.Equal(t, "alice.tan@test.local", staff.Email) // normalized
	assert.True(t, staff.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte("s3cret-pass")))
}

func TestCreateStaffDuplicateEmail(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	_, err := svc.CreateStaff(createReq("alice@test.local"))
	require.NoError(t, err)

	_, err = svc.CreateStaff(createReq("ALICE@test.local"))
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateStaffWithManager(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	manager, err := svc.CreateStaff(createReq("manager@test.local"))
	require.NoError(t, err)

	req := createReq("report@test.local")
	managerID := manager.StaffID.String()
	req.ReportingManagerID = &managerID

	staff, err := svc.CreateStaff(req)
	require.NoError(t, err)
	require.NotNil(t, staff.ReportingManagerID)
	assert.Equal(t, manager.StaffID, *staff.ReportingManagerID)
}

func TestCreateStaffUnknownManager(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	req := createReq("report@test.local")
	ghost := uuid.NewString()
	req.ReportingManagerID = &ghost

	_, err := svc.CreateStaff(req)
	assert.ErrorIs(t, err, ErrManagerNotFound)
}

func TestListTeamMembers(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	manager, err := svc.CreateStaff(createReq("manager@test.local"))
	require.NoError(t, err)
	managerID := manager.StaffID.String()

	for _, email := range []string{"a@test.local", "b@test.local"} {
		req := createReq(email)
		req.ReportingManagerID = &managerID
		_, err := svc.CreateStaff(req)
		require.NoError(t, err)
	}
	_, err = svc.CreateStaff(createReq("loner@test.local"))
	require.NoError(t, err)

	team, err := svc.ListTeamMembers(manager.StaffID)
	require.NoError(t, err)
	assert.Len(t, team, 2)
}

func TestUpdateStaff(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	staff, err := svc.CreateStaff(createReq("alice@test.local"))
	require.NoError(t, err)

	newDept := "Sales"
	newRole := 3
	updated, err := svc.UpdateStaff(staff.StaffID, &dto.UpdateStaffRequest{
		Dept:   &newDept,
		RoleID: &newRole,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sales", updated.Dept)
	assert.Equal(t, 3, updated.RoleID)
	assert.Equal(t, "Alice", updated.StaffFName) // untouched fields survive
}

func TestDeactivateStaff(t *testing.T) {
	svc := NewStaffService(newTestDB(t))

	staff, err := svc.CreateStaff(createReq("alice@test.local"))
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateStaff(staff.StaffID))

	got, err := svc.GetStaffByID(staff.StaffID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	active, err := svc.ListStaff("", true)
	require.NoError(t, err)
	assert.Empty(t, active)

	assert.ErrorIs(t, svc.DeactivateStaff(uuid.New()), ErrStaffNotFound)
}

func TestGetStaffByIDNotFound(t *testing.T) {
	svc := NewStaffService(newTestDB(t))
	_, err := svc.GetStaffByID(uuid.New())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
