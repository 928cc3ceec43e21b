package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	model "wfh_backend/internals/features/wfh/holidays/model"
	helper "wfh_backend/internals/helpers"
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

	require.NoError(t, db.AutoMigrate(&model.OfficialHolidayModel{}))
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := helper.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCreateHoliday(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))

	created, err := svc.Create(mustDate(t, "2026-08-09"), "National Day", nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-09", created.HolidayDateKey())
	assert.Equal(t, "National Day", created.HolidayName)
	assert.NotEqual(t, uuid.Nil, created.HolidayID)
}

func TestCreateHolidayDuplicateDate(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))

	_, err := svc.Create(mustDate(t, "2026-08-09"), "National Day", nil)
	require.NoError(t, err)

	_, err = svc.Create(mustDate(t, "2026-08-09"), "Another Name", nil)
	assert.ErrorIs(t, err, ErrHolidayExists)
}

func TestGetByDateRange(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))

	_, err := svc.Create(mustDate(t, "2026-01-01"), "New Year", nil)
	require.NoError(t, err)
	_, err = svc.Create(mustDate(t, "2026-08-09"), "National Day", nil)
	require.NoError(t, err)
	_, err = svc.Create(mustDate(t, "2026-12-25"), "Christmas", nil)
	require.NoError(t, err)

	holidays, err := svc.GetByDateRange(mustDate(t, "2026-06-01"), mustDate(t, "2026-12-31"))
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	assert.Equal(t, "National Day", holidays[0].HolidayName)
	assert.Equal(t, "Christmas", holidays[1].HolidayName)
}

func TestUpdateHoliday(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))

	created, err := svc.Create(mustDate(t, "2026-08-09"), "National Day", nil)
	require.NoError(t, err)

	newName := "National Day (Observed)"
	newDate := mustDate(t, "2026-08-10")
	updated, err := svc.Update(created.HolidayID, &newDate, &newName, nil)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-10", updated.HolidayDateKey())
	assert.Equal(t, newName, updated.HolidayName)
}

func TestUpdateHolidayDateCollision(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))

	_, err := svc.Create(mustDate(t, "2026-01-01"), "New Year", nil)
	require.NoError(t, err)
	second, err := svc.Create(mustDate(t, "2026-08-09"), "National Day", nil)
	require.NoError(t, err)

	taken := mustDate(t, "2026-01-01")
	_, err = svc.Update(second.HolidayID, &taken, nil, nil)
	assert.ErrorIs(t, err, ErrHolidayExists)

	// Re-saving a holiday onto its own date is not a collision.
	own := mustDate(t, "2026-08-09")
	_, err = svc.Update(second.HolidayID, &own, nil, nil)
	assert.NoError(t, err)
}

func TestDeleteHoliday(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))

	created, err := svc.Create(mustDate(t, "2026-08-09"), "National Day", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.HolidayID))
	assert.ErrorIs(t, svc.Delete(created.HolidayID), ErrHolidayNotFound)

	holidays, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestUpdateHolidayNotFound(t *testing.T) {
	svc := NewHolidayService(newTestDB(t))
	_, err := svc.Update(uuid.New(), nil, nil, nil)
	assert.ErrorIs(t, err, ErrHolidayNotFound)
}
