package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"wfh_backend/internals/configs"
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

func seedStaff(t *testing.T, db *gorm.DB, email, password string) *staffModel.StaffModel {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	staff := &staffModel.StaffModel{
		StaffFName:   "Alice",
		StaffLName:   "Tan",
		Dept:         "Engineering",
		Position:     "Developer",
		Country:      "Singapore",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       2,
		IsActive:     true,
	}
	require.NoError(t, db.Create(staff).Error)
	return staff
}

func withTestSecrets(t *testing.T) {
	t.Helper()
	prevAccess, prevRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = prevAccess
		configs.JWTRefreshSecret = prevRefresh
	})
}

func TestLogin(t *testing.T) {
	withTestSecrets(t)
	db := newTestDB(t)
	svc := NewAuthService(db)
	staff := seedStaff(t, db, "alice@test.local", "s3cret-pass")

	access, refresh, got, err := svc.Login("alice@test.local", "s3cret-pass")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, staff.StaffID, got.StaffID)
	assert.NotEmpty(t, refresh)

	parsed, err := jwt.Parse(access, func(token *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, staff.StaffID.String(), claims["staff_id"])
	assert.EqualValues(t, staff.RoleID, claims["role_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	withTestSecrets(t)
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedStaff(t, db, "alice@test.local", "s3cret-pass")

	_, _, _, err := svc.Login("alice@test.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login("nobody@test.local", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDeactivatedStaff(t *testing.T) {
	withTestSecrets(t)
	db := newTestDB(t)
	svc := NewAuthService(db)
	staff := seedStaff(t, db, "alice@test.local", "s3cret-pass")
	require.NoError(t, db.Model(staff).Update("is_active", false).Error)

	_, _, _, err := svc.Login("alice@test.local", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordResetFlow(t *testing.T) {
	withTestSecrets(t)
	db := newTestDB(t)
	svc := NewAuthService(db)
	seedStaff(t, db, "alice@test.local", "s3cret-pass")

	token, err := svc.ForgetPassword("alice@test.local")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.ResetPassword(token, "brand-new-pass"))

	// Old password is gone, new one works, token is single-use.
	_, _, _, err = svc.Login("alice@test.local", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login("alice@test.local", "brand-new-pass")
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(token, "another-pass"), ErrInvalidResetToken)
}

func TestForgetPasswordUnknownEmail(t *testing.T) {
	withTestSecrets(t)
	svc := NewAuthService(newTestDB(t))

	_, err := svc.ForgetPassword("ghost@test.local")
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestResetPasswordInvalidToken(t *testing.T) {
	withTestSecrets(t)
	svc := NewAuthService(newTestDB(t))

	err := svc.ResetPassword(uuid.NewString(), "whatever")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
