// internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wfh_backend/internals/configs"
	staffModel "wfh_backend/internals/features/users/staff/model"
)

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrStaffNotFound      = errors.New("Staff not found")
	ErrInvalidResetToken  = errors.New("Invalid or expired reset token")
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = time.Hour
)

type AuthService struct{ DB *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func (s *AuthService) Login(email, password string) (string, string, *staffModel.StaffModel, error) {
	var staff staffModel.StaffModel
	if err := s.DB.Where("email = ? AND is_active = ?", email, true).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", nil, ErrInvalidCredentials
		}
		return "", "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	access, err := signToken(&staff, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return "", "", nil, err
	}
	refresh, err := signToken(&staff, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return "", "", nil, err
	}
	return access, refresh, &staff, nil
}

// ForgetPassword stores a one-hour reset token on the staff row. Mail
// delivery is handled elsewhere; the token is returned to the caller for
// hand-off.
func (s *AuthService) ForgetPassword(email string) (string, error) {
	var staff staffModel.StaffModel
	if err := s.DB.Where("email = ?", email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrStaffNotFound
		}
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	expiry := time.Now().Add(resetTokenTTL)

	if err := s.DB.Model(&staff).Updates(map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error; err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	var staff staffModel.StaffModel
	if err := s.DB.
		Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.DB.Model(&staff).Updates(map[string]interface{}{
		"password_hash":      string(hash),
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}).Error
}

func signToken(staff *staffModel.StaffModel, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"staff_id": staff.StaffID.String(),
		"role_id":  staff.RoleID,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
