// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"wfh_backend/internals/configs"
	staffModel "wfh_backend/internals/features/users/staff/model"
)

// AuthMiddleware verifies the bearer token and stores the caller's
// staff_id and role_id in locals for the handlers downstream.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or expired token")
		}

		staffID, err := extractStaffID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing staff ID")
		}
		roleID, err := extractRoleID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing role")
		}

		c.Locals("staff_id", staffID.String())
		c.Locals("role_id", roleID)

		if err := ensureStaffActive(db, staffID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Staff not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Your account has been deactivated")
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", errors.New("missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid Authorization header")
	}
	return parts[1], nil
}

func extractStaffID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["staff_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("staff_id claim missing")
	}
	return uuid.Parse(raw)
}

func extractRoleID(claims jwt.MapClaims) (int, error) {
	// JSON numbers decode as float64
	if f, ok := claims["role_id"].(float64); ok {
		return int(f), nil
	}
	return 0, errors.New("role_id claim missing")
}

func ensureStaffActive(db *gorm.DB, staffID uuid.UUID) error {
	var s staffModel.StaffModel
	if err := db.Select("staff_id", "is_active").
		Where("staff_id = ?", staffID).
		First(&s).Error; err != nil {
		return err
	}
	if !s.IsActive {
		return errors.New("staff inactive")
	}
	return nil
}
