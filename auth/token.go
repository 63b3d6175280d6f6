package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront-api/models"
)

var (
	ErrMissingSecret = errors.New("JWT_SECRET is not configured")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

const defaultTokenTTL = 24 * time.Hour

func tokenTTL() time.Duration {
	if hours, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS")); err == nil && hours > 0 {
		return time.Duration(hours) * time.Hour
	}
	return defaultTokenTTL
}

// IssueToken signs an HMAC token carrying the user id and role.
func IssueToken(user *models.User, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the embedded
// user id and role claims.
func ParseToken(tokenString, secret string) (userID, role string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}
	role, _ = claims["role"].(string)
	return userID, role, nil
}
