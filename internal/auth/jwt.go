package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the verified caller identity carried by an access token.
type Claims struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
}

// Verification failure causes, distinguishable by callers.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
	ErrInvalidUserID = errors.New("invalid user id in token")
)

func expiry() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("JWT_EXPIRY_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24 * 7
	}
	return time.Duration(hours) * time.Hour
}

// GenerateToken issues an access token for the user, signed with the secret.
func GenerateToken(secret string, userID uuid.UUID, isSuperAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":        userID.String(),
		"is_super_admin": isSuperAdmin,
		"exp":            time.Now().Add(expiry()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the token signature and expiry and extracts the claims.
func ParseToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || mapClaims["user_id"] == nil {
		return nil, ErrInvalidClaims
	}

	rawID, ok := mapClaims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidClaims
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	isSuperAdmin, _ := mapClaims["is_super_admin"].(bool)

	return &Claims{UserID: userID, IsSuperAdmin: isSuperAdmin}, nil
}
