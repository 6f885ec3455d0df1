package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ams_backend/internals/constants"
	userModel "ams_backend/internals/features/users/user/model"
)

const accessTTL = 24 * time.Hour

// Claims is the access-token payload: subject id plus the display fields the
// frontend renders without a second request.
type Claims struct {
	UserID   string         `json:"id"`
	UserName string         `json:"user_name"`
	Role     constants.Role `json:"role"`
	Email    string         `json:"email"`
	jwt.RegisteredClaims
}

// CreateToken issues a signed HS256 access token for the user, expiring in
// 24 hours. There is no refresh mechanism; clients log in again after expiry.
func CreateToken(u userModel.UserModel, secret string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   u.ID.String(),
		UserName: u.UserName,
		Role:     u.Role,
		Email:    u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies signature and expiry and returns the claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
