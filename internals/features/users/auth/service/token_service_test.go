package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ams_backend/internals/constants"
	userModel "ams_backend/internals/features/users/user/model"
)

const testSecret = "test-secret"

func testUser() userModel.UserModel {
	return userModel.UserModel{
		ID:       uuid.New(),
		UserName: "Jamie",
		Email:    "jamie@example.com",
		Role:     constants.RoleTeacher,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	u := testUser()

	token, err := CreateToken(u, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, u.UserName, claims.UserName)
	assert.Equal(t, constants.RoleTeacher, claims.Role)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.ID.String(), claims.Subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := CreateToken(testUser(), testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "another-secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	u := testUser()
	past := time.Now().UTC().Add(-48 * time.Hour)
	claims := Claims{
		UserID: u.ID.String(),
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseTokenRejectsNonHMAC(t *testing.T) {
	// alg=none tokens carry no signature and must never verify.
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.Error(t, err)
}
