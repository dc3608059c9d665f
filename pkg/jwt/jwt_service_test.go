package jwt

import (
	"testing"
	"time"

	"Smart-Fridge-Backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndReadToken(t *testing.T) {
	svc := NewJWTServiceWithSecret("test-secret")

	token := svc.GenerateTokenUser("5b7c8f0e-1111-4a2b-9c3d-123456789abc", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "5b7c8f0e-1111-4a2b-9c3d-123456789abc", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByToken_WrongSecret(t *testing.T) {
	token := NewJWTServiceWithSecret("one").GenerateTokenUser("user", domain.RoleUser)

	_, _, err := NewJWTServiceWithSecret("two").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_Expired(t *testing.T) {
	claims := jwtUserClaim{
		UserID: "user",
		Role:   domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("secret").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetUserIDByToken_Garbage(t *testing.T) {
	_, _, err := NewJWTServiceWithSecret("secret").GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetUserIDByToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwtUserClaim{UserID: "user", Role: domain.RoleUser}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = NewJWTServiceWithSecret("secret").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
