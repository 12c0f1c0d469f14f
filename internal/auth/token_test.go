package auth

import (
	"testing"
	"time"

	"recipebox/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

func TestTokenService_IssueAndVerify(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_IssueEmptySecret(t *testing.T) {
	t.Parallel()
	svc := NewTokenService("")

	_, err := svc.Issue(1)
	assert.Error(t, err)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	t.Parallel()
	svc := NewTokenServiceWithLifetime(testSecret, -time.Hour)

	token, err := svc.Issue(7)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeTokenExpired, appErr.Code)
	assert.Equal(t, "Token expired", appErr.Message)
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewTokenService(testSecret).Issue(7)
	require.NoError(t, err)

	_, err = NewTokenService("a-completely-different-signing-secret").Verify(token)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeInvalidToken, appErr.Code)
}

func TestTokenService_VerifyGarbage(t *testing.T) {
	t.Parallel()
	svc := NewTokenService(testSecret)

	for _, tok := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := svc.Verify(tok)
		var appErr *models.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, models.CodeInvalidToken, appErr.Code)
		}
	}
}

func TestTokenService_VerifyWrongIssuer(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"sub": "7",
		"iss": "someone-else",
		"aud": Audience,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(token)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeInvalidToken, appErr.Code)
}

func TestTokenService_VerifyWrongAudience(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"sub": "7",
		"iss": Issuer,
		"aud": "another-client",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(token)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeInvalidToken, appErr.Code)
}

func TestTokenService_VerifyRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"sub": "7",
		"iss": Issuer,
		"aud": Audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(token)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeInvalidToken, appErr.Code)
}

func TestTokenService_VerifyZeroSubject(t *testing.T) {
	t.Parallel()

	claims := jwt.MapClaims{
		"sub": "0",
		"iss": Issuer,
		"aud": Audience,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(token)
	assert.Error(t, err)
}
