package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	token, err := m.Issue("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Minute).Issue("user-1", "alice")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	stale := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "user-1",
		"username": "alice",
		"iat":      time.Now().Add(-2 * time.Hour).Unix(),
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})
	token, err := stale.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestValidate_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":      "user-1",
		"username": "alice",
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewManager("test-secret", time.Minute).Validate(token)
	assert.Error(t, err)
}

func TestValidate_MissingIdentityClaims(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Minute).Unix(),
	})
	token, err := bare.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}
