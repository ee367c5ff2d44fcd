package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "+77001234567", "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "+77001234567", claims.Handle)
	assert.Equal(t, "client", claims.Role)
}

func TestValidate_Expired(t *testing.T) {
	svc := New("test-secret", -time.Minute)

	token, err := svc.GenerateToken(1, "+77000000000", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := New("secret-a", time.Hour)
	other := New("secret-b", time.Hour)

	token, err := svc.GenerateToken(1, "+77000000000", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	svc := New("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
