package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef-test"

func TestNewTokenManager_RejectsWeakSecret(t *testing.T) {
	_, err := NewTokenManager("short", time.Hour)
	assert.ErrorIs(t, err, ErrWeakSecret)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	userID := uuid.New()
	token, expiresAt, err := m.Issue(userID, "a@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestTokenManager_Verify(t *testing.T) {
	m, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	other, err := NewTokenManager("another-secret-0123456789", time.Hour)
	require.NoError(t, err)

	expired, err := NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	foreign, _, err := other.Issue(uuid.New(), "a@x.com")
	require.NoError(t, err)
	old, _, err := expired.Issue(uuid.New(), "a@x.com")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: uuid.New()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"missing", "", ErrMissingToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"wrong secret", foreign, ErrInvalidToken},
		{"expired", old, ErrExpiredToken},
		{"alg none", unsigned, ErrInvalidToken},
		{"tampered", foreign[:len(foreign)-2] + strings.Repeat("x", 2), ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Verify(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
