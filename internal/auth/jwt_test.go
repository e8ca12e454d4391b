package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("screen-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "screen-1", claims.ScreenID)
	assert.Equal(t, "screen-1", claims.Subject)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	foreign, err := other.Generate("screen-1")
	require.NoError(t, err)

	expiring := NewTokenManager("test-secret", time.Minute)
	start := time.Now()
	expiring.now = func() time.Time { return start }
	expired, err := expiring.Generate("screen-2")
	require.NoError(t, err)
	expiring.now = func() time.Time { return start.Add(2 * time.Minute) }

	tests := []struct {
		name    string
		mgr     *TokenManager
		token   string
		wantErr error
	}{
		{name: "empty", mgr: m, token: "", wantErr: ErrMissingToken},
		{name: "garbage", mgr: m, token: "not.a.token", wantErr: ErrInvalidToken},
		{name: "wrong secret", mgr: m, token: foreign, wantErr: ErrInvalidToken},
		{name: "expired", mgr: expiring, token: expired, wantErr: ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.mgr.Validate(tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenManager_GenerateRequiresScreen(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	_, err := m.Generate("")
	require.Error(t, err)
}

func TestTokenManager_RenewedTokenOutlivesFirst(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	m := NewTokenManager("test-secret", 30*time.Minute).WithClock(func() time.Time { return now })

	first, err := m.Generate("screen-1")
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	renewed, err := m.Generate("screen-1")
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = m.Validate(first)
	require.ErrorIs(t, err, ErrInvalidToken)

	claims, err := m.Validate(renewed)
	require.NoError(t, err)
	assert.Equal(t, "screen-1", claims.ScreenID)
}
