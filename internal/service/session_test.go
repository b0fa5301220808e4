package service

import (
	"strings"
	"testing"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestLoginAcceptsSentinelPassword(t *testing.T) {
	svc := NewSessionService(newTestStore(t), nil)

	user, err := svc.Login("sasha", "password")
	require.NoError(t, err)

	assert.Equal(t, "sasha", user.Username)
	assert.True(t, strings.HasPrefix(user.ID, "user-"))
	assert.True(t, svc.IsAuthenticated())
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewSessionService(newTestStore(t), nil)

	_, err := svc.Login("sasha", "hunter2")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, svc.IsAuthenticated())
}

func TestFailedLoginLeavesPriorSessionUntouched(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, nil)

	prior, err := svc.Login("sasha", "password")
	require.NoError(t, err)

	_, err = svc.Login("mallory", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	current, ok := svc.User()
	require.True(t, ok)
	assert.Equal(t, prior, current)

	persisted, ok := st.GetUser()
	require.True(t, ok)
	assert.Equal(t, prior, persisted)
}

func TestLoginOverwritesPriorSession(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, nil)

	_, err := svc.Login("first", "password")
	require.NoError(t, err)

	second, err := svc.Login("second", "password")
	require.NoError(t, err)

	persisted, ok := st.GetUser()
	require.True(t, ok)
	assert.Equal(t, second, persisted)
}

func TestRestoreSession(t *testing.T) {
	st := newTestStore(t)

	first := NewSessionService(st, nil)
	user, err := first.Login("sasha", "password")
	require.NoError(t, err)

	// A fresh service over the same store sees the persisted session
	second := NewSessionService(st, nil)
	require.True(t, second.Restore())

	restored, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, user, restored)
}

func TestRestoreWithoutSession(t *testing.T) {
	svc := NewSessionService(newTestStore(t), nil)
	assert.False(t, svc.Restore())
	assert.False(t, svc.IsAuthenticated())
}

func TestLogoutClearsSession(t *testing.T) {
	st := newTestStore(t)
	svc := NewSessionService(st, nil)

	_, err := svc.Login("sasha", "password")
	require.NoError(t, err)

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())

	_, ok := st.GetUser()
	assert.False(t, ok)
}
