package stores

import (
	"context"
	"sync"
	"testing"

	"github.com/dpetrovs/userdeck/internal/client/api"
	"github.com/dpetrovs/userdeck/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileLoad_Success(t *testing.T) {
	fc := newFakeClient()
	fc.GetRet = &models.User{ID: "u1", Username: "alice", ProfileImage: "/uploads/a.png"}

	p := NewProfile(fc, nil)
	require.NoError(t, p.Load(context.Background(), "u1"))

	assert.Equal(t, LoadReady, p.State())
	require.NotNil(t, p.User())
	assert.Equal(t, "alice", p.User().Username)
	assert.Equal(t, "http://backend/uploads/a.png", p.ImageURL())
}

func TestProfileLoad_NotFound(t *testing.T) {
	fc := newFakeClient()
	fc.GetErr = api.ErrNotFound

	p := NewProfile(fc, nil)
	require.Error(t, p.Load(context.Background(), "missing"))

	assert.Equal(t, LoadNotFound, p.State())
	assert.Nil(t, p.User())
}

func TestProfileLoad_RejectionPreservesLoadedUser(t *testing.T) {
	fc := newFakeClient()
	fc.GetRet = &models.User{ID: "u1", Username: "alice"}

	p := NewProfile(fc, nil)
	require.NoError(t, p.Load(context.Background(), "u1"))

	// A later load hits a backend rejection: the loaded user stays visible.
	fc.GetErr = &api.StatusError{Code: 500, Message: "boom"}
	fc.GetRet = nil
	require.Error(t, p.Load(context.Background(), "u1"))

	assert.Equal(t, LoadReady, p.State())
	require.NotNil(t, p.User())
	assert.Equal(t, "alice", p.User().Username)
	assert.Equal(t, NoticeError, p.Notice().Kind)
	assert.Equal(t, "boom", p.Notice().Text)
}

func TestProfileLoad_FailureWithoutPriorUser(t *testing.T) {
	fc := newFakeClient()
	fc.GetErr = api.ErrNetwork

	p := NewProfile(fc, nil)
	require.Error(t, p.Load(context.Background(), "u1"))

	assert.Equal(t, LoadNotFound, p.State())
	assert.Nil(t, p.User())
	assert.Equal(t, "Network error: Failed to load user", p.Notice().Text)
}

func TestProfileLoad_StaleIdResponseDiscarded(t *testing.T) {
	// Open u1, then quickly switch to u2 while u1 is still in flight. The
	// u1 response must not overwrite u2.
	fc := newFakeClient()
	u1Started := make(chan struct{})
	u1Gate := make(chan struct{})
	fc.GetHook = func(id string) (*models.User, error) {
		if id == "u1" {
			close(u1Started)
			<-u1Gate
			return &models.User{ID: "u1", Username: "stale"}, nil
		}
		return &models.User{ID: "u2", Username: "current"}, nil
	}

	p := NewProfile(fc, nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = p.Load(context.Background(), "u1")
	}()

	<-u1Started
	require.NoError(t, p.Load(context.Background(), "u2"))
	close(u1Gate)
	wg.Wait()

	require.NotNil(t, p.User())
	assert.Equal(t, "current", p.User().Username)
}

func TestProfileUpdate_SuccessExitsEditAndReloads(t *testing.T) {
	fc := newFakeClient()
	fc.GetRet = &models.User{ID: "u1", Username: "alice", Email: "old@example.com"}

	p := NewProfile(fc, nil)
	require.NoError(t, p.Load(context.Background(), "u1"))
	p.BeginEdit()

	draft := models.EditDraft{Username: "alice", Email: "new@example.com"}
	require.NoError(t, p.Update(context.Background(), draft))

	assert.False(t, p.Editing())
	assert.Equal(t, NoticeSuccess, p.Notice().Kind)
	assert.Equal(t, "new@example.com", fc.updated["u1"].Email)
	assert.Equal(t, 2, fc.getCount(), "success triggers a reload")
}

func TestProfileUpdate_FailureKeepsEditMode(t *testing.T) {
	fc := newFakeClient()
	fc.GetRet = &models.User{ID: "u1", Username: "alice"}

	p := NewProfile(fc, nil)
	require.NoError(t, p.Load(context.Background(), "u1"))
	p.BeginEdit()

	fc.UpdateErr = &api.StatusError{Code: 400, Message: "Invalid email"}
	require.Error(t, p.Update(context.Background(), models.EditDraft{Email: "nope"}))

	assert.True(t, p.Editing(), "edit mode stays open for correction")
	assert.Equal(t, NoticeError, p.Notice().Kind)
	assert.Equal(t, "Invalid email", p.Notice().Text)
	assert.Equal(t, 1, fc.getCount(), "no reload on failure")
}

func TestProfileNotice_SingleSlot(t *testing.T) {
	fc := newFakeClient()
	fc.GetRet = &models.User{ID: "u1", Username: "alice"}

	p := NewProfile(fc, nil)
	require.NoError(t, p.Load(context.Background(), "u1"))

	// A failed update after a successful one replaces the success notice;
	// both can never be presented at once.
	require.NoError(t, p.Update(context.Background(), models.EditDraft{Username: "alice"}))
	assert.Equal(t, NoticeSuccess, p.Notice().Kind)

	fc.UpdateErr = &api.StatusError{Code: 400, Message: "Invalid email"}
	require.Error(t, p.Update(context.Background(), models.EditDraft{Username: "alice"}))
	assert.Equal(t, NoticeError, p.Notice().Kind)
	assert.Equal(t, "Invalid email", p.Notice().Text)
}
