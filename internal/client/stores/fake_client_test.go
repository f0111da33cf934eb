package stores

import (
	"context"
	"sync"

	"github.com/dpetrovs/userdeck/internal/client/models"
)

// fakeClient implements api.Client for store unit tests. Hooks, when set,
// take precedence over the canned results so tests can block or sequence
// individual calls.
type fakeClient struct {
	mu sync.Mutex

	ListHook func(page int) ([]models.User, error)
	ListRet  map[int][]models.User
	ListErr  error
	listed   []int

	CreateErr error
	created   []models.NewUserForm

	UpdateErr error
	updated   map[string]models.EditDraft

	DeleteErr error
	deleted   []string

	GetHook func(id string) (*models.User, error)
	GetRet  *models.User
	GetErr  error
	gotten  []string

	UploadErr error
	uploaded  []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		ListRet: map[int][]models.User{},
		updated: map[string]models.EditDraft{},
	}
}

func (f *fakeClient) ListUsers(ctx context.Context, page int) ([]models.User, error) {
	f.mu.Lock()
	f.listed = append(f.listed, page)
	hook := f.ListHook
	f.mu.Unlock()

	if hook != nil {
		return hook(page)
	}
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	return f.ListRet[page], nil
}

func (f *fakeClient) CreateUser(ctx context.Context, form models.NewUserForm) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.created = append(f.created, form)
	return &models.User{ID: "new-id", Username: form.Username, Email: form.Email, Status: models.StatusActive}, nil
}

func (f *fakeClient) UpdateUser(ctx context.Context, id string, draft models.EditDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.updated[id] = draft
	return nil
}

func (f *fakeClient) DeleteUser(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	f.gotten = append(f.gotten, id)
	hook := f.GetHook
	f.mu.Unlock()

	if hook != nil {
		return hook(id)
	}
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	if f.GetRet == nil {
		return nil, nil
	}
	u := *f.GetRet
	return &u, nil
}

func (f *fakeClient) UploadProfileImage(ctx context.Context, id string, filename string, content []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UploadErr != nil {
		return f.UploadErr
	}
	f.uploaded = append(f.uploaded, id+"/"+filename)
	return nil
}

func (f *fakeClient) ImageURL(path string) string {
	return "http://backend" + path
}

func (f *fakeClient) listedPages() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]int, len(f.listed))
	copy(out, f.listed)
	return out
}

func (f *fakeClient) getCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.gotten)
}
