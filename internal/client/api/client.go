package api

import (
	"context"

	"github.com/dpetrovs/userdeck/internal/client/models"
)

// Client is the backend surface the stores talk to. The contract is fixed:
// plain JSON bodies, no envelope on collection responses, error bodies of the
// form {"message": "..."} on non-2xx statuses.
type Client interface {
	ListUsers(ctx context.Context, page int) ([]models.User, error)
	CreateUser(ctx context.Context, form models.NewUserForm) (*models.User, error)
	UpdateUser(ctx context.Context, id string, draft models.EditDraft) error
	DeleteUser(ctx context.Context, id string) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	UploadProfileImage(ctx context.Context, id string, filename string, content []byte) error

	// ImageURL resolves a relative profileImage path against the backend origin.
	ImageURL(path string) string
}
