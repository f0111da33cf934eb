package stores

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dpetrovs/userdeck/internal/client/api"
	"github.com/dpetrovs/userdeck/internal/client/models"
	"github.com/dpetrovs/userdeck/internal/client/validation"
	"github.com/dpetrovs/userdeck/internal/logging"
)

// Generic messages shown when the backend supplies none.
const (
	msgLoadingFailed = "Loading failed"
	msgCreateFailed  = "Failed to create user"
	msgUpdateFailed  = "Failed to update user"
	msgDeleteFailed  = "Failed to delete user"
	msgNetworkError  = "Network error"
)

var ErrAborted = errors.New("aborted by user")

// Directory owns the paginated user listing and the operations that mutate
// it. The backend is the source of truth: every successful mutation reloads
// the current page instead of applying a local delta. At most one edit
// session is open at a time.
//
// A monotonic load sequence guards against out-of-order responses: when a
// newer Load has been issued, the result of an older one is discarded.
type Directory struct {
	client  api.Client
	confirm func(prompt string) bool
	log     logging.Logger

	mu      sync.Mutex
	page    models.UserPage
	err     string
	form    models.NewUserForm
	edit    *EditSession
	loadSeq uint64
}

// NewDirectory builds a directory store. confirm is asked before any delete;
// a nil confirm rejects every delete.
func NewDirectory(client api.Client, confirm func(prompt string) bool, log logging.Logger) *Directory {
	if log == nil {
		log = logging.NewNop()
	}
	if confirm == nil {
		confirm = func(string) bool { return false }
	}
	return &Directory{
		client:  client,
		confirm: confirm,
		log:     log.With("store", "directory"),
		page:    models.UserPage{Page: 1},
	}
}

// Load fetches the given page and replaces the listing. Pages below 1 are
// clamped to 1. A stale response, one issued before a newer Load, never
// overwrites the newer state.
func (s *Directory) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	s.mu.Lock()
	s.loadSeq++
	seq := s.loadSeq
	s.mu.Unlock()

	users, err := s.client.ListUsers(ctx, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.loadSeq {
		// A newer load was issued while this one was in flight.
		s.log.Debug(ctx, "discarding stale page load", "page", page)
		return nil
	}
	if err != nil {
		s.log.Error(ctx, "page load failed", "page", page, "err", err)
		s.err = msgLoadingFailed
		return err
	}
	s.page = models.UserPage{Users: users, Page: page}
	s.err = ""
	return nil
}

// Create validates the retained form and, if it passes, posts it to the
// backend. A validation failure sets the error slot and issues no request.
// On backend rejection the form contents are left untouched for correction;
// on success the form is cleared and the current page reloaded.
func (s *Directory) Create(ctx context.Context) error {
	s.mu.Lock()
	form := s.form
	s.err = ""
	s.mu.Unlock()

	if err := validation.ValidateNewUserForm(form); err != nil {
		s.setErr(err.Error())
		return err
	}

	if _, err := s.client.CreateUser(ctx, form); err != nil {
		s.setErr(s.rejectionMessage(err, msgCreateFailed))
		return err
	}

	s.mu.Lock()
	s.form = models.NewUserForm{}
	page := s.page.Page
	s.mu.Unlock()

	return s.Load(ctx, page)
}

// Remove asks for confirmation and deletes the user, then reloads the
// current page. Without confirmation no request is issued.
func (s *Directory) Remove(ctx context.Context, id string) error {
	if !s.confirm("Delete this user?") {
		return ErrAborted
	}

	if err := s.client.DeleteUser(ctx, id); err != nil {
		s.setErr(s.rejectionMessage(err, msgDeleteFailed))
		return err
	}
	return s.Load(ctx, s.Page())
}

// BeginEdit opens an edit session for the given user, replacing any prior
// session.
func (s *Directory) BeginEdit(u models.User) *EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = newEditSession(u)
	return s.edit
}

// CancelEdit discards the open edit session, if any, without applying the
// draft.
func (s *Directory) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = nil
}

// CommitEdit sends the open draft as a full replace of the editable fields.
// On failure the session stays open with its last-entered values; on success
// it is closed and the current page reloaded.
func (s *Directory) CommitEdit(ctx context.Context) error {
	s.mu.Lock()
	edit := s.edit
	s.err = ""
	s.mu.Unlock()

	if edit == nil {
		return fmt.Errorf("no edit in progress")
	}

	if err := s.client.UpdateUser(ctx, edit.User().ID, edit.Draft()); err != nil {
		s.setErr(s.rejectionMessage(err, msgUpdateFailed))
		return err
	}

	s.mu.Lock()
	s.edit = nil
	page := s.page.Page
	s.mu.Unlock()

	return s.Load(ctx, page)
}

// SetPage moves delta pages relative to the current one, clamping at page 1,
// and loads the target page. No upper bound exists client-side because the
// backend exposes no total count.
func (s *Directory) SetPage(ctx context.Context, delta int) error {
	s.mu.Lock()
	target := s.page.Page + delta
	s.mu.Unlock()
	return s.Load(ctx, target)
}

// Users returns a copy of the currently displayed page rows.
func (s *Directory) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, len(s.page.Users))
	copy(out, s.page.Users)
	return out
}

// Page returns the 1-based page number of the current listing.
func (s *Directory) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Page
}

// Err returns the current error message, empty when none.
func (s *Directory) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Form returns the retained create-user form by value.
func (s *Directory) Form() models.NewUserForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetForm replaces the retained create-user form.
func (s *Directory) SetForm(f models.NewUserForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// Editing returns the open edit session, nil when none.
func (s *Directory) Editing() *EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edit
}

func (s *Directory) setErr(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// rejectionMessage picks the user-facing text for a failed request: the
// backend-provided message when present, the per-operation fallback for
// rejections without one, and a generic network message for transport
// failures.
func (s *Directory) rejectionMessage(err error, fallback string) string {
	if errors.Is(err, api.ErrNetwork) {
		return msgNetworkError
	}
	return api.RejectionMessage(err, fallback)
}
