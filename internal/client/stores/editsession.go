package stores

import (
	"sync"

	"github.com/dpetrovs/userdeck/internal/client/models"
)

// EditSession holds the draft for one in-place edit in the directory. It is
// a thin wrapper around the snapshot and its editable fields: the view reads
// and writes fields here, and the Directory performs the commit. Exactly one
// session exists per directory at a time.
type EditSession struct {
	user models.User

	mu    sync.Mutex
	draft models.EditDraft
}

func newEditSession(u models.User) *EditSession {
	return &EditSession{user: u, draft: models.DraftOf(u)}
}

// User returns the snapshot the session was opened for.
func (s *EditSession) User() models.User {
	return s.user
}

// Draft returns the draft by value, read at commit time.
func (s *EditSession) Draft() models.EditDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *EditSession) SetUsername(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Username = v
}

func (s *EditSession) SetEmail(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Email = v
}

func (s *EditSession) SetFirstname(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Firstname = v
}

func (s *EditSession) SetLastname(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Lastname = v
}
