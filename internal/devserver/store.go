package devserver

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// pageSize matches the production backend's fixed page length.
const pageSize = 10

var (
	errNotFound  = errors.New("User not found")
	errDuplicate = errors.New("Username or email already exists")
)

// user is the backend-side record. Password is stored to honor the write-only
// contract: accepted on creation, never serialized back.
type user struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"-"`
	Firstname    string `json:"firstname,omitempty"`
	Lastname     string `json:"lastname,omitempty"`
	Status       string `json:"status,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// userStore is an in-memory user table preserving insertion order.
type userStore struct {
	mu    sync.Mutex
	byID  map[string]*user
	order []string
}

func newUserStore() *userStore {
	return &userStore{byID: make(map[string]*user)}
}

// list returns the 1-based page of users. Pages past the end are empty, not
// errors, matching the contract's lack of a total count.
func (s *userStore) list(page int) []user {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(s.order) {
		return []user{}
	}
	end := start + pageSize
	if end > len(s.order) {
		end = len(s.order)
	}

	out := make([]user, 0, end-start)
	for _, id := range s.order[start:end] {
		out = append(out, *s.byID[id])
	}
	return out
}

func (s *userStore) create(u user) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byID {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return user{}, errDuplicate
		}
	}

	u.ID = uuid.NewString()
	if u.Status == "" {
		u.Status = "ACTIVE"
	}
	s.byID[u.ID] = &u
	s.order = append(s.order, u.ID)
	return u, nil
}

func (s *userStore) get(id string) (user, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return user{}, errNotFound
	}
	return *u, nil
}

// update replaces the editable fields. Password and status are untouched.
func (s *userStore) update(id, username, email, firstname, lastname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return errNotFound
	}
	if username != "" {
		u.Username = username
	}
	if email != "" {
		u.Email = email
	}
	u.Firstname = firstname
	u.Lastname = lastname
	return nil
}

func (s *userStore) setImage(id, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[id]
	if !ok {
		return errNotFound
	}
	u.ProfileImage = path
	return nil
}

func (s *userStore) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return errNotFound
	}
	delete(s.byID, id)
	for n, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:n], s.order[n+1:]...)
			break
		}
	}
	return nil
}
