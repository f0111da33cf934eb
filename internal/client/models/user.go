// Package models defines the user records and transient form types exchanged
// between the stores and the backend API.
package models

// Status classifies a user account state. The backend assigns ACTIVE when a
// record is created without an explicit status.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// User is one identity record as served by the backend. ID is assigned by the
// backend and immutable. Password is write-only: it is sent on creation and
// never returned, so it is omitted from responses.
type User struct {
	ID           string `json:"_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	Firstname    string `json:"firstname,omitempty"`
	Lastname     string `json:"lastname,omitempty"`
	Status       Status `json:"status,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// DisplayStatus returns the effective status, defaulting to ACTIVE when the
// backend omitted the field.
func (u User) DisplayStatus() Status {
	if u.Status == "" {
		return StatusActive
	}
	return u.Status
}

// UserPage is one page of the directory listing together with the 1-based
// page number that produced it. The backend exposes no total count, so a page
// carries no has-more signal.
type UserPage struct {
	Users []User
	Page  int
}
