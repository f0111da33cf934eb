package models

// NewUserForm holds the fields of the create-user form. It is a value type:
// the view updates it field by field and the store reads it by value at
// submit time, so there is no shared mutable state between view and store.
type NewUserForm struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
}

// IsZero reports whether no field has been entered yet.
func (f NewUserForm) IsZero() bool {
	return f == NewUserForm{}
}

// EditDraft is a mutable copy of one user's editable fields. It exists only
// while an edit is open and is discarded on cancel or successful commit,
// never partially applied. Password and status are deliberately absent: they
// are left to the backend on update.
type EditDraft struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// DraftOf seeds a draft from a user snapshot.
func DraftOf(u User) EditDraft {
	return EditDraft{
		Username:  u.Username,
		Email:     u.Email,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
	}
}
