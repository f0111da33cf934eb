package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dpetrovs/userdeck/internal/client/models"
)

// List prints the current page of the directory, plus the error slot when it
// is set.
func (a *App) List(ctx context.Context) {
	if msg := a.directory.Err(); msg != "" {
		a.println("! " + msg)
	}

	users := a.directory.Users()
	if len(users) == 0 {
		a.println("(no users on this page)")
	}
	for n, u := range users {
		name := u.Firstname
		if u.Lastname != "" {
			name += " " + u.Lastname
		}
		if name == "" {
			name = "-"
		}
		a.println(fmt.Sprintf("%2d. %-20s %-30s %-20s [%s]", n+1, u.Username, u.Email, name, u.DisplayStatus()))
	}
	a.println(fmt.Sprintf("-- page %d --", a.directory.Page()))
}

// Next loads the following page. There is no upper bound: the backend gives
// no total count, so the next page is always offered.
func (a *App) Next(ctx context.Context) {
	_ = a.directory.SetPage(ctx, 1)
	a.List(ctx)
}

// Prev loads the previous page, clamping at page 1.
func (a *App) Prev(ctx context.Context) {
	_ = a.directory.SetPage(ctx, -1)
	a.List(ctx)
}

// Add prompts for the new-user fields and submits the form. The password is
// read without echo and never printed back. On rejection the entered values
// stay in the form for the next attempt.
func (a *App) Add(ctx context.Context) {
	form := a.directory.Form()

	username, err := GetTextDefault(a.reader, "Username *", form.Username, a.out)
	if err != nil {
		return
	}
	email, err := GetTextDefault(a.reader, "Email *", form.Email, a.out)
	if err != nil {
		return
	}
	firstname, err := GetTextDefault(a.reader, "First name", form.Firstname, a.out)
	if err != nil {
		return
	}
	lastname, err := GetTextDefault(a.reader, "Last name", form.Lastname, a.out)
	if err != nil {
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return
	}

	a.directory.SetForm(models.NewUserForm{
		Username:  username,
		Email:     email,
		Password:  string(password),
		Firstname: firstname,
		Lastname:  lastname,
	})

	if err := a.directory.Create(ctx); err != nil {
		a.println("! " + a.directory.Err())
		return
	}
	a.println("User created")
	a.List(ctx)
}

// Edit opens an edit session for a row of the current page, prompts for each
// editable field (Enter keeps the shown value) and commits the draft. On
// failure the session stays open with the entered values.
func (a *App) Edit(ctx context.Context, arg string) {
	user, ok := a.userAt(arg)
	if !ok {
		return
	}

	session := a.directory.BeginEdit(user)
	draft := session.Draft()

	username, err := GetTextDefault(a.reader, "Username", draft.Username, a.out)
	if err != nil {
		a.directory.CancelEdit()
		return
	}
	session.SetUsername(username)

	email, err := GetTextDefault(a.reader, "Email", draft.Email, a.out)
	if err != nil {
		a.directory.CancelEdit()
		return
	}
	session.SetEmail(email)

	firstname, err := GetTextDefault(a.reader, "First name", draft.Firstname, a.out)
	if err != nil {
		a.directory.CancelEdit()
		return
	}
	session.SetFirstname(firstname)

	lastname, err := GetTextDefault(a.reader, "Last name", draft.Lastname, a.out)
	if err != nil {
		a.directory.CancelEdit()
		return
	}
	session.SetLastname(lastname)

	if err := a.directory.CommitEdit(ctx); err != nil {
		// Draft stays open; the user can run edit again to correct it.
		a.println("! " + a.directory.Err())
		return
	}
	a.println("User updated")
	a.List(ctx)
}

// Delete removes a row of the current page after confirmation.
func (a *App) Delete(ctx context.Context, arg string) {
	user, ok := a.userAt(arg)
	if !ok {
		return
	}
	if err := a.directory.Remove(ctx, user.ID); err != nil {
		if msg := a.directory.Err(); msg != "" {
			a.println("! " + msg)
		}
		return
	}
	a.List(ctx)
}

// Open switches to the profile screen for a row number of the current page
// or a raw user id.
func (a *App) Open(ctx context.Context, arg string) {
	if arg == "" {
		a.println("Usage: open <row|id>")
		return
	}

	id := arg
	if user, ok := a.rowAt(arg); ok {
		id = user.ID
	}

	_ = a.profile.Load(ctx, id)
	a.screen = screenProfile
	a.Show(ctx)
}

// userAt resolves a row-number argument against the current page and prints
// usage help when it does not resolve.
func (a *App) userAt(arg string) (models.User, bool) {
	user, ok := a.rowAt(arg)
	if !ok {
		a.println("Expected a row number from the current page")
	}
	return user, ok
}

func (a *App) rowAt(arg string) (models.User, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return models.User{}, false
	}
	users := a.directory.Users()
	if n < 1 || n > len(users) {
		return models.User{}, false
	}
	return users[n-1], true
}
