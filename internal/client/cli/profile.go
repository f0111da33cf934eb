package cli

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dpetrovs/userdeck/internal/client/models"
	"github.com/dpetrovs/userdeck/internal/client/stores"
)

// Show prints the loaded profile, the notice slot and the upload selection.
func (a *App) Show(ctx context.Context) {
	switch a.profile.State() {
	case stores.LoadLoading:
		a.println("Loading profile...")
		return
	case stores.LoadNotFound:
		a.printNotice()
		a.println("User not found")
		return
	}

	user := a.profile.User()
	if user == nil {
		a.println("No profile loaded")
		return
	}

	a.printNotice()
	a.println("ID:         " + user.ID)
	a.println("Username:   " + user.Username)
	a.println("Email:      " + orDash(user.Email))
	a.println("First name: " + orDash(user.Firstname))
	a.println("Last name:  " + orDash(user.Lastname))
	a.println("Status:     " + string(user.DisplayStatus()))
	if url := a.profile.ImageURL(); url != "" {
		a.println("Image:      " + url)
	}

	if sel := a.profile.Upload().Selection(); sel != nil {
		if sel.Preview != nil {
			a.println(fmt.Sprintf("Selected:   %s (%dx%d, preview ready)", sel.Meta.Name, sel.Preview.Width, sel.Preview.Height))
		} else {
			a.println("Selected:   " + sel.Meta.Name + " (preview pending)")
		}
	}
}

// EditProfile prompts for the editable fields and saves them. On failure the
// profile stays in edit mode so the values can be corrected.
func (a *App) EditProfile(ctx context.Context) {
	user := a.profile.User()
	if user == nil {
		a.println("No profile loaded")
		return
	}

	a.profile.BeginEdit()

	firstname, err := GetTextDefault(a.reader, "First name", user.Firstname, a.out)
	if err != nil {
		a.profile.CancelEdit()
		return
	}
	lastname, err := GetTextDefault(a.reader, "Last name", user.Lastname, a.out)
	if err != nil {
		a.profile.CancelEdit()
		return
	}
	email, err := GetTextDefault(a.reader, "Email", user.Email, a.out)
	if err != nil {
		a.profile.CancelEdit()
		return
	}

	err = a.profile.Update(ctx, models.EditDraft{
		Username:  user.Username,
		Email:     email,
		Firstname: firstname,
		Lastname:  lastname,
	})
	if err != nil {
		a.printNotice()
		return
	}
	a.Show(ctx)
}

// Pick selects an image file from disk, validates it and waits for the
// preview to be ready before returning to the prompt.
func (a *App) Pick(ctx context.Context, path string) {
	if path == "" {
		a.println("Usage: pick <path>")
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		a.println("Cannot read file: " + err.Error())
		return
	}

	meta := models.FileMeta{
		Name: filepath.Base(path),
		MIME: sniffMIME(path, content),
		Size: int64(len(content)),
	}

	upload := a.profile.Upload()
	if err := upload.Select(meta, content); err != nil {
		a.printNotice()
		return
	}

	select {
	case <-upload.PreviewDone():
	case <-ctx.Done():
		return
	}
	a.Show(ctx)
}

// Upload commits the previewed image to the backend.
func (a *App) Upload(ctx context.Context) {
	_ = a.profile.Upload().Commit(ctx)
	a.Show(ctx)
}

// Drop discards the current selection and preview.
func (a *App) Drop(ctx context.Context) {
	a.profile.Upload().Cancel()
	a.println("Selection discarded")
}

// Back returns to the users screen.
func (a *App) Back(ctx context.Context) {
	a.screen = screenUsers
	a.List(ctx)
}

func (a *App) printNotice() {
	switch n := a.profile.Notice(); n.Kind {
	case stores.NoticeError:
		a.println("! " + n.Text)
	case stores.NoticeSuccess:
		a.println("* " + n.Text)
	}
}

// sniffMIME detects the content type from the file body, falling back to the
// extension when sniffing is inconclusive.
func sniffMIME(path string, content []byte) string {
	head := content
	if len(head) > 512 {
		head = head[:512]
	}
	detected := http.DetectContentType(head)
	if detected != "application/octet-stream" {
		return detected
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return detected
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
