package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/dpetrovs/userdeck/internal/client/api"
	"github.com/dpetrovs/userdeck/internal/client/models"
	"github.com/dpetrovs/userdeck/internal/logging"
)

// LoadState is the lifecycle of the profile screen's data. Using one tagged
// state instead of independent loading/error booleans keeps combinations
// like "loaded and not found" unrepresentable.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadReady
	LoadNotFound
)

const (
	msgLoadProfileFailed   = "Failed to load user"
	msgLoadProfileNetwork  = "Network error: Failed to load user"
	msgProfileUpdateFailed = "Failed to update profile"
	msgProfileUpdated      = "Profile updated successfully!"
)

// Profile owns a single user's profile: loading it, updating its fields and,
// through the owned Upload session, replacing its image. Mutation outcomes
// land in a single notice slot.
//
// Loads carry their own staleness sequence so that rapid id changes cannot
// let an older response overwrite a newer one.
type Profile struct {
	client api.Client
	log    logging.Logger

	mu      sync.Mutex
	id      string
	state   LoadState
	user    *models.User
	notice  Notice
	editing bool
	loadSeq uint64

	upload *Upload
}

func NewProfile(client api.Client, log logging.Logger) *Profile {
	if log == nil {
		log = logging.NewNop()
	}
	p := &Profile{
		client: client,
		log:    log.With("store", "profile"),
	}
	p.upload = newUpload(client, p, log)
	return p
}

// Load fetches the user with the given id. A 404, or any failure before a
// user was ever loaded, ends in NotFound with no user. A rejection while a
// user is already displayed keeps the stale user visible and reports the
// error in the notice slot.
func (p *Profile) Load(ctx context.Context, id string) error {
	p.mu.Lock()
	p.id = id
	p.loadSeq++
	seq := p.loadSeq
	p.state = LoadLoading
	p.mu.Unlock()

	user, err := p.client.GetUser(ctx, id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.loadSeq {
		p.log.Debug(ctx, "discarding stale profile load", "id", id)
		return nil
	}
	if err != nil {
		p.log.Error(ctx, "profile load failed", "id", id, "err", err)
		switch {
		case errors.Is(err, api.ErrNotFound):
			p.user = nil
			p.state = LoadNotFound
		case p.user == nil:
			p.state = LoadNotFound
			p.notice = errNotice(p.loadFailureMessage(err))
		default:
			// Keep showing the previously loaded user.
			p.state = LoadReady
			p.notice = errNotice(p.loadFailureMessage(err))
		}
		return err
	}
	p.user = user
	p.state = LoadReady
	return nil
}

// Update sends the draft fields as a full replace of the profile. Failure
// keeps edit mode open; success exits it, records a success notice and
// reloads the user from the backend.
func (p *Profile) Update(ctx context.Context, draft models.EditDraft) error {
	p.mu.Lock()
	id := p.id
	p.notice = Notice{}
	p.mu.Unlock()

	if err := p.client.UpdateUser(ctx, id, draft); err != nil {
		p.setNotice(errNotice(p.rejectionMessage(err, msgProfileUpdateFailed)))
		return err
	}

	p.mu.Lock()
	p.editing = false
	p.notice = successNotice(msgProfileUpdated)
	p.mu.Unlock()

	return p.Load(ctx, id)
}

// BeginEdit enters edit mode. The view seeds its inputs from the loaded user.
func (p *Profile) BeginEdit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = true
}

// CancelEdit leaves edit mode without saving.
func (p *Profile) CancelEdit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.editing = false
}

// Upload returns the image upload session owned by this profile.
func (p *Profile) Upload() *Upload {
	return p.upload
}

// State reports the load lifecycle state.
func (p *Profile) State() LoadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// User returns the loaded user, or nil.
func (p *Profile) User() *models.User {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

// Notice returns the outcome of the most recent mutation attempt.
func (p *Profile) Notice() Notice {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.notice
}

// Editing reports whether the profile is in edit mode.
func (p *Profile) Editing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.editing
}

// ImageURL resolves the loaded user's profile image against the backend
// origin, or returns empty when the user has none.
func (p *Profile) ImageURL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.user == nil || p.user.ProfileImage == "" {
		return ""
	}
	return p.client.ImageURL(p.user.ProfileImage)
}

// setNotice and the methods below form the owner surface the Upload session
// reports through.

func (p *Profile) setNotice(n Notice) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notice = n
}

func (p *Profile) currentID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.id
}

func (p *Profile) reloadCurrent(ctx context.Context) {
	p.mu.Lock()
	id := p.id
	p.mu.Unlock()
	if id == "" {
		return
	}
	_ = p.Load(ctx, id)
}

func (p *Profile) loadFailureMessage(err error) string {
	if errors.Is(err, api.ErrNetwork) {
		return msgLoadProfileNetwork
	}
	return api.RejectionMessage(err, msgLoadProfileFailed)
}

func (p *Profile) rejectionMessage(err error, fallback string) string {
	if errors.Is(err, api.ErrNetwork) {
		return msgNetworkError
	}
	return api.RejectionMessage(err, fallback)
}
