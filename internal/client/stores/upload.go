package stores

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/dpetrovs/userdeck/internal/client/api"
	"github.com/dpetrovs/userdeck/internal/client/models"
	"github.com/dpetrovs/userdeck/internal/client/validation"
	"github.com/dpetrovs/userdeck/internal/logging"
)

// UploadState is the phase of the image upload session.
type UploadState int

const (
	UploadEmpty UploadState = iota
	UploadSelected
	UploadPreviewed
	UploadUploading
)

const (
	msgSelectFileFirst = "Please select an image file first"
	msgPreviewPending  = "Preview is still being prepared"
	msgUploadFailed    = "Upload failed"
	msgUploadNetwork   = "Network error during upload"
	msgUploaded        = "Profile image uploaded successfully!"
)

// uploadOwner is the surface the session reports through: the owning profile
// store's notice slot and its reload of authoritative data after an upload.
type uploadOwner interface {
	setNotice(n Notice)
	currentID() string
	reloadCurrent(ctx context.Context)
}

// Upload is the single-slot session for selecting, validating, previewing
// and committing a profile image.
//
// States move Empty -> Selected -> Previewed -> Uploading and back to Empty on
// success or Previewed on failure. A new selection supersedes any in-flight
// preview or upload: results are applied last-write-wins against a selection
// sequence, never by cancelling the in-flight work.
type Upload struct {
	client api.Client
	owner  uploadOwner
	log    logging.Logger

	mu     sync.Mutex
	state  UploadState
	sel    *models.ImageSelection
	selSeq uint64
	done   chan struct{}
}

func newUpload(client api.Client, owner uploadOwner, log logging.Logger) *Upload {
	if log == nil {
		log = logging.NewNop()
	}
	return &Upload{
		client: client,
		owner:  owner,
		log:    log.With("store", "upload"),
		done:   closedChan(),
	}
}

// Select validates the candidate file and, when it passes, starts building
// the preview asynchronously. A rejection discards any prior selection and
// reports the reason without generating a preview. A second Select while a
// preview is still decoding simply wins the slot.
func (u *Upload) Select(meta models.FileMeta, content []byte) error {
	if err := validation.ValidateImageFile(meta); err != nil {
		u.mu.Lock()
		u.selSeq++
		u.sel = nil
		u.state = UploadEmpty
		u.done = closedChan()
		u.mu.Unlock()
		u.owner.setNotice(errNotice(err.Error()))
		return err
	}

	u.mu.Lock()
	u.selSeq++
	seq := u.selSeq
	u.sel = &models.ImageSelection{Meta: meta, Content: content}
	u.state = UploadSelected
	done := make(chan struct{})
	u.done = done
	u.mu.Unlock()

	// Clear any earlier rejection message.
	u.owner.setNotice(Notice{})

	go u.buildPreview(seq, meta, content, done)
	return nil
}

// buildPreview decodes the selection into a displayable form. It applies the
// result only if the selection it was started for is still current.
func (u *Upload) buildPreview(seq uint64, meta models.FileMeta, content []byte, done chan struct{}) {
	preview := &models.ImagePreview{
		DataURL: "data:" + meta.MIME + ";base64," + base64.StdEncoding.EncodeToString(content),
	}
	// Dimensions are best effort: webp has no registered decoder here.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(content)); err == nil {
		preview.Width = cfg.Width
		preview.Height = cfg.Height
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if seq != u.selSeq {
		// Superseded by a newer selection or a cancel.
		return
	}
	u.sel.Preview = preview
	u.state = UploadPreviewed
	close(done)
}

// Cancel discards the selection and preview from any non-Empty state.
func (u *Upload) Cancel() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.state == UploadEmpty {
		return
	}
	u.selSeq++
	u.sel = nil
	u.state = UploadEmpty
	u.done = closedChan()
}

// Commit uploads the previewed file. From Empty it reports "select a file
// first" and issues no request; before the preview finished it asks the
// caller to wait. On success the slot empties and the owning profile reloads
// so the new image path is picked up; on failure the selection is retained
// for a retry.
func (u *Upload) Commit(ctx context.Context) error {
	u.mu.Lock()
	switch u.state {
	case UploadEmpty:
		u.mu.Unlock()
		u.owner.setNotice(errNotice(msgSelectFileFirst))
		return errors.New(msgSelectFileFirst)
	case UploadSelected:
		u.mu.Unlock()
		u.owner.setNotice(errNotice(msgPreviewPending))
		return errors.New(msgPreviewPending)
	case UploadUploading:
		u.mu.Unlock()
		return fmt.Errorf("upload already in progress")
	}
	seq := u.selSeq
	sel := *u.sel
	u.state = UploadUploading
	u.mu.Unlock()

	u.owner.setNotice(Notice{})

	err := u.client.UploadProfileImage(ctx, u.owner.currentID(), sel.Meta.Name, sel.Content)

	u.mu.Lock()
	superseded := seq != u.selSeq
	if !superseded {
		if err != nil {
			u.state = UploadPreviewed
		} else {
			u.sel = nil
			u.state = UploadEmpty
			u.done = closedChan()
		}
	}
	u.mu.Unlock()

	if superseded {
		u.log.Debug(ctx, "upload result superseded by newer selection")
		return err
	}

	if err != nil {
		u.log.Error(ctx, "image upload failed", "err", err)
		u.owner.setNotice(errNotice(u.rejectionMessage(err)))
		return err
	}

	u.owner.setNotice(successNotice(msgUploaded))
	u.owner.reloadCurrent(ctx)
	return nil
}

// State reports the current phase of the session.
func (u *Upload) State() UploadState {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// Selection returns the current selection by value, or nil when the slot is
// empty.
func (u *Upload) Selection() *models.ImageSelection {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.sel == nil {
		return nil
	}
	sel := *u.sel
	return &sel
}

// PreviewDone returns a channel closed once the preview for the current
// selection is ready. With no pending decode the channel is already closed.
func (u *Upload) PreviewDone() <-chan struct{} {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.done
}

func (u *Upload) rejectionMessage(err error) string {
	if errors.Is(err, api.ErrNetwork) {
		return msgUploadNetwork
	}
	return api.RejectionMessage(err, msgUploadFailed)
}

func closedChan() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}
