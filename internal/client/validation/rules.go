// Package validation holds the pure client-side acceptance rules applied
// before any backend request is issued.
package validation

import (
	"errors"
	"strings"

	"github.com/dpetrovs/userdeck/internal/client/models"
)

// MaxImageSize is the upload cap for profile images.
const MaxImageSize = 5 * 1024 * 1024

// The texts double as the user-facing rejection reasons.
var (
	ErrUnsupportedImageType = errors.New("Only image files are allowed (JPEG, PNG, GIF, WebP)")
	ErrImageTooLarge        = errors.New("File size must be less than 5MB")
	ErrMissingRequired      = errors.New("Username, email and password are required")
)

// allowedImageMIME is the whitelist of acceptable profile image types.
var allowedImageMIME = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ValidateImageFile decides whether a candidate profile image is acceptable.
// Checks run in order type then size; the first failure wins and no further
// checks run. A nil return means the file may be previewed and uploaded.
func ValidateImageFile(meta models.FileMeta) error {
	if _, ok := allowedImageMIME[meta.MIME]; !ok {
		return ErrUnsupportedImageType
	}
	if meta.Size > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// ValidateNewUserForm checks the create-user form. Username, email and
// password must be non-blank; firstname and lastname are optional. Email
// format and uniqueness are left to the backend.
func ValidateNewUserForm(f models.NewUserForm) error {
	if isBlank(f.Username) || isBlank(f.Email) || isBlank(f.Password) {
		return ErrMissingRequired
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
