package validators

import (
	"time"

	"github.com/yazilimcilarinmolayeri/pixels-clone/internal/errs"
)

const (
	// MinCanvasSize is the smallest accepted width and height in pixels.
	MinCanvasSize = 300
	// MinExpiryLead is how far in the future a canvas expiry must lie.
	MinExpiryLead = 30 * time.Minute
)

func ValidateCanvasSize(width, height int) []error {
	var errors []error
	if width < MinCanvasSize || height < MinCanvasSize {
		errors = append(errors, errs.ErrCanvasTooSmall)
	}
	return errors
}

func ValidateCanvasExpiry(expireAt, now time.Time) []error {
	var errors []error
	if expireAt.Before(now.Add(MinExpiryLead)) {
		errors = append(errors, errs.ErrExpiryTooSoon)
	}
	return errors
}

func ValidateTimeRange(from, to time.Time) []error {
	var errors []error
	if !from.Before(to) {
		errors = append(errors, errs.ErrInvalidTimeRange)
	}
	return errors
}
