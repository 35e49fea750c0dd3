package listing

import (
	"context"
	"errors"

	"github.com/fleetdesk/fleetdesk/internal/domain"
)

// DisplayError converts a fetch error into the message shown in error
// banners. Sentinel errors get specific wording, everything else a
// generic one; raw error strings never reach the screen.
func DisplayError(err error) string {
	switch {
	case errors.Is(err, domain.ErrServerOffline):
		return "Server is unreachable. Check your connection."
	case errors.Is(err, domain.ErrAuthFailed):
		return "Session expired. Sign in again."
	case errors.Is(err, domain.ErrNotFound):
		return "The requested records no longer exist."
	case errors.Is(err, context.DeadlineExceeded):
		return "The request timed out. Try again."
	default:
		return "Couldn't load data. Try again."
	}
}
