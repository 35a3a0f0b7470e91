package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

var (
	// ErrUpstreamUnavailable covers transport failures and auth/quota/server
	// errors from the Data API. Surfaced to the caller as a failed request
	// when it hits the top-level search; isolated per item everywhere else.
	ErrUpstreamUnavailable = errors.New("youtube: upstream unavailable")

	// ErrNotFound means a referenced channel or video no longer resolves
	// (deleted channel, private video). Skippable per item.
	ErrNotFound = errors.New("youtube: not found")
)

// classify maps a Data API call error onto the service error taxonomy.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == 404 {
			return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
		}
		// 401/403 (bad key, quota exhausted), 429 and 5xx all mean the
		// upstream cannot serve us right now.
		return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return fmt.Errorf("%w: %s: %v", ErrUpstreamUnavailable, op, err)
}
