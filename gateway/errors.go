package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"content-desk/domain"
	"content-desk/driver/contentapi"
)

// classify maps a driver failure onto the domain error taxonomy:
// conflict and not-found responses get machine-checkable sentinels,
// other API responses keep their server message, and everything else is
// a transport failure. Nothing here retries.
func classify(op string, err error) error {
	var apiErr *contentapi.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusConflict:
			return &domain.RepositoryError{Op: op, Err: wrapSentinel(domain.ErrConflict, apiErr.Message)}
		case http.StatusNotFound:
			return &domain.RepositoryError{Op: op, Err: wrapSentinel(domain.ErrNotFound, apiErr.Message)}
		}
		return &domain.RepositoryError{Op: op, Err: apiErr}
	}

	return &domain.RepositoryError{Op: op, Err: fmt.Errorf("%w: %v", domain.ErrUnavailable, err)}
}

func wrapSentinel(sentinel error, message string) error {
	if message == "" {
		return sentinel
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}
