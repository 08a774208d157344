package domain

import "errors"

// Classification sentinels for the mutation failure paths. Callers
// discriminate with errors.Is; everything else is a generic failure.
var (
	// ErrConflict marks a server-reported conflict: the entity is still
	// referenced and the server refused the mutation.
	ErrConflict = errors.New("conflict: entity is in use")

	// ErrInUse marks the client-side refusal of a delete whose target
	// still has associated articles. No request is sent in this case.
	ErrInUse = errors.New("entity has associated articles")

	// ErrNotFound marks a 404 from the remote API.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks transport-level failures (timeout, refused
	// connection, DNS). Never retried automatically.
	ErrUnavailable = errors.New("content API unavailable")
)

// RepositoryError wraps a failure from the repository layer with the
// operation that produced it. Unwrap preserves the classification chain.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// ValidationError is a client-side form failure, raised before any
// request reaches the network layer.
type ValidationError struct {
	Field string
	Err   string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err
}
