package fedskew

import (
	"errors"
	"fmt"

	"github.com/hupe1980/fedskew/dataset"
)

var (
	// ErrInvalidMaxK is returned when the candidate range for the optimal-k
	// search cannot yield a meaningful clustering.
	ErrInvalidMaxK = errors.New("maxK must be >= 2 and less than the row count")

	// ErrInvalidNumClients is returned when fewer than one client is requested.
	ErrInvalidNumClients = errors.New("numClients must be >= 1")

	// ErrInvalidK is returned when a pinned cluster count is below 2.
	ErrInvalidK = errors.New("k must be >= 2")

	// ErrNoValidClustering is returned when no candidate cluster count in the
	// search range produces a scoreable partition.
	ErrNoValidClustering = errors.New("no candidate k produced a scoreable clustering")
)

// ErrColumnNotFound indicates a requested feature column is absent from the
// dataset.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrColumnNotFound struct {
	Column string
	cause  error
}

func (e *ErrColumnNotFound) Error() string {
	return fmt.Sprintf("column not found: %q", e.Column)
}

func (e *ErrColumnNotFound) Unwrap() error { return e.cause }

// ErrNotNumeric indicates a requested feature column is not numeric.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNotNumeric struct {
	Column string
	cause  error
}

func (e *ErrNotNumeric) Error() string {
	return fmt.Sprintf("column %q is not numeric", e.Column)
}

func (e *ErrNotNumeric) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var cnf *dataset.ErrColumnNotFound
	if errors.As(err, &cnf) {
		return &ErrColumnNotFound{Column: cnf.Column, cause: err}
	}
	var nn *dataset.ErrNotNumeric
	if errors.As(err, &nn) {
		return &ErrNotNumeric{Column: nn.Column, cause: err}
	}

	return err
}
