package remote

import (
	"context"
	"errors"

	"github.com/julianstephens/trainlog/internal/models"
)

// ErrUnavailable is the single retryable error kind for remote failures.
// The repository wraps every network or query failure in it; callers may
// retry freely since all store operations are idempotent or additive.
var ErrUnavailable = errors.New("remote store unavailable")

// Store is the persistence collaborator for entries. The core depends only
// on these operations and treats the underlying query language as opaque.
//
// ListEntries returns the owner's entries ordered by date descending.
// InsertEntry persists an entry without an id and returns it with the
// store-assigned id. DeleteEntry is idempotent; deleting an unknown id is
// not an error.
type Store interface {
	Init() error
	Load() error
	Close() error

	ListEntries(ctx context.Context, ownerID string) ([]models.Entry, error)
	InsertEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	DeleteEntry(ctx context.Context, ownerID, id string) error
}
