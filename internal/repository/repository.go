package repository

import (
	"context"
	"fmt"

	"github.com/julianstephens/trainlog/internal/logger"
	"github.com/julianstephens/trainlog/internal/models"
	"github.com/julianstephens/trainlog/internal/normalizer"
	"github.com/julianstephens/trainlog/internal/remote"
)

// Repository is the CRUD facade over the remote store with a local mirror
// of the owner's entries, ordered by date descending. The session identifies
// the owner and is injected explicitly; nothing is read from ambient state.
//
// Repository is not safe for concurrent use by multiple goroutines; there is
// exactly one mutator per process.
type Repository struct {
	session models.Session
	store   remote.Store
	mirror  []models.Entry
}

func New(session models.Session, store remote.Store) *Repository {
	return &Repository{session: session, store: store}
}

// List returns the owner's entries, newest first. On remote failure the
// last-known local mirror is returned together with an error wrapping
// remote.ErrUnavailable: stale but available, never a hard read failure.
// The returned slice is a copy; callers may mutate it freely.
func (r *Repository) List(ctx context.Context) ([]models.Entry, error) {
	entries, err := r.store.ListEntries(ctx, r.session.UserID)
	if err != nil {
		logger.Warn("entry list failed, serving local mirror", "error", err)
		return append([]models.Entry{}, r.mirror...), fmt.Errorf("%w: %v", remote.ErrUnavailable, err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}
	r.mirror = entries
	return append([]models.Entry{}, r.mirror...), nil
}

// Create sends a normalized entry without an id to the remote store and
// prepends the returned entry, now carrying its store-assigned id, to the
// mirror. On failure the mirror is left untouched; there is no optimistic
// insert before confirmation, to avoid fabricating an id.
func (r *Repository) Create(ctx context.Context, entry models.Entry) (models.Entry, error) {
	if entry.Date == "" {
		return models.Entry{}, &normalizer.ValidationError{Reason: "date is required"}
	}
	if (len(entry.Exercises) > 0) == (len(entry.Segments) > 0) {
		return models.Entry{}, &normalizer.ValidationError{Reason: "exactly one of exercises and segments must be populated"}
	}

	entry.ID = ""
	entry.OwnerID = r.session.UserID

	created, err := r.store.InsertEntry(ctx, entry)
	if err != nil {
		return models.Entry{}, fmt.Errorf("%w: %v", remote.ErrUnavailable, err)
	}

	r.mirror = append([]models.Entry{created}, r.mirror...)
	logger.Debug("entry created", "id", created.ID, "activity", created.Activity, "date", created.Date)
	return created, nil
}

// Delete removes an entry remotely, then from the mirror. On remote failure
// the mirror is unchanged. Deleting an unknown id is an idempotent no-op.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteEntry(ctx, r.session.UserID, id); err != nil {
		return fmt.Errorf("%w: %v", remote.ErrUnavailable, err)
	}

	for i := range r.mirror {
		if r.mirror[i].ID == id {
			r.mirror = append(r.mirror[:i], r.mirror[i+1:]...)
			break
		}
	}
	return nil
}
