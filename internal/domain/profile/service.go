package profile

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Store is the slice of the document store the profile service writes
// through. Merge preserves unlisted fields; Update fails when the document
// is absent.
type Store interface {
	Merge(ctx context.Context, uid string, fields map[string]interface{}) error
	Update(ctx context.Context, uid string, fields map[string]interface{}) error
}

// Notifier delivers best-effort account lifecycle notices. Implementations
// must tolerate being called for users without any registered device.
type Notifier interface {
	Welcome(ctx context.Context, uid, email string) error
	Farewell(ctx context.Context, uid, email string) error
}

type Service struct {
	store    Store
	notifier Notifier // optional
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// SyncIdentity mirrors an identity-provider account into the profile
// record. Only provided fields are written; the merge keeps everything the
// client app stored on the document.
func (s *Service) SyncIdentity(ctx context.Context, id Identity) error {
	if id.UID == "" {
		return fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	fields := map[string]interface{}{
		fieldEmail:           id.Email,
		fieldIsAuthenticated: true,
	}
	if id.DisplayName != "" {
		fields[fieldName] = id.DisplayName
	}
	if id.PhotoURL != "" {
		fields[fieldPhotoURL] = id.PhotoURL
	}

	if err := s.store.Merge(ctx, id.UID, fields); err != nil {
		return fmt.Errorf("sync identity %s: %w", id.UID, err)
	}

	if s.notifier != nil {
		if err := s.notifier.Welcome(ctx, id.UID, id.Email); err != nil {
			log.Printf("welcome notice for %s failed: %v", id.UID, err)
		}
	}
	return nil
}

// Farewell handles account deletion. The profile document is kept for
// audit; only the optional notifier is pinged.
func (s *Service) Farewell(ctx context.Context, id Identity) error {
	if id.UID == "" {
		return fmt.Errorf("%w: uid is required", ErrBadRequest)
	}
	if s.notifier != nil {
		if err := s.notifier.Farewell(ctx, id.UID, id.Email); err != nil {
			log.Printf("farewell notice for %s failed: %v", id.UID, err)
		}
	}
	return nil
}

// MarkCreated stamps a freshly created profile document with its creation
// date and activates it. Direct update: the document was just written, so
// absence means the event is stale and the error should surface.
func (s *Service) MarkCreated(ctx context.Context, uid string, createdAt time.Time) error {
	if uid == "" {
		return fmt.Errorf("%w: uid is required", ErrBadRequest)
	}
	return s.store.Update(ctx, uid, map[string]interface{}{
		fieldCreationDate: createdAt,
		fieldIsActive:     true,
	})
}

// TouchModified stamps the last-modified field after a profile update,
// unless the triggering write is our own previous stamp. The guard compares
// the field across the before/after snapshots: only a write that itself
// changed the field is treated as our echo. Returns whether a stamp was
// written; the loop always terminates within two triggers.
func (s *Service) TouchModified(ctx context.Context, uid string, before, after ModifiedState, updatedAt time.Time) (bool, error) {
	if uid == "" {
		return false, fmt.Errorf("%w: uid is required", ErrBadRequest)
	}

	switch {
	case !before.Present:
		// first update ever seen
	case !after.Present:
		// field removed by an outside write; restore the stamp
	case before.At.Equal(after.At):
		// this write did not touch the field
	default:
		return false, nil
	}

	if err := s.store.Update(ctx, uid, map[string]interface{}{
		FieldLastModified: updatedAt,
	}); err != nil {
		return false, err
	}
	return true, nil
}
