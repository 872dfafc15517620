package handlers

import (
	"context"
	"log"

	"catalog-manager/functions/internal/domain/profile"
	"catalog-manager/functions/internal/events"

	"github.com/cloudevents/sdk-go/v2/event"
)

// Profiles reacts to document writes on the user profile collection.
type Profiles struct {
	profiles *profile.Service
}

func NewProfiles(profiles *profile.Service) *Profiles {
	return &Profiles{profiles: profiles}
}

func (h *Profiles) Created(ctx context.Context, e event.Event) error {
	var fe events.FirestoreEvent
	if err := e.DataAs(&fe); err != nil || fe.Value.IsZero() {
		log.Printf("profile-created: ignoring malformed event %s: %v", e.ID(), err)
		return nil
	}

	uid := fe.Value.DocumentID()
	if uid == "" {
		log.Printf("profile-created: event %s has no document id", e.ID())
		return nil
	}

	if err := h.profiles.MarkCreated(ctx, uid, fe.Value.UpdateTime); err != nil {
		log.Printf("profile-created: stamp %s failed: %v", uid, err)
		return err
	}

	log.Printf("profile-created: %s activated", uid)
	return nil
}

func (h *Profiles) Updated(ctx context.Context, e event.Event) error {
	var fe events.FirestoreEvent
	if err := e.DataAs(&fe); err != nil || fe.Value.IsZero() {
		log.Printf("profile-updated: ignoring malformed event %s: %v", e.ID(), err)
		return nil
	}

	uid := fe.Value.DocumentID()
	if uid == "" {
		log.Printf("profile-updated: event %s has no document id", e.ID())
		return nil
	}

	stamped, err := h.profiles.TouchModified(ctx, uid,
		modifiedState(fe.OldValue), modifiedState(fe.Value), fe.Value.UpdateTime)
	if err != nil {
		log.Printf("profile-updated: stamp %s failed: %v", uid, err)
		return err
	}

	if stamped {
		log.Printf("profile-updated: %s stamped", uid)
	} else {
		log.Printf("profile-updated: %s skipped (own write)", uid)
	}
	return nil
}

func modifiedState(v events.FirestoreValue) profile.ModifiedState {
	at, ok := v.Timestamp(profile.FieldLastModified)
	return profile.ModifiedState{Present: ok, At: at}
}
