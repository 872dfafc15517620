package handlers

import (
	"context"
	"log"

	"catalog-manager/functions/internal/domain/profile"
	"catalog-manager/functions/internal/events"

	"github.com/cloudevents/sdk-go/v2/event"
)

// Accounts reacts to identity-provider user lifecycle events.
type Accounts struct {
	profiles *profile.Service
}

func NewAccounts(profiles *profile.Service) *Accounts {
	return &Accounts{profiles: profiles}
}

func (h *Accounts) Created(ctx context.Context, e event.Event) error {
	var u events.AuthUser
	if err := e.DataAs(&u); err != nil || u.UID == "" {
		log.Printf("account-created: ignoring malformed event %s: %v", e.ID(), err)
		return nil
	}

	err := h.profiles.SyncIdentity(ctx, profile.Identity{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	})
	if err != nil {
		log.Printf("account-created: sync %s failed: %v", u.UID, err)
		return err
	}

	log.Printf("account-created: profile %s synced", u.UID)
	return nil
}

func (h *Accounts) Deleted(ctx context.Context, e event.Event) error {
	var u events.AuthUser
	if err := e.DataAs(&u); err != nil || u.UID == "" {
		log.Printf("account-deleted: ignoring malformed event %s: %v", e.ID(), err)
		return nil
	}

	if err := h.profiles.Farewell(ctx, profile.Identity{UID: u.UID, Email: u.Email}); err != nil {
		log.Printf("account-deleted: farewell %s failed: %v", u.UID, err)
		return err
	}

	log.Printf("account-deleted: %s", u.UID)
	return nil
}
