package handlers

import (
	"context"
	"log"

	"catalog-manager/functions/internal/domain/catalog"
	"catalog-manager/functions/internal/events"

	"github.com/cloudevents/sdk-go/v2/event"
)

// Media reacts to object-store finalize/delete events for catalog media.
type Media struct {
	catalog *catalog.Service
}

func NewMedia(catalog *catalog.Service) *Media {
	return &Media{catalog: catalog}
}

func (h *Media) Finalized(ctx context.Context, e event.Event) error {
	var obj events.StorageObject
	if err := e.DataAs(&obj); err != nil || obj.Name == "" {
		log.Printf("media-finalized: ignoring malformed event %s: %v", e.ID(), err)
		return nil
	}

	if err := h.catalog.AttachMedia(ctx, obj); err != nil {
		log.Printf("media-finalized: attach %s/%s failed: %v", obj.Bucket, obj.Name, err)
		return err
	}
	return nil
}

func (h *Media) Deleted(ctx context.Context, e event.Event) error {
	var obj events.StorageObject
	if err := e.DataAs(&obj); err != nil || obj.Name == "" {
		log.Printf("media-deleted: ignoring malformed event %s: %v", e.ID(), err)
		return nil
	}

	if err := h.catalog.DetachMedia(ctx, obj.Name); err != nil {
		log.Printf("media-deleted: detach %s failed: %v", obj.Name, err)
		return err
	}
	return nil
}
