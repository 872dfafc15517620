package catalog

import (
	"context"
	"fmt"
	"log"

	"catalog-manager/functions/internal/events"
	"catalog-manager/functions/internal/mediaurl"
	"catalog-manager/functions/internal/storagepath"
)

// Store is the slice of the document store the catalog service writes
// through.
type Store interface {
	SetMediaURL(ctx context.Context, ref storagepath.Ref, url string) error
	ClearMediaURL(ctx context.Context, ref storagepath.Ref) error
}

type Service struct {
	store    Store
	resolver mediaurl.Resolver
	opts     Options
}

func NewService(store Store, resolver mediaurl.Resolver, opts Options) *Service {
	return &Service{store: store, resolver: resolver, opts: opts}
}

// AttachMedia links a finished upload to its catalog record. Non-media
// uploads and objects outside the catalog directories are ignored; URL
// resolution failures surface to the caller so the platform retries.
func (s *Service) AttachMedia(ctx context.Context, obj events.StorageObject) error {
	if obj.Name == "" {
		return nil
	}
	if obj.ContentType == contentTypeOctetStream {
		log.Printf("skipping non-media upload %s/%s", obj.Bucket, obj.Name)
		return nil
	}

	ref, err := storagepath.Parse(obj.Name)
	if err != nil {
		log.Printf("skipping %s/%s: %v", obj.Bucket, obj.Name, err)
		return nil
	}

	url, err := s.resolveURL(ctx, obj.Bucket, obj.Name)
	if err != nil {
		return fmt.Errorf("resolve media url for %s: %w", ref.DocPath(), err)
	}

	return s.store.SetMediaURL(ctx, ref, url)
}

// DetachMedia clears the media URL when the backing object is deleted. No
// existence check on the record, mirroring AttachMedia.
func (s *Service) DetachMedia(ctx context.Context, objectName string) error {
	ref, err := storagepath.Parse(objectName)
	if err != nil {
		log.Printf("skipping deleted object %s: %v", objectName, err)
		return nil
	}
	return s.store.ClearMediaURL(ctx, ref)
}

// Refresh re-resolves and re-merges the media URL for an object on demand.
// Unlike AttachMedia it rejects non-catalog paths instead of ignoring them,
// since the caller asked for this specific object.
func (s *Service) Refresh(ctx context.Context, bucket, objectName string) (string, error) {
	ref, err := storagepath.Parse(objectName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadRequest, err)
	}

	url, err := s.resolveURL(ctx, bucket, objectName)
	if err != nil {
		return "", fmt.Errorf("resolve media url for %s: %w", ref.DocPath(), err)
	}

	if err := s.store.SetMediaURL(ctx, ref, url); err != nil {
		return "", err
	}
	return url, nil
}

func (s *Service) resolveURL(ctx context.Context, bucket, object string) (string, error) {
	if s.opts.UseSignedURL {
		return s.resolver.SignedURL(ctx, bucket, object)
	}
	if s.opts.Emulator {
		return s.resolver.PublicURL(bucket, object), nil
	}
	return s.resolver.DownloadURL(ctx, bucket, object)
}
