package catalog

import (
	"context"
	"errors"
	"testing"

	"catalog-manager/functions/internal/events"
	"catalog-manager/functions/internal/storagepath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	setFn   func(context.Context, storagepath.Ref, string) error
	clearFn func(context.Context, storagepath.Ref) error

	sets   map[string]string
	clears []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{sets: map[string]string{}}
}

func (f *fakeStore) SetMediaURL(ctx context.Context, ref storagepath.Ref, url string) error {
	if f.setFn != nil {
		return f.setFn(ctx, ref, url)
	}
	f.sets[ref.DocPath()] = url
	return nil
}

func (f *fakeStore) ClearMediaURL(ctx context.Context, ref storagepath.Ref) error {
	if f.clearFn != nil {
		return f.clearFn(ctx, ref)
	}
	f.clears = append(f.clears, ref.DocPath())
	return nil
}

type fakeResolver struct {
	signedErr error
}

func (f *fakeResolver) PublicURL(bucket, object string) string {
	return "public://" + bucket + "/" + object
}

func (f *fakeResolver) DownloadURL(_ context.Context, bucket, object string) (string, error) {
	return "download://" + bucket + "/" + object, nil
}

func (f *fakeResolver) SignedURL(_ context.Context, bucket, object string) (string, error) {
	if f.signedErr != nil {
		return "", f.signedErr
	}
	return "signed://" + bucket + "/" + object, nil
}

func TestAttachMediaSkipsOctetStream(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	err := svc.AttachMedia(context.Background(), events.StorageObject{
		Bucket:      "b",
		Name:        "books/abc123/cover.jpg",
		ContentType: "application/octet-stream",
	})
	require.NoError(t, err)
	assert.Empty(t, store.sets)
}

func TestAttachMediaSkipsNonCatalogPaths(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	err := svc.AttachMedia(context.Background(), events.StorageObject{
		Bucket:      "b",
		Name:        "avatars/u1/pic.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Empty(t, store.sets)
}

func TestAttachMediaSkipsEmptyPayload(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	require.NoError(t, svc.AttachMedia(context.Background(), events.StorageObject{}))
	assert.Empty(t, store.sets)
}

func TestAttachMediaDownloadURL(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	err := svc.AttachMedia(context.Background(), events.StorageObject{
		Bucket:      "demo.appspot.com",
		Name:        "books/abc123/cover.jpg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "download://demo.appspot.com/books/abc123/cover.jpg", store.sets["books/abc123"])
}

func TestAttachMediaPublicURLUnderEmulator(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{Emulator: true})

	err := svc.AttachMedia(context.Background(), events.StorageObject{
		Bucket:      "b",
		Name:        "authors/xyz999/photo.png",
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, "public://b/authors/xyz999/photo.png", store.sets["authors/xyz999"])
}

func TestAttachMediaSignedURL(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{UseSignedURL: true})

	err := svc.AttachMedia(context.Background(), events.StorageObject{
		Bucket:      "b",
		Name:        "books/abc123/cover.jpg",
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed://b/books/abc123/cover.jpg", store.sets["books/abc123"])
}

// A signing failure must leave the record untouched and surface the error
// instead of being swallowed.
func TestAttachMediaSignedURLFailure(t *testing.T) {
	store := newFakeStore()
	wantErr := errors.New("sign failed")
	svc := NewService(store, &fakeResolver{signedErr: wantErr}, Options{UseSignedURL: true})

	err := svc.AttachMedia(context.Background(), events.StorageObject{
		Bucket:      "b",
		Name:        "books/abc123/cover.jpg",
		ContentType: "image/jpeg",
	})
	require.ErrorIs(t, err, wantErr)
	assert.Empty(t, store.sets)
}

func TestDetachMedia(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	require.NoError(t, svc.DetachMedia(context.Background(), "authors/xyz999/photo.png"))
	assert.Equal(t, []string{"authors/xyz999"}, store.clears)
}

func TestDetachMediaIgnoresForeignPaths(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	require.NoError(t, svc.DetachMedia(context.Background(), "tmp/whatever.bin"))
	assert.Empty(t, store.clears)
}

func TestRefreshRejectsForeignPaths(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeResolver{}, Options{})

	_, err := svc.Refresh(context.Background(), "b", "tmp/whatever.bin")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRefreshReturnsURL(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeResolver{}, Options{})

	url, err := svc.Refresh(context.Background(), "b", "books/abc123/cover.jpg")
	require.NoError(t, err)
	assert.Equal(t, "download://b/books/abc123/cover.jpg", url)
	assert.Equal(t, url, store.sets["books/abc123"])
}
