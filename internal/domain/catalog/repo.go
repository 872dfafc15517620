package catalog

import (
	"context"
	"fmt"

	"catalog-manager/functions/internal/storagepath"

	"cloud.google.com/go/firestore"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) doc(ref storagepath.Ref) *firestore.DocumentRef {
	return r.fs.Collection(ref.Collection).Doc(ref.ID)
}

// SetMediaURL merges the media URL into the catalog record. The merge
// succeeds even when the record does not exist yet, leaving a near-empty
// document; catalog records are owned by the client app.
func (r *Repo) SetMediaURL(ctx context.Context, ref storagepath.Ref, url string) error {
	if _, err := r.doc(ref).Set(ctx, map[string]interface{}{
		FieldMediaURL: url,
	}, firestore.MergeAll); err != nil {
		return fmt.Errorf("set media url %s: %w", ref.DocPath(), err)
	}
	return nil
}

// ClearMediaURL nulls the media URL on the catalog record.
func (r *Repo) ClearMediaURL(ctx context.Context, ref storagepath.Ref) error {
	if _, err := r.doc(ref).Set(ctx, map[string]interface{}{
		FieldMediaURL: nil,
	}, firestore.MergeAll); err != nil {
		return fmt.Errorf("clear media url %s: %w", ref.DocPath(), err)
	}
	return nil
}
