package profile

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) doc(uid string) *firestore.DocumentRef {
	return r.fs.Collection(Collection).Doc(uid)
}

// Merge performs a partial write, preserving fields not listed.
func (r *Repo) Merge(ctx context.Context, uid string, fields map[string]interface{}) error {
	if _, err := r.doc(uid).Set(ctx, fields, firestore.MergeAll); err != nil {
		return fmt.Errorf("merge %s/%s: %w", Collection, uid, err)
	}
	return nil
}

// Update performs a direct field update, which fails when the document does
// not exist.
func (r *Repo) Update(ctx context.Context, uid string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	if _, err := r.doc(uid).Update(ctx, updates); err != nil {
		return fmt.Errorf("update %s/%s: %w", Collection, uid, err)
	}
	return nil
}
