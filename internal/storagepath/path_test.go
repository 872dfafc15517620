package storagepath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    Ref
		wantErr error
	}{
		{"book cover", "books/abc123/cover.jpg", Ref{"books", "abc123"}, nil},
		{"author photo", "authors/xyz999/photo.png", Ref{"authors", "xyz999"}, nil},
		{"nested file", "books/abc123/scans/page-1.png", Ref{"books", "abc123"}, nil},
		{"unknown collection", "avatars/u1/pic.png", Ref{}, ErrNotCatalogPath},
		{"catalog name embedded deeper", "tmp/books/abc123/cover.jpg", Ref{}, ErrNotCatalogPath},
		{"empty path", "", Ref{}, ErrNotCatalogPath},
		{"collection only", "books", Ref{}, ErrMissingID},
		{"empty id segment", "books//cover.jpg", Ref{}, ErrMissingID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefDocPath(t *testing.T) {
	assert.Equal(t, "books/abc123", Ref{"books", "abc123"}.DocPath())
}
