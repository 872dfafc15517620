package mediaurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	g := NewGCS(nil, nil, "", 0)
	assert.Equal(t,
		"https://storage.googleapis.com/demo.appspot.com/books/abc123/cover.jpg",
		g.PublicURL("demo.appspot.com", "books/abc123/cover.jpg"))
}

func TestDownloadURLFor(t *testing.T) {
	got := downloadURLFor("demo.appspot.com", "books/abc123/cover.jpg", "tok-1")

	// object path must be escaped as a single segment
	assert.Equal(t,
		"https://firebasestorage.googleapis.com/v0/b/demo.appspot.com/o/books%2Fabc123%2Fcover.jpg?alt=media&token=tok-1",
		got)
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "a", firstToken("a"))
	assert.Equal(t, "a", firstToken("a,b,c"))
	assert.Equal(t, "b", firstToken(" , b ,c"))
	assert.Equal(t, "", firstToken(""))
	assert.Equal(t, "", firstToken(" , "))
}
