package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStore_Store(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewBlobImageStore(bucket, "http://localhost:8080/uploads/")
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	url, err := store.Store(ctx, "businesses/abc/logo.png", strings.NewReader("png-bytes"), 9, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/businesses/abc/logo.png", url)

	data, err := bucket.ReadAll(ctx, "businesses/abc/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	attrs, err := bucket.Attributes(ctx, "businesses/abc/logo.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestOpenFileImageStore(t *testing.T) {
	dir := t.TempDir() + "/nested"
	store, err := OpenFileImageStore(dir, "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	url, err := store.Store(context.Background(), "users/u1.jpg", strings.NewReader("jpg"), 3, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/users/u1.jpg", url)

	_, err = OpenFileImageStore("", "")
	assert.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a/b.png", publicURL("https://cdn.example.com", "/a/b.png"))
	assert.Equal(t, "/a.png", publicURL("", "a.png"))
}
