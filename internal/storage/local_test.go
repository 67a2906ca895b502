package storage

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorage_SaveGetDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	content := "file content"
	require.NoError(t, s.Save(ctx, "docs/abc/file.pdf", strings.NewReader(content), "application/pdf"))

	exists, err := s.Exists(ctx, "docs/abc/file.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	size, err := s.GetSize(ctx, "docs/abc/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, int64(len(content)), size)

	reader, err := s.Get(ctx, "docs/abc/file.pdf")
	require.NoError(t, err)
	defer reader.Close()
	read, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, content, string(read))

	require.NoError(t, s.Delete(ctx, "docs/abc/file.pdf"))

	exists, err = s.Exists(ctx, "docs/abc/file.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_DeleteMissingFileIsNoop(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "never/created.pdf"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	for _, path := range []string{
		"../outside.txt",
		"docs/../../outside.txt",
		"../../etc/passwd",
	} {
		err := s.Save(ctx, path, strings.NewReader("x"), "text/plain")
		assert.Error(t, err, "path %q must be rejected", path)

		_, err = s.Get(ctx, path)
		assert.Error(t, err, "path %q must be rejected", path)
	}
}

func TestLocalStorage_URLs(t *testing.T) {
	ctx := context.Background()

	s, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "https://cdn.example.com/files"})
	require.NoError(t, err)

	url, err := s.GetURL(ctx, "docs/file.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/files/docs/file.pdf", url)

	// Local files are not signed; the signed URL is the plain one.
	signed, err := s.GetSignedURL(ctx, "docs/file.pdf", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, url, signed)
}

func TestNewStorage_UnsupportedType(t *testing.T) {
	_, err := NewStorage(Config{Type: "s3"})
	assert.Error(t, err)
}
