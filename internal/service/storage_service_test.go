package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"play_learn_spark_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both providers must satisfy the interface the content service uploads
// through.
var (
	_ StorageProvider = (*LocalStorageProvider)(nil)
	_ StorageProvider = (*MinioStorageProvider)(nil)
)

func TestLocalUploadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	src := filepath.Join(dir, "source.mp4")
	require.NoError(t, os.WriteFile(src, []byte("frames"), 0644))

	url, err := provider.UploadFile(context.Background(), "content/abc/video.mp4", src, "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/content/abc/video.mp4", url)

	stored, err := os.ReadFile(filepath.Join(dir, "content/abc/video.mp4"))
	require.NoError(t, err)
	assert.Equal(t, []byte("frames"), stored)
}

func TestLocalUploadCreatesNestedDirs(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	url, err := provider.Upload(context.Background(), "a/b/c/file.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a/b/c/file.png", url)

	_, err = os.Stat(filepath.Join(dir, "a/b/c/file.png"))
	assert.NoError(t, err)
}

func TestLocalDelete(t *testing.T) {
	dir := t.TempDir()
	provider := &LocalStorageProvider{Config: &config.StorageConfig{LocalPath: dir}}

	_, err := provider.Upload(context.Background(), "gone.txt", strings.NewReader("x"), 1, "text/plain")
	require.NoError(t, err)

	require.NoError(t, provider.Delete(context.Background(), "gone.txt"))
	_, err = os.Stat(filepath.Join(dir, "gone.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestMinioProviderURL(t *testing.T) {
	provider, err := NewMinioStorageProvider(&config.StorageConfig{
		MinioEndpoint: "localhost:9000",
		MinioAccessID: "minioadmin",
		MinioSecret:   "minioadmin",
		MinioBucket:   "play-learn-spark",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/play-learn-spark/content/x.mp4", provider.GetURL("content/x.mp4"))
}

func TestNewStorageServiceDefaultsToLocal(t *testing.T) {
	svc := NewStorageService(&config.Config{
		Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	})
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}
