package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveImage(t *testing.T) {
	service, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	path, err := service.SaveImage([]byte("png-bytes"), "photo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, "-photo.png"))

	full, err := service.GetImagePath(strings.TrimPrefix(path, "/uploads/"))
	require.NoError(t, err)
	data, err := os.ReadFile(full)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveImageRejectsEmptyData(t *testing.T) {
	service, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	_, err = service.SaveImage(nil, "photo.png")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSaveImageSanitizesName(t *testing.T) {
	service, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	path, err := service.SaveImage([]byte("x"), "../..\\weird name!.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "-weird_name.png"), path)
	assert.False(t, strings.Contains(path, ".."))
}

func TestGetImagePathErrors(t *testing.T) {
	service, err := NewUploadService(t.TempDir())
	require.NoError(t, err)

	_, err = service.GetImagePath("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.GetImagePath("../escape.png")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.GetImagePath("missing.png")
	assert.ErrorIs(t, err, ErrUploadNotFound)
}

func TestNewUploadServiceCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewUploadService(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
