package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gg-note/ggnote/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	service, err := services.NewUploadService(dir)
	require.NoError(t, err)

	router := gin.New()
	RegisterUploadRoutes(router, service, dir)
	return router, dir
}

func multipartImage(t *testing.T, fieldName, fileName string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadImageRoute(t *testing.T) {
	router, dir := setupUploadRouter(t)

	body, contentType := multipartImage(t, "image", "photo.png", []byte("png-bytes"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		FilePath string `json:"file_path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.FilePath, "/uploads/"))

	stored := filepath.Join(dir, strings.TrimPrefix(resp.FilePath, "/uploads/"))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestUploadImageRouteServesStoredFile(t *testing.T) {
	router, _ := setupUploadRouter(t)

	body, contentType := multipartImage(t, "image", "photo.png", []byte("png-bytes"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		FilePath string `json:"file_path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The returned path resolves through the static file route.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", resp.FilePath, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestUploadImageRouteMissingFile(t *testing.T) {
	router, _ := setupUploadRouter(t)

	body, contentType := multipartImage(t, "wrong-field", "photo.png", []byte("x"))
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageRouteEmptyFile(t *testing.T) {
	router, _ := setupUploadRouter(t)

	body, contentType := multipartImage(t, "image", "photo.png", nil)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
