package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type UploadServiceInterface interface {
	SaveImage(data []byte, originalName string) (string, error)
	GetImagePath(fileName string) (string, error)
}

// UploadService writes uploaded images under a local directory and serves
// them back by generated file name. Files carry no database record; their
// lifecycle is the filesystem entry itself.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// SaveImage stores the bytes under "<unix-millis>-<sanitized name>" and
// returns the public path usable as an img src.
func (s *UploadService) SaveImage(data []byte, originalName string) (string, error) {
	if len(data) == 0 {
		return "", ErrValidation
	}

	name := sanitizeFileName(originalName)
	if name == "" {
		name = "image"
	}
	fileName := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
	fullPath := filepath.Join(s.dir, fileName)

	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		log.Printf("Failed to write upload %s: %v", fileName, err)
		return "", err
	}

	return "/uploads/" + fileName, nil
}

// GetImagePath resolves a previously saved file name to its absolute path.
func (s *UploadService) GetImagePath(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) {
		return "", ErrInvalidInput
	}
	fullPath := filepath.Join(s.dir, fileName)
	if _, err := os.Stat(fullPath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrUploadNotFound
		}
		return "", err
	}
	return filepath.Abs(fullPath)
}

// sanitizeFileName strips any path components and characters that do not
// survive a URL round trip.
func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, name)
	return strings.Trim(name, ".")
}

var UploadServiceInstance UploadServiceInterface
