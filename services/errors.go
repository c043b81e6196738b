package services

import "errors"

// Common errors
var (
	ErrValidation     = errors.New("validation error")
	ErrFolderNotFound = errors.New("folder not found")
	ErrNoteNotFound   = errors.New("note not found")
	ErrUploadNotFound = errors.New("upload not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternal       = errors.New("internal server error")
)
