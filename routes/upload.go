package routes

import (
	"errors"
	"io"
	"net/http"

	"gg-note/ggnote/services"

	"github.com/gin-gonic/gin"
)

// RegisterUploadRoutes wires the multipart image upload endpoint and the
// static file service the returned paths resolve against.
func RegisterUploadRoutes(router *gin.Engine, uploadService services.UploadServiceInterface, uploadDir string) {
	router.POST("/api/v1/upload", func(c *gin.Context) { UploadImage(c, uploadService) })
	router.Static("/uploads", uploadDir)
}

func UploadImage(c *gin.Context, uploadService services.UploadServiceInterface) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	path, err := uploadService.SaveImage(data, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "File upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"file_path": path})
}
