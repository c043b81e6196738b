package routes

import (
	"errors"
	"net/http"
	"strconv"

	"gg-note/ggnote/database"
	"gg-note/ggnote/services"

	"github.com/gin-gonic/gin"
)

func RegisterFolderRoutes(router *gin.Engine, db *database.Database, folderService services.FolderServiceInterface) {
	group := router.Group("/api/v1/folders")
	{
		group.GET("", func(c *gin.Context) { GetFolders(c, db, folderService) })
		group.POST("", func(c *gin.Context) { CreateFolder(c, db, folderService) })
		group.DELETE("/:id", func(c *gin.Context) { DeleteFolder(c, db, folderService) })

		// The web shell's original API deleted with a JSON body instead of
		// a path parameter; kept for compatibility.
		group.DELETE("", func(c *gin.Context) { DeleteFolderByBody(c, db, folderService) })
	}
}

func GetFolders(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	folders, err := folderService.GetFolders(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}
	c.JSON(http.StatusOK, folders)
}

func CreateFolder(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder name"})
		return
	}

	folder, err := folderService.CreateFolder(db, body.Name)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder name"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		return
	}
	c.JSON(http.StatusCreated, folder)
}

func DeleteFolder(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}
	deleteFolderByID(c, db, folderService, uint(id))
}

func DeleteFolderByBody(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface) {
	var body struct {
		ID *uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid folder ID"})
		return
	}
	deleteFolderByID(c, db, folderService, *body.ID)
}

func deleteFolderByID(c *gin.Context, db *database.Database, folderService services.FolderServiceInterface, id uint) {
	if err := folderService.DeleteFolder(db, id); err != nil {
		if errors.Is(err, services.ErrFolderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete folder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Folder deleted"})
}
