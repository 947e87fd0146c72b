package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elrefaeey/ahmedelrefaey/internal/models"
	"github.com/elrefaeey/ahmedelrefaey/internal/supabase"
)

// 5MB is plenty for a project card image.
const maxImageSize = 5 << 20

// UploadHandler pushes admin-selected project images to the storage bucket
// and hands back the public URL for the draft's image_url field.
type UploadHandler struct {
	storage *supabase.StorageClient
}

func NewUploadHandler(storage *supabase.StorageClient) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// UploadImage godoc
// @Summary     Upload project image
// @Description Stores an image in the public bucket and returns its URL
// @Tags        admin
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "Image file"
// @Success     200 {object} models.UploadResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     502 {object} models.ErrorResponse
// @Router      /api/v1/admin/images [post]
func (h *UploadHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing image file"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read image file"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	url, err := h.storage.UploadProjectImage(fileHeader.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "failed to upload image",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{ImageURL: url})
}
