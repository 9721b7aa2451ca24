package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// CloudHandlers handles image upload HTTP requests
type CloudHandlers struct {
	imageStore domain.ImageStore
}

// NewCloudHandlers creates new cloud handlers
func NewCloudHandlers(imageStore domain.ImageStore) *CloudHandlers {
	return &CloudHandlers{imageStore: imageStore}
}

// Upload handles POST /api/cloud. Accepts a multipart form with a
// single "file" part, stores the processed image and its thumbnail.
func (h *CloudHandlers) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}
	defer f.Close()

	stored, err := h.imageStore.Save(f)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"filename": stored.Filename})
}
