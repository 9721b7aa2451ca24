package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// NoticeHandlers handles announcement HTTP requests
type NoticeHandlers struct {
	noticeSvc domain.NoticeService
}

// NewNoticeHandlers creates new notice handlers
func NewNoticeHandlers(noticeSvc domain.NoticeService) *NoticeHandlers {
	return &NoticeHandlers{noticeSvc: noticeSvc}
}

// NoticeListRequest represents a paged notice listing request
type NoticeListRequest struct {
	Page int `json:"page"`
}

// Count handles GET /api/notice
func (h *NoticeHandlers) Count(c *gin.Context) {
	count, err := h.noticeSvc.Count(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"count": count})
}

// List handles POST /api/notice/list
func (h *NoticeHandlers) List(c *gin.Context) {
	var req NoticeListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, domain.ErrInvalidRequest)
		return
	}

	notices, err := h.noticeSvc.List(c.Request.Context(), req.Page)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, gin.H{"notices": notices})
}
