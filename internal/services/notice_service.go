package services

import (
	"context"

	"github.com/nakochan/the-kokoa-engine/domain"
)

const noticesPerPage = 10

// NoticeServiceImpl implements domain.NoticeService
type NoticeServiceImpl struct {
	noticeRepo domain.NoticeRepository
}

// NewNoticeService creates a new notice service
func NewNoticeService(noticeRepo domain.NoticeRepository) domain.NoticeService {
	return &NoticeServiceImpl{noticeRepo: noticeRepo}
}

// Count implements domain.NoticeService
func (s *NoticeServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.noticeRepo.Count(ctx)
}

// List implements domain.NoticeService. Pages are 1-based; anything
// below 1 is clamped to the first page.
func (s *NoticeServiceImpl) List(ctx context.Context, page int) ([]*domain.Notice, error) {
	if page < 1 {
		page = 1
	}
	return s.noticeRepo.List(ctx, (page-1)*noticesPerPage, noticesPerPage)
}
