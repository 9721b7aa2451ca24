package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/nakochan/the-kokoa-engine/domain"
)

// NoticeRepositoryImpl implements domain.NoticeRepository using GORM
type NoticeRepositoryImpl struct {
	db *gorm.DB
}

// DBNotice represents the database model for Notice
type DBNotice struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255"`
	Content   string
	CreatedAt time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (DBNotice) TableName() string {
	return "notices"
}

// NewNoticeRepository creates a new notice repository
func NewNoticeRepository(db *gorm.DB) domain.NoticeRepository {
	return &NoticeRepositoryImpl{db: db}
}

// Count implements domain.NoticeRepository
func (r *NoticeRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBNotice{}).Count(&count).Error
	return count, err
}

// List implements domain.NoticeRepository, newest first
func (r *NoticeRepositoryImpl) List(ctx context.Context, offset, limit int) ([]*domain.Notice, error) {
	var dbNotices []DBNotice
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&dbNotices).Error
	if err != nil {
		return nil, err
	}

	notices := make([]*domain.Notice, 0, len(dbNotices))
	for i := range dbNotices {
		n := dbNotices[i]
		notices = append(notices, &domain.Notice{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return notices, nil
}
