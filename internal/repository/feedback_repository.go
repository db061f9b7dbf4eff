package repository

import (
	"context"

	"gorm.io/gorm"

	"csatapi/internal/model"
)

// FeedbackRepository defines feedback persistence operations. The report side
// only ever reads the full collection; ordering is imposed by the caller, not
// the store.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	ListAll(ctx context.Context) ([]model.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository.
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create inserts a new feedback entry. ID and CreatedAt are assigned by the store.
func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// ListAll returns every feedback entry in storage order.
func (r *feedbackRepository) ListAll(ctx context.Context) ([]model.Feedback, error) {
	var entries []model.Feedback
	if err := r.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
