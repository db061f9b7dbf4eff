package service

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	apperrors "csatapi/internal/errors"
	"csatapi/internal/model"
	"csatapi/internal/repository"
	"csatapi/internal/storage"
)

// ScreenshotUpload carries an optional screenshot attached to a submission.
type ScreenshotUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// SubmitFeedbackInput is one incoming feedback submission.
type SubmitFeedbackInput struct {
	Name        string
	Email       string
	Rating      float64
	Description *string
	IPAddress   string
	Screenshot  *ScreenshotUpload
}

// FeedbackService handles feedback submissions.
type FeedbackService interface {
	Submit(ctx context.Context, input SubmitFeedbackInput) (*model.Feedback, error)
}

type feedbackService struct {
	repo  repository.FeedbackRepository
	blobs storage.BlobStore
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(repo repository.FeedbackRepository, blobs storage.BlobStore) FeedbackService {
	return &feedbackService{
		repo:  repo,
		blobs: blobs,
	}
}

// Submit stores the screenshot (when present) and persists the entry. A failed
// screenshot upload does not fail the submission; the entry is saved without a
// reference.
func (s *feedbackService) Submit(ctx context.Context, input SubmitFeedbackInput) (*model.Feedback, error) {
	feedback := &model.Feedback{
		Name:        input.Name,
		Email:       input.Email,
		Rating:      input.Rating,
		Description: input.Description,
		IPAddress:   input.IPAddress,
	}

	if input.Screenshot != nil && s.blobs != nil {
		key := uuid.New().String() + filepath.Ext(input.Screenshot.Filename)
		if ref, err := s.blobs.Upload(ctx, key, input.Screenshot.ContentType, input.Screenshot.Body); err == nil {
			feedback.Screenshot = ref
		}
	}

	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, apperrors.ErrStoreUnavailable
	}

	return feedback, nil
}
