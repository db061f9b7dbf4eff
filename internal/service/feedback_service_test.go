package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "csatapi/internal/errors"
	"csatapi/internal/model"
)

// fakeBlobStore records uploads and optionally fails.
type fakeBlobStore struct {
	ref      string
	err      error
	uploaded int
	lastKey  string
}

func (f *fakeBlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	f.uploaded++
	f.lastKey = key
	if f.err != nil {
		return "", f.err
	}
	return f.ref, nil
}

func TestFeedbackService_Submit(t *testing.T) {
	input := SubmitFeedbackInput{
		Name:      "Ada",
		Email:     "ada@example.com",
		Rating:    4.5,
		IPAddress: "203.0.113.7",
	}

	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Feedback")).Return(nil)

	svc := NewFeedbackService(mockRepo, &fakeBlobStore{})
	feedback, err := svc.Submit(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "Ada", feedback.Name)
	assert.Equal(t, "ada@example.com", feedback.Email)
	assert.Equal(t, 4.5, feedback.Rating)
	assert.Equal(t, "203.0.113.7", feedback.IPAddress)
	assert.Empty(t, feedback.Screenshot)
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_Submit_WithScreenshot(t *testing.T) {
	blobs := &fakeBlobStore{ref: "https://bucket.s3.us-east-1.amazonaws.com/shot.png"}
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.Screenshot == blobs.ref
	})).Return(nil)

	svc := NewFeedbackService(mockRepo, blobs)
	feedback, err := svc.Submit(context.Background(), SubmitFeedbackInput{
		Name:   "Ada",
		Email:  "ada@example.com",
		Rating: 5,
		Screenshot: &ScreenshotUpload{
			Filename:    "shot.png",
			ContentType: "image/png",
			Body:        strings.NewReader("png-bytes"),
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, blobs.ref, feedback.Screenshot)
	assert.Equal(t, 1, blobs.uploaded)
	assert.True(t, strings.HasSuffix(blobs.lastKey, ".png"))
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_Submit_ScreenshotFailureTolerated(t *testing.T) {
	blobs := &fakeBlobStore{err: errors.New("bucket unreachable")}
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.Screenshot == ""
	})).Return(nil)

	svc := NewFeedbackService(mockRepo, blobs)
	feedback, err := svc.Submit(context.Background(), SubmitFeedbackInput{
		Name:   "Ada",
		Email:  "ada@example.com",
		Rating: 3,
		Screenshot: &ScreenshotUpload{
			Filename:    "shot.png",
			ContentType: "image/png",
			Body:        strings.NewReader("png-bytes"),
		},
	})

	assert.NoError(t, err)
	assert.Empty(t, feedback.Screenshot)
	mockRepo.AssertExpectations(t)
}

func TestFeedbackService_Submit_StoreFailure(t *testing.T) {
	mockRepo := new(MockFeedbackRepository)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := NewFeedbackService(mockRepo, &fakeBlobStore{})
	feedback, err := svc.Submit(context.Background(), SubmitFeedbackInput{
		Name:   "Ada",
		Email:  "ada@example.com",
		Rating: 3,
	})

	assert.Nil(t, feedback)
	assert.Equal(t, apperrors.ErrStoreUnavailable, err)
}
