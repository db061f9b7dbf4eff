package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"csatapi/internal/service"
)

// FeedbackHandler handles public feedback submission.
type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedbackRequest represents the multipart submission form.
type SubmitFeedbackRequest struct {
	Name        string  `form:"name" validate:"required"`
	Email       string  `form:"email" validate:"required,email"`
	Rating      float64 `form:"rating" validate:"required"`
	Description string  `form:"description"`
}

// Submit godoc
// @Summary Submit a feedback entry
// @Tags feedback
// @Accept mpfd
// @Produce json
// @Param name formData string true "Submitter name"
// @Param email formData string true "Submitter email"
// @Param rating formData number true "Rating"
// @Param description formData string false "Free-text comment"
// @Param screenshot formData file false "Optional screenshot"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req SubmitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.SubmitFeedbackInput{
		Name:      req.Name,
		Email:     req.Email,
		Rating:    req.Rating,
		IPAddress: c.RealIP(),
	}
	if req.Description != "" {
		input.Description = &req.Description
	}

	if file, err := c.FormFile("screenshot"); err == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid screenshot upload")
		}
		defer src.Close()
		input.Screenshot = &service.ScreenshotUpload{
			Filename:    file.Filename,
			ContentType: file.Header.Get(echo.HeaderContentType),
			Body:        src,
		}
	}

	feedback, err := h.feedbackService.Submit(c.Request().Context(), input)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "feedback received",
		"id":      feedback.ID,
	})
}
