package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"csatapi/internal/errors"
	"csatapi/internal/service"
)

// ReportHandler serves the aggregate satisfaction report.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport godoc
// @Summary Aggregate satisfaction report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Report
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /report [get]
func (h *ReportHandler) GetReport(c echo.Context) error {
	report, err := h.reportService.ComputeReport(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, report)
}

// mapServiceError converts a domain error to an echo HTTP error.
func mapServiceError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
