package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pres_finance_portal/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// Guidance shown to the portal user when an action's precondition is not met.
const (
	msgSelectWallet     = "Please select a wallet first."
	msgGenerateFirst    = "Please generate the report first."
	msgReportInProgress = "A report action is already in progress. Please wait."
	msgReportSubmitted  = "The report for this wallet has already been submitted."
	msgFixFields        = "Please fill in all required fields correctly."
)

// respondWithError maps a service error to its HTTP status and body.
// action completes the generic 500 message, e.g. "record transaction".
func respondWithError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var validationErr *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &validationErr):
		logger.Warn("Validation failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": msgFixFields, "fields": validationErr.FieldMap()})
	case errors.Is(err, apperrors.ErrNoWalletSelected):
		logger.Warn("No wallet selected", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": msgSelectWallet})
	case errors.Is(err, apperrors.ErrReportNotGenerated):
		logger.Warn("Report not generated", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": msgGenerateFirst})
	case errors.Is(err, apperrors.ErrReportInProgress):
		logger.Warn("Report action already in progress", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": msgReportInProgress})
	case errors.Is(err, apperrors.ErrReportAlreadySubmitted):
		logger.Warn("Report already submitted", slog.String("action", action))
		c.JSON(http.StatusConflict, gin.H{"error": msgReportSubmitted})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Request cancelled", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "Request was cancelled before " + action + " completed"})
	case errors.As(err, &appErr):
		logger.Error("Application error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		logger.Error("Unexpected error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}
