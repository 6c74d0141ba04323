package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/swiftbank/bank_records_app/internal/apperrors"
)

// respondServiceError maps the error taxonomy onto status codes at the
// request boundary. Internal detail is logged, never returned.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, notFoundMsg, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn(notFoundMsg)
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// bindStrictJSON decodes the body rejecting unknown fields, then runs the
// binding validators. Partial-update endpoints use it so arbitrary payload
// fields can never be merged into a record.
func bindStrictJSON(c *gin.Context, obj any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(obj); err != nil {
		return err
	}
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
			}
			return fmt.Errorf("validation failed on %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}
