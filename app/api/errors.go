package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/app/middleware"
	"github.com/product-catalog/catalog-api/models"
)

const internalErrorMessage = "internal server error"

// WriteError maps err to a status code and writes it as {"error": ...}.
// Unexpected errors are logged with their cause and reported with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	log := logger.With(
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("requestID", middleware.GetRequestID(r.Context())),
	)

	var validationErr *ValidationError
	var notFound *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		log.Info("request validation failed", zap.Any("fields", validationErr.Fields))
		JSONResponse(w, http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	case errors.Is(err, ErrMalformedBody), errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidQuery):
		log.Info("bad request", zap.Error(err))
		ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		log.Warn("resource not found", zap.Error(err))
		ErrorResponse(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, models.ErrNotFound):
		log.Warn("resource not found", zap.Error(err))
		ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrInvalidArgument):
		log.Warn("invalid argument", zap.Error(err))
		ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrConflict):
		log.Warn("conflict", zap.Error(err))
		ErrorResponse(w, http.StatusConflict, conflictMessage(err))
	default:
		log.Error("unexpected error", zap.Error(err))
		ErrorResponse(w, http.StatusInternalServerError, internalErrorMessage)
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrCategoryInUse):
		return "category still has products"
	case errors.Is(err, models.ErrDuplicateCategoryName):
		return "category name already exists"
	default:
		return "conflict"
	}
}
