// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/service"
)

type BaseResponse struct {
	Ok bool `json:"ok"`
}

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

// ManifestErrorResponse carries the full structured error list from a failed
// validate phase.
type ManifestErrorResponse struct {
	BaseResponse
	Error  string      `json:"error"`
	Errors interface{} `json:"errors"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithServiceError maps service-layer failures onto HTTP statuses.
// Authorization and existence failures arrive already collapsed to
// domain.ErrNotFound, so the mapping never re-differentiates them.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var manifestErr *service.ManifestError
	if errors.As(err, &manifestErr) {
		respondWithJSON(w, http.StatusUnprocessableEntity, ManifestErrorResponse{
			Error:  "validation failed",
			Errors: manifestErr.Errors,
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrEmptyManifest):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrDatasetNotDraft),
		errors.Is(err, domain.ErrDatasetNotPublished),
		errors.Is(err, domain.ErrDatasetNotWritable),
		errors.Is(err, domain.ErrAssetLinked):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrSizeMismatch),
		errors.Is(err, domain.ErrScanRejected):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrRateLimited):
		respondWithError(w, http.StatusTooManyRequests, "Rate limit exceeded")
	case errors.Is(err, domain.ErrIngestDisabled),
		errors.Is(err, domain.ErrNoOrganization):
		respondWithError(w, http.StatusServiceUnavailable, "Service unavailable")
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"path", r.URL.Path,
			"requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
