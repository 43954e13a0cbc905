// internal/handler/share.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rushilcs/data-viewer/internal/middleware"
	"github.com/rushilcs/data-viewer/internal/service"
)

type ShareHandler struct {
	shareService *service.ShareService
}

func NewShareHandler(shareService *service.ShareService) *ShareHandler {
	return &ShareHandler{shareService: shareService}
}

func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	shares, err := h.shareService.List(r.Context(), user, datasetID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"shares": shares,
	})
}

func (h *ShareHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	var input service.AddShareInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	out, err := h.shareService.Add(r.Context(), user, datasetID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	status := http.StatusOK
	if out.Created {
		status = http.StatusCreated
	}
	respondWithJSON(w, status, map[string]interface{}{
		"ok":    true,
		"share": out,
	})
}

func (h *ShareHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}
	targetUserID, ok := parseUUIDParam(w, r, "userID")
	if !ok {
		return
	}

	if err := h.shareService.Remove(r.Context(), user, datasetID, targetUserID); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
