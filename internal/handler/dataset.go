// internal/handler/dataset.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rushilcs/data-viewer/internal/middleware"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/service"
)

type DatasetHandler struct {
	datasetService *service.DatasetService
	ingestService  *service.IngestService
}

func NewDatasetHandler(datasetService *service.DatasetService, ingestService *service.IngestService) *DatasetHandler {
	return &DatasetHandler{
		datasetService: datasetService,
		ingestService:  ingestService,
	}
}

func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasets, err := h.datasetService.List(r.Context(), user)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	if datasets == nil {
		datasets = []*model.Dataset{}
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":       true,
		"datasets": datasets,
	})
}

func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())

	var input service.CreateDraftInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	dataset, err := h.ingestService.CreateDraft(r.Context(), user, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":      true,
		"dataset": dataset,
	})
}

func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	dataset, err := h.datasetService.Get(r.Context(), user, datasetID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"dataset": dataset,
	})
}

func (h *DatasetHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.commitManifest(w, r, true)
}

func (h *DatasetHandler) Append(w http.ResponseWriter, r *http.Request) {
	h.commitManifest(w, r, false)
}

func (h *DatasetHandler) commitManifest(w http.ResponseWriter, r *http.Request, publish bool) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	var manifest service.Manifest
	if err := json.NewDecoder(r.Body).Decode(&manifest); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	var err error
	if publish {
		err = h.ingestService.Publish(r.Context(), user, datasetID, manifest)
	} else {
		err = h.ingestService.Append(r.Context(), user, datasetID, manifest)
	}
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *DatasetHandler) TypeCounts(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	counts, err := h.datasetService.TypeCounts(r.Context(), user, datasetID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"counts": counts,
	})
}

func (h *DatasetHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	q := r.URL.Query()
	input := service.ItemListInput{
		Type:   q.Get("type"),
		Query:  q.Get("q"),
		Cursor: q.Get("cursor"),
	}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		input.Limit = n
	}
	if t, ok := parseTimeParam(w, q.Get("created_after"), "created_after"); !ok {
		return
	} else if t != nil {
		input.CreatedAfter = t
	}
	if t, ok := parseTimeParam(w, q.Get("created_before"), "created_before"); !ok {
		return
	} else if t != nil {
		input.CreatedBefore = t
	}

	page, err := h.datasetService.ListItems(r.Context(), user, datasetID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":          true,
		"items":       page.Items,
		"next_cursor": page.NextCursor,
	})
}

func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func parseTimeParam(w http.ResponseWriter, raw, name string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	return &t, true
}
