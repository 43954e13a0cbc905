// internal/handler/item.go
package handler

import (
	"net/http"

	"github.com/rushilcs/data-viewer/internal/middleware"
	"github.com/rushilcs/data-viewer/internal/service"
)

type ItemHandler struct {
	datasetService *service.DatasetService
}

func NewItemHandler(datasetService *service.DatasetService) *ItemHandler {
	return &ItemHandler{datasetService: datasetService}
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	itemID, ok := parseUUIDParam(w, r, "itemID")
	if !ok {
		return
	}

	detail, err := h.datasetService.GetItem(r.Context(), user, itemID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":          true,
		"item":        detail.Item,
		"assets":      detail.Assets,
		"annotations": detail.Annotations,
		"timeline":    detail.Timeline,
		"captions":    detail.Captions,
	})
}
