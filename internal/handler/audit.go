// internal/handler/audit.go
package handler

import (
	"net/http"
	"strconv"

	"github.com/rushilcs/data-viewer/internal/domain"
	"github.com/rushilcs/data-viewer/internal/middleware"
	"github.com/rushilcs/data-viewer/internal/model"
	"github.com/rushilcs/data-viewer/internal/service"
)

type AuditHandler struct {
	auditService *service.AuditService
}

func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List returns the org's audit history. Admin only.
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	if user.Role != model.RoleAdmin {
		respondWithServiceError(w, r, domain.ErrUnauthorized)
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	events, total, err := h.auditService.List(r.Context(), user.OrgID, offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":     true,
		"events": events,
		"total":  total,
	})
}
