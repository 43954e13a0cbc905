// internal/handler/asset.go
package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/rushilcs/data-viewer/internal/config"
	"github.com/rushilcs/data-viewer/internal/middleware"
	"github.com/rushilcs/data-viewer/internal/service"
)

type AssetHandler struct {
	ingestService *service.IngestService
	assetService  *service.AssetService
	maxBodyBytes  int64
}

func NewAssetHandler(ingestService *service.IngestService, assetService *service.AssetService, cfg *config.Config) *AssetHandler {
	max := cfg.Upload.MaxImageBytes
	for _, n := range []int64{cfg.Upload.MaxVideoBytes, cfg.Upload.MaxAudioBytes, cfg.Upload.MaxOtherBytes} {
		if n > max {
			max = n
		}
	}
	return &AssetHandler{
		ingestService: ingestService,
		assetService:  assetService,
		maxBodyBytes:  max,
	}
}

type AllocateRequest struct {
	Files []service.AssetSpec `json:"files"`
}

func (h *AssetHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	datasetID, ok := parseUUIDParam(w, r, "datasetID")
	if !ok {
		return
	}

	var req AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	slots, err := h.ingestService.AllocateAssets(r.Context(), user, datasetID, req.Files)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"ok":     true,
		"assets": slots,
	})
}

// Upload accepts the raw byte body for an allocated slot. Authorization is a
// publisher session or the minted upload token; the service decides.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	assetID, ok := parseUUIDParam(w, r, "assetID")
	if !ok {
		return
	}

	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes+1)
	data, err := io.ReadAll(body)
	if err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	user := middleware.UserFromContext(r.Context())
	token := r.URL.Query().Get("token")
	if err := h.ingestService.AcceptUpload(r.Context(), user, token, assetID, data); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *AssetHandler) SignURL(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	assetID, ok := parseUUIDParam(w, r, "assetID")
	if !ok {
		return
	}

	signed, err := h.assetService.SignURL(r.Context(), user, assetID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":         true,
		"signed_url": signed,
	})
}

// Stream serves asset bytes to anyone holding a fresh download token.
func (h *AssetHandler) Stream(w http.ResponseWriter, r *http.Request) {
	assetID, ok := parseUUIDParam(w, r, "assetID")
	if !ok {
		return
	}

	rc, asset, err := h.assetService.Stream(r.Context(), assetID, r.URL.Query().Get("token"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(asset.ByteSize, 10))
	w.WriteHeader(http.StatusOK)
	io.Copy(w, rc)
}
