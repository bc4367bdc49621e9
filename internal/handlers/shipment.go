package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GeoConsole/internal/config"
	"GeoConsole/internal/service"
)

// 출고 생성 충돌 시 클라이언트가 분기하는 에러 코드
const errCodeAlreadyShipped = "ASSET_ALREADY_SHIPPED_OR_IN_SHIPMENT"

// ShipmentHandler serves the shipment lifecycle routes.
type ShipmentHandler struct {
	ShipmentService *service.ShipmentService
	Logger          *zap.SugaredLogger
	Config          *config.Config
}

func NewShipmentHandler(shipmentService *service.ShipmentService, logger *zap.SugaredLogger, cfg *config.Config) *ShipmentHandler {
	return &ShipmentHandler{ShipmentService: shipmentService, Logger: logger, Config: cfg}
}

func (h *ShipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	list, err := h.ShipmentService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("ListShipments: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}

	out := make([]shipmentDTO, 0, len(list))
	for i := range list {
		out = append(out, toShipmentDTO(&list[i]))
	}
	writeJSON(w, http.StatusOK, listBody[shipmentDTO]{Data: out})
}

type createShipmentRequest struct {
	SeriesID string   `json:"seriesId"`
	AssetIDs []string `json:"assetIds"`
}

func (h *ShipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req createShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "", "invalid request")
		return
	}

	sh, err := h.ShipmentService.Create(r.Context(), req.SeriesID, req.AssetIDs)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssetAlreadyShipped):
			writeError(w, http.StatusConflict, errCodeAlreadyShipped, "이미 출고되었거나 출고에 포함된 자산입니다")
		case errors.Is(err, service.ErrEmptyShipment),
			errors.Is(err, service.ErrAssetNotPrinted),
			errors.Is(err, service.ErrAssetNotInSeries):
			writeError(w, http.StatusBadRequest, "", err.Error())
		default:
			h.Logger.Errorw("CreateShipment: service error", "series_id", req.SeriesID, "error", err)
			writeLookupError(w, err)
		}
		return
	}
	writeJSON(w, http.StatusCreated, toShipmentDTO(sh))
}

func (h *ShipmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	sh, err := h.ShipmentService.Get(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShipmentDTO(sh))
}

type confirmRequest struct {
	RecipientEmail string `json:"recipientEmail"`
}

type confirmResponse struct {
	shipmentDTO
	EmailSent bool `json:"emailSent"`
}

func (h *ShipmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "", "invalid request")
		return
	}
	if req.RecipientEmail == "" {
		writeError(w, http.StatusBadRequest, "", "recipientEmail is required")
		return
	}

	// 이메일 본문에 넣을 다운로드 링크
	path, err := h.ShipmentService.ArchivePath(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	sh, emailSent, err := h.ShipmentService.Confirm(r.Context(), id, req.RecipientEmail, h.absoluteURL(r, path))
	if err != nil {
		if errors.Is(err, service.ErrInvalidShipmentStatus) {
			writeError(w, http.StatusConflict, "", "READY 상태의 출고만 확정할 수 있습니다")
			return
		}
		h.Logger.Errorw("ConfirmShipment: service error", "shipment_id", id, "error", err)
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmResponse{shipmentDTO: toShipmentDTO(sh), EmailSent: emailSent})
}

type voidRequest struct {
	VoidReason string `json:"voidReason"`
}

func (h *ShipmentHandler) Void(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	var req voidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "", "invalid request")
		return
	}
	if req.VoidReason == "" {
		writeError(w, http.StatusBadRequest, "", "voidReason is required")
		return
	}

	sh, err := h.ShipmentService.Void(r.Context(), id, req.VoidReason)
	if err != nil {
		if errors.Is(err, service.ErrInvalidShipmentStatus) {
			writeError(w, http.StatusConflict, "", "SHIPPED 상태의 출고만 무효화할 수 있습니다")
			return
		}
		h.Logger.Errorw("VoidShipment: service error", "shipment_id", id, "error", err)
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toShipmentDTO(sh))
}

type downloadURLResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// DownloadURL issues a short-lived tokenized URL for the shipment archive.
func (h *ShipmentHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	id := chi.URLParam(r, "id")
	path, err := h.ShipmentService.ArchivePath(r.Context(), id)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, downloadURLResponse{DownloadURL: h.absoluteURL(r, path)})
}

// Archive streams the shipment zip. Auth is the query token, not the
// bearer header.
func (h *ShipmentHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusUnauthorized, "", "missing token")
		return
	}

	name, data, err := h.ShipmentService.Archive(r.Context(), id, token)
	if err != nil {
		writeError(w, http.StatusForbidden, "", "invalid or expired token")
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *ShipmentHandler) absoluteURL(r *http.Request, path string) string {
	scheme := "http"
	if h.Config.EnableHTTPS || r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, r.Host, path)
}
