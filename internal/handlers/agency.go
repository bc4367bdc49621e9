package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"GeoConsole/internal/model"
	"GeoConsole/internal/service"
)

// AgencyHandler serves the /agency/* routes: series browsing, activation,
// downloads and the dashboard.
type AgencyHandler struct {
	AgencyService *service.AgencyService
	Logger        *zap.SugaredLogger
}

func NewAgencyHandler(agencyService *service.AgencyService, logger *zap.SugaredLogger) *AgencyHandler {
	return &AgencyHandler{AgencyService: agencyService, Logger: logger}
}

func (h *AgencyHandler) ListSeries(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	list, err := h.AgencyService.Series(r.Context())
	if err != nil {
		h.Logger.Errorw("AgencySeries: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}

	out := make([]seriesDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toSeriesDTO(s))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AgencyHandler) SeriesAssets(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	seriesID := chi.URLParam(r, "id")
	assets, err := h.AgencyService.SeriesAssets(r.Context(), seriesID)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAssetDTOs(assets))
}

type activateRequest struct {
	AssetIDs []string `json:"asset_ids"`
}

type activateResponse struct {
	Activated int64 `json:"activated"`
}

func (h *AgencyHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "", "invalid request")
		return
	}

	n, err := h.AgencyService.Activate(r.Context(), req.AssetIDs)
	if err != nil {
		if errors.Is(err, service.ErrNoAssetsSelected) {
			writeError(w, http.StatusBadRequest, "", "asset_ids is required")
			return
		}
		h.Logger.Errorw("Activate: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, activateResponse{Activated: n})
}

type dashboardResponse struct {
	TotalSeries         int                   `json:"totalSeries"`
	UnregisteredAssets  int                   `json:"unregisteredAssets"`
	RegisteredAssets    int                   `json:"registeredAssets"`
	RecentRegistrations int                   `json:"recentRegistrations"`
	RecentActivations   []recentActivationDTO `json:"recentActivations"`
}

type recentActivationDTO struct {
	ID          string     `json:"id"`
	SeriesName  string     `json:"series_name"`
	Count       int        `json:"count"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

func (h *AgencyHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	d, err := h.AgencyService.Dashboard(r.Context())
	if err != nil {
		h.Logger.Errorw("Dashboard: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}

	resp := dashboardResponse{
		TotalSeries:         d.TotalSeries,
		UnregisteredAssets:  d.UnregisteredAssets,
		RegisteredAssets:    d.RegisteredAssets,
		RecentRegistrations: d.RecentRegistrations,
		RecentActivations:   make([]recentActivationDTO, 0, len(d.RecentActivations)),
	}
	for _, a := range d.RecentActivations {
		resp.RecentActivations = append(resp.RecentActivations, recentActivationDTO{
			ID:          a.ID,
			SeriesName:  seriesNameOf(a),
			Count:       1,
			ActivatedAt: a.ActivatedAt,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func seriesNameOf(a model.Asset) string {
	if a.Series != nil {
		return a.Series.Name
	}
	return ""
}

func (h *AgencyHandler) DownloadAsset(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	assetID := chi.URLParam(r, "assetId")
	name, data, err := h.AgencyService.AssetArchive(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, service.ErrAssetUnregistered) {
			writeError(w, http.StatusConflict, "", "등록되지 않은 자산은 다운로드할 수 없습니다")
			return
		}
		writeLookupError(w, err)
		return
	}
	streamZip(w, name, data)
}

func (h *AgencyHandler) DownloadSeries(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	seriesID := chi.URLParam(r, "seriesId")
	name, data, err := h.AgencyService.SeriesArchive(r.Context(), seriesID)
	if err != nil {
		if errors.Is(err, service.ErrAssetUnregistered) {
			writeError(w, http.StatusConflict, "", "등록된 자산이 없습니다")
			return
		}
		writeLookupError(w, err)
		return
	}
	streamZip(w, name, data)
}

func streamZip(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
