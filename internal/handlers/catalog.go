package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"GeoConsole/internal/service"
)

// CatalogHandler serves the studio-side series/asset list routes. Both use
// the {"data": [...]} envelope.
type CatalogHandler struct {
	AgencyService *service.AgencyService
	Logger        *zap.SugaredLogger
}

func NewCatalogHandler(agencyService *service.AgencyService, logger *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{AgencyService: agencyService, Logger: logger}
}

func (h *CatalogHandler) ListSeries(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	list, err := h.AgencyService.Series(r.Context())
	if err != nil {
		h.Logger.Errorw("ListSeries: service error", "error", err)
		writeError(w, http.StatusInternalServerError, "", "internal error")
		return
	}

	out := make([]seriesDTO, 0, len(list))
	for _, s := range list {
		out = append(out, toSeriesDTO(s))
	}
	writeJSON(w, http.StatusOK, listBody[seriesDTO]{Data: out})
}

// ListAssets filters by seriesId and optional printStatus.
func (h *CatalogHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}

	seriesID := r.URL.Query().Get("seriesId")
	if seriesID == "" {
		writeError(w, http.StatusBadRequest, "", "seriesId is required")
		return
	}
	status := r.URL.Query().Get("printStatus")

	assets, err := h.AgencyService.SeriesAssets(r.Context(), seriesID)
	if err != nil {
		h.Logger.Warnw("ListAssets: lookup failed", "series_id", seriesID, "error", err)
		writeLookupError(w, err)
		return
	}

	out := make([]assetDTO, 0, len(assets))
	for _, a := range assets {
		if status != "" && a.Status != status {
			continue
		}
		out = append(out, toAssetDTO(a))
	}
	writeJSON(w, http.StatusOK, listBody[assetDTO]{Data: out})
}
