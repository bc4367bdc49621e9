package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"GeoConsole/internal/middleware"
	"GeoConsole/internal/model"
	"GeoConsole/internal/service"
)

// errorBody is the JSON error contract: {"code": ..., "message": ...}.
type errorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// listBody is the {"data": [...]} envelope used by the studio list routes.
type listBody[T any] struct {
	Data []T `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Code: code, Message: message})
}

// writeLookupError maps a repo lookup failure to 404 or 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "", "not found")
		return
	}
	writeError(w, http.StatusInternalServerError, "", "internal error")
}

// requireUser rejects unauthenticated requests.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "", "unauthorized")
	}
	return userID, ok
}

// ---- DTOs (wire shapes) ----

type seriesDTO struct {
	SeriesID        string     `json:"series_id"`
	Name            string     `json:"name"`
	Code            string     `json:"code,omitempty"`
	DisplayID       string     `json:"display_id,omitempty"`
	TotalCount      int        `json:"total_count"`
	RegisteredCount int        `json:"registered_count"`
	ShippedAt       *time.Time `json:"shipped_at,omitempty"`
}

func toSeriesDTO(s service.SeriesSummary) seriesDTO {
	return seriesDTO{
		SeriesID:        s.ID,
		Name:            s.Name,
		Code:            s.Code,
		DisplayID:       s.DisplayID,
		TotalCount:      s.TotalCount,
		RegisteredCount: s.RegisteredCount,
		ShippedAt:       s.ShippedAt,
	}
}

type assetDTO struct {
	AssetID  string `json:"asset_id"`
	DinaID   string `json:"dina_id"`
	Edition  int    `json:"edition"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url,omitempty"`
}

func toAssetDTO(a model.Asset) assetDTO {
	return assetDTO{
		AssetID:  a.ID,
		DinaID:   a.DinaID,
		Edition:  a.Edition,
		Status:   a.Status,
		ImageURL: a.ImageURL,
	}
}

func toAssetDTOs(assets []model.Asset) []assetDTO {
	out := make([]assetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, toAssetDTO(a))
	}
	return out
}

type seriesRefDTO struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

type assetRefDTO struct {
	DinaID  string `json:"dina_id"`
	Edition int    `json:"edition"`
}

type shipmentAssetDTO struct {
	AssetID    string       `json:"asset_id"`
	FileName   string       `json:"file_name"`
	FileSHA256 string       `json:"file_sha256"`
	Asset      *assetRefDTO `json:"asset,omitempty"`
}

type shipmentDTO struct {
	ShipmentID string             `json:"shipment_id"`
	DisplayID  string             `json:"display_id"`
	SeriesID   string             `json:"series_id"`
	AssetCount int                `json:"asset_count"`
	Status     string             `json:"status"`
	ZipSHA256  string             `json:"zip_sha256"`
	ZipSize    int64              `json:"zip_size"`
	CreatedAt  time.Time          `json:"created_at"`
	ShippedAt  *time.Time         `json:"shipped_at,omitempty"`
	VoidedAt   *time.Time         `json:"voided_at,omitempty"`
	VoidReason string             `json:"void_reason,omitempty"`
	Series     *seriesRefDTO      `json:"series,omitempty"`
	Assets     []shipmentAssetDTO `json:"shipmentAssets,omitempty"`
}

func toShipmentDTO(sh *model.Shipment) shipmentDTO {
	dto := shipmentDTO{
		ShipmentID: sh.ID,
		DisplayID:  sh.DisplayID,
		SeriesID:   sh.SeriesID,
		AssetCount: sh.AssetCount,
		Status:     sh.Status,
		ZipSHA256:  sh.ZipSHA256,
		ZipSize:    sh.ZipSize,
		CreatedAt:  sh.CreatedAt,
		ShippedAt:  sh.ShippedAt,
		VoidedAt:   sh.VoidedAt,
		VoidReason: sh.VoidReason,
	}
	if sh.Series != nil {
		dto.Series = &seriesRefDTO{Name: sh.Series.Name, Code: sh.Series.Code}
	}
	for _, sa := range sh.Assets {
		item := shipmentAssetDTO{
			AssetID:    sa.AssetID,
			FileName:   sa.FileName,
			FileSHA256: sa.FileSHA256,
		}
		if sa.Asset != nil {
			item.Asset = &assetRefDTO{DinaID: sa.Asset.DinaID, Edition: sa.Asset.Edition}
		}
		dto.Assets = append(dto.Assets, item)
	}
	return dto
}
