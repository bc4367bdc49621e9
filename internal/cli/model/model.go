package model

import "time"

// Asset registration statuses. The client never transitions a status
// directly; it requests a transition and re-reads.
const (
	StatusUnregistered = "UNREGISTERED"
	StatusRegistered   = "REGISTERED"
	StatusPrinted      = "PRINTED"
)

// Shipment statuses. Transitions (confirm, void) are server-authoritative.
const (
	ShipmentReady   = "READY"
	ShipmentShipped = "SHIPPED"
	ShipmentVoid    = "VOID"
)

// ErrCodeAlreadyShipped is the business-rule conflict returned when a
// shipment is created over assets that are already part of a shipment.
const ErrCodeAlreadyShipped = "ASSET_ALREADY_SHIPPED_OR_IN_SHIPMENT"

// Series is a batch of related assets shipped/registered together.
type Series struct {
	SeriesID        string     `json:"series_id"`
	Name            string     `json:"name"`
	Code            string     `json:"code,omitempty"`
	DisplayID       string     `json:"display_id,omitempty"`
	TotalCount      int        `json:"total_count"`
	RegisteredCount int        `json:"registered_count"`
	ShippedAt       *time.Time `json:"shipped_at,omitempty"`
}

// Asset is an individually trackable unit within a series.
type Asset struct {
	AssetID  string `json:"asset_id"`
	DinaID   string `json:"dina_id"`
	Edition  int    `json:"edition"`
	Status   string `json:"status"`
	ImageURL string `json:"image_url,omitempty"`
}

// Shipment is a packaged, integrity-hashed bundle of PRINTED assets.
type Shipment struct {
	ShipmentID string          `json:"shipment_id"`
	DisplayID  string          `json:"display_id"`
	SeriesID   string          `json:"series_id"`
	AssetCount int             `json:"asset_count"`
	Status     string          `json:"status"`
	ZipSHA256  string          `json:"zip_sha256"`
	ZipSize    int64           `json:"zip_size"`
	CreatedAt  time.Time       `json:"created_at"`
	ShippedAt  *time.Time      `json:"shipped_at,omitempty"`
	VoidedAt   *time.Time      `json:"voided_at,omitempty"`
	VoidReason string          `json:"void_reason,omitempty"`
	Series     *SeriesRef      `json:"series,omitempty"`
	Assets     []ShipmentAsset `json:"shipmentAssets,omitempty"`
}

// SeriesRef is the embedded series summary on a shipment.
type SeriesRef struct {
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// ShipmentAsset is the read-only join row shown in the shipment detail.
type ShipmentAsset struct {
	AssetID    string    `json:"asset_id"`
	FileName   string    `json:"file_name"`
	FileSHA256 string    `json:"file_sha256"`
	Asset      *AssetRef `json:"asset,omitempty"`
}

// AssetRef is the embedded asset summary on a shipment asset.
type AssetRef struct {
	DinaID  string `json:"dina_id"`
	Edition int    `json:"edition"`
}

// Dashboard holds the /agency/dashboard aggregates.
type Dashboard struct {
	TotalSeries         int                `json:"totalSeries"`
	UnregisteredAssets  int                `json:"unregisteredAssets"`
	RegisteredAssets    int                `json:"registeredAssets"`
	RecentRegistrations int                `json:"recentRegistrations"`
	RecentActivations   []RecentActivation `json:"recentActivations"`
}

// RecentActivation is one row of the dashboard's recent-registration feed.
type RecentActivation struct {
	ID          string     `json:"id"`
	SeriesName  string     `json:"series_name"`
	Count       int        `json:"count"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}
