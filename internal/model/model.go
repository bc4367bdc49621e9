package model

import "time"

// Asset lifecycle statuses. Activation moves UNREGISTERED to REGISTERED;
// production moves REGISTERED to PRINTED. Only PRINTED assets are
// shipment-eligible.
const (
	AssetUnregistered = "UNREGISTERED"
	AssetRegistered   = "REGISTERED"
	AssetPrinted      = "PRINTED"
)

// Shipment statuses.
const (
	ShipmentReady   = "READY"
	ShipmentShipped = "SHIPPED"
	ShipmentVoid    = "VOID"
)

// User is an agency operator account.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt hash

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Series is a batch of related assets shipped and registered together.
type Series struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Name      string `gorm:"not null;index"`
	Code      string
	DisplayID string
	ShippedAt *time.Time

	Assets []Asset `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Asset is an individually trackable unit within a series.
type Asset struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	SeriesID string `gorm:"not null;index"`
	Series   *Series

	DinaID      string `gorm:"uniqueIndex;not null"`
	Edition     int    `gorm:"not null"`
	Status      string `gorm:"not null;default:UNREGISTERED;index"`
	FileName    string
	FileSHA256  string
	ImageURL    string
	ActivatedAt *time.Time

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Shipment is a packaged, integrity-hashed bundle of PRINTED assets.
type Shipment struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	DisplayID string `gorm:"uniqueIndex;not null"`
	SeriesID  string `gorm:"not null;index"`
	Series    *Series

	AssetCount int    `gorm:"not null"`
	Status     string `gorm:"not null;default:READY;index"`
	ZipSHA256  string `gorm:"not null"`
	ZipSize    int64  `gorm:"not null"`
	ZipData    []byte // dev server keeps the archive inline

	RecipientEmail string
	VoidReason     string
	ShippedAt      *time.Time
	VoidedAt       *time.Time

	Assets []ShipmentAsset `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// ShipmentAsset is the join row recording each packaged file.
type ShipmentAsset struct {
	ShipmentID string `gorm:"primaryKey;type:uuid"`
	AssetID    string `gorm:"primaryKey;type:uuid"`
	Asset      *Asset

	FileName   string `gorm:"not null"`
	FileSHA256 string `gorm:"not null"`
}
