package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"GeoConsole/internal/model"
	"GeoConsole/internal/repo"
)

// Shipment business-rule violations. Handlers map these to HTTP codes.
var (
	ErrAssetAlreadyShipped   = errors.New("asset already shipped or in shipment")
	ErrAssetNotPrinted       = errors.New("asset is not in PRINTED status")
	ErrAssetNotInSeries      = errors.New("asset does not belong to the series")
	ErrEmptyShipment         = errors.New("shipment needs at least one asset")
	ErrInvalidShipmentStatus = errors.New("shipment status does not allow this transition")
)

const archiveTokenTTL = 5 * time.Minute

// ShipmentService implements the shipment lifecycle: create (zip packaging
// with integrity hashes), confirm (email the download link), void.
type ShipmentService struct {
	shipments repo.ShipmentRepository
	assets    repo.AssetRepository
	series    repo.SeriesRepository
	email     EmailSender
	fileRoot  string
	secret    string
}

func NewShipmentService(
	shipments repo.ShipmentRepository,
	assets repo.AssetRepository,
	series repo.SeriesRepository,
	email EmailSender,
	fileRoot, secret string,
) *ShipmentService {
	return &ShipmentService{
		shipments: shipments,
		assets:    assets,
		series:    series,
		email:     email,
		fileRoot:  fileRoot,
		secret:    secret,
	}
}

func (s *ShipmentService) List(ctx context.Context) ([]model.Shipment, error) {
	return s.shipments.ListShipments(ctx)
}

func (s *ShipmentService) Get(ctx context.Context, id string) (*model.Shipment, error) {
	return s.shipments.GetShipment(ctx, id)
}

// Create validates the assets, packages them into a zip with per-file and
// archive SHA-256 digests, and stores the shipment in READY status.
func (s *ShipmentService) Create(ctx context.Context, seriesID string, assetIDs []string) (*model.Shipment, error) {
	if len(assetIDs) == 0 {
		return nil, ErrEmptyShipment
	}
	if _, err := s.series.GetSeries(ctx, seriesID); err != nil {
		return nil, err
	}

	assets, err := s.assets.GetAssetsByIDs(ctx, assetIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Asset, len(assets))
	for _, a := range assets {
		byID[a.ID] = a
	}
	for _, id := range assetIDs {
		a, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("asset %s: not found", id)
		}
		if a.SeriesID != seriesID {
			return nil, ErrAssetNotInSeries
		}
		if a.Status != model.AssetPrinted {
			return nil, ErrAssetNotPrinted
		}
	}

	shipped, err := s.shipments.ShippedAssetIDs(ctx, assetIDs)
	if err != nil {
		return nil, err
	}
	if len(shipped) > 0 {
		return nil, ErrAssetAlreadyShipped
	}

	// package in the order the assets were selected
	entries := make([]zipEntry, 0, len(assetIDs))
	joins := make([]model.ShipmentAsset, 0, len(assetIDs))
	shipmentID := uuid.NewString()
	for _, id := range assetIDs {
		a := byID[id]
		data := assetPayload(s.fileRoot, a)
		name := assetFileName(a)
		entries = append(entries, zipEntry{Name: name, Data: data})
		joins = append(joins, model.ShipmentAsset{
			ShipmentID: shipmentID,
			AssetID:    a.ID,
			FileName:   name,
			FileSHA256: sha256Hex(data),
		})
	}

	zipData, zipSHA, err := buildZip(entries)
	if err != nil {
		return nil, err
	}

	displayID, err := s.nextDisplayID(ctx)
	if err != nil {
		return nil, err
	}

	sh := &model.Shipment{
		ID:         shipmentID,
		DisplayID:  displayID,
		SeriesID:   seriesID,
		AssetCount: len(assetIDs),
		Status:     model.ShipmentReady,
		ZipSHA256:  zipSHA,
		ZipSize:    int64(len(zipData)),
		ZipData:    zipData,
		Assets:     joins,
	}
	if err := s.shipments.CreateShipment(ctx, sh); err != nil {
		return nil, err
	}
	return s.shipments.GetShipment(ctx, shipmentID)
}

// nextDisplayID builds SHP-YYYYMMDD-NNN from today's shipment count.
func (s *ShipmentService) nextDisplayID(ctx context.Context) (string, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	n, err := s.shipments.CountShipmentsToday(ctx, dayStart)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SHP-%s-%03d", now.Format("20060102"), n+1), nil
}

// Confirm transitions READY→SHIPPED and emails the recipient a download
// link. A delivery failure does not roll the transition back; it is
// reported through emailSent.
func (s *ShipmentService) Confirm(ctx context.Context, id, recipientEmail, downloadURL string) (*model.Shipment, bool, error) {
	ok, err := s.shipments.ConfirmShipment(ctx, id, recipientEmail, time.Now())
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, ErrInvalidShipmentStatus
	}

	sh, err := s.shipments.GetShipment(ctx, id)
	if err != nil {
		return nil, false, err
	}

	body := fmt.Sprintf("출고 %s 다운로드 링크: %s\nSHA256: %s", sh.DisplayID, downloadURL, sh.ZipSHA256)
	emailSent := s.email.Send(ctx, recipientEmail, fmt.Sprintf("[GeoConsole] 출고 %s", sh.DisplayID), body) == nil
	return sh, emailSent, nil
}

// Void transitions SHIPPED→VOID, releasing the assets for re-shipment.
func (s *ShipmentService) Void(ctx context.Context, id, reason string) (*model.Shipment, error) {
	ok, err := s.shipments.VoidShipment(ctx, id, reason, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidShipmentStatus
	}
	return s.shipments.GetShipment(ctx, id)
}

type archiveClaims struct {
	jwt.RegisteredClaims
	ShipmentID string `json:"shipment_id"`
}

// ArchivePath returns the short-lived tokenized path for the shipment zip.
// 브라우저/CLI가 Authorization 헤더 없이 받을 수 있도록 토큰을 쿼리로 싣는다.
func (s *ShipmentService) ArchivePath(ctx context.Context, id string) (string, error) {
	if _, err := s.shipments.GetShipment(ctx, id); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, archiveClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(archiveTokenTTL)),
		},
		ShipmentID: id,
	})
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("/api/shipments/%s/archive?token=%s", id, signed), nil
}

// Archive validates the query token and returns the stored zip.
func (s *ShipmentService) Archive(ctx context.Context, id, rawToken string) (string, []byte, error) {
	var c archiveClaims
	token, err := jwt.ParseWithClaims(rawToken, &c, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || c.ShipmentID != id {
		return "", nil, errors.New("invalid download token")
	}

	sh, err := s.shipments.GetShipment(ctx, id)
	if err != nil {
		return "", nil, err
	}
	return sh.DisplayID + ".zip", sh.ZipData, nil
}
