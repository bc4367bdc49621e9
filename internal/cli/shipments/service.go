// Package shipments wraps the shipment endpoint group: eligible series,
// PRINTED assets, creation, detail, confirm, void and download-URL issuance.
package shipments

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"GeoConsole/internal/cli/api"
	"GeoConsole/internal/cli/model"
)

type Service struct {
	api *api.Client
}

func NewService(c *api.Client) *Service {
	return &Service{api: c}
}

// listEnvelope is the {data: [...]} wrapper used by /series and /assets.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// Series lists shipment-eligible series.
func (s *Service) Series(ctx context.Context) ([]model.Series, error) {
	var out listEnvelope[model.Series]
	if err := s.api.GetJSON(ctx, "/series", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// PrintedAssets lists a series' assets in PRINTED status, the only ones
// eligible for shipment packaging.
func (s *Service) PrintedAssets(ctx context.Context, seriesID string) ([]model.Asset, error) {
	var out listEnvelope[model.Asset]
	path := fmt.Sprintf("/assets?seriesId=%s&printStatus=%s", seriesID, model.StatusPrinted)
	if err := s.api.GetJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Create requests a new shipment over the given assets.
func (s *Service) Create(ctx context.Context, seriesID string, assetIDs []string) error {
	body := map[string]any{"seriesId": seriesID, "assetIds": assetIDs}
	return s.api.PostJSON(ctx, "/shipments", body, nil)
}

// Get fetches a shipment's detail including contained assets.
func (s *Service) Get(ctx context.Context, shipmentID string) (model.Shipment, error) {
	var out model.Shipment
	if err := s.api.GetJSON(ctx, "/shipments/"+shipmentID, &out); err != nil {
		return model.Shipment{}, err
	}
	return out, nil
}

// Confirm requests the READY→SHIPPED transition and reports whether the
// notification email went out.
func (s *Service) Confirm(ctx context.Context, shipmentID, recipientEmail string) (emailSent bool, err error) {
	body := map[string]string{"recipientEmail": recipientEmail}
	var out struct {
		EmailSent bool `json:"emailSent"`
	}
	if err := s.api.PatchJSON(ctx, "/shipments/"+shipmentID+"/confirm", body, &out); err != nil {
		return false, err
	}
	return out.EmailSent, nil
}

// Void requests the SHIPPED→VOID transition with a recorded reason.
func (s *Service) Void(ctx context.Context, shipmentID, reason string) error {
	body := map[string]string{"voidReason": reason}
	return s.api.PatchJSON(ctx, "/shipments/"+shipmentID+"/void", body, nil)
}

// DownloadZip asks the API for a download URL, fetches it, and saves the
// bundle as <name>.zip in dir.
func (s *Service) DownloadZip(ctx context.Context, dir, shipmentID, name string) (string, error) {
	var out struct {
		DownloadURL string `json:"downloadUrl"`
	}
	if err := s.api.GetJSON(ctx, "/shipments/"+shipmentID+"/download", &out); err != nil {
		return "", err
	}
	b, err := s.api.DownloadURL(ctx, out.DownloadURL)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("download dir: %w", err)
	}
	path := filepath.Join(dir, name+".zip")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
