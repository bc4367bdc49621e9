// Package agency wraps the /agency/* endpoint group: series, per-series
// assets, activation, downloads and the dashboard aggregate.
package agency

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

// Series lists the series available to the agency views.
func (s *Service) Series(ctx context.Context) ([]model.Series, error) {
	var out []model.Series
	if err := s.api.GetJSON(ctx, "/agency/series", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SeriesAssets lists every asset of a series, each with its status.
func (s *Service) SeriesAssets(ctx context.Context, seriesID string) ([]model.Asset, error) {
	var out []model.Asset
	if err := s.api.GetJSON(ctx, "/agency/series/"+seriesID+"/assets", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Activate registers the given assets as sold/owned.
func (s *Service) Activate(ctx context.Context, assetIDs []string) error {
	body := map[string][]string{"asset_ids": assetIDs}
	return s.api.PostJSON(ctx, "/agency/activate", body, nil)
}

// Dashboard fetches the aggregate counts.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var out model.Dashboard
	if err := s.api.GetJSON(ctx, "/agency/dashboard", &out); err != nil {
		return model.Dashboard{}, err
	}
	return out, nil
}

// DownloadAsset fetches one asset's file stream and saves it as
// <asset_id>.zip in dir, returning the written path.
func (s *Service) DownloadAsset(ctx context.Context, dir, assetID string) (string, error) {
	b, err := s.api.Download(ctx, "/agency/download/"+assetID)
	if err != nil {
		return "", err
	}
	return saveFile(dir, assetID+".zip", b)
}

// DownloadSeriesZip fetches the whole-series zip stream and saves it as
// series-<id>.zip in dir.
func (s *Service) DownloadSeriesZip(ctx context.Context, dir, seriesID string) (string, error) {
	b, err := s.api.Download(ctx, "/agency/download/series/"+seriesID)
	if err != nil {
		return "", err
	}
	return saveFile(dir, "series-"+seriesID+".zip", b)
}

// saveFile is the console counterpart of the browser's transient
// anchor-click save: write the bytes, release nothing else.
func saveFile(dir, name string, b []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("download dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
