package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"GeoConsole/internal/model"
	"GeoConsole/internal/repo"
)

// Agency business-rule violations.
var (
	ErrNoAssetsSelected  = errors.New("no assets selected")
	ErrAssetUnregistered = errors.New("asset is not registered")
)

const recentWindow = 7 * 24 * time.Hour

// SeriesSummary is a series with its asset aggregates.
type SeriesSummary struct {
	model.Series
	TotalCount      int
	RegisteredCount int
}

// DashboardData holds the agency dashboard aggregates.
type DashboardData struct {
	TotalSeries         int
	UnregisteredAssets  int
	RegisteredAssets    int
	RecentRegistrations int
	RecentActivations   []model.Asset
}

// AgencyService implements the agency-facing flows: series browsing,
// activation and asset downloads.
type AgencyService struct {
	series   repo.SeriesRepository
	assets   repo.AssetRepository
	fileRoot string
}

func NewAgencyService(series repo.SeriesRepository, assets repo.AssetRepository, fileRoot string) *AgencyService {
	return &AgencyService{series: series, assets: assets, fileRoot: fileRoot}
}

func (s *AgencyService) Series(ctx context.Context) ([]SeriesSummary, error) {
	list, err := s.series.ListSeries(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.series.CountAssetsBySeries(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SeriesSummary, 0, len(list))
	for _, sr := range list {
		c := counts[sr.ID]
		out = append(out, SeriesSummary{
			Series:          sr,
			TotalCount:      c.TotalCount,
			RegisteredCount: c.RegisteredCount,
		})
	}
	return out, nil
}

func (s *AgencyService) SeriesAssets(ctx context.Context, seriesID string) ([]model.Asset, error) {
	if _, err := s.series.GetSeries(ctx, seriesID); err != nil {
		return nil, err
	}
	return s.assets.ListBySeries(ctx, seriesID, "")
}

// Activate registers the UNREGISTERED assets among ids and returns how
// many actually transitioned.
func (s *AgencyService) Activate(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrNoAssetsSelected
	}
	return s.assets.ActivateAssets(ctx, ids, time.Now())
}

func (s *AgencyService) Dashboard(ctx context.Context) (DashboardData, error) {
	var d DashboardData

	totalSeries, err := s.series.CountSeries(ctx)
	if err != nil {
		return d, err
	}
	unregistered, err := s.assets.CountAssetsByStatus(ctx, model.AssetUnregistered)
	if err != nil {
		return d, err
	}
	registered, err := s.assets.CountAssetsByStatus(ctx, model.AssetRegistered, model.AssetPrinted)
	if err != nil {
		return d, err
	}
	recent, err := s.assets.CountActivatedSince(ctx, time.Now().Add(-recentWindow))
	if err != nil {
		return d, err
	}
	activations, err := s.assets.RecentActivations(ctx, 5)
	if err != nil {
		return d, err
	}

	d.TotalSeries = int(totalSeries)
	d.UnregisteredAssets = int(unregistered)
	d.RegisteredAssets = int(registered)
	d.RecentRegistrations = int(recent)
	d.RecentActivations = activations
	return d, nil
}

// AssetArchive packages one registered asset into a zip.
func (s *AgencyService) AssetArchive(ctx context.Context, assetID string) (string, []byte, error) {
	a, err := s.assets.GetAsset(ctx, assetID)
	if err != nil {
		return "", nil, err
	}
	if a.Status == model.AssetUnregistered {
		return "", nil, ErrAssetUnregistered
	}

	data, _, err := buildZip([]zipEntry{{Name: assetFileName(*a), Data: assetPayload(s.fileRoot, *a)}})
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%s.zip", a.DinaID), data, nil
}

// SeriesArchive packages every registered asset of a series into one zip.
func (s *AgencyService) SeriesArchive(ctx context.Context, seriesID string) (string, []byte, error) {
	sr, err := s.series.GetSeries(ctx, seriesID)
	if err != nil {
		return "", nil, err
	}
	assets, err := s.assets.ListBySeries(ctx, seriesID, "")
	if err != nil {
		return "", nil, err
	}

	entries := make([]zipEntry, 0, len(assets))
	for _, a := range assets {
		if a.Status == model.AssetUnregistered {
			continue
		}
		entries = append(entries, zipEntry{Name: assetFileName(a), Data: assetPayload(s.fileRoot, a)})
	}
	if len(entries) == 0 {
		return "", nil, ErrAssetUnregistered
	}

	data, _, err := buildZip(entries)
	if err != nil {
		return "", nil, err
	}
	name := sr.DisplayID
	if name == "" {
		name = sr.ID
	}
	return fmt.Sprintf("%s.zip", name), data, nil
}
