package repo

import (
	"context"

	"gorm.io/gorm"

	"GeoConsole/internal/model"
)

// SeriesCount carries per-series asset aggregates for list views.
type SeriesCount struct {
	SeriesID        string
	TotalCount      int
	RegisteredCount int
}

// SeriesRepository is the access contract for series.
type SeriesRepository interface {
	ListSeries(ctx context.Context) ([]model.Series, error)
	GetSeries(ctx context.Context, id string) (*model.Series, error)
	CountAssetsBySeries(ctx context.Context) (map[string]SeriesCount, error)
	CountSeries(ctx context.Context) (int64, error)
}

type seriesRepo struct {
	db *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) SeriesRepository {
	return &seriesRepo{db: db}
}

func (r *seriesRepo) ListSeries(ctx context.Context) ([]model.Series, error) {
	var list []model.Series
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *seriesRepo) GetSeries(ctx context.Context, id string) (*model.Series, error) {
	var s model.Series
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CountAssetsBySeries returns total / registered asset counts keyed by series.
// REGISTERED와 PRINTED 모두 "등록됨"으로 집계한다 (PRINTED는 등록 이후 단계).
func (r *seriesRepo) CountAssetsBySeries(ctx context.Context) (map[string]SeriesCount, error) {
	type row struct {
		SeriesID string
		Status   string
		N        int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Select("series_id, status, count(*) as n").
		Group("series_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]SeriesCount, len(rows))
	for _, rw := range rows {
		c := out[rw.SeriesID]
		c.SeriesID = rw.SeriesID
		c.TotalCount += rw.N
		if rw.Status == model.AssetRegistered || rw.Status == model.AssetPrinted {
			c.RegisteredCount += rw.N
		}
		out[rw.SeriesID] = c
	}
	return out, nil
}

func (r *seriesRepo) CountSeries(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.Series{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
