package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"GeoConsole/internal/model"
)

// AssetRepository is the access contract for assets.
type AssetRepository interface {
	// ListBySeries returns the assets of a series, optionally filtered by status.
	ListBySeries(ctx context.Context, seriesID, status string) ([]model.Asset, error)

	GetAssetsByIDs(ctx context.Context, ids []string) ([]model.Asset, error)
	GetAsset(ctx context.Context, id string) (*model.Asset, error)

	// ActivateAssets flips UNREGISTERED rows among ids to REGISTERED and
	// returns how many rows actually changed.
	ActivateAssets(ctx context.Context, ids []string, at time.Time) (int64, error)

	CountAssetsByStatus(ctx context.Context, statuses ...string) (int64, error)
	CountActivatedSince(ctx context.Context, since time.Time) (int64, error)
	RecentActivations(ctx context.Context, limit int) ([]model.Asset, error)
}

type assetRepo struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) ListBySeries(ctx context.Context, seriesID, status string) ([]model.Asset, error) {
	q := r.db.WithContext(ctx).Where("series_id = ?", seriesID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []model.Asset
	if err := q.Order("edition ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *assetRepo) GetAssetsByIDs(ctx context.Context, ids []string) ([]model.Asset, error) {
	var list []model.Asset
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *assetRepo) GetAsset(ctx context.Context, id string) (*model.Asset, error) {
	var a model.Asset
	if err := r.db.WithContext(ctx).Preload("Series").First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) ActivateAssets(ctx context.Context, ids []string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Where("id IN ? AND status = ?", ids, model.AssetUnregistered).
		Updates(map[string]any{"status": model.AssetRegistered, "activated_at": at})
	return res.RowsAffected, res.Error
}

func (r *assetRepo) CountAssetsByStatus(ctx context.Context, statuses ...string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Where("status IN ?", statuses).
		Count(&n).Error
	return n, err
}

func (r *assetRepo) CountActivatedSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Asset{}).
		Where("activated_at >= ?", since).
		Count(&n).Error
	return n, err
}

func (r *assetRepo) RecentActivations(ctx context.Context, limit int) ([]model.Asset, error) {
	var list []model.Asset
	err := r.db.WithContext(ctx).
		Preload("Series").
		Where("activated_at IS NOT NULL").
		Order("activated_at DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
