package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"GeoConsole/internal/model"
)

// ShipmentRepository is the access contract for shipments.
type ShipmentRepository interface {
	CreateShipment(ctx context.Context, sh *model.Shipment) error
	GetShipment(ctx context.Context, id string) (*model.Shipment, error)
	ListShipments(ctx context.Context) ([]model.Shipment, error)

	// ShippedAssetIDs returns the subset of ids already tied to a non-VOID
	// shipment. VOID 처리된 출고의 자산은 재출고 가능.
	ShippedAssetIDs(ctx context.Context, ids []string) ([]string, error)

	// ConfirmShipment transitions READY→SHIPPED. Returns false when the
	// shipment is not READY (no rows matched).
	ConfirmShipment(ctx context.Context, id, recipientEmail string, at time.Time) (bool, error)

	// VoidShipment transitions SHIPPED→VOID. Returns false when the
	// shipment is not SHIPPED.
	VoidShipment(ctx context.Context, id, reason string, at time.Time) (bool, error)

	CountShipmentsToday(ctx context.Context, dayStart time.Time) (int64, error)
}

type shipmentRepo struct {
	db *gorm.DB
}

func NewShipmentRepository(db *gorm.DB) ShipmentRepository {
	return &shipmentRepo{db: db}
}

func (r *shipmentRepo) CreateShipment(ctx context.Context, sh *model.Shipment) error {
	// gorm creates the ShipmentAsset rows alongside in one transaction
	return r.db.WithContext(ctx).Create(sh).Error
}

func (r *shipmentRepo) GetShipment(ctx context.Context, id string) (*model.Shipment, error) {
	var sh model.Shipment
	err := r.db.WithContext(ctx).
		Preload("Series").
		Preload("Assets").
		Preload("Assets.Asset").
		First(&sh, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sh, nil
}

func (r *shipmentRepo) ListShipments(ctx context.Context) ([]model.Shipment, error) {
	var list []model.Shipment
	err := r.db.WithContext(ctx).
		Preload("Series").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *shipmentRepo) ShippedAssetIDs(ctx context.Context, ids []string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&model.ShipmentAsset{}).
		Joins("JOIN shipments ON shipments.id = shipment_assets.shipment_id").
		Where("shipment_assets.asset_id IN ? AND shipments.status <> ?", ids, model.ShipmentVoid).
		Pluck("shipment_assets.asset_id", &out).Error
	return out, err
}

func (r *shipmentRepo) ConfirmShipment(ctx context.Context, id, recipientEmail string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Shipment{}).
		Where("id = ? AND status = ?", id, model.ShipmentReady).
		Updates(map[string]any{
			"status":          model.ShipmentShipped,
			"recipient_email": recipientEmail,
			"shipped_at":      at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *shipmentRepo) VoidShipment(ctx context.Context, id, reason string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Shipment{}).
		Where("id = ? AND status = ?", id, model.ShipmentShipped).
		Updates(map[string]any{
			"status":      model.ShipmentVoid,
			"void_reason": reason,
			"voided_at":   at,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *shipmentRepo) CountShipmentsToday(ctx context.Context, dayStart time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Shipment{}).
		Where("created_at >= ?", dayStart).
		Count(&n).Error
	return n, err
}
