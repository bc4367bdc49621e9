package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"GeoConsole/internal/model"
	"GeoConsole/internal/repo"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockSeriesRepo struct{ mock.Mock }

func (m *mockSeriesRepo) ListSeries(ctx context.Context) ([]model.Series, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Series); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeriesRepo) GetSeries(ctx context.Context, id string) (*model.Series, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Series); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeriesRepo) CountAssetsBySeries(ctx context.Context) (map[string]repo.SeriesCount, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).(map[string]repo.SeriesCount); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeriesRepo) CountSeries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.SeriesRepository = (*mockSeriesRepo)(nil)

type mockAssetRepo struct{ mock.Mock }

func (m *mockAssetRepo) ListBySeries(ctx context.Context, seriesID, status string) ([]model.Asset, error) {
	args := m.Called(ctx, seriesID, status)
	if v, ok := args.Get(0).([]model.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetRepo) GetAssetsByIDs(ctx context.Context, ids []string) ([]model.Asset, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]model.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetRepo) GetAsset(ctx context.Context, id string) (*model.Asset, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetRepo) ActivateAssets(ctx context.Context, ids []string, at time.Time) (int64, error) {
	args := m.Called(ctx, ids, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssetRepo) CountAssetsByStatus(ctx context.Context, statuses ...string) (int64, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssetRepo) CountActivatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAssetRepo) RecentActivations(ctx context.Context, limit int) ([]model.Asset, error) {
	args := m.Called(ctx, limit)
	if v, ok := args.Get(0).([]model.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AssetRepository = (*mockAssetRepo)(nil)

type mockShipmentRepo struct{ mock.Mock }

func (m *mockShipmentRepo) CreateShipment(ctx context.Context, sh *model.Shipment) error {
	args := m.Called(ctx, sh)
	return args.Error(0)
}

func (m *mockShipmentRepo) GetShipment(ctx context.Context, id string) (*model.Shipment, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Shipment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShipmentRepo) ListShipments(ctx context.Context) ([]model.Shipment, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Shipment); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShipmentRepo) ShippedAssetIDs(ctx context.Context, ids []string) ([]string, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]string); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShipmentRepo) ConfirmShipment(ctx context.Context, id, recipientEmail string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, recipientEmail, at)
	return args.Bool(0), args.Error(1)
}

func (m *mockShipmentRepo) VoidShipment(ctx context.Context, id, reason string, at time.Time) (bool, error) {
	args := m.Called(ctx, id, reason, at)
	return args.Bool(0), args.Error(1)
}

func (m *mockShipmentRepo) CountShipmentsToday(ctx context.Context, dayStart time.Time) (int64, error) {
	args := m.Called(ctx, dayStart)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ShipmentRepository = (*mockShipmentRepo)(nil)

// mockEmailSender records sends and can be told to fail.
type mockEmailSender struct {
	sent []string
	err  error
}

func (m *mockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}
