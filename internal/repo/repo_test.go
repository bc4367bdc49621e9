package repo

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"GeoConsole/internal/model"
)

var testDBSeq atomic.Int64

// newTestDB opens an in-memory SQLite for repository tests. 커넥션 풀의
// 모든 커넥션이 같은 DB를 보도록 이름 있는 shared-cache DSN을 쓴다.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Series{},
		&model.Asset{},
		&model.Shipment{},
		&model.ShipmentAsset{},
	))
	return db
}

// seedSeries creates one series with assets in the given statuses and
// returns the series plus asset ids in edition order.
func seedSeries(t *testing.T, db *gorm.DB, name string, statuses ...string) (model.Series, []string) {
	t.Helper()
	series := model.Series{ID: "series-" + name, Name: name}
	for i, st := range statuses {
		series.Assets = append(series.Assets, model.Asset{
			ID:      name + "-asset-" + string(rune('a'+i)),
			DinaID:  name + "-dina-" + string(rune('a'+i)),
			Edition: i + 1,
			Status:  st,
		})
	}
	require.NoError(t, db.Create(&series).Error)
	ids := make([]string, 0, len(series.Assets))
	for _, a := range series.Assets {
		ids = append(ids, a.ID)
	}
	return series, ids
}
