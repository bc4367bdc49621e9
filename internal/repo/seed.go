package repo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"GeoConsole/internal/model"
)

// SeedDemoData populates an empty database with a demo operator account
// and two series so the console has something to show. 이미 데이터가 있으면
// 아무것도 하지 않는다.
func SeedDemoData(db *gorm.DB) error {
	var users int64
	if err := db.Model(&model.User{}).Count(&users).Error; err != nil {
		return err
	}
	if users > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("geo-dev"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{
		ID:       uuid.NewString(),
		Email:    "admin@geoconsole.dev",
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	seed := []struct {
		name, code string
		editions   int
		statuses   []string
	}{
		{"한강의 기억", "HAN", 6, []string{model.AssetPrinted, model.AssetPrinted, model.AssetPrinted, model.AssetRegistered, model.AssetUnregistered, model.AssetUnregistered}},
		{"서울 야경", "SEL", 4, []string{model.AssetUnregistered, model.AssetUnregistered, model.AssetUnregistered, model.AssetUnregistered}},
	}

	now := time.Now()
	for i, sr := range seed {
		series := model.Series{
			ID:        uuid.NewString(),
			Name:      sr.name,
			Code:      sr.code,
			DisplayID: fmt.Sprintf("SER-%03d", i+1),
		}
		for e := 1; e <= sr.editions; e++ {
			a := model.Asset{
				ID:       uuid.NewString(),
				DinaID:   fmt.Sprintf("DINA-%s-%03d", sr.code, e),
				Edition:  e,
				Status:   sr.statuses[e-1],
				FileName: fmt.Sprintf("%s-%03d.zip", sr.code, e),
			}
			if a.Status != model.AssetUnregistered {
				at := now.Add(-time.Duration(e) * 24 * time.Hour)
				a.ActivatedAt = &at
			}
			series.Assets = append(series.Assets, a)
		}
		if err := db.Create(&series).Error; err != nil {
			return err
		}
	}
	return nil
}
