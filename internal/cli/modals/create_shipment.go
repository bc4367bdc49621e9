package modals

import (
	"context"
	"fmt"

	"GeoConsole/internal/cli/api"
	"GeoConsole/internal/cli/model"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/cli/shipments"
	"GeoConsole/internal/cli/toast"
	"GeoConsole/internal/cli/ui"
)

// CreateShipment is the two-step shipment creation flow:
// choose a series, then choose (opt out of) its PRINTED assets.
type CreateShipment struct {
	Modal
	Shipments *shipments.Service
	Cache     *query.Cache
	Toasts    *toast.Store
}

type createStep int

const (
	stepSeries createStep = iota
	stepAssets
)

// Run drives the flow until the shipment is created or the user cancels.
func (f *CreateShipment) Run(ctx context.Context) error {
	f.Title = "출고 생성"

	step := stepSeries
	var selectedSeries model.Series
	sel := ui.NewSelection()
	var assets []model.Asset

	for {
		switch step {
		case stepSeries:
			seriesList, err := query.Fetch(ctx, f.Cache, query.Key("series"), f.Shipments.Series)
			if err != nil {
				return err
			}
			f.printf("%s — 시리즈를 선택하세요", f.Title)
			if len(seriesList) == 0 {
				f.printf("시리즈가 없습니다")
				return nil
			}
			for i, s := range seriesList {
				label := s.Name
				if s.Code != "" {
					label = fmt.Sprintf("%s (%s)", s.Name, s.Code)
				}
				f.printf("  %d) %s  %s", i+1, label, seriesDisplayID(s))
			}
			line := f.prompt("번호 (q=취소): ")
			if line == "" || line == "q" {
				return nil
			}
			idx, ok := pickOne(line, len(seriesList))
			if !ok {
				f.printf("잘못된 번호: %s", line)
				continue
			}
			selectedSeries = seriesList[idx]
			sel.Clear()
			step = stepAssets

		case stepAssets:
			// gated on the chosen series; served from the cache on a "back"
			// round-trip, fetched once per series until invalidated
			key := query.Key("assets-printed", selectedSeries.SeriesID)
			var err error
			assets, err = query.Fetch(ctx, f.Cache, key, func(ctx context.Context) ([]model.Asset, error) {
				return f.Shipments.PrintedAssets(ctx, selectedSeries.SeriesID)
			})
			if err != nil {
				return err
			}
			f.printf("%s — %s - 자산 선택", f.Title, selectedSeries.Name)
			if len(assets) == 0 {
				f.printf("PRINTED 상태의 자산이 없습니다")
				return nil
			}

			// 자산 로드 시 전체 선택 (opt-out)
			eligible := make([]string, len(assets))
			for i, a := range assets {
				eligible[i] = a.AssetID
			}
			sel.SelectAll(eligible)

			for {
				f.printf("자산 목록 (%d개)", len(assets))
				for i, a := range assets {
					mark := " "
					if sel.Has(a.AssetID) {
						mark = "x"
					}
					f.printf("  [%s] %d) %s  에디션: %d", mark, i+1, a.DinaID, a.Edition)
				}
				f.printf("선택된 자산  %d개", sel.Count())

				line := f.prompt("토글할 번호 (all=전체 선택/해제, b=이전, c=출고 생성, q=취소): ")
				switch line {
				case "q", "":
					return nil
				case "b":
					step = stepSeries
				case "all":
					sel.ToggleAll(eligible)
					continue
				case "c":
					if sel.Count() == 0 {
						continue
					}
					return f.create(ctx, selectedSeries.SeriesID, sel.Ordered(eligible))
				default:
					if idx, ok := pickOne(line, len(assets)); ok {
						sel.Toggle(eligible[idx])
					} else {
						f.printf("잘못된 번호: %s", line)
					}
					continue
				}
				break
			}
		}
	}
}

func (f *CreateShipment) create(ctx context.Context, seriesID string, assetIDs []string) error {
	if err := f.Shipments.Create(ctx, seriesID, assetIDs); err != nil {
		if api.ErrorCode(err) == model.ErrCodeAlreadyShipped {
			f.Toasts.Show("이미 출고된 자산이 포함되어 있습니다", toast.Error)
		} else {
			f.Toasts.Show(api.ErrorMessage(err, "출고 생성 실패"), toast.Error)
		}
		return err
	}
	f.Cache.Invalidate(query.Key("shipments"))
	f.Toasts.Show("출고가 생성되었습니다", toast.Success)
	return nil
}

func seriesDisplayID(s model.Series) string {
	if s.DisplayID != "" {
		return s.DisplayID
	}
	return s.SeriesID
}

// pickOne parses a single 1-based row number.
func pickOne(line string, n int) (int, bool) {
	var i int
	if _, err := fmt.Sscanf(line, "%d", &i); err != nil || i < 1 || i > n {
		return 0, false
	}
	return i - 1, true
}
