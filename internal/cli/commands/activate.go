package commands

import (
	"bufio"
	"context"
	"fmt"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/cli/model"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/cli/toast"
	"GeoConsole/internal/cli/ui"
	"GeoConsole/internal/config"
)

type activateCmd struct{}

func (activateCmd) Name() string        { return "activate" }
func (activateCmd) Description() string { return "판매된 수량을 선택하여 정품등록합니다" }
func (activateCmd) Usage() string       { return "activate [seriesId]" }

func (activateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}
	in := bufio.NewScanner(In)

	seriesList, err := query.Fetch(ctx, a.Cache, query.Key("agency-series"), a.Agency.Series)
	if err != nil {
		return err
	}

	// series preselected via argument, like the ?series= deep link
	var seriesID string
	if len(args) == 1 {
		seriesID = args[0]
	} else {
		if len(seriesList) == 0 {
			fmt.Fprintln(Out, "시리즈를 선택하세요: 시리즈가 없습니다")
			return nil
		}
		fmt.Fprintln(Out, "시리즈 선택")
		for i, s := range seriesList {
			fmt.Fprintf(Out, "  %d) %s\n", i+1, s.Name)
		}
		picks := parsePicks(promptLine(in, Out, "번호: "), len(seriesList), Out)
		if len(picks) == 0 {
			return nil
		}
		seriesID = seriesList[picks[0]].SeriesID
	}

	// asset read is gated on a non-empty series selection
	assets, err := query.Fetch(ctx, a.Cache, query.Key("agency-series-assets", seriesID),
		func(ctx context.Context) ([]model.Asset, error) {
			return a.Agency.SeriesAssets(ctx, seriesID)
		})
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		fmt.Fprintln(Out, "자산이 없습니다.")
		return nil
	}

	var unregistered []model.Asset
	for _, asset := range assets {
		if asset.Status == model.StatusUnregistered {
			unregistered = append(unregistered, asset)
		}
	}
	fmt.Fprintf(Out, "자산 목록  미등록 %d  등록 %d\n", len(unregistered), len(assets)-len(unregistered))
	for i, asset := range unregistered {
		fmt.Fprintf(Out, "  %d) 에디션 %d  미등록\n", i+1, asset.Edition)
	}
	if len(unregistered) == 0 {
		return nil
	}

	eligible := make([]string, len(unregistered))
	for i, asset := range unregistered {
		eligible[i] = asset.AssetID
	}
	sel := ui.NewSelection()
	line := promptLine(in, Out, "등록할 자산 번호 (쉼표 구분, all=전체): ")
	if line == "all" {
		sel.ToggleAll(eligible)
	} else {
		for _, idx := range parsePicks(line, len(unregistered), Out) {
			sel.Toggle(eligible[idx])
		}
	}
	if sel.Count() == 0 {
		return nil
	}

	if !promptYes(in, Out, fmt.Sprintf("%d개 자산을 정품등록 하시겠습니까? (y/N): ", sel.Count())) {
		return nil
	}

	if err := a.Agency.Activate(ctx, sel.Ordered(eligible)); err != nil {
		a.Toasts.Show("정품등록에 실패했습니다.", toast.Error)
		return err
	}
	a.Toasts.Show("정품등록이 완료되었습니다.", toast.Success)
	a.Cache.Invalidate(
		query.Key("agency-series-assets", seriesID),
		query.Key("agency-series"),
		query.Key("agency-dashboard"),
	)
	return nil
}

func init() { RegisterCmd(activateCmd{}) }
