package commands

import (
	"bufio"
	"context"
	"fmt"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/cli/model"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/cli/toast"
	"GeoConsole/internal/config"
)

type downloadCmd struct{}

func (downloadCmd) Name() string        { return "download" }
func (downloadCmd) Description() string { return "등록 완료된 자산 파일을 다운로드합니다" }
func (downloadCmd) Usage() string       { return "download [seriesId]" }

func (downloadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	assets, err := query.Fetch(ctx, a.Cache, query.Key("agency-download-assets", seriesID),
		func(ctx context.Context) ([]model.Asset, error) {
			return a.Agency.SeriesAssets(ctx, seriesID)
		})
	if err != nil {
		return err
	}

	// only registered assets are downloadable
	var registered []model.Asset
	for _, asset := range assets {
		if asset.Status != model.StatusUnregistered {
			registered = append(registered, asset)
		}
	}
	if len(registered) == 0 {
		fmt.Fprintln(Out, "등록 완료된 자산이 없습니다.")
		return nil
	}

	fmt.Fprintf(Out, "등록 완료 자산 %d개\n", len(registered))
	for i, asset := range registered {
		fmt.Fprintf(Out, "  %d) 에디션 %d\n", i+1, asset.Edition)
	}

	line := promptLine(in, Out, "다운로드할 자산 번호 (all=시리즈 ZIP): ")
	if line == "all" {
		path, err := a.Agency.DownloadSeriesZip(ctx, cfg.DownloadDir, seriesID)
		if err != nil {
			a.Toasts.Show("다운로드에 실패했습니다.", toast.Error)
			return err
		}
		fmt.Fprintf(Out, "저장됨: %s (%d개)\n", path, len(registered))
		return nil
	}

	for _, idx := range parsePicks(line, len(registered), Out) {
		path, err := a.Agency.DownloadAsset(ctx, cfg.DownloadDir, registered[idx].AssetID)
		if err != nil {
			a.Toasts.Show("다운로드에 실패했습니다.", toast.Error)
			return err
		}
		fmt.Fprintf(Out, "저장됨: %s\n", path)
	}
	return nil
}

func init() { RegisterCmd(downloadCmd{}) }
