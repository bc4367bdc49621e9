package commands

import (
	"context"
	"fmt"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/cli/model"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/config"
)

type dashboardCmd struct{}

func (dashboardCmd) Name() string        { return "dashboard" }
func (dashboardCmd) Description() string { return "대시보드 요약을 표시합니다" }
func (dashboardCmd) Usage() string       { return "dashboard" }

func (dashboardCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}

	// both reads degrade gracefully: a failed aggregate falls back to the
	// series list, a failed series list renders as empty
	series, err := query.Fetch(ctx, a.Cache, query.Key("agency-series"), a.Agency.Series)
	if err != nil {
		series = nil
	}
	dash, dashErr := query.Fetch(ctx, a.Cache, query.Key("agency-dashboard"), a.Agency.Dashboard)

	totalSeries := dash.TotalSeries
	if dashErr != nil {
		totalSeries = len(series)
	}

	fmt.Fprintf(Out, "입고 시리즈       %d\n", totalSeries)
	fmt.Fprintf(Out, "미등록 자산       %d\n", dash.UnregisteredAssets)
	fmt.Fprintf(Out, "등록 완료 자산    %d\n", dash.RegisteredAssets)
	fmt.Fprintf(Out, "최근 등록 건수    %d (최근 7일)\n", dash.RecentRegistrations)

	fmt.Fprintf(Out, "\n최근 입고 시리즈 (%d건)\n", len(series))
	if len(series) == 0 {
		fmt.Fprintln(Out, "  입고된 시리즈가 없습니다")
	}
	for i, s := range series {
		if i == 5 {
			break
		}
		fmt.Fprintf(Out, "  %s  %d개  %s\n", s.Name, s.TotalCount, koDate(s.ShippedAt))
	}

	fmt.Fprintf(Out, "\n최근 등록 내역 (%d건)\n", dash.RecentRegistrations)
	if len(dash.RecentActivations) == 0 {
		fmt.Fprintln(Out, "  등록 내역이 없습니다")
	}
	for i, act := range dash.RecentActivations {
		if i == 5 {
			break
		}
		fmt.Fprintf(Out, "  %s  %d건  %s\n", act.SeriesName, activationCount(act), koDate(act.ActivatedAt))
	}
	return nil
}

func activationCount(a model.RecentActivation) int {
	if a.Count == 0 {
		return 1
	}
	return a.Count
}

func init() { RegisterCmd(dashboardCmd{}) }
