package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/config"
)

type seriesCmd struct{}

func (seriesCmd) Name() string        { return "series" }
func (seriesCmd) Description() string { return "입고된 시리즈 목록을 표시합니다" }
func (seriesCmd) Usage() string       { return "series" }

func (seriesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}

	series, err := query.Fetch(ctx, a.Cache, query.Key("agency-series"), a.Agency.Series)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		fmt.Fprintln(Out, "입고된 시리즈가 없습니다.")
		return nil
	}

	w := tabwriter.NewWriter(Out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "시리즈명\t총 수량\t등록 수량\t미등록 수량\t입고일\t액션")
	for _, s := range series {
		unregistered := s.TotalCount - s.RegisteredCount
		action := ""
		if unregistered > 0 {
			// 미등록 수량이 있으면 activate 명령을 안내
			action = fmt.Sprintf("정품등록 (activate %s)", s.SeriesID)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%s\n",
			s.Name, s.TotalCount, s.RegisteredCount, unregistered, koDate(s.ShippedAt), action)
	}
	return w.Flush()
}

func init() { RegisterCmd(seriesCmd{}) }
