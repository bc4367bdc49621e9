package commands

import (
	"context"
	"fmt"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "세션 상태를 표시합니다" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}
	if !a.Session.IsAuthenticated() {
		fmt.Fprintln(Out, "로그인되어 있지 않습니다")
		return nil
	}
	fmt.Fprintf(Out, "로그인: %s\n", a.Session.User().Email)
	fmt.Fprintf(Out, "서버: %s\n", cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
