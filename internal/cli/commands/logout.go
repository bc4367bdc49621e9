package commands

import (
	"context"
	"fmt"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/config"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "세션을 종료합니다" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}
	if err := a.Session.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "로그아웃되었습니다")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
