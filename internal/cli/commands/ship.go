package commands

import (
	"bufio"
	"context"

	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/cli/modals"
	"GeoConsole/internal/config"
)

type shipCmd struct{}

func (shipCmd) Name() string        { return "ship" }
func (shipCmd) Description() string { return "출고 생성 및 출고 상세/확정/무효화" }
func (shipCmd) Usage() string       { return "ship create | ship show <shipmentId>" }

func (shipCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}
	in := bufio.NewScanner(In)

	switch args[0] {
	case "create":
		if len(args) != 1 {
			return ErrUsage
		}
		flow := &modals.CreateShipment{
			Modal:     modals.Modal{In: in, Out: Out},
			Shipments: a.Shipments,
			Cache:     a.Cache,
			Toasts:    a.Toasts,
		}
		return flow.Run(ctx)
	case "show":
		if len(args) != 2 {
			return ErrUsage
		}
		flow := &modals.ShipmentDetail{
			Modal:       modals.Modal{In: in, Out: Out},
			ShipmentID:  args[1],
			DownloadDir: cfg.DownloadDir,
			Shipments:   a.Shipments,
			Cache:       a.Cache,
			Toasts:      a.Toasts,
		}
		return flow.Run(ctx)
	}
	return ErrUsage
}

func init() { RegisterCmd(shipCmd{}) }
