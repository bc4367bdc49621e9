// Package app wires the console's process-wide stores and services:
// session, toast, API client, query cache and the endpoint groups.
package app

import (
	"fmt"
	"io"

	"GeoConsole/internal/cli/agency"
	"GeoConsole/internal/cli/api"
	"GeoConsole/internal/cli/query"
	"GeoConsole/internal/cli/session"
	"GeoConsole/internal/cli/shipments"
	"GeoConsole/internal/cli/toast"
	"GeoConsole/internal/config"
)

type App struct {
	Cfg       *config.Config
	Session   *session.Store
	API       *api.Client
	Toasts    *toast.Store
	Cache     *query.Cache
	Agency    *agency.Service
	Shipments *shipments.Service
	Out       io.Writer
}

// New builds the console runtime. The API client reads the bearer token
// fresh from the session store per request; any 401 tears the session down
// and announces the forced return to login before the error propagates.
func New(cfg *config.Config, out io.Writer) (*App, error) {
	sess, err := session.NewStore(cfg.SessionFile)
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.ServerURL+"/api", sess)
	client.OnUnauthorized = func() {
		_ = sess.Logout()
		fmt.Fprintln(out, "세션이 만료되었습니다. 다시 로그인하세요. (login)")
	}

	toasts := toast.NewStore()
	toasts.OnShow(func(message string, severity toast.Severity) {
		fmt.Fprintf(out, "[%s] %s\n", severity, message)
	})

	return &App{
		Cfg:       cfg,
		Session:   sess,
		API:       client,
		Toasts:    toasts,
		Cache:     query.NewCache(),
		Agency:    agency.NewService(client),
		Shipments: shipments.NewService(client),
		Out:       out,
	}, nil
}
