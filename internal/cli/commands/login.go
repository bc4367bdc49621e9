package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"GeoConsole/internal/cli/api"
	"GeoConsole/internal/cli/app"
	"GeoConsole/internal/cli/session"
	"GeoConsole/internal/config"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        session.User `json:"user"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "콘솔에 로그인합니다" }
func (loginCmd) Usage() string       { return "login <email> [password]" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	email := args[0]

	var password string
	if len(args) >= 2 {
		password = args[1]
	} else {
		fmt.Fprint(Out, "비밀번호: ")
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(Out)
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimSpace(string(b))
	}
	if password == "" {
		return errors.New("empty password")
	}

	a, err := app.New(cfg, Out)
	if err != nil {
		return err
	}

	var resp loginResponse
	if err := a.API.PostJSON(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		// surface the server's message verbatim, or the generic fallback
		return errors.New(api.ErrorMessage(err, "로그인에 실패했습니다"))
	}
	if err := a.Session.Login(resp.AccessToken, resp.User); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	fmt.Fprintf(Out, "로그인되었습니다: %s\n", resp.User.Email)
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
