package commands

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"
)

func TestDispatch_UnknownCommand(t *testing.T) {
	out := captureOut(t)
	ts := newAPIServer(t, nil)
	cfg := testConfig(t, ts.URL)

	code := Dispatch(context.Background(), cfg, []string{"frobnicate"})
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Unknown command: frobnicate") {
		t.Fatalf("missing unknown-command message: %q", out.String())
	}
	if !strings.Contains(out.String(), "GeoConsole — Agency Console") {
		t.Fatalf("global usage not printed: %q", out.String())
	}
}

func TestDispatch_HelpForCommand(t *testing.T) {
	out := captureOut(t)
	ts := newAPIServer(t, nil)
	cfg := testConfig(t, ts.URL)

	code := Dispatch(context.Background(), cfg, []string{"help", "login"})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage: login <email> [password]") {
		t.Fatalf("command usage not printed: %q", out.String())
	}
}

func TestDispatch_UsageErrorExitCode(t *testing.T) {
	out := captureOut(t)
	ts := newAPIServer(t, nil)
	cfg := testConfig(t, ts.URL)

	// series takes no arguments
	code := Dispatch(context.Background(), cfg, []string{"series", "extra"})
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage: series") {
		t.Fatalf("usage not printed: %q", out.String())
	}
}

// Any 401 tears the session down, announces the forced logout, and still
// fails the command.
func TestDispatch_UnauthorizedTearsDownSession(t *testing.T) {
	out := captureOut(t)
	ts := newAPIServer(t, map[string]http.HandlerFunc{
		"/api/agency/series": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
		},
	})
	cfg := testConfig(t, ts.URL)
	seedSession(t, cfg)

	code := Dispatch(context.Background(), cfg, []string{"series"})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "세션이 만료되었습니다. 다시 로그인하세요. (login)") {
		t.Fatalf("session-expired notice missing: %q", out.String())
	}
	if _, err := os.Stat(cfg.SessionFile); !os.IsNotExist(err) {
		t.Fatalf("session file must be removed after 401: %v", err)
	}
}
