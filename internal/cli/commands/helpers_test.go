package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"GeoConsole/internal/config"
)

// testConfig builds a client config pointing at the fake API server, with
// session and downloads under a temp dir.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		ServerURL:   serverURL,
		SessionFile: filepath.Join(dir, "session.json"),
		DownloadDir: filepath.Join(dir, "downloads"),
	}
}

// captureOut replaces the shared Out writer for the duration of a test.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Out
	buf := &bytes.Buffer{}
	Out = buf
	t.Cleanup(func() { Out = prev })
	return buf
}

// feedIn replaces the shared In reader with scripted prompt answers.
func feedIn(t *testing.T, lines ...string) {
	t.Helper()
	prev := In
	In = strings.NewReader(strings.Join(lines, "\n") + "\n")
	t.Cleanup(func() { In = prev })
}

// seedSession writes a persisted session file so commands run authenticated.
func seedSession(t *testing.T, cfg *config.Config) {
	t.Helper()
	b := []byte(`{"access_token":"tok-test","user":{"id":"u1","email":"op@geo.dev"}}`)
	if err := os.MkdirAll(filepath.Dir(cfg.SessionFile), 0o700); err != nil {
		t.Fatalf("mkdir session dir: %v", err)
	}
	if err := os.WriteFile(cfg.SessionFile, b, 0o600); err != nil {
		t.Fatalf("write session file: %v", err)
	}
}

// jsonHandler writes v as a JSON response.
func jsonHandler(v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(v)
	}
}

// newAPIServer builds a fake API with per-path handlers ("/api/..." keys).
func newAPIServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func readBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read request body: %v", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode request body %q: %v", b, err)
	}
}
