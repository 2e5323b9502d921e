package dev

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/frond-ui/frond/internal/config"
)

func TestWatcherIgnorePatterns(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: []string{"."}})

	tests := []struct {
		path string
		want bool
	}{
		{"main.go", false},
		{"main_test.go", true},
		{"app/.git", true},
		{"node_modules", true},
		{"styles.css", false},
		{"editor.swp", true},
		{"backup~", true},
	}
	for _, tt := range tests {
		if got := w.ignored(tt.path); got != tt.want {
			t.Errorf("ignored(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherCustomIgnore(t *testing.T) {
	w := NewWatcher(WatcherConfig{Ignore: []string{"*.md"}})
	if !w.ignored("README.md") {
		t.Error("*.md should be ignored")
	}
	if w.ignored("main_test.go") {
		t.Error("custom ignore list should replace the defaults")
	}
}

func TestBuilderDefaults(t *testing.T) {
	b := NewBuilder(BuilderConfig{ProjectPath: "/proj"})
	if b.config.Main != "." {
		t.Errorf("Main = %q", b.config.Main)
	}
	want := filepath.Join("/proj", "dist", "app.wasm")
	if got := b.ArtifactPath(); got != want {
		t.Errorf("ArtifactPath() = %q, want %q", got, want)
	}
}

func TestServeHTMLInjectsReloadScript(t *testing.T) {
	dir := t.TempDir()
	page := "<html><body><h1>hi</h1></body></html>"
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	s := NewServer(ServerOptions{Config: cfg, Dir: dir})
	// Build output lives under dir/dist; point it at dir directly.
	s.config.Build.Output = "."

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	s.serveFile(rec, req)

	body := rec.Body.String()
	if !strings.Contains(body, "_frond/reload") {
		t.Error("reload script not injected")
	}
	if !strings.Contains(body, "<h1>hi</h1>") {
		t.Error("original page content missing")
	}
	if i := strings.Index(body, "</body>"); i < 0 || !strings.Contains(body[:i], "_frond/reload") {
		t.Error("script should appear before </body>")
	}
}

func TestReloadBroadcast(t *testing.T) {
	rs := NewReloadServer()
	srv := httptest.NewServer(http.HandlerFunc(rs.HandleWebSocket))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) && rs.ClientCount() == 0 {
		time.Sleep(5 * time.Millisecond)
	}
	if rs.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want 1", rs.ClientCount())
	}

	rs.NotifyReload()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestServeFileMissing(t *testing.T) {
	cfg := config.Default()
	s := NewServer(ServerOptions{Config: cfg, Dir: t.TempDir()})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/nope.html", nil)
	s.serveFile(rec, req)
	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
