package dev

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frond-ui/frond/internal/config"
)

// reloadScript is injected into served HTML pages.
const reloadScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss" : "ws";
  var ws = new WebSocket(proto + "://" + location.host + "/_frond/reload");
  ws.onmessage = function (e) {
    var msg = JSON.parse(e.data);
    if (msg.type === "reload") location.reload();
    if (msg.type === "error") console.error("[frond] build error:\n" + msg.error);
  };
})();
</script>`

// ServerOptions configures the development server.
type ServerOptions struct {
	// Config is the project configuration.
	Config *config.Config

	// Dir is the project root directory.
	Dir string

	// Logger receives server events. Defaults to slog.Default.
	Logger *slog.Logger

	// OnBuildComplete is called after each rebuild.
	OnBuildComplete func(BuildResult)
}

// Server is the frond development server: it serves the build output,
// rebuilds on file change, and pushes reload messages to browsers.
type Server struct {
	config  *config.Config
	options ServerOptions
	log     *slog.Logger

	builder *Builder
	watcher *Watcher
	reload  *ReloadServer

	mu         sync.Mutex
	running    bool
	httpServer *http.Server
}

// NewServer creates a development server.
func NewServer(options ServerOptions) *Server {
	cfg := options.Config
	log := options.Logger
	if log == nil {
		log = slog.Default()
	}

	builder := NewBuilder(BuilderConfig{
		ProjectPath: options.Dir,
		Main:        cfg.Build.Main,
		Output:      filepath.Join(options.Dir, cfg.Build.Output),
	})

	watchPaths := append([]string{options.Dir}, cfg.Dev.Watch...)
	watcher := NewWatcher(WatcherConfig{
		Paths:    watchPaths,
		Ignore:   append(append([]string{}, DefaultIgnore...), cfg.Dev.Ignore...),
		Debounce: 100 * time.Millisecond,
	})

	return &Server{
		config:  cfg,
		options: options,
		log:     log,
		builder: builder,
		watcher: watcher,
		reload:  NewReloadServer(),
	}
}

// Run builds once, then serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	s.mu.Unlock()

	s.rebuild(ctx)

	s.watcher.OnChange(func(ch Change) {
		s.log.Info("change detected", "path", ch.Path)
		s.rebuild(ctx)
	})
	go func() {
		if err := s.watcher.Start(ctx); err != nil && ctx.Err() == nil {
			s.log.Error("watcher stopped", "error", err)
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/_frond/reload", s.reload.HandleWebSocket)
	r.Handle("/_frond/metrics", promhttp.Handler())
	r.Get("/*", s.serveFile)

	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:    s.config.Addr(),
		Handler: r,
	}
	srv := s.httpServer
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("dev server listening", "addr", s.config.Addr())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) rebuild(ctx context.Context) {
	result := s.builder.Build(ctx)
	if s.options.OnBuildComplete != nil {
		s.options.OnBuildComplete(result)
	}
	if result.Success {
		s.log.Info("build ok", "duration", result.Duration)
		s.reload.ClearError()
		s.reload.NotifyReload()
		return
	}
	s.log.Error("build failed", "duration", result.Duration)
	msg := result.Output
	if msg == "" && result.Error != nil {
		msg = result.Error.Error()
	}
	s.reload.NotifyError(msg)
}

// serveFile serves the build output directory, injecting the reload
// script into HTML responses.
func (s *Server) serveFile(w http.ResponseWriter, r *http.Request) {
	dir := filepath.Join(s.options.Dir, s.config.Build.Output)

	path := r.URL.Path
	if path == "/" || path == "" {
		path = "/index.html"
	}
	full := filepath.Join(dir, filepath.Clean("/"+path))

	if strings.HasSuffix(full, ".html") {
		s.serveHTML(w, r, full)
		return
	}
	http.ServeFile(w, r, full)
}

func (s *Server) serveHTML(w http.ResponseWriter, r *http.Request, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	page := string(data)
	if i := strings.LastIndex(page, "</body>"); i >= 0 {
		page = page[:i] + reloadScript + page[i:]
	} else {
		page += reloadScript
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}
