// Package devserver runs the public dev proxy in front of the bundler's
// incremental serve mode. Asset requests are forwarded 1:1 with permissive
// cross-origin headers added; requests carrying a dev query parameter get a
// freshly generated hot-reload bootstrap module instead.
package devserver

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/3-lines-studio/heimdall/internal/bundler"
	"github.com/3-lines-studio/heimdall/internal/core"
)

// Config carries the serve invocation's options. EntryDir selects the
// legacy directory+extension entry mode and wins over EntryPatterns when
// both are set.
type Config struct {
	PreferredPort int
	EntryPatterns []string
	EntryDir      string
	Extensions    []string
	UIAliasMode   bool
	Logger        zerolog.Logger
}

// Server is the running dev proxy. It owns its ServeSession for the whole
// process lifetime; nothing mutates the session after startup.
type Server struct {
	session  core.ServeSession
	listener net.Listener
	handle   *bundler.ServeHandle
	hub      *reloadHub
	log      zerolog.Logger
	cancel   context.CancelFunc
}

// Start brings the dev proxy into its serving state: acquires the two
// ports, resolves entry points, starts the bundler's serve mode on the
// internal port and binds the public listener. Preferred-port conflicts
// fall back to free ports and are never fatal.
func Start(cfg Config) (*Server, error) {
	publicLn, err := acquireListener(cfg.PreferredPort)
	if err != nil {
		return nil, fmt.Errorf("failed to bind public port: %w", err)
	}

	internalPort, err := freePort()
	if err != nil {
		publicLn.Close()
		return nil, fmt.Errorf("failed to reserve internal port: %w", err)
	}

	entries, err := bundler.ResolveEntries(cfg.EntryPatterns, cfg.EntryDir, cfg.Extensions)
	if err != nil {
		publicLn.Close()
		return nil, err
	}

	handle, err := bundler.Serve("127.0.0.1", internalPort, entries, cfg.UIAliasMode)
	if err != nil {
		publicLn.Close()
		return nil, fmt.Errorf("failed to start bundler serve mode: %w", err)
	}

	session := core.ServeSession{
		InternalHost: handle.Host,
		InternalPort: handle.Port,
		PublicPort:   publicLn.Addr().(*net.TCPAddr).Port,
		EntryPoints:  entries,
	}

	internalURL := &url.URL{Scheme: "http", Host: session.InternalAddr()}
	hub := newReloadHub()

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Server{
		session:  session,
		listener: publicLn,
		handle:   handle,
		hub:      hub,
		log:      cfg.Logger,
		cancel:   cancel,
	}

	go func() {
		if err := watchEntries(ctx, entries, hub, cfg.Logger); err != nil {
			cfg.Logger.Warn().Err(err).Msg("file watcher unavailable")
		}
	}()

	go func() {
		_ = http.Serve(publicLn, newHandler(internalURL, hub, cfg.Logger))
	}()

	cfg.Logger.Info().
		Int("public_port", session.PublicPort).
		Str("internal", session.InternalAddr()).
		Int("entries", len(entries)).
		Msg("dev server ready")

	return srv, nil
}

// Session returns the addresses bound at startup.
func (s *Server) Session() core.ServeSession {
	return s.session
}

// Close tears the proxy down. The normal lifecycle is process exit; Close
// exists for tests and embedding.
func (s *Server) Close() error {
	s.cancel()
	s.handle.Stop()
	return s.listener.Close()
}

// newHandler builds the public request handler against the internal
// bundler address. Split from Start so tests can stand in any HTTP server
// as the internal side.
func newHandler(internal *url.URL, hub *reloadHub, log zerolog.Logger) http.Handler {
	proxy := httputil.NewSingleHostReverseProxy(internal)
	// Stream immediately, a stalled asset must not hold back others.
	proxy.FlushInterval = -1 * time.Millisecond
	proxy.ModifyResponse = func(resp *http.Response) error {
		resp.Header.Set("Access-Control-Allow-Origin", "*")
		return nil
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
		log.Warn().Str("path", req.URL.Path).Err(err).Msg("proxy error")
		w.WriteHeader(http.StatusBadGateway)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		reqLog := log.With().
			Str("request_id", uuid.NewString()).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Logger()

		if req.URL.Query().Has("dev") {
			reqLog.Debug().Msg("bootstrap module")
			w.Header().Set("Content-Type", "application/javascript")
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, GenerateBootstrap(req.URL.Path))
			return
		}

		if req.URL.Path == ReloadPath {
			hub.serveSSE(w, req)
			return
		}

		reqLog.Debug().Msg("proxy")
		proxy.ServeHTTP(w, req)
	})
}
