// Package server serves a built site for local preview and pushes reloads
// to open pages over a websocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-portfolio/internal/logging"
)

// Sentinel errors for the dev server.
var (
	// ErrAddrInUse indicates the listen address is taken.
	ErrAddrInUse = errors.New("address already in use")

	// ErrListen indicates the server could not start listening.
	ErrListen = errors.New("cannot listen")
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server serves files from a root directory.
type Server struct {
	addr   string
	logger *logrus.Entry
	hub    *hub
	files  http.FileSystem
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to the "server" component logger.
func WithLogger(logger *logrus.Entry) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a Server for the files under root, listening on addr.
func New(root, addr string, opts ...Option) *Server {
	s := &Server{
		addr:  addr,
		files: http.Dir(root),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewLogger("server")
	}
	s.hub = newHub(s.logger)
	return s
}

// Handler returns the HTTP handler: the live-reload endpoint plus the
// static files.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(ReloadPath, s.hub)
	mux.HandleFunc("/", s.handleFile)
	return mux
}

// Reload tells every connected page to reload and returns how many
// clients were notified.
func (s *Server) Reload() int {
	n := s.hub.broadcast(reloadMessage)
	s.logger.WithField("clients", n).Debug("reload sent")
	return n
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
// A taken address is reported as ErrAddrInUse.
func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %s", ErrAddrInUse, s.addr)
		}
		return fmt.Errorf("%w on %s: %v", ErrListen, s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves on listener until ctx is done.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()
	s.logger.WithField("addr", "http://"+listener.Addr().String()).Info("serving site")

	select {
	case err := <-errCh:
		s.hub.closeAll()
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	// Hijacked websocket connections are not tracked by Shutdown.
	s.hub.closeAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleFile serves HTML pages with the live-reload client injected and
// everything else unchanged.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	if strings.HasSuffix(r.URL.Path, "/") {
		name = path.Join(name, "index.html")
	}

	if path.Ext(name) != ".html" {
		if page, ok := s.readDirIndex(name); ok {
			if !strings.HasSuffix(r.URL.Path, "/") {
				http.Redirect(w, r, r.URL.Path+"/", http.StatusMovedPermanently)
				return
			}
			s.writePage(w, r, page)
			return
		}
		w.Header().Set("Cache-Control", "no-cache")
		http.FileServer(s.files).ServeHTTP(w, r)
		return
	}

	page, err := s.readFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	s.writePage(w, r, page)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, InjectReloadScript(string(page))); err != nil {
		s.logger.WithError(err).Debug("writing page")
	}
}

// readDirIndex returns name/index.html when name is a directory.
func (s *Server) readDirIndex(name string) ([]byte, bool) {
	f, err := s.files.Open(name)
	if err != nil {
		return nil, false
	}
	info, err := f.Stat()
	_ = f.Close()
	if err != nil || !info.IsDir() {
		return nil, false
	}
	page, err := s.readFile(path.Join(name, "index.html"))
	return page, err == nil
}

func (s *Server) readFile(name string) ([]byte, error) {
	f, err := s.files.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}
	return io.ReadAll(f)
}
