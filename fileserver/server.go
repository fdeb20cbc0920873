package fileserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/viant/devkit/internal/logging"
	"go.uber.org/zap"
)

const readHeaderTimeout = 10 * time.Second

// Server is a static file server bound to one TCP port.
type Server struct {
	root           string
	address        string
	port           int
	metricsAddress string
	logger         *zap.SugaredLogger

	registry *prometheus.Registry
	handler  http.Handler

	listener        net.Listener
	metricsListener net.Listener
	server          *http.Server
	metricsServer   *http.Server
}

// New creates a server; nothing is bound until Listen.
func New(opts ...Option) *Server {
	s := &Server{root: "."}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.New("fileserver")
	}
	if s.metricsAddress != "" {
		s.registry = prometheus.NewRegistry()
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	s.handler = s.newHandler()
	return s
}

func (s *Server) newHandler() http.Handler {
	router := mux.NewRouter()
	router.Methods(http.MethodGet, http.MethodHead).
		PathPrefix("/").
		Handler(http.FileServer(http.Dir(s.root)))

	var handler http.Handler = router
	if s.registry != nil {
		handler = metricMiddleware(s.registry, handler)
	}
	return accessLog(s.logger, handler)
}

// Handler returns the request handler serving the root directory.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Root returns the served directory.
func (s *Server) Root() string {
	return s.root
}

// Listen binds the TCP listeners.  It fails when the port is already in use.
func (s *Server) Listen() error {
	listener, err := net.Listen("tcp", net.JoinHostPort(s.address, strconv.Itoa(s.port)))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.port, err)
	}
	s.listener = listener
	s.server = &http.Server{Handler: s.handler, ReadHeaderTimeout: readHeaderTimeout}

	if s.registry != nil {
		metricsListener, err := net.Listen("tcp", s.metricsAddress)
		if err != nil {
			_ = listener.Close()
			return fmt.Errorf("listen metrics on %v: %w", s.metricsAddress, err)
		}
		s.metricsListener = metricsListener
		router := mux.NewRouter()
		router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		s.metricsServer = &http.Server{Handler: router, ReadHeaderTimeout: readHeaderTimeout}
	}
	return nil
}

// Addr returns the bound address, empty before Listen.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Port returns the bound port, or the configured one before Listen.
func (s *Server) Port() int {
	if s.listener == nil {
		return s.port
	}
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return s.port
}

// MetricsAddr returns the bound metrics address, empty when disabled.
func (s *Server) MetricsAddr() string {
	if s.metricsListener == nil {
		return ""
	}
	return s.metricsListener.Addr().String()
}

// Serve blocks serving requests until Shutdown.  It returns nil after a
// graceful shutdown.
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}
	if s.metricsServer != nil {
		go func() {
			if err := s.metricsServer.Serve(s.metricsListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Errorw("metrics server stopped", "error", err)
			}
		}()
	}
	s.logger.Infow("serving", "root", s.root, "address", s.Addr())
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe is Listen followed by Serve.
func (s *Server) ListenAndServe() error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.metricsServer != nil {
		errs = append(errs, s.metricsServer.Shutdown(ctx))
	}
	if s.server != nil {
		errs = append(errs, s.server.Shutdown(ctx))
	}
	// listeners bound by Listen but never served are not owned by http.Server
	for _, listener := range []net.Listener{s.listener, s.metricsListener} {
		if listener != nil {
			_ = listener.Close()
		}
	}
	return errors.Join(errs...)
}
