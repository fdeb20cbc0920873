package fileserver

import "go.uber.org/zap"

// Option modifies a server before it starts.
type Option func(*Server)

// WithRoot sets the served directory, "." by default.
func WithRoot(root string) Option {
	return func(s *Server) {
		s.root = root
	}
}

// WithPort sets the listening port.  Zero picks a free port.
func WithPort(port int) Option {
	return func(s *Server) {
		s.port = port
	}
}

// WithAddress restricts the listener to one interface.  Empty means all.
func WithAddress(address string) Option {
	return func(s *Server) {
		s.address = address
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes Prometheus metrics at /metrics on address.
func WithMetrics(address string) Option {
	return func(s *Server) {
		s.metricsAddress = address
	}
}
