package fileserver

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"
	"go.uber.org/zap"
)

const metricsHandlerID = "files"

type statusWriter struct {
	http.ResponseWriter
	status int
	length int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.length += n
	return n, err
}

// accessLog logs one entry per request once it has been served.
func accessLog(logger *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		start := time.Now()
		writer := &statusWriter{ResponseWriter: response}
		next.ServeHTTP(writer, request)
		if writer.status == 0 {
			writer.status = http.StatusOK
		}
		logger.Infow("request",
			"clientIP", request.RemoteAddr,
			"method", request.Method,
			"path", request.URL.Path,
			"statusCode", writer.status,
			"bodySize", writer.length,
			"latency", time.Since(start).String(),
		)
	})
}

// metricMiddleware instruments handler with request count, duration and size
// metrics registered on registry.
func metricMiddleware(registry prometheus.Registerer, handler http.Handler) http.Handler {
	mdlw := middleware.New(middleware.Config{
		Recorder: metrics.NewRecorder(metrics.Config{
			Registry: registry,
		}),
	})
	return std.Handler(metricsHandlerID, mdlw, handler)
}
