// Grounded on internal/metrics/server.go's CreateMetricsServer, retargeted
// to take its bind address directly instead of a shared config.Config.
package pagingmetrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const readTimeout = 3 * time.Second

// ServeMetrics starts a blocking HTTP server exposing /metrics on
// bind:port. It returns an error instead of panicking if the listener
// cannot be created (e.g. the port is already in use).
func ServeMetrics(bind string, port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", bind, port),
		Handler:           mux,
		ReadHeaderTimeout: readTimeout,
	}
	return server.ListenAndServe()
}
