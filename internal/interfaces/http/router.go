// Package http is the read-only query API over the loaded record set,
// served by the serve command.
package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/logging"
	prom "github.com/baobabprince/HebrewFamilyTree/internal/infrastructure/monitoring/prometheus"
)

// RouterConfig aggregates the router's dependencies.
type RouterConfig struct {
	State    *State
	Logger   logging.Logger
	Metrics  *prom.Metrics
	Registry *prometheus.Registry // nil serves the default registry on /metrics
	Mode     string               // gin mode: "debug" | "release" | "test"
}

// NewRouter builds the route tree: health and metrics endpoints plus the
// versioned kinship query API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(observe(logger, cfg.Metrics))

	r.GET("/healthz", healthHandler(cfg.State))

	var metricsHandler http.Handler
	if cfg.Registry != nil {
		metricsHandler = promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})
	} else {
		metricsHandler = promhttp.Handler()
	}
	r.GET("/metrics", gin.WrapH(metricsHandler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/individuals/:id", individualHandler(cfg.State))
		v1.GET("/kinship/path", pathHandler(cfg.State, cfg.Metrics))
		v1.GET("/kinship/distances", distancesHandler(cfg.State))
	}

	return r
}

// observe logs every request and records the HTTP metrics.  /healthz and
// /metrics are skipped in the log to keep probe noise out.
func observe(logger logging.Logger, metrics *prom.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		took := time.Since(start)

		if metrics != nil {
			metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(took.Seconds())
		}

		if route == "/healthz" || route == "/metrics" {
			return
		}
		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("route", route),
			logging.Int("status", status),
			logging.Duration("took", took),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http request", fields...)
		default:
			logger.Info("http request", fields...)
		}
	}
}
