package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis command failures by operation.
var RedisErrors = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "foodbridge_redis_errors_total",
		Help: "Total number of Redis command errors",
	},
	[]string{"operation"},
)

// ActiveWebSockets tracks the number of open WebSocket connections.
var ActiveWebSockets = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "foodbridge_websocket_connections",
		Help: "Number of currently open WebSocket connections",
	},
)

// InitMetrics creates the Prometheus HTTP metrics collector for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware records request counts, durations and in-flight requests.
func MetricsMiddleware(p *fiberprometheus.FiberPrometheus) fiber.Handler {
	return p.Middleware
}
