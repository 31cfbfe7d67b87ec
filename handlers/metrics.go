package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMetricsHandler exposes the gatherer on GET /metrics.
func RegisterMetricsHandler(router EchoRouter, gatherer prometheus.Gatherer) {
	router.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
