// Package server owns the startup sequence: configuration, connections,
// seeding, middleware stack, and the listener.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/ctrlz-wear/ctrlz-api/app/repositories"
	"github.com/ctrlz-wear/ctrlz-api/app/routes"
	"github.com/ctrlz-wear/ctrlz-api/config"
	"github.com/ctrlz-wear/ctrlz-api/database/seeders"
	"github.com/ctrlz-wear/ctrlz-api/pkg/cache"
	"github.com/ctrlz-wear/ctrlz-api/pkg/database"
	"github.com/ctrlz-wear/ctrlz-api/pkg/logger"
	"github.com/ctrlz-wear/ctrlz-api/pkg/metrics"
	"github.com/ctrlz-wear/ctrlz-api/pkg/middleware"
	"github.com/ctrlz-wear/ctrlz-api/pkg/reqid"
	"github.com/ctrlz-wear/ctrlz-api/pkg/router"
)

// Start runs the CTRL-Z API until the listener fails. Neither a missing
// MongoDB nor a missing Redis is fatal: the catalog degrades to its static
// fallback and caching switches off.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		logger.Warn("mongodb unavailable, serving fallback catalog", "error", err)
	}
	defer database.Close()

	if err := cache.Connect(); err != nil {
		logger.Warn("redis unavailable, caching disabled", "error", err)
	}

	// Seed once, before the listener accepts requests. Failures are logged
	// and swallowed: an unseeded catalog still serves, and the seed command
	// can retry later.
	store := repositories.NewMongoProductStore(database.DB)
	if err := seeders.RunAll(context.Background(), store); err != nil {
		logger.Warn("seeding failed", "error", err)
	}

	addr := ":" + config.AppPort()
	logger.Info("ctrlz-api listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, Handler())
}

// Handler builds the full HTTP handler: global middleware, the metrics
// endpoint, and every API route.
func Handler() http.Handler {
	r := router.New()

	// Outermost to innermost: metrics for accurate total latency, recovery
	// before anything can panic unobserved, request id before the first log
	// line, then logging, CORS, rate limiting.
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(corsOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r)
	return r.Handler()
}

func corsOptions() middleware.CORSOptions {
	opts := middleware.DefaultCORSOptions()
	if origins := config.CORSOrigins(); len(origins) > 0 {
		opts.AllowedOrigins = origins
	}
	return opts
}
