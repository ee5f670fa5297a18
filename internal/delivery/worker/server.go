// Package worker hosts the snapshot worker: a Pub/Sub push endpoint that keeps
// the key-value itinerary snapshots in step with PostgreSQL.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"columbus/config"
	"columbus/internal/delivery"
	"columbus/internal/delivery/middleware"
	"columbus/internal/delivery/worker/handler"
	"columbus/internal/domain/lifecycle"
	"columbus/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// pushBodyLimit caps one push envelope; events are a few hundred bytes.
const pushBodyLimit = "64KB"

type workerServer struct {
	hostPort string
	logger   *slog.Logger
	echo     *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		hostPort: net.JoinHostPort("0.0.0.0", strconv.Itoa(params.Cfg.HTTP.Port)),
		logger:   params.Logger,
		echo:     newWorkerEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newWorkerEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(slogecho.NewWithFilters(logger, slogecho.IgnorePath("/health", "/metrics")))
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)
	e.Use(middleware.Metrics)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// One itinerary event per request; the status code drives Pub/Sub redelivery
	e.POST("/push", push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting snapshot worker", slog.String("host_port", s.hostPort))
	if err := s.echo.Start(s.hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down snapshot worker")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}
