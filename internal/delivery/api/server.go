package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"comerciaya/config"
	"comerciaya/internal/delivery"
	apimiddleware "comerciaya/internal/delivery/api/middleware"
	"comerciaya/internal/delivery/api/router"
	"comerciaya/internal/delivery/api/validator"
	deliverycontext "comerciaya/internal/delivery/context"
	"comerciaya/internal/delivery/middleware"
	"comerciaya/internal/domain/lifecycle"
	"comerciaya/internal/errors"
	"comerciaya/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	RouterParams router.RouterParams
}

// NewServer builds the echo server for the marketplace API. It is started by
// the application lifecycle through delivery.Delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	useMiddleware(echoServer, params)

	echoServer.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)
	r.RegisterOpsRoutes(echoServer)
	params.Logger.Debug("API routes registered", slog.Int("routes", len(echoServer.Routes())))

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// useMiddleware installs the global chain. Order matters: panics are
// recovered first, and the logger needs the request id.
func useMiddleware(e *echo.Echo, params ServerParams) {
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)
	e.Use(params.Metrics.Middleware)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, deliverycontext.HeaderXRequestID},
		ExposeHeaders: []string{deliverycontext.HeaderXRequestID},
	}))
	// Also bounds multipart image uploads.
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
}

// Serve listens with h2c so clients may use HTTP/2 without TLS. It returns
// after the server is shut down by the lifecycle.
func (s *apiServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting marketplace API server",
		slog.String("host_port", hostPort),
		slog.String("storage", s.cfg.Storage.Driver),
	)

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "api server stopped")
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down marketplace API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
