package mockapi

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"agrodoctor/config"
	"agrodoctor/internal/delivery"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type server struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer assembles the mock backend over echo.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	if params.Config.Mock == nil {
		return nil, errors.New("mock server configuration is missing")
	}

	store, err := NewStore()
	if err != nil {
		return nil, errors.Wrap(err, "seed store")
	}

	tokens, err := newTokenService(params.Config.Mock.SecretKey)
	if err != nil {
		return nil, err
	}

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())

	timeouts := params.Config.Mock.Timeouts
	echoServer.Server.ReadTimeout = timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = timeouts.IdleTimeout

	registerRoutes(echoServer, newHandler(store, tokens, params.Logger))

	mock := &server{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: mock.stop,
	})

	return mock, nil
}

func (s *server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Mock.Port))
	s.logger.Info("Starting mock API server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.Wrap(err, "failed to serve mock api")
	}

	return nil
}

func (s *server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down mock API server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
