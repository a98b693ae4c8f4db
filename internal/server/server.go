package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server exposes the address codec over HTTP.
type Server struct {
	listen          string
	shutdownTimeout time.Duration
	logger          *logrus.Entry
	registry        *prometheus.Registry
	metrics         *metrics
	echo            *echo.Echo
}

func NewServer(listen string, shutdownTimeout time.Duration, logger *logrus.Entry) *Server {
	if logger == nil {
		logger = logrus.WithField("service", "server")
	}
	registry := prometheus.NewRegistry()
	s := &Server{
		listen:          listen,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
		registry:        registry,
		metrics:         newMetrics(registry),
	}
	s.echo = s.newEcho()
	return s
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := s.logger.WithFields(logrus.Fields{
				"request_id": v.RequestID,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Debug("request handled")
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.GET("/healthz", s.healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := e.Group("/v1")
	v1.POST("/xaddress/encode", s.encodeXAddress)
	v1.GET("/xaddress/:xaddress", s.decodeXAddress)
	v1.GET("/classic/:address/validate", s.validateClassicAddress)
	v1.POST("/seed/encode", s.encodeSeed)
	v1.GET("/seed/:seed", s.decodeSeed)
	v1.GET("/inspect/:value", s.inspect)
	return e
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	stopped := make(chan error, 1)
	go func() {
		s.logger.Infof("server started, listen=%s", s.listen)
		if err := s.echo.Start(s.listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			stopped <- err
		}
		close(stopped)
	}()

	select {
	case <-ctx.Done():
	case err := <-stopped:
		if err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	}

	s.logger.Info("stopping server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}
