package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/handler"
	"shortlink/internal/metrics"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/repository/memory"
	"shortlink/internal/repository/postgres"
	"shortlink/internal/repository/redis"
	"shortlink/internal/repository/sqlite"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
	"shortlink/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = newLogger(os.Stdout, &cfg.Log)
	slog.SetDefault(logger)

	store, poolStats, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store.Driver, err)
	}
	defer store.Close()
	logger.Info("store ready", slog.String("driver", cfg.Store.Driver))

	gen, err := shortener.New(&cfg.Shortcode)
	if err != nil {
		return fmt.Errorf("failed to create code generator: %w", err)
	}

	urlValidator := validation.New(validation.Options{
		MaxURLLength:    cfg.Validation.MaxURLLength,
		AllowPrivateIPs: cfg.Validation.AllowPrivateIPs,
		MinCodeLength:   cfg.Shortcode.MinLength,
		MaxCodeLength:   cfg.Shortcode.MaxLength,
	})

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithMaxAttempts(cfg.Shortcode.MaxAttempts),
	}
	sampler := metrics.InfraSampler{Pool: poolStats}

	if cfg.Cache.Enabled {
		linkCache, err := cache.New(cfg.Cache.MaxSizePow2)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer linkCache.Close()

		opts = append(opts, service.WithCache(linkCache))
		sampler.Cache = linkCache.Stats
	}

	var recorder *metrics.Recorder
	if cfg.Metrics.Enabled {
		recorder = metrics.NewRecorder()
		opts = append(opts, service.WithRecorder(recorder))
		go sampler.Run(ctx, recorder, cfg.Metrics.InfraInterval)
	}

	links := service.NewLinkService(store, gen, urlValidator, opts...)
	h := handler.New(links, store, logger, strings.TrimRight(cfg.App.BaseURL, "/"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	}))

	if recorder != nil {
		e.Use(custommiddleware.Metrics(recorder))
		e.GET(cfg.Metrics.Path, echo.WrapHandler(recorder.Handler()))
	}

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
		if cfg.Pprof.Secret == "" {
			logger.Warn("pprof endpoints are not protected, set PPROF_SECRET")
		}
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	httpServer := newServer(e, &cfg.Server)
	go serve(logger, "http", httpServer, httpListener)

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})

		httpsServer = newServer(e, &cfg.Server)
		go serve(logger, "https", httpsServer, tlsListener)
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

type linkStore interface {
	service.Store
	handler.Pinger
	Close() error
}

// openStore connects the configured backend. The returned func samples its
// connection pool and is nil for the memory store.
func openStore(ctx context.Context, cfg *config.Config) (linkStore, func() metrics.PoolStats, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		s, err := postgres.New(ctx, &cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return s, func() metrics.PoolStats {
			st := s.Pool().Stat()
			return metrics.PoolStats{
				Acquired: int(st.AcquiredConns()),
				Idle:     int(st.IdleConns()),
				Total:    int(st.TotalConns()),
				Max:      int(st.MaxConns()),
			}
		}, nil

	case config.StoreDriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLite.DSN)
		if err != nil {
			return nil, nil, err
		}
		return s, func() metrics.PoolStats {
			st := s.Stats()
			return metrics.PoolStats{
				Acquired: st.InUse,
				Idle:     st.Idle,
				Total:    st.OpenConnections,
				Max:      st.MaxOpenConnections,
			}
		}, nil

	case config.StoreDriverRedis:
		s, err := redis.Connect(ctx, &cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return s, func() metrics.PoolStats {
			st := s.Stats()
			return metrics.PoolStats{
				Acquired: int(st.TotalConns - st.IdleConns),
				Idle:     int(st.IdleConns),
				Total:    int(st.TotalConns),
			}
		}, nil

	case config.StoreDriverMemory:
		return memory.New(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newLogger(w io.Writer, cfg *config.LogConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

func newServer(h http.Handler, cfg *config.ServerConfig) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(logger *slog.Logger, name string, srv *http.Server, l net.Listener) {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(name+" server error", slog.String("error", err.Error()))
	}
}
