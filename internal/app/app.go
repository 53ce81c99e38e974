package app

import (
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	"gym-membership-go/internal/config"
	"gym-membership-go/internal/db"
	memberdomain "gym-membership-go/internal/domain/member"
	memberrepo "gym-membership-go/internal/repository/member"
	"gym-membership-go/internal/transport/httpserver"
	"gym-membership-go/internal/transport/httpserver/handler"
	"gym-membership-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	httpServer *http.Server
	db         *gorm.DB
}

// New loads configuration, opens and migrates the store, and builds the
// HTTP server. The returned logger honours LOG_LEVEL and LOG_FORMAT as
// loaded from .env, so callers should switch to it once New succeeds.
func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log = logger.NewWithOptions(os.Stdout, logger.Options{
		Env:    cfg.Env,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		_ = db.Close(dbConn)
		return nil, err
	}

	memberService := memberdomain.NewService(memberrepo.NewStore(dbConn))
	handlers := handler.New(memberService, log)

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, registry)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router, log)

	return &App{
		cfg:        cfg,
		log:        log,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Logger() logger.Logger {
	return a.log
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return db.Close(a.db)
}
