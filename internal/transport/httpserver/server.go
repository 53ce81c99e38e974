package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"gym-membership-go/internal/config"
	"gym-membership-go/pkg/logger"
)

func New(cfg config.Config, handler http.Handler, log logger.Logger) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ErrorLog:          log.StdLog(slog.LevelError),
	}
}
