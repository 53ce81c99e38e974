package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"gym-membership-go/internal/app"
	"gym-membership-go/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	bootLog := logger.NewFromEnv()
	bootLog.Info("app: starting", "service", "gym-membership")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(bootLog)
	if err != nil {
		bootLog.Critical("app: init failed", "err", err)
		return 1
	}
	log := application.Logger()
	srv := application.HTTPServer()

	exitCode := 0
	if err := serve(ctx, srv, log); err != nil {
		log.Critical("http: server stopped with error", "addr", srv.Addr, "err", err)
		exitCode = 1
	}

	if err := application.Close(); err != nil {
		log.Error("app: close failed", "err", err)
		exitCode = 1
	}

	if exitCode == 0 {
		log.Info("app: stopped")
	}
	return exitCode
}

// serve runs srv until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func serve(ctx context.Context, srv *http.Server, log logger.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http: listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", srv.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			log.Info("app: shutdown signal received")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
