package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gym-membership-go/internal/client"
	"gym-membership-go/internal/ui"
	"gym-membership-go/pkg/logger"
)

const defaultBaseURL = "http://localhost:3000/api"

func main() {
	_ = godotenv.Load()

	baseURL := flag.String("api", envOr("API_BASE_URL", defaultBaseURL), "member API base URL")
	verbose := flag.Bool("v", false, "log diagnostics to stderr")
	flag.Parse()

	log := logger.Discard()
	if *verbose {
		log = logger.NewWithOptions(os.Stderr, logger.Options{
			Env:    os.Getenv("ENV"),
			Level:  os.Getenv("LOG_LEVEL"),
			Format: "text",
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client.New(*baseURL), os.Stdin, os.Stdout, log); err != nil {
		log.Critical("console: failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, api ui.API, in io.Reader, out io.Writer, log logger.Logger) error {
	con := newConsole(bufio.NewScanner(in), out)
	con.ctrl = ui.NewController(api, con.confirm, log)
	return con.run(ctx)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
