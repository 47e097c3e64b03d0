package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/stronghold-fit/stronghold/internal/e2etest"
	"github.com/stronghold-fit/stronghold/internal/logging"
	"github.com/stronghold-fit/stronghold/internal/testhelpers"
)

func TestAuth(client *e2etest.Client, passcode string) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var err error

	if _, err = client.Login(ctx, passcode); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	// An authenticated endpoint proves the session cookie sticks. Any
	// response other than 401 counts; a fresh deployment has no check-in.
	if err = client.GetJSON(ctx, "/api/checkins/today", http.StatusNotFound, nil); err != nil &&
		strings.Contains(err.Error(), "status code: 401") {
		return fmt.Errorf("session not established: %w", err)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}
	passcode, ok := os.LookupEnv("STRONGHOLD_PASSCODE")
	if !ok {
		logger.LogAttrs(ctx, slog.LevelError, "STRONGHOLD_PASSCODE must be set")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		client   *e2etest.Client
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	url := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		url = "http://" + hostname
	}

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = client.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}
	if err = TestAuth(client, passcode); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing auth", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
