package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/stronghold-fit/stronghold/internal/ai"
	"github.com/stronghold-fit/stronghold/internal/analytics"
	"github.com/stronghold-fit/stronghold/internal/checkin"
	"github.com/stronghold-fit/stronghold/internal/envstruct"
	"github.com/stronghold-fit/stronghold/internal/logging"
	"github.com/stronghold-fit/stronghold/internal/rowing"
	"github.com/stronghold-fit/stronghold/internal/sqlite"
	"github.com/stronghold-fit/stronghold/internal/workout"
)

type application struct {
	logger           *slog.Logger
	database         *sqlite.Database
	aiClient         *ai.Client
	sessionManager   *scs.SessionManager
	templateFS       fs.FS
	passcode         string
	checkinService   *checkin.Service
	workoutService   *workout.Service
	analyticsService *analytics.Service
	rowerStore       *rowing.Store
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"STRONGHOLD_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"STRONGHOLD_SQLITE_URL" envDefault:"./stronghold.sqlite3"`
	// Passcode is the shared secret the owner logs in with.
	Passcode string `env:"STRONGHOLD_PASSCODE" envDefault:"stronghold"`
	// OpenAIAPIKey authenticates against the OpenAI API for workout drafting and encouragement.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// OpenAIModel overrides the chat completion model.
	OpenAIModel string `env:"STRONGHOLD_OPENAI_MODEL" envDefault:""`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"STRONGHOLD_TEMPLATE_PATH" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return fmt.Errorf("populate config: %w", err)
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return fmt.Errorf("resolve template path: %w", err)
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return fmt.Errorf("open db %s: %w", cfg.SqliteURL, err)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db)

	aiClient := ai.NewClient(ai.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.OpenAIModel,
	}, logger)

	rowerStore := rowing.NewStore()
	checkinService := checkin.NewService(db, logger)
	workoutService := workout.NewService(db, logger, aiClient, rowerStore)

	app := application{
		logger:           logger,
		database:         db,
		aiClient:         aiClient,
		sessionManager:   sessionManager,
		templateFS:       os.DirFS(htmlTemplatePath),
		passcode:         cfg.Passcode,
		checkinService:   checkinService,
		workoutService:   workoutService,
		analyticsService: analytics.NewService(workoutService, checkinService, logger),
		rowerStore:       rowerStore,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                               //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", slog.Any("error", err))
		os.Exit(1)
	}
}
