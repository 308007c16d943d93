package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/mkettu/fitweek/internal/docstore"
	"github.com/mkettu/fitweek/internal/envstruct"
	"github.com/mkettu/fitweek/internal/errors"
	"github.com/mkettu/fitweek/internal/fitness"
	"github.com/mkettu/fitweek/internal/logging"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	store          *docstore.Store
	fitnessService *fitness.Service
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"FITWEEK_ADDR" envDefault:"localhost:8080"`
	// DocstoreURL is the URL to the SQLite database backing the document store.
	// You can use ":memory:" for an ethereal in-memory database.
	DocstoreURL string `env:"FITWEEK_DOCSTORE_URL" envDefault:"./fitweek.sqlite3"`
	// SecureCookies controls the Secure flag on session cookies. Disable for
	// plain-HTTP local development.
	SecureCookies bool `env:"FITWEEK_SECURE_COOKIES" envDefault:"true"`
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
		return errors.Wrap(err, "populate config")
	}

	store, err := docstore.Open(ctx, cfg.DocstoreURL, logger)
	if err != nil {
		return errors.Wrap(err, "open document store", slog.String("url", cfg.DocstoreURL))
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "close document store", slog.Any("error", closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to document store")

	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(store, cfg.SecureCookies),
		store:          store,
		fitnessService: fitness.NewService(store, logger),
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr, app.routes()); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(store *docstore.Store, secureCookies bool) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(store.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 30 * 24 * time.Hour                                             //nolint:mnd // month
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = secureCookies
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
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
