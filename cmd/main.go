package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
	"golang.org/x/oauth2"

	"campaign-sync/internal/adapter/breaker"
	"campaign-sync/internal/adapter/events"
	httpadapter "campaign-sync/internal/adapter/http"
	"campaign-sync/internal/adapter/jobs"
	"campaign-sync/internal/adapter/memory"
	"campaign-sync/internal/adapter/platform/reddit"
	"campaign-sync/internal/adapter/postgres"
	"campaign-sync/internal/adapter/usecase"
	"campaign-sync/internal/config"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/db"
)

// stores bundles the persistence ports selected by STORE.
type stores struct {
	repo     port.EntityRepository
	accounts port.AccountRepository
	tokens   port.TokenProvider
	close    func()
}

// main is the entry point of the campaign sync service. It loads
// configuration, opens the selected store, wires the sync job handler and
// runs the job runner and HTTP server under one supervisor until a
// termination signal arrives.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("store initialisation error", slog.Any("error", err))
		return
	}
	defer st.close()

	factory, err := reddit.NewFactory(reddit.Config{
		BaseURL:  cfg.Reddit.BaseURL,
		Timeout:  cfg.Reddit.Timeout,
		RPS:      cfg.Reddit.RPS,
		MaxPages: cfg.Reddit.MaxPages,
	}, logger)
	if err != nil {
		logger.Error("platform adapter error", slog.Any("error", err))
		return
	}

	bus := events.NewBus(logger, cfg.Jobs.SubscriberBuffer, cfg.Jobs.Retention)
	defer bus.Close()

	handler := usecase.NewSyncJobHandler(usecase.SyncJobDeps{
		Factory:  factory,
		Accounts: st.accounts,
		Tokens:   st.tokens,
		Repo:     st.repo,
		Breakers: breaker.NewRegistry(breaker.Settings{
			Threshold: cfg.Breaker.Threshold,
			Cooldown:  cfg.Breaker.Cooldown,
		}, logger),
		Orchestrator: usecase.NewOrchestrator(logger),
		Events:       bus,
		Logger:       logger,
	})

	runner := jobs.NewRunner(jobs.Config{
		Workers:    cfg.Jobs.Workers,
		QueueSize:  cfg.Jobs.QueueSize,
		JobTimeout: cfg.Jobs.Timeout,
		Retention:  cfg.Jobs.Retention,
	}, handler, logger)

	api := httpadapter.NewHandler(runner, bus, logger)
	server := httpadapter.NewServer(&http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           api.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}, cfg.HTTP.ShutdownTimeout, logger)

	sup := suture.New("campaign-sync", suture.Spec{
		EventHook: (&sutureslog.Handler{Logger: logger}).MustHook(),
		Timeout:   cfg.HTTP.ShutdownTimeout + 5*time.Second,
	})
	sup.Add(runner)
	sup.Add(server)
	errCh := sup.ServeBackground(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case value := <-quit:
		exitCode = 128 + int(value.(syscall.Signal))
		logger.Info("shutting down", slog.String("signal", value.String()))
	case err = <-errCh:
		logger.Error("supervisor stopped", slog.Any("error", err))
		return
	}

	cancel()
	if err = <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("supervisor shutdown error", slog.Any("error", err))
	} else {
		logger.Info("service gracefully stopped")
	}
}

// openStores builds the repositories selected by cfg.Store. The postgres
// store optionally migrates and seeds the database first; the memory store
// is seeded in process when PSQL_SEED is set.
func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (stores, error) {
	if cfg.Store == config.StoreMemory {
		repo := memory.NewRepository()
		accounts := memory.NewAccounts()
		if cfg.Psql.Seed {
			var tok *oauth2.Token
			if cfg.Psql.SeedToken != "" {
				tok = &oauth2.Token{
					AccessToken: cfg.Psql.SeedToken,
					TokenType:   "Bearer",
					Expiry:      time.Now().Add(24 * time.Hour),
				}
			}
			accounts.PutAccount(db.DemoAdAccount(cfg.Psql.SeedRemoteAccount), tok)
			repo.Put(db.DemoCampaignSet())
			logger.Info("memory store seeded", slog.String("set_id", db.DemoSetID.String()))
		}
		return stores{repo: repo, accounts: accounts, tokens: accounts, close: func() {}}, nil
	}

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		version, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return stores{}, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully", slog.Uint64("version", uint64(version)))
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return stores{}, fmt.Errorf("database connection: %w", err)
	}

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, cfg.Psql.SeedRemoteAccount, cfg.Psql.SeedToken); err != nil {
			pool.Close()
			return stores{}, err
		}
		logger.Info("database seeded", slog.String("set_id", db.DemoSetID.String()))
	}

	accounts := postgres.NewAccountRepository(pool)
	return stores{
		repo:     postgres.NewCampaignSetRepository(pool),
		accounts: accounts,
		tokens:   accounts,
		close:    pool.Close,
	}, nil
}
