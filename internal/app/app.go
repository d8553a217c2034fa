package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pyxpay-admin/internal/config"
	"pyxpay-admin/internal/database"
	"pyxpay-admin/internal/pyxpay"
	"pyxpay-admin/internal/repositories"
	"pyxpay-admin/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// App holds the dashboard's stores and services, built once and shared by the
// HTTP server and the CLI commands.
type App struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry

	DB    *database.DB
	Redis *redis.Client
	State repositories.StateRepositoryInterface

	API          *pyxpay.Client
	Session      services.SessionServiceInterface
	Tokens       services.TokenServiceInterface
	SavedKeys    services.SavedKeyServiceInterface
	Wallet       services.WalletServiceInterface
	Filters      services.FilterStoreInterface
	Columns      services.ColumnPreferencesInterface
	Transactions services.TransactionListServiceInterface
	Forms        services.TransactionFormServiceInterface
	Dashboard    services.DashboardServiceInterface
}

// New opens the database (and redis when it is the state backend) and wires every service.
// Persisted state is not read until Load or StartBackground.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := Assemble(cfg, db, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

// Assemble wires the services on top of an already opened database
func Assemble(cfg *config.Config, db *database.DB, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: prometheus.NewRegistry(),
		DB:       db,
	}
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if err := a.openState(); err != nil {
		return nil, err
	}

	if err := a.wire(); err != nil {
		if a.Redis != nil {
			_ = a.Redis.Close()
		}
		return nil, err
	}

	return a, nil
}

func (a *App) openState() error {
	switch a.Config.Store.Backend {
	case config.StoreBackendRedis:
		client, err := database.ConnectRedis(&a.Config.Store)
		if err != nil {
			return err
		}
		a.Redis = client
		a.State = repositories.NewRedisStateRepository(client)
	case config.StoreBackendDatabase, "":
		a.State = repositories.NewStateRepository(a.DB.DB)
	default:
		return fmt.Errorf("unsupported state backend %q", a.Config.Store.Backend)
	}
	return nil
}

func (a *App) wire() error {
	cipher, err := services.NewKeyCipher(a.Config.Store.Secret)
	if err != nil {
		return fmt.Errorf("failed to build key cipher: %w", err)
	}

	metrics := services.NewPrometheusMetricsWith(a.Registry)
	endpoint := a.Config.PyxPay.DefaultEndpoint

	a.API = pyxpay.NewClient(pyxpay.ClientConfig{Timeout: a.Config.PyxPay.Timeout}, a.Logger.With("component", "pyxpay"), metrics)
	a.SavedKeys = services.NewSavedKeyService(repositories.NewSavedKeyRepository(a.DB.DB), cipher, endpoint, a.Logger)
	a.Session = services.NewSessionService(a.API, a.State, a.SavedKeys, cipher, endpoint, a.Logger, metrics)
	a.Tokens = services.NewTokenService(&a.Config.JWT)
	a.Wallet = services.NewWalletService(a.API, a.Session, a.Logger, metrics)
	a.Filters = services.NewFilterStore(a.State, a.Logger)
	a.Columns = services.NewColumnPreferences(a.State, a.Logger)
	a.Transactions = services.NewTransactionListService(a.API, a.Session, a.Filters, a.Logger, metrics)
	a.Forms = services.NewTransactionFormService(a.API, a.Session, a.Logger, metrics)
	a.Dashboard = services.NewDashboardService(a.Wallet, a.Transactions, a.Logger)

	return nil
}

// Load reads every persisted store, waiting for the session to hydrate
func (a *App) Load(ctx context.Context) error {
	if err := a.loadPreferences(ctx); err != nil {
		return err
	}
	return a.Session.Hydrate(ctx)
}

// StartBackground loads the filters and columns and hydrates the session in the background
func (a *App) StartBackground(ctx context.Context) error {
	if err := a.loadPreferences(ctx); err != nil {
		return err
	}
	a.Session.StartHydration(ctx)
	return nil
}

func (a *App) loadPreferences(ctx context.Context) error {
	if err := a.Filters.Load(ctx); err != nil {
		return fmt.Errorf("failed to load transaction filters: %w", err)
	}
	if err := a.Columns.Load(ctx); err != nil {
		return fmt.Errorf("failed to load column preferences: %w", err)
	}
	return nil
}

// Close releases the redis client and the database
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.Close())
	}
	return errors.Join(errs...)
}
