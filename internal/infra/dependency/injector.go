// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fintrack/backend/config"
	"github.com/fintrack/backend/internal/application/store"
	"github.com/fintrack/backend/internal/application/usecase/category"
	"github.com/fintrack/backend/internal/application/usecase/dashboard"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	"github.com/fintrack/backend/internal/domain/entity"
	"github.com/fintrack/backend/internal/infra/server/router"
	"github.com/fintrack/backend/internal/integration/entrypoint/controller"
	"github.com/fintrack/backend/internal/integration/entrypoint/middleware"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Store       *store.Store
	RateLimiter *middleware.RateLimiter
	Router      *router.Router
}

// Option customises the injector for tests.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock sets the time source shared by the store and the export use case.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, opts ...Option) (*Injector, error) {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	var categories []entity.Category
	if cfg.Store.SeedDefaultCategories {
		categories = entity.DefaultCategories()
	}

	// Create store
	txnStore, err := store.New(categories,
		store.WithClock(o.clock),
		store.WithLogger(slog.Default().With("component", "store")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction store: %w", err)
	}

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(txnStore)
	recentTransactionsUseCase := transaction.NewListRecentTransactionsUseCase(txnStore, cfg.Store.RecentLimit)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(txnStore)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(txnStore)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(txnStore)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(txnStore)
	clearTransactionsUseCase := transaction.NewClearTransactionsUseCase(txnStore)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(txnStore, o.clock)
	importTransactionsUseCase := transaction.NewImportTransactionsUseCase(txnStore)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(txnStore, cfg.Store.RecentLimit)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(txnStore)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(txnStore)

	// Create controllers
	healthController := controller.NewHealthController(func() int {
		return txnStore.Count(nil)
	})
	categoryController := controller.NewCategoryController(listCategoriesUseCase)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		recentTransactionsUseCase,
		getTransactionUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		clearTransactionsUseCase,
		exportTransactionsUseCase,
		importTransactionsUseCase,
	)
	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getCategoryBreakdownUseCase,
	)

	// Create middleware
	writeRateLimiter := middleware.NewRateLimiterWithConfig(
		cfg.RateLimit.Enabled,
		cfg.RateLimit.MaxRequests,
		cfg.RateLimit.Window,
	)

	r := router.NewRouter(
		healthController,
		categoryController,
		transactionController,
		dashboardController,
		writeRateLimiter,
	)

	return &Injector{
		Config:      cfg,
		Store:       txnStore,
		RateLimiter: writeRateLimiter,
		Router:      r,
	}, nil
}
