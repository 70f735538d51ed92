package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jmolina/railplan-go/internal/adapters/persistence"
	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/application/setup"
	"github.com/jmolina/railplan-go/internal/infrastructure/config"
	"github.com/jmolina/railplan-go/internal/infrastructure/database"
)

// App bundles everything a CLI command needs: configuration, the database
// connection and a mediator with all handlers registered.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Mediator common.Mediator
}

// newApp opens the database, migrates the schema and wires the mediator.
// Callers must Close the returned app.
func newApp() (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	catalogRepo := persistence.NewGormCatalogRepository(db)
	planRepo := persistence.NewGormPlanRepository(db, catalogRepo)
	logRepo := persistence.NewGormPlanLogRepository(db)

	med := common.NewMediator()
	registry := setup.NewHandlerRegistry(planRepo, catalogRepo, logRepo)
	if err := registry.RegisterAll(med); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}

	return &App{Config: cfg, DB: db, Mediator: med}, nil
}

// Close releases the app's database connection
func (a *App) Close() {
	database.Close(a.DB)
}

// requestContext returns the context commands should dispatch with.
// Verbose mode attaches a stdout logger so handlers can narrate no-ops
// and integrity warnings.
func requestContext() context.Context {
	ctx := context.Background()
	if verbose {
		ctx = common.WithLogger(ctx, &common.StdoutLogger{})
	}
	return ctx
}

// withApp wires the app, runs fn and tears down afterwards
func withApp(fn func(ctx context.Context, app *App) error) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	defer app.Close()
	return fn(requestContext(), app)
}
