package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/adapters/persistence"
	"github.com/jmolina/railplan-go/internal/application/planning/queries"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
	"github.com/jmolina/railplan-go/test/helpers"
)

func seededPlanRepo(t *testing.T) (planning.PlanRepository, catalog.Repository) {
	t.Helper()
	db := helpers.NewTestDB(t)
	catalogRepo := helpers.SeedCatalog(t, db)
	return persistence.NewGormPlanRepository(db, catalogRepo), catalogRepo
}

func TestProjectInventoryQuery_AppliesInitialStock(t *testing.T) {
	// Arrange - level 1 gathers coal, level 2 smelts steel
	planRepo, catalogRepo := seededPlanRepo(t)
	catalogs, err := catalogRepo.LoadCatalogs(context.Background())
	require.NoError(t, err)

	plan := planning.NewProductionPlan(planning.DefaultPlanID)
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t3"), 1, catalogs)
	plan.AddStep(planning.NewFactoryStep("steel", 2, 60), 2, catalogs)
	require.NoError(t, planRepo.Save(context.Background(), plan))

	handler := queries.NewProjectInventoryHandler(planRepo)

	// Act
	result, err := handler.Handle(context.Background(), &queries.ProjectInventoryQuery{
		Level:   2,
		Initial: map[string]int{"iron": 10},
	})

	// Assert - 30 gathered coal feeds the recipe, initial iron is consumed
	require.NoError(t, err)
	inventory := result.(*queries.ProjectInventoryResponse).Inventory
	assert.Equal(t, 0, inventory["coal"])
	assert.Equal(t, 0, inventory["iron"])
	assert.Equal(t, 40, inventory["steel"])
}

func TestProjectInventoryQuery_EmptyPlanReturnsInitial(t *testing.T) {
	// Arrange
	planRepo, _ := seededPlanRepo(t)
	handler := queries.NewProjectInventoryHandler(planRepo)

	// Act
	result, err := handler.Handle(context.Background(), &queries.ProjectInventoryQuery{
		Level:   5,
		Initial: map[string]int{"coal": 7},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"coal": 7}, result.(*queries.ProjectInventoryResponse).Inventory)
}

func TestLevelWarningsQuery_FlagsOverCapacityAndQueues(t *testing.T) {
	// Arrange - more train steps than workers and more factory steps than
	// the smeltery queue allows
	planRepo, catalogRepo := seededPlanRepo(t)
	catalogs, err := catalogRepo.LoadCatalogs(context.Background())
	require.NoError(t, err)

	plan := planning.NewProductionPlan(planning.DefaultPlanID)
	plan.MaxConcurrentWorkers = 2
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t1"), 1, catalogs)
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t2"), 1, catalogs)
	plan.AddStep(planning.NewDestinationStep("iron", 1, 30, "t3"), 1, catalogs)
	plan.AddStep(planning.NewFactoryStep("steel", 1, 60), 1, catalogs)
	plan.AddStep(planning.NewFactoryStep("steel", 1, 60), 1, catalogs)
	plan.AddStep(planning.NewFactoryStep("steel", 1, 60), 1, catalogs)
	require.NoError(t, planRepo.Save(context.Background(), plan))

	handler := queries.NewLevelWarningsHandler(planRepo, catalogRepo)

	// Act
	result, err := handler.Handle(context.Background(), &queries.LevelWarningsQuery{Level: 1})

	// Assert
	require.NoError(t, err)
	response := result.(*queries.LevelWarningsResponse)
	require.True(t, response.LevelFound)
	assert.True(t, response.OverCapacity)
	assert.Equal(t, 3, response.TrainSteps)
	assert.Equal(t, 2, response.MaxConcurrentWorkers)
	require.Len(t, response.FactoryQueues, 1)
	assert.Equal(t, "smeltery", response.FactoryQueues[0].FactoryID)
	assert.Equal(t, 3, response.FactoryQueues[0].StepCount)
	assert.Equal(t, 2, response.FactoryQueues[0].QueueMaxSize)
}

func TestLevelWarningsQuery_SurfacesIntegrityWarnings(t *testing.T) {
	// Arrange - a destination step whose train no longer exists
	planRepo, catalogRepo := seededPlanRepo(t)
	catalogs, err := catalogRepo.LoadCatalogs(context.Background())
	require.NoError(t, err)

	plan := planning.NewProductionPlan(planning.DefaultPlanID)
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "scrapped"), 1, catalogs)
	require.NoError(t, planRepo.Save(context.Background(), plan))

	handler := queries.NewLevelWarningsHandler(planRepo, catalogRepo)

	// Act
	result, err := handler.Handle(context.Background(), &queries.LevelWarningsQuery{Level: 1})

	// Assert
	require.NoError(t, err)
	response := result.(*queries.LevelWarningsResponse)
	require.True(t, response.LevelFound)
	assert.NotEmpty(t, response.Integrity)
}

func TestLevelWarningsQuery_MissingLevel(t *testing.T) {
	// Arrange
	planRepo, catalogRepo := seededPlanRepo(t)
	handler := queries.NewLevelWarningsHandler(planRepo, catalogRepo)

	// Act
	result, err := handler.Handle(context.Background(), &queries.LevelWarningsQuery{Level: 42})

	// Assert
	require.NoError(t, err)
	assert.False(t, result.(*queries.LevelWarningsResponse).LevelFound)
}
