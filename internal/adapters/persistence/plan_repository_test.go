package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/adapters/persistence"
	"github.com/jmolina/railplan-go/internal/domain/planning"
	"github.com/jmolina/railplan-go/test/helpers"
)

func TestPlanRepository_LoadMissingPlanReturnsNil(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalogRepo := helpers.SeedCatalog(t, db)
	repo := persistence.NewGormPlanRepository(db, catalogRepo)

	// Act
	plan, err := repo.Load(context.Background(), "nope")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, plan)
}

func TestPlanRepository_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalogRepo := helpers.SeedCatalog(t, db)
	repo := persistence.NewGormPlanRepository(db, catalogRepo)

	catalogs, err := catalogRepo.LoadCatalogs(context.Background())
	require.NoError(t, err)

	plan := planning.NewProductionPlan("default")
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t1"), 1, catalogs)
	plan.AddStep(planning.NewDestinationStep("iron", 1, 30, "t2"), 1, catalogs)
	plan.AddStep(planning.NewFactoryStep("steel", 2, 60), 2, catalogs)
	plan.Levels[1].Done = true

	// Act
	require.NoError(t, repo.Save(context.Background(), plan))
	loaded, err := repo.Load(context.Background(), "default")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, []int{1, 2}, loaded.LevelNumbers())
	assert.True(t, loaded.Levels[1].Done)
	assert.False(t, loaded.Levels[2].Done)
	assert.Equal(t, plan.MaxConcurrentWorkers, loaded.MaxConcurrentWorkers)

	// Step order within the level survives
	require.Len(t, loaded.Levels[1].Steps, 2)
	assert.Equal(t, "t1", loaded.Levels[1].Steps[0].TrainID)
	assert.Equal(t, "t2", loaded.Levels[1].Steps[1].TrainID)
	assert.Equal(t, 1, loaded.Levels[1].Steps[0].LevelID)

	// Derived deltas are recomputed on load, not stored
	assert.Equal(t, map[string]int{"coal": 20, "iron": 20}, loaded.Levels[1].InventoryChanges)
	assert.Equal(t, map[string]int{"steel": 40, "iron": -10, "coal": -30}, loaded.Levels[2].InventoryChanges)
}

func TestPlanRepository_SaveIsARewrite(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalogRepo := helpers.SeedCatalog(t, db)
	repo := persistence.NewGormPlanRepository(db, catalogRepo)

	catalogs, err := catalogRepo.LoadCatalogs(context.Background())
	require.NoError(t, err)

	plan := planning.NewProductionPlan("default")
	step := planning.NewDestinationStep("coal", 1, 30, "t1")
	plan.AddStep(step, 1, catalogs)
	require.NoError(t, repo.Save(context.Background(), plan))

	// Act - remove the step and save again
	plan.RemoveStep(step.ID, catalogs)
	require.NoError(t, repo.Save(context.Background(), plan))
	loaded, err := repo.Load(context.Background(), "default")

	// Assert - no orphaned step rows resurface
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.StepCount())
}

func TestPlanRepository_Delete(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	catalogRepo := helpers.SeedCatalog(t, db)
	repo := persistence.NewGormPlanRepository(db, catalogRepo)

	plan := planning.NewProductionPlan("default")
	require.NoError(t, repo.Save(context.Background(), plan))

	// Act
	require.NoError(t, repo.Delete(context.Background(), "default"))
	loaded, err := repo.Load(context.Background(), "default")

	// Assert
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPlanLogRepository_AppendAndList(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormPlanLogRepository(db)
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i, message := range []string{"created level 1", "added step", "removed level 2"} {
		err := repo.Append(context.Background(), &planning.ActivityEntry{
			PlanID:    "default",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Level:     "INFO",
			Message:   message,
		})
		require.NoError(t, err)
	}

	// Act
	entries, err := repo.List(context.Background(), "default", 2)

	// Assert - newest first, limited
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "removed level 2", entries[0].Message)
	assert.Equal(t, "added step", entries[1].Message)

	all, err := repo.List(context.Background(), "default", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
