package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

func TestCreateResourceJob_PrefersDestinationWhenSlotFree(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("coal", 30), 1, plan, catalogs)

	// Assert - one destination step appended to level 1, hauled by a train
	// with capacity >= 30 (t3 is the closest fit)
	require.NoError(t, err)
	require.NotNil(t, step)
	assert.Equal(t, planning.StepTypeDestination, step.Type)
	assert.Equal(t, 1, step.LevelID)
	assert.Equal(t, "t3", step.TrainID)
	assert.Equal(t, 30, step.TimeRequired)
	require.Len(t, plan.Levels[1].Steps, 1)
	assert.Equal(t, 30, plan.Levels[1].InventoryChanges["coal"])
}

func TestCreateResourceJob_FallsBackToFactory(t *testing.T) {
	// Arrange - steel has a recipe but no destination
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("steel", 40), 1, plan, catalogs)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, planning.StepTypeFactory, step.Type)
	assert.Equal(t, 60, step.TimeRequired)
	assert.Empty(t, step.TrainID)
	assert.Equal(t, 40, plan.Levels[1].InventoryChanges["steel"])
}

func TestCreateResourceJob_SaturatedLevelRecursesEarlier(t *testing.T) {
	// Arrange - level 2's train slots are full, level 1 has room
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	plan.MaxConcurrentWorkers = 2
	plan.InsertLevel(2)
	plan.AddStep(planning.NewDestinationStep("coal", 2, 30, "t1"), 2, catalogs)
	plan.AddStep(planning.NewDestinationStep("iron", 2, 45, "t2"), 2, catalogs)
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("iron", 20), 2, plan, catalogs)

	// Assert - the gathering work was pushed one level earlier
	require.NoError(t, err)
	assert.Equal(t, planning.StepTypeDestination, step.Type)
	assert.Equal(t, 1, step.LevelID)
	require.Len(t, plan.Levels[1].Steps, 1)
	assert.Len(t, plan.Levels[2].Steps, 2)
}

func TestCreateResourceJob_AllLevelsSaturatedInsertsNewFront(t *testing.T) {
	// Arrange - a single level, fully occupied; coal has no recipe so the
	// synthesizer must make room by inserting a new level 1
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	plan.MaxConcurrentWorkers = 2
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t1"), 1, catalogs)
	plan.AddStep(planning.NewDestinationStep("iron", 1, 45, "t2"), 1, catalogs)
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("coal", 20), 1, plan, catalogs)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, plan.LevelNumbers())
	assert.Equal(t, 1, step.LevelID)
	require.Len(t, plan.Levels[1].Steps, 1)
	assert.Equal(t, step.ID, plan.Levels[1].Steps[0].ID)
}

func TestCreateResourceJob_DoneLevelPushesWorkEarlier(t *testing.T) {
	// Arrange - level 2 is marked done, level 1 is open
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	plan.InsertLevel(2)
	plan.Levels[2].Done = true
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("coal", 20), 2, plan, catalogs)

	// Assert - the step really landed in the plan, one level earlier
	require.NoError(t, err)
	assert.Equal(t, 1, step.LevelID)
	found, level := plan.FindStep(step.ID)
	require.NotNil(t, found)
	assert.Equal(t, 1, level.Level)
	assert.Equal(t, 20, plan.Levels[1].InventoryChanges["coal"])
	assert.Empty(t, plan.Levels[2].Steps)
}

func TestCreateResourceJob_DoneFrontLevelInsertsNewFront(t *testing.T) {
	// Arrange - the only level is done; steel has a recipe but no destination
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	plan.Levels[1].Done = true
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("steel", 40), 1, plan, catalogs)

	// Assert - a fresh front level holds the factory step, the done level
	// shifted to 2 untouched
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, plan.LevelNumbers())
	assert.Equal(t, planning.StepTypeFactory, step.Type)
	assert.Equal(t, 1, step.LevelID)
	found, _ := plan.FindStep(step.ID)
	require.NotNil(t, found)
	assert.Equal(t, 40, plan.Levels[1].InventoryChanges["steel"])
	assert.True(t, plan.Levels[2].Done)
	assert.Empty(t, plan.Levels[2].Steps)
}

func TestCreateResourceJob_BusyTrainsFallBackToFactory(t *testing.T) {
	// Arrange - slots are open but every eligible train is claimed; steel's
	// inputs aside, coal itself has no recipe, steel does
	catalogs := testCatalogs()
	// Strip the fleet down to one common train and claim it.
	catalogs.Trains = map[string]*catalog.Train{
		"t1": {ID: "t1", Name: "Black Hawk", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"},
	}
	plan := planning.NewProductionPlan("p1")
	plan.AddStep(planning.NewDestinationStep("iron", 1, 45, "t1"), 1, catalogs)

	// Give steel a destination so the destination branch is attempted first.
	catalogs.Destinations["steel-depot"] = &catalog.Destination{
		ID: "steel-depot", ResourceID: "steel", TravelTime: 90,
		Classes: []catalog.TrainClass{catalog.TrainClassCommon},
	}
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("steel", 40), 1, plan, catalogs)

	// Assert - no free train, so the recipe wins
	require.NoError(t, err)
	assert.Equal(t, planning.StepTypeFactory, step.Type)
}

func TestCreateResourceJob_NoProducer(t *testing.T) {
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	synthesizer := planning.NewSynthesizer()

	step, err := synthesizer.CreateResourceJob(planningRequirement("gold", 10), 1, plan, catalogs)

	assert.Nil(t, step)
	var noProducer *planning.NoProducerError
	require.ErrorAs(t, err, &noProducer)
	assert.Equal(t, "gold", noProducer.ResourceID)
	assert.Equal(t, 0, plan.StepCount())
}

func TestCreateResourceJob_NoEligibleTrainTerminates(t *testing.T) {
	// Arrange - the coal mine only accepts common and rare trains; leave
	// nothing but an epic one so selection can never succeed at any level
	catalogs := testCatalogs()
	catalogs.Trains = map[string]*catalog.Train{
		"t4": {ID: "t4", Capacity: 50, Class: catalog.TrainClassEpic, Country: "GERMANY"},
	}
	plan := planning.NewProductionPlan("p1")
	synthesizer := planning.NewSynthesizer()

	// Act
	step, err := synthesizer.CreateResourceJob(planningRequirement("coal", 20), 1, plan, catalogs)

	// Assert - bounded failure instead of endless recursion
	assert.Nil(t, step)
	var noTrain *planning.NoEligibleTrainError
	require.ErrorAs(t, err, &noTrain)
	assert.Equal(t, "coal-mine", noTrain.DestinationID)
}

func TestCreateResourceJob_InvalidRequirement(t *testing.T) {
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	synthesizer := planning.NewSynthesizer()

	_, err := synthesizer.CreateResourceJob(planningRequirement("coal", 0), 1, plan, catalogs)
	assert.Error(t, err)

	_, err = synthesizer.CreateResourceJob(planningRequirement("", 5), 1, plan, catalogs)
	assert.Error(t, err)
}
