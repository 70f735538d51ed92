package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/domain/planning"
)

func TestStepDelta_FactoryStep(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	step := planning.NewFactoryStep("steel", 1, 60)

	// Act
	delta := planning.StepDelta(step, catalogs)

	// Assert - recipe: 10 iron + 30 coal -> 40 steel
	assert.Equal(t, map[string]int{"iron": -10, "coal": -30, "steel": 40}, delta)
}

func TestStepDelta_DestinationStep(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	step := planning.NewDestinationStep("coal", 1, 30, "t3")

	// Act
	delta := planning.StepDelta(step, catalogs)

	// Assert - train capacity worth of coal comes in
	assert.Equal(t, map[string]int{"coal": 30}, delta)
}

func TestStepDelta_DeliveryStep(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	step := planning.NewDeliveryStep("coal", 1, 30, "t1", "bridge")

	// Act
	delta := planning.StepDelta(step, catalogs)

	// Assert
	assert.Equal(t, map[string]int{"coal": -20}, delta)
}

func TestStepDelta_SubmitStep(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	step := planning.NewSubmitStep("coal", 1, 0, "bridge")

	// Act
	delta := planning.StepDelta(step, catalogs)

	// Assert - the order line for coal asks for 30
	assert.Equal(t, map[string]int{"coal": -30}, delta)
}

func TestStepDelta_LookupMissesDegradeToZero(t *testing.T) {
	catalogs := testCatalogs()

	tests := []struct {
		name string
		step *planning.Step
	}{
		{"missing recipe", planning.NewFactoryStep("gold", 1, 10)},
		{"missing train on destination", planning.NewDestinationStep("coal", 1, 30, "ghost")},
		{"missing train on delivery", planning.NewDeliveryStep("coal", 1, 30, "ghost", "bridge")},
		{"missing order", planning.NewSubmitStep("coal", 1, 0, "nope")},
		{"missing order line", planning.NewSubmitStep("iron", 1, 0, "bridge")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delta := planning.StepDelta(tt.step, catalogs)
			assert.Empty(t, delta)

			warnings := planning.StepWarnings(tt.step, catalogs)
			require.Len(t, warnings, 1)
			assert.Equal(t, tt.step.ID, warnings[0].StepID)
		})
	}
}

func TestLevelDeltas_SumsAndMergesByResource(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	level := planning.NewPlanningLevel(1)
	level.Steps = []*planning.Step{
		planning.NewFactoryStep("steel", 1, 60),
		planning.NewDestinationStep("coal", 1, 30, "t3"),
	}

	// Act
	deltas := planning.LevelDeltas(level, catalogs)

	// Assert - the factory's coal consumption cancels the mine's haul
	assert.Equal(t, map[string]int{"iron": -10, "coal": 0, "steel": 40}, deltas)
}

func TestLevelDeltas_Idempotent(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	level := planning.NewPlanningLevel(1)
	level.Steps = []*planning.Step{
		planning.NewFactoryStep("steel", 1, 60),
		planning.NewDestinationStep("iron", 1, 45, "t1"),
	}

	// Act
	first := planning.LevelDeltas(level, catalogs)
	second := planning.LevelDeltas(level, catalogs)

	// Assert
	assert.Equal(t, first, second)
}

func TestInventoryAtLevel_CumulativeProjection(t *testing.T) {
	// Arrange - deltas are precomputed caches; set them directly the way the
	// aggregator would have left them.
	plan := planning.NewProductionPlan("p1")
	plan.InsertLevel(2)
	plan.InsertLevel(3)
	plan.Levels[1].InventoryChanges = map[string]int{"coal": 30}
	plan.Levels[2].InventoryChanges = map[string]int{"coal": -10}
	plan.Levels[3].InventoryChanges = map[string]int{}

	// Act
	result := planning.InventoryAtLevel(map[string]int{"coal": 0}, plan, 3)

	// Assert
	assert.Equal(t, map[string]int{"coal": 20}, result)
}

func TestInventoryAtLevel_PrefixSumComposability(t *testing.T) {
	// Arrange
	plan := planning.NewProductionPlan("p1")
	plan.InsertLevel(2)
	plan.InsertLevel(3)
	plan.Levels[1].InventoryChanges = map[string]int{"coal": 30, "iron": 5}
	plan.Levels[2].InventoryChanges = map[string]int{"coal": -10, "steel": 40}
	plan.Levels[3].InventoryChanges = map[string]int{"iron": -5}

	initial := map[string]int{"coal": 2}

	for n := 2; n <= 3; n++ {
		// Act - project to N directly, and via the N-1 prefix
		direct := planning.InventoryAtLevel(initial, plan, n)

		prefix := planning.InventoryAtLevel(initial, plan, n-1)
		tail := &planning.ProductionPlan{Levels: map[int]*planning.PlanningLevel{n: plan.Levels[n]}}
		composed := planning.InventoryAtLevel(prefix, tail, n)

		// Assert
		assert.Equal(t, direct, composed, "level %d", n)
	}
}

func TestInventoryAtLevel_DoesNotMutatePlanOrInitial(t *testing.T) {
	// Arrange
	plan := planning.NewProductionPlan("p1")
	plan.Levels[1].InventoryChanges = map[string]int{"coal": 30}
	initial := map[string]int{"coal": 1}

	// Act
	_ = planning.InventoryAtLevel(initial, plan, 1)

	// Assert
	assert.Equal(t, map[string]int{"coal": 1}, initial)
	assert.Equal(t, map[string]int{"coal": 30}, plan.Levels[1].InventoryChanges)
}
