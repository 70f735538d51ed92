package planning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// threeLevelPlan builds levels 1..3, each holding one destination step.
func threeLevelPlan(t *testing.T) *planning.ProductionPlan {
	t.Helper()
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	require.True(t, plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t1"), 1, catalogs))
	require.True(t, plan.AddStep(planning.NewDestinationStep("coal", 2, 30, "t2"), 2, catalogs))
	require.True(t, plan.AddStep(planning.NewDestinationStep("iron", 3, 45, "t1"), 3, catalogs))
	return plan
}

// assertContiguous checks the central structural invariant: level numbers
// are exactly 1..N and every step's LevelID matches its containing level.
func assertContiguous(t *testing.T, plan *planning.ProductionPlan) {
	t.Helper()
	numbers := plan.LevelNumbers()
	for i, number := range numbers {
		assert.Equal(t, i+1, number, "level numbers must be contiguous from 1")
		for _, step := range plan.Levels[number].Steps {
			assert.Equal(t, number, step.LevelID, "step %s has stale LevelID", step.ID)
		}
	}
}

func TestInsertLevel_ShiftsAndRetagsSubsequentLevels(t *testing.T) {
	// Arrange
	plan := threeLevelPlan(t)
	level1Step := plan.Levels[1].Steps[0]
	level2Step := plan.Levels[2].Steps[0]
	level3Step := plan.Levels[3].Steps[0]

	// Act
	inserted := plan.InsertLevel(2)

	// Assert - (1,2,3) becomes (1,2,3,4) with old 2 and 3 shifted up
	assert.Equal(t, 2, inserted.Level)
	assert.Empty(t, inserted.Steps)
	assert.Equal(t, []int{1, 2, 3, 4}, plan.LevelNumbers())
	assert.Equal(t, 1, level1Step.LevelID)
	assert.Equal(t, 3, level2Step.LevelID)
	assert.Equal(t, 4, level3Step.LevelID)
	assertContiguous(t, plan)
}

func TestInsertLevel_ClampsOutOfRange(t *testing.T) {
	plan := threeLevelPlan(t)

	front := plan.InsertLevel(-4)
	assert.Equal(t, 1, front.Level)

	back := plan.InsertLevel(99)
	assert.Equal(t, plan.MaxLevel(), back.Level)
	assertContiguous(t, plan)
}

func TestRemoveLevel_CollapsesAndRetags(t *testing.T) {
	// Arrange
	plan := threeLevelPlan(t)
	level3Step := plan.Levels[3].Steps[0]

	// Act
	mapping := plan.RemoveLevel(2)

	// Assert - (1,2,3) collapses to (1,2), old level 3 is now level 2
	require.NotNil(t, mapping)
	assert.Equal(t, map[int]int{1: 1, 3: 2}, mapping)
	assert.Equal(t, []int{1, 2}, plan.LevelNumbers())
	assert.Equal(t, 2, level3Step.LevelID)
	assertContiguous(t, plan)
}

func TestRemoveLevel_MissingLevelIsNoOp(t *testing.T) {
	plan := threeLevelPlan(t)

	mapping := plan.RemoveLevel(7)

	assert.Nil(t, mapping)
	assert.Equal(t, []int{1, 2, 3}, plan.LevelNumbers())
}

func TestRemoveLevel_LastLevelResetsToEmptyLevelOne(t *testing.T) {
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	plan.AddStep(planning.NewDestinationStep("coal", 1, 30, "t1"), 1, catalogs)

	plan.RemoveLevel(1)

	assert.Equal(t, []int{1}, plan.LevelNumbers())
	assert.Empty(t, plan.Levels[1].Steps)
}

func TestMoveStep_BetweenExistingLevels(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)
	stepID := plan.Levels[1].Steps[0].ID

	// Act
	moved := plan.MoveStep(stepID, 1, 3, catalogs)

	// Assert
	assert.True(t, moved)
	assert.Empty(t, plan.Levels[1].Steps)
	assert.Len(t, plan.Levels[3].Steps, 2)
	assert.Equal(t, stepID, plan.Levels[3].Steps[1].ID)
	assert.Empty(t, plan.Levels[1].InventoryChanges)
	assert.Equal(t, map[string]int{"iron": 20, "coal": 20}, plan.Levels[3].InventoryChanges)
	assertContiguous(t, plan)
}

func TestMoveStep_BelowLevelOneInsertsNewFront(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)
	stepID := plan.Levels[2].Steps[0].ID

	// Act
	moved := plan.MoveStep(stepID, 2, 0, catalogs)

	// Assert - everything shifted up, the step landed in the new level 1
	assert.True(t, moved)
	assert.Equal(t, []int{1, 2, 3, 4}, plan.LevelNumbers())
	require.Len(t, plan.Levels[1].Steps, 1)
	assert.Equal(t, stepID, plan.Levels[1].Steps[0].ID)
	assert.Empty(t, plan.Levels[3].Steps) // the old level 2
	assertContiguous(t, plan)
}

func TestMoveStep_PastMaxAppendsLevel(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)
	stepID := plan.Levels[1].Steps[0].ID

	// Act
	moved := plan.MoveStep(stepID, 1, 42, catalogs)

	// Assert - level 4 is created, not level 42
	assert.True(t, moved)
	assert.Equal(t, []int{1, 2, 3, 4}, plan.LevelNumbers())
	require.Len(t, plan.Levels[4].Steps, 1)
	assert.Equal(t, 4, plan.Levels[4].Steps[0].LevelID)
	assertContiguous(t, plan)
}

func TestMoveStep_NoOps(t *testing.T) {
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)

	assert.False(t, plan.MoveStep(plan.Levels[1].Steps[0].ID, 1, 1, catalogs), "same level")
	assert.False(t, plan.MoveStep("ghost", 1, 2, catalogs), "unknown step")
	assert.False(t, plan.MoveStep(plan.Levels[1].Steps[0].ID, 9, 2, catalogs), "unknown source level")
	assert.Equal(t, []int{1, 2, 3}, plan.LevelNumbers())
}

func TestAddStep_RefusedOnDoneLevel(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	plan.Levels[1].Done = true

	// Act
	added := plan.AddStep(planning.NewFactoryStep("steel", 1, 60), 1, catalogs)

	// Assert
	assert.False(t, added)
	assert.Empty(t, plan.Levels[1].Steps)
}

func TestReorderStep_SwapsWithNeighbour(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	first := planning.NewDestinationStep("coal", 1, 30, "t1")
	second := planning.NewDestinationStep("iron", 1, 45, "t2")
	plan.AddStep(first, 1, catalogs)
	plan.AddStep(second, 1, catalogs)
	deltasBefore := plan.Levels[1].InventoryChanges

	// Act
	reordered := plan.ReorderStep(second.ID, planning.ReorderBack, catalogs)

	// Assert - order flips, the delta sum does not
	assert.True(t, reordered)
	assert.Equal(t, second.ID, plan.Levels[1].Steps[0].ID)
	assert.Equal(t, first.ID, plan.Levels[1].Steps[1].ID)
	assert.Equal(t, deltasBefore, plan.Levels[1].InventoryChanges)
}

func TestReorderStep_NoOpAtBoundaries(t *testing.T) {
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	only := planning.NewDestinationStep("coal", 1, 30, "t1")
	plan.AddStep(only, 1, catalogs)

	assert.False(t, plan.ReorderStep(only.ID, planning.ReorderBack, catalogs))
	assert.False(t, plan.ReorderStep(only.ID, planning.ReorderForward, catalogs))
}

func TestRewindAndFastForwardStep(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)
	stepID := plan.Levels[2].Steps[0].ID

	// Act - rewind 2 -> 1, then fast-forward 1 -> 2
	require.True(t, plan.RewindStep(stepID, catalogs))
	assert.Equal(t, 1, mustFindLevel(t, plan, stepID))

	require.True(t, plan.FastForwardStep(stepID, catalogs))
	assert.Equal(t, 2, mustFindLevel(t, plan, stepID))
	assertContiguous(t, plan)
}

func TestRewindStep_AtFrontInsertsLevel(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)
	stepID := plan.Levels[1].Steps[0].ID

	// Act
	require.True(t, plan.RewindStep(stepID, catalogs))

	// Assert - a fresh level 1 was inserted to receive the step
	assert.Equal(t, []int{1, 2, 3, 4}, plan.LevelNumbers())
	assert.Equal(t, 1, mustFindLevel(t, plan, stepID))
	assert.Empty(t, plan.Levels[2].Steps) // its old home
	assertContiguous(t, plan)
}

func TestEditSequence_KeepsRenumberingInvariant(t *testing.T) {
	// Arrange
	catalogs := testCatalogs()
	plan := threeLevelPlan(t)

	// Act - a messy editing session
	plan.InsertLevel(1)
	plan.RemoveLevel(3)
	plan.AddStep(planning.NewFactoryStep("steel", 2, 60), 2, catalogs)
	plan.MoveStep(plan.Levels[2].Steps[0].ID, 2, 99, catalogs)
	plan.RemoveLevel(1)
	plan.InsertLevel(2)
	plan.RemoveLevel(2)

	// Assert
	assertContiguous(t, plan)
}

func TestTrainNonCollisionWithinLevel(t *testing.T) {
	// Arrange - steps synthesized against the same level never share a train
	catalogs := testCatalogs()
	plan := planning.NewProductionPlan("p1")
	synthesizer := planning.NewSynthesizer()

	for i := 0; i < 3; i++ {
		_, err := synthesizer.CreateResourceJob(
			planningRequirement("coal", 20), 1, plan, catalogs)
		require.NoError(t, err)
	}

	// Assert
	for _, number := range plan.LevelNumbers() {
		seen := map[string]bool{}
		for _, step := range plan.Levels[number].Steps {
			if !step.UsesTrain() {
				continue
			}
			assert.False(t, seen[step.TrainID], "train %s claimed twice in level %d", step.TrainID, number)
			seen[step.TrainID] = true
		}
	}
}

func mustFindLevel(t *testing.T, plan *planning.ProductionPlan, stepID string) int {
	t.Helper()
	step, level := plan.FindStep(stepID)
	require.NotNil(t, step)
	return level.Level
}
