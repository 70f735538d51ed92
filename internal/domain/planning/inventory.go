package planning

import (
	"fmt"
	"sort"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// IntegrityWarning flags a step whose inventory contribution could not be
// resolved against the catalogs. Per the error model, such steps degrade to
// a zero delta rather than failing the enclosing aggregation.
type IntegrityWarning struct {
	StepID  string
	Message string
}

func (w IntegrityWarning) String() string {
	return fmt.Sprintf("step %s: %s", w.StepID, w.Message)
}

// StepDelta computes the signed resource delta a single step contributes:
// production positive, consumption negative. Pure; never mutates the step,
// recipe, train, or order. Lookup misses yield an empty map.
func StepDelta(step *Step, catalogs *catalog.Catalogs) map[string]int {
	delta, _ := stepDelta(step, catalogs)
	return delta
}

// StepWarnings reports the data-integrity problems StepDelta would degrade
// on, without computing anything else. Used to surface warning badges.
func StepWarnings(step *Step, catalogs *catalog.Catalogs) []IntegrityWarning {
	_, warnings := stepDelta(step, catalogs)
	return warnings
}

func stepDelta(step *Step, catalogs *catalog.Catalogs) (map[string]int, []IntegrityWarning) {
	delta := make(map[string]int)

	switch step.Type {
	case StepTypeFactory:
		recipe := catalogs.RecipeForOutput(step.ResourceID)
		if recipe == nil {
			return delta, []IntegrityWarning{{StepID: step.ID, Message: fmt.Sprintf("no recipe produces %s", step.ResourceID)}}
		}
		delta[step.ResourceID] += recipe.OutputAmount
		for _, input := range recipe.Requires {
			delta[input.ResourceID] -= input.Amount
		}

	case StepTypeDestination:
		train := catalogs.TrainByID(step.TrainID)
		if train == nil {
			return delta, []IntegrityWarning{{StepID: step.ID, Message: fmt.Sprintf("train %s not in catalog", step.TrainID)}}
		}
		delta[step.ResourceID] += train.Capacity

	case StepTypeDelivery:
		train := catalogs.TrainByID(step.TrainID)
		if train == nil {
			return delta, []IntegrityWarning{{StepID: step.ID, Message: fmt.Sprintf("train %s not in catalog", step.TrainID)}}
		}
		delta[step.ResourceID] -= train.Capacity

	case StepTypeSubmit:
		order := catalogs.OrderByID(step.OrderID)
		if order == nil {
			return delta, []IntegrityWarning{{StepID: step.ID, Message: fmt.Sprintf("order %s not found", step.OrderID)}}
		}
		requirement := order.RequirementFor(step.ResourceID)
		if requirement == nil {
			return delta, []IntegrityWarning{{StepID: step.ID, Message: fmt.Sprintf("order %s has no line for %s", step.OrderID, step.ResourceID)}}
		}
		delta[step.ResourceID] -= requirement.Amount

	default:
		return delta, []IntegrityWarning{{StepID: step.ID, Message: fmt.Sprintf("unknown step type %q", step.Type)}}
	}

	return delta, nil
}

// LevelDeltas sums StepDelta over every step in the level, merging by
// resource ID. Stateless: callers (the plan editor) are responsible for
// writing the result back into the level's InventoryChanges cache after
// any structural change to the step list.
func LevelDeltas(level *PlanningLevel, catalogs *catalog.Catalogs) map[string]int {
	total := make(map[string]int)
	if level == nil {
		return total
	}
	for _, step := range level.Steps {
		for resourceID, amount := range StepDelta(step, catalogs) {
			total[resourceID] += amount
		}
	}
	return total
}

// LevelWarnings collects the data-integrity warnings for every step in the
// level, in step order.
func LevelWarnings(level *PlanningLevel, catalogs *catalog.Catalogs) []IntegrityWarning {
	var warnings []IntegrityWarning
	if level == nil {
		return warnings
	}
	for _, step := range level.Steps {
		warnings = append(warnings, StepWarnings(step, catalogs)...)
	}
	return warnings
}

// InventoryAtLevel projects the cumulative inventory at the target level by
// replaying every level's cached delta up to and including it.
//
// Replay is in strictly ascending level order regardless of map iteration
// order: later levels' deltas are only valid once earlier outputs exist.
// Pure and read-only; the plan is never mutated.
func InventoryAtLevel(initial map[string]int, plan *ProductionPlan, targetLevel int) map[string]int {
	inventory := make(map[string]int, len(initial))
	for resourceID, amount := range initial {
		inventory[resourceID] = amount
	}

	numbers := make([]int, 0, len(plan.Levels))
	for number := range plan.Levels {
		if number <= targetLevel {
			numbers = append(numbers, number)
		}
	}
	sort.Ints(numbers)

	for _, number := range numbers {
		for resourceID, amount := range plan.Levels[number].InventoryChanges {
			inventory[resourceID] += amount
		}
	}

	return inventory
}
