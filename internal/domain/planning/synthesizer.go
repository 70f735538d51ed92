package planning

import (
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/fleet"
)

// Synthesizer turns an unmet resource requirement into a concrete work step.
//
// The planning heuristic, in preference order:
//  1. Gather at a destination when the target level still has a free train
//     slot and an eligible train.
//  2. Produce at a factory when a recipe exists.
//  3. Push the work one level earlier when the target level is marked done
//     or its train slots are saturated, recursing until a level with room
//     is found. Below
//     level 1 the editor's insertion rule applies: a fresh empty level 1 is
//     created rather than recursing indefinitely.
type Synthesizer struct {
	selector *fleet.Selector
}

// NewSynthesizer creates a new resource-job synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{selector: fleet.NewSelector()}
}

// CreateResourceJob emits a step satisfying the requirement at (or before)
// the target level, appends it to the plan, and recomputes the touched
// level's inventory cache. Returns the created step.
//
// Capacity shortfalls are not errors: when no single train covers the
// amount, the first train of the best available combination is used.
// Errors are reserved for requirements that can
// never be planned (no producer at all, or no train eligible for the only
// destination).
func (s *Synthesizer) CreateResourceJob(
	requirement catalog.ResourceRequirement,
	targetLevel int,
	plan *ProductionPlan,
	catalogs *catalog.Catalogs,
) (*Step, error) {
	if requirement.ResourceID == "" {
		return nil, NewInvalidRequirementError("requirement resource id is empty")
	}
	if requirement.Amount <= 0 {
		return nil, NewInvalidRequirementError("requirement amount must be positive")
	}

	destination := catalogs.DestinationForResource(requirement.ResourceID)
	recipe := catalogs.RecipeForOutput(requirement.ResourceID)
	if destination == nil && recipe == nil {
		return nil, NewNoProducerError(requirement.ResourceID)
	}

	level := plan.Level(targetLevel)

	// A level marked done refuses new steps, so plan the work one level
	// earlier, same as a level with no free train slot. Below level 1 the
	// editor inserts a fresh front level, which is never done.
	if level != nil && level.Done {
		return s.CreateResourceJob(requirement, targetLevel-1, plan, catalogs)
	}

	if destination != nil && s.hasFreeSlot(level, plan) {
		trains := s.selector.SelectTrains(
			level.BusyTrainIDs(),
			requirement.Amount,
			catalogs.TrainList(),
			destination.Classes,
			destination.Countries(),
		)
		if len(trains) > 0 {
			step := NewDestinationStep(requirement.ResourceID, targetLevel, destination.TravelTime, trains[0].ID)
			if !plan.AddStep(step, targetLevel, catalogs) {
				return nil, NewPlanError("level refused the synthesized step")
			}
			return step, nil
		}
		// Every eligible train is claimed at this level; treat it like a
		// saturated level and fall through.
	}

	if recipe != nil {
		step := NewFactoryStep(requirement.ResourceID, targetLevel, recipe.TimeRequired)
		if !plan.AddStep(step, targetLevel, catalogs) {
			return nil, NewPlanError("level refused the synthesized step")
		}
		return step, nil
	}

	// Destination exists but this level has no room. A brand-new level 1 has
	// no occupants, so failing there means no train can ever serve the
	// destination: stop instead of recursing below the front of the plan.
	if targetLevel < 1 {
		return nil, NewNoEligibleTrainError(requirement.ResourceID, destination.ID)
	}
	return s.CreateResourceJob(requirement, targetLevel-1, plan, catalogs)
}

// hasFreeSlot checks the soft per-level bound on train-bearing steps.
// A non-positive MaxConcurrentWorkers means unbounded.
func (s *Synthesizer) hasFreeSlot(level *PlanningLevel, plan *ProductionPlan) bool {
	if plan.MaxConcurrentWorkers <= 0 {
		return true
	}
	return level.TrainStepCount() < plan.MaxConcurrentWorkers
}
