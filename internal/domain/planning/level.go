package planning

import "github.com/jmolina/railplan-go/internal/domain/catalog"

// PlanningLevel is a numbered bucket of steps treated as happening
// concurrently. InventoryChanges is a derived cache of the level's net
// resource delta; it is recomputed by the plan editor after every step-list
// mutation and must never be edited by hand.
type PlanningLevel struct {
	Level            int
	Steps            []*Step
	InventoryChanges map[string]int
	Done             bool
}

// NewPlanningLevel creates an empty level with the given number.
func NewPlanningLevel(number int) *PlanningLevel {
	return &PlanningLevel{
		Level:            number,
		Steps:            []*Step{},
		InventoryChanges: map[string]int{},
	}
}

// StepByID returns the step with the given ID and its index, or nil and -1.
func (l *PlanningLevel) StepByID(stepID string) (*Step, int) {
	for i, step := range l.Steps {
		if step.ID == stepID {
			return step, i
		}
	}
	return nil, -1
}

// BusyTrainIDs returns the IDs of trains already claimed by a destination or
// delivery step in this level. A train is busy in a level if and only if some
// step in the level references it; there is no separate reservation state.
func (l *PlanningLevel) BusyTrainIDs() map[string]bool {
	busy := make(map[string]bool)
	if l == nil {
		return busy
	}
	for _, step := range l.Steps {
		if step.UsesTrain() && step.TrainID != "" {
			busy[step.TrainID] = true
		}
	}
	return busy
}

// TrainStepCount returns the number of steps occupying a train in this level.
// Compared against the plan's MaxConcurrentWorkers soft limit.
func (l *PlanningLevel) TrainStepCount() int {
	if l == nil {
		return 0
	}
	count := 0
	for _, step := range l.Steps {
		if step.UsesTrain() {
			count++
		}
	}
	return count
}

// FactoryStepCount returns how many factory steps in this level produce one
// of the given factory's outputs. Compared against the factory's QueueMaxSize.
func (l *PlanningLevel) FactoryStepCount(factory *catalog.Factory) int {
	if l == nil || factory == nil {
		return 0
	}
	count := 0
	for _, step := range l.Steps {
		if step.Type == StepTypeFactory && factory.RecipeForOutput(step.ResourceID) != nil {
			count++
		}
	}
	return count
}

// Recompute refreshes the cached inventory delta from the current step list.
func (l *PlanningLevel) Recompute(catalogs *catalog.Catalogs) {
	l.InventoryChanges = LevelDeltas(l, catalogs)
}

// renumber updates the level number and rewrites every step's LevelID.
func (l *PlanningLevel) renumber(number int) {
	l.Level = number
	for _, step := range l.Steps {
		step.LevelID = number
	}
}

// removeStepAt splices the step at index i out of the step list.
func (l *PlanningLevel) removeStepAt(i int) *Step {
	step := l.Steps[i]
	l.Steps = append(l.Steps[:i], l.Steps[i+1:]...)
	return step
}
