package planning

import "sort"

// DefaultMaxConcurrentWorkers bounds train-bearing steps per level when the
// plan doesn't carry an explicit limit.
const DefaultMaxConcurrentWorkers = 4

// DefaultPlanID identifies the single plan of a game session. The plan is a
// singleton; multi-plan support only needs callers to pass other IDs.
const DefaultPlanID = "default"

// ProductionPlan is the singleton aggregate for a game session: an ordered
// sequence of planning levels.
//
// Invariant: level numbers form a contiguous range 1..N with no gaps. Every
// structural operation re-establishes this before returning, so any observed
// violation is a programming error, not a recoverable condition.
//
// MaxConcurrentWorkers bounds the count of train-bearing steps per level.
// It is a soft constraint surfaced as a warning, never a rejected mutation.
type ProductionPlan struct {
	ID                   string
	Levels               map[int]*PlanningLevel
	TotalTime            float64
	MaxConcurrentWorkers int
}

// NewProductionPlan creates a plan with a single empty level 1.
func NewProductionPlan(id string) *ProductionPlan {
	return &ProductionPlan{
		ID:                   id,
		Levels:               map[int]*PlanningLevel{1: NewPlanningLevel(1)},
		MaxConcurrentWorkers: DefaultMaxConcurrentWorkers,
	}
}

// MaxLevel returns the highest level number, or 0 for a levelless plan
// (which only occurs transiently during reconstruction from persistence).
func (p *ProductionPlan) MaxLevel() int {
	max := 0
	for number := range p.Levels {
		if number > max {
			max = number
		}
	}
	return max
}

// LevelNumbers returns the plan's level numbers in ascending order.
func (p *ProductionPlan) LevelNumbers() []int {
	numbers := make([]int, 0, len(p.Levels))
	for number := range p.Levels {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers
}

// Level returns the level with the given number, or nil.
func (p *ProductionPlan) Level(number int) *PlanningLevel {
	return p.Levels[number]
}

// FindStep locates a step anywhere in the plan.
func (p *ProductionPlan) FindStep(stepID string) (*Step, *PlanningLevel) {
	for _, number := range p.LevelNumbers() {
		level := p.Levels[number]
		if step, _ := level.StepByID(stepID); step != nil {
			return step, level
		}
	}
	return nil, nil
}

// StepCount returns the total number of steps across all levels.
func (p *ProductionPlan) StepCount() int {
	count := 0
	for _, level := range p.Levels {
		count += len(level.Steps)
	}
	return count
}

// Clear resets the plan to a single empty level 1.
func (p *ProductionPlan) Clear() {
	p.Levels = map[int]*PlanningLevel{1: NewPlanningLevel(1)}
	p.TotalTime = 0
}
