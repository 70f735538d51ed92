package planning

import "github.com/jmolina/railplan-go/internal/domain/catalog"

// ReorderDirection picks the neighbour a step swaps with inside its level.
type ReorderDirection string

const (
	ReorderBack    ReorderDirection = "BACK"
	ReorderForward ReorderDirection = "FORWARD"
)

// Structural plan operations. Every mutation re-establishes the contiguous
// 1..N level numbering and the step.LevelID invariant before returning, and
// recomputes the inventory cache of every level it touched.
//
// Failure semantics: operations referencing a step or level that cannot be
// found return a zero value instead of an error. Edits arrive from an
// optimistic UI working on possibly stale snapshots; a stale reference must
// not crash the session.

// InsertLevel creates an empty level at the given number. Existing levels at
// or above it shift up by one, with every contained step's LevelID rewritten.
// Out-of-range numbers clamp to the valid insertion range [1, maxLevel+1].
func (p *ProductionPlan) InsertLevel(before int) *PlanningLevel {
	if before < 1 {
		before = 1
	}
	if max := p.MaxLevel(); before > max+1 {
		before = max + 1
	}

	// Shift from the top down so renumbering never collides.
	for number := p.MaxLevel(); number >= before; number-- {
		level := p.Levels[number]
		delete(p.Levels, number)
		level.renumber(number + 1)
		p.Levels[number+1] = level
	}

	level := NewPlanningLevel(before)
	p.Levels[before] = level
	return level
}

// RemoveLevel deletes the level and renumbers the survivors to consecutive
// integers starting at 1, rewriting step LevelIDs to match. The returned
// mapping of old to new level numbers lets callers re-target an active level
// that moved. Returns nil when the level does not exist. Removing the only
// level resets the plan to a fresh empty level 1.
func (p *ProductionPlan) RemoveLevel(number int) map[int]int {
	if p.Levels[number] == nil {
		return nil
	}
	delete(p.Levels, number)

	mapping := make(map[int]int)
	for i, old := range p.LevelNumbers() {
		renumbered := i + 1
		mapping[old] = renumbered
		if old != renumbered {
			level := p.Levels[old]
			delete(p.Levels, old)
			level.renumber(renumbered)
			p.Levels[renumbered] = level
		}
	}

	if len(p.Levels) == 0 {
		p.Levels[1] = NewPlanningLevel(1)
	}
	return mapping
}

// MoveStep relocates a step between levels. Moving below level 1 inserts a
// new level 1 (shifting everything up, source included); moving past the
// last level appends a new one. Both affected levels' inventory caches are
// recomputed. No-op when source and target match or the step is missing.
func (p *ProductionPlan) MoveStep(stepID string, from, to int, catalogs *catalog.Catalogs) bool {
	if from == to {
		return false
	}
	source := p.Levels[from]
	if source == nil {
		return false
	}
	step, index := source.StepByID(stepID)
	if step == nil {
		return false
	}

	target := p.resolveTarget(to)
	if target == source {
		return false
	}

	source.removeStepAt(index)
	target.Steps = append(target.Steps, step)
	step.LevelID = target.Level

	source.Recompute(catalogs)
	target.Recompute(catalogs)
	return true
}

// AddStep appends a step to the target level, creating levels with the same
// out-of-range semantics as MoveStep. Addition to a level marked done is
// refused; that is the flag's only effect on the model.
func (p *ProductionPlan) AddStep(step *Step, to int, catalogs *catalog.Catalogs) bool {
	target := p.resolveTarget(to)
	if target.Done {
		return false
	}
	target.Steps = append(target.Steps, step)
	step.LevelID = target.Level
	target.Recompute(catalogs)
	return true
}

// RemoveStep deletes a single step wherever it lives and recomputes its
// level's inventory cache.
func (p *ProductionPlan) RemoveStep(stepID string, catalogs *catalog.Catalogs) bool {
	for _, level := range p.Levels {
		if _, index := level.StepByID(stepID); index >= 0 {
			level.removeStepAt(index)
			level.Recompute(catalogs)
			return true
		}
	}
	return false
}

// ReorderStep swaps a step with its immediate neighbour inside its level.
// No-op at the boundaries of the step list. Reordering never changes the
// level's delta sum, but the recompute still runs to keep every mutation on
// the same update path.
func (p *ProductionPlan) ReorderStep(stepID string, direction ReorderDirection, catalogs *catalog.Catalogs) bool {
	step, level := p.FindStep(stepID)
	if step == nil {
		return false
	}
	_, index := level.StepByID(stepID)

	neighbour := index - 1
	if direction == ReorderForward {
		neighbour = index + 1
	}
	if neighbour < 0 || neighbour >= len(level.Steps) {
		return false
	}

	level.Steps[index], level.Steps[neighbour] = level.Steps[neighbour], level.Steps[index]
	level.Recompute(catalogs)
	return true
}

// RewindStep moves a step to the immediately previous level, inserting a new
// level 1 when the step already sits at the front of the plan.
func (p *ProductionPlan) RewindStep(stepID string, catalogs *catalog.Catalogs) bool {
	step, level := p.FindStep(stepID)
	if step == nil {
		return false
	}
	return p.MoveStep(stepID, level.Level, level.Level-1, catalogs)
}

// FastForwardStep moves a step to the immediately next level, appending one
// when the step already sits at the end of the plan.
func (p *ProductionPlan) FastForwardStep(stepID string, catalogs *catalog.Catalogs) bool {
	step, level := p.FindStep(stepID)
	if step == nil {
		return false
	}
	return p.MoveStep(stepID, level.Level, level.Level+1, catalogs)
}

// resolveTarget returns the level a step should land in, creating one when
// the target is out of range: below 1 inserts a new front level, past the
// end appends one.
func (p *ProductionPlan) resolveTarget(to int) *PlanningLevel {
	if to < 1 {
		return p.InsertLevel(1)
	}
	if max := p.MaxLevel(); to > max {
		level := NewPlanningLevel(max + 1)
		p.Levels[max+1] = level
		return level
	}
	return p.Levels[to]
}
