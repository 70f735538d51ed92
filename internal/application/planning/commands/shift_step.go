package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// RewindStepCommand moves a step to the previous level, inserting a new
// level 1 when the step is already at the front of the plan.
type RewindStepCommand struct {
	StepID string
}

// FastForwardStepCommand moves a step to the next level, appending one when
// the step is already at the end of the plan.
type FastForwardStepCommand struct {
	StepID string
}

// ShiftStepResponse reports the step's new level after a rewind or
// fast-forward.
type ShiftStepResponse struct {
	Shifted  bool
	NewLevel int
}

// ShiftStepHandler handles both RewindStep and FastForwardStep commands.
type ShiftStepHandler struct {
	store *planStore
}

// NewShiftStepHandler creates a new ShiftStepHandler
func NewShiftStepHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *ShiftStepHandler {
	return &ShiftStepHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes a RewindStep or FastForwardStep command
func (h *ShiftStepHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	var stepID, verb string
	var shift func(plan *planning.ProductionPlan, catalogs *catalog.Catalogs) bool

	switch cmd := request.(type) {
	case *RewindStepCommand:
		stepID, verb = cmd.StepID, "rewound"
		shift = func(plan *planning.ProductionPlan, catalogs *catalog.Catalogs) bool {
			return plan.RewindStep(cmd.StepID, catalogs)
		}
	case *FastForwardStepCommand:
		stepID, verb = cmd.StepID, "fast-forwarded"
		shift = func(plan *planning.ProductionPlan, catalogs *catalog.Catalogs) bool {
			return plan.FastForwardStep(cmd.StepID, catalogs)
		}
	default:
		return nil, fmt.Errorf("invalid request type: expected *RewindStepCommand or *FastForwardStepCommand")
	}

	plan, catalogs, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	if !shift(plan, catalogs) {
		common.LoggerFromContext(ctx).Log("WARNING", "step shift skipped", map[string]interface{}{
			"step": stepID,
		})
		return &ShiftStepResponse{Shifted: false}, nil
	}

	step, _ := plan.FindStep(stepID)
	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("%s step %s to level %d", verb, stepID, step.LevelID))

	return &ShiftStepResponse{Shifted: true, NewLevel: step.LevelID}, nil
}
