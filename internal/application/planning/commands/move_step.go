package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// MoveStepCommand relocates a step to another level. The source level is
// located from the step itself; targets outside the current range create a
// level per the editor's rules.
type MoveStepCommand struct {
	StepID string
	To     int
}

// MoveStepResponse reports whether anything changed.
type MoveStepResponse struct {
	Moved        bool
	LevelNumbers []int
}

// MoveStepHandler handles the MoveStep command
type MoveStepHandler struct {
	store *planStore
}

// NewMoveStepHandler creates a new MoveStepHandler
func NewMoveStepHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *MoveStepHandler {
	return &MoveStepHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the MoveStep command
func (h *MoveStepHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*MoveStepCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *MoveStepCommand")
	}

	plan, catalogs, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	step, level := plan.FindStep(cmd.StepID)
	if step == nil {
		common.LoggerFromContext(ctx).Log("WARNING", "move step skipped: step not found", map[string]interface{}{
			"step": cmd.StepID,
		})
		return &MoveStepResponse{Moved: false, LevelNumbers: plan.LevelNumbers()}, nil
	}

	moved := plan.MoveStep(cmd.StepID, level.Level, cmd.To, catalogs)
	if !moved {
		return &MoveStepResponse{Moved: false, LevelNumbers: plan.LevelNumbers()}, nil
	}

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("moved step %s to level %d", step.ID, step.LevelID))
	warnIntegrity(ctx, plan, catalogs, step.LevelID)

	return &MoveStepResponse{Moved: true, LevelNumbers: plan.LevelNumbers()}, nil
}
