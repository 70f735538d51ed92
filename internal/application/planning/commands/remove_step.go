package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// RemoveStepCommand deletes a single step from the plan.
type RemoveStepCommand struct {
	StepID string
}

// RemoveStepResponse reports whether the step existed.
type RemoveStepResponse struct {
	Removed bool
}

// RemoveStepHandler handles the RemoveStep command
type RemoveStepHandler struct {
	store *planStore
}

// NewRemoveStepHandler creates a new RemoveStepHandler
func NewRemoveStepHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *RemoveStepHandler {
	return &RemoveStepHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the RemoveStep command
func (h *RemoveStepHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemoveStepCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemoveStepCommand")
	}

	plan, catalogs, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	if !plan.RemoveStep(cmd.StepID, catalogs) {
		common.LoggerFromContext(ctx).Log("WARNING", "remove step skipped: step not found", map[string]interface{}{
			"step": cmd.StepID,
		})
		return &RemoveStepResponse{Removed: false}, nil
	}

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("removed step %s", cmd.StepID))

	return &RemoveStepResponse{Removed: true}, nil
}
