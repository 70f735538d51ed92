package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// ReorderStepCommand swaps a step with its neighbour inside its level.
type ReorderStepCommand struct {
	StepID    string
	Direction string // back | forward
}

// ReorderStepResponse reports whether the swap happened.
type ReorderStepResponse struct {
	Reordered bool
}

// ReorderStepHandler handles the ReorderStep command
type ReorderStepHandler struct {
	store *planStore
}

// NewReorderStepHandler creates a new ReorderStepHandler
func NewReorderStepHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *ReorderStepHandler {
	return &ReorderStepHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the ReorderStep command
func (h *ReorderStepHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ReorderStepCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ReorderStepCommand")
	}

	direction := planning.ReorderBack
	if strings.EqualFold(cmd.Direction, "forward") {
		direction = planning.ReorderForward
	}

	plan, catalogs, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	reordered := plan.ReorderStep(cmd.StepID, direction, catalogs)
	if !reordered {
		common.LoggerFromContext(ctx).Log("WARNING", "reorder skipped", map[string]interface{}{
			"step":      cmd.StepID,
			"direction": cmd.Direction,
		})
		return &ReorderStepResponse{Reordered: false}, nil
	}

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("reordered step %s (%s)", cmd.StepID, strings.ToLower(cmd.Direction)))

	return &ReorderStepResponse{Reordered: true}, nil
}
