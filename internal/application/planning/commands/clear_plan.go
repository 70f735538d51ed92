package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// ClearPlanCommand resets the plan to a single empty level 1.
type ClearPlanCommand struct{}

// ClearPlanResponse is empty; clearing always succeeds.
type ClearPlanResponse struct{}

// ClearPlanHandler handles the ClearPlan command
type ClearPlanHandler struct {
	store *planStore
}

// NewClearPlanHandler creates a new ClearPlanHandler
func NewClearPlanHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *ClearPlanHandler {
	return &ClearPlanHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the ClearPlan command
func (h *ClearPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*ClearPlanCommand); !ok {
		return nil, fmt.Errorf("invalid request type: expected *ClearPlanCommand")
	}

	plan, _, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	plan.Clear()

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, "cleared plan")

	return &ClearPlanResponse{}, nil
}
