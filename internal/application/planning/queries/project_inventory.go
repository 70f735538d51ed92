package queries

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// ProjectInventoryQuery replays level deltas to project the cumulative
// inventory at the target level. Initial may be nil for an empty start.
type ProjectInventoryQuery struct {
	Level   int
	Initial map[string]int
}

// ProjectInventoryResponse carries the projected amounts per resource.
type ProjectInventoryResponse struct {
	Inventory map[string]int
}

// ProjectInventoryHandler handles the ProjectInventory query
type ProjectInventoryHandler struct {
	plans planning.PlanRepository
}

// NewProjectInventoryHandler creates a new ProjectInventoryHandler
func NewProjectInventoryHandler(plans planning.PlanRepository) *ProjectInventoryHandler {
	return &ProjectInventoryHandler{plans: plans}
}

// Handle executes the ProjectInventory query
func (h *ProjectInventoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ProjectInventoryQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ProjectInventoryQuery")
	}

	plan, err := h.plans.Load(ctx, planning.DefaultPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		plan = planning.NewProductionPlan(planning.DefaultPlanID)
	}

	initial := query.Initial
	if initial == nil {
		initial = map[string]int{}
	}

	return &ProjectInventoryResponse{
		Inventory: planning.InventoryAtLevel(initial, plan, query.Level),
	}, nil
}
