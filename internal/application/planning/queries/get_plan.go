package queries

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// GetPlanQuery fetches the current production plan. A session that has
// never saved gets a fresh single-level plan.
type GetPlanQuery struct{}

// GetPlanResponse carries the plan.
type GetPlanResponse struct {
	Plan *planning.ProductionPlan
}

// GetPlanHandler handles the GetPlan query
type GetPlanHandler struct {
	plans planning.PlanRepository
}

// NewGetPlanHandler creates a new GetPlanHandler
func NewGetPlanHandler(plans planning.PlanRepository) *GetPlanHandler {
	return &GetPlanHandler{plans: plans}
}

// Handle executes the GetPlan query
func (h *GetPlanHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetPlanQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPlanQuery")
	}

	plan, err := h.plans.Load(ctx, planning.DefaultPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		plan = planning.NewProductionPlan(planning.DefaultPlanID)
	}

	return &GetPlanResponse{Plan: plan}, nil
}
