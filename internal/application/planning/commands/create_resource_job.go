package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// CreateResourceJobCommand asks the synthesizer to plan work covering a
// resource shortfall at (or before) the target level.
type CreateResourceJobCommand struct {
	ResourceID string
	Amount     int
	Level      int
}

// CreateResourceJobResponse reports the synthesized step and where it landed.
type CreateResourceJobResponse struct {
	Step *planning.Step
}

// CreateResourceJobHandler handles the CreateResourceJob command
type CreateResourceJobHandler struct {
	store       *planStore
	synthesizer *planning.Synthesizer
}

// NewCreateResourceJobHandler creates a new CreateResourceJobHandler
func NewCreateResourceJobHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *CreateResourceJobHandler {
	return &CreateResourceJobHandler{
		store:       newPlanStore(plans, catalogs, activity),
		synthesizer: planning.NewSynthesizer(),
	}
}

// Handle executes the CreateResourceJob command
func (h *CreateResourceJobHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateResourceJobCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateResourceJobCommand")
	}

	plan, catalogs, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	requirement := catalog.ResourceRequirement{ResourceID: cmd.ResourceID, Amount: cmd.Amount}
	step, err := h.synthesizer.CreateResourceJob(requirement, cmd.Level, plan, catalogs)
	if err != nil {
		return nil, err
	}

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("synthesized %s job for %d %s at level %d",
		strings.ToLower(string(step.Type)), cmd.Amount, cmd.ResourceID, step.LevelID))
	warnIntegrity(ctx, plan, catalogs, step.LevelID)

	return &CreateResourceJobResponse{Step: step}, nil
}
