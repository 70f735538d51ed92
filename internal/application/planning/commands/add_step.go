package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// AddStepCommand appends a manually specified step to a level. The step's
// duration is resolved from the catalogs: recipe time for factory steps,
// travel time for destination steps, order travel time for deliveries.
type AddStepCommand struct {
	Type       string // factory | destination | delivery | submit
	ResourceID string
	Level      int
	TrainID    string // destination and delivery steps
	OrderID    string // delivery and submit steps
}

// AddStepResponse reports the created step. Added is false when the target
// level is marked done.
type AddStepResponse struct {
	Added bool
	Step  *planning.Step
}

// AddStepHandler handles the AddStep command
type AddStepHandler struct {
	store *planStore
}

// NewAddStepHandler creates a new AddStepHandler
func NewAddStepHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *AddStepHandler {
	return &AddStepHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the AddStep command
func (h *AddStepHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddStepCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddStepCommand")
	}
	if cmd.ResourceID == "" {
		return nil, catalog.NewValidationError("resource", "resource id is required")
	}

	plan, catalogs, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	step, err := buildStep(cmd, catalogs)
	if err != nil {
		return nil, err
	}

	added := plan.AddStep(step, cmd.Level, catalogs)
	if !added {
		common.LoggerFromContext(ctx).Log("WARNING", "add step refused: level is done", map[string]interface{}{
			"level": cmd.Level,
		})
		return &AddStepResponse{Added: false}, nil
	}

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("added %s step for %s to level %d", strings.ToLower(string(step.Type)), step.ResourceID, step.LevelID))
	warnIntegrity(ctx, plan, catalogs, step.LevelID)

	return &AddStepResponse{Added: true, Step: step}, nil
}

// buildStep validates the command against the catalogs and constructs the
// right step kind.
func buildStep(cmd *AddStepCommand, catalogs *catalog.Catalogs) (*planning.Step, error) {
	switch strings.ToLower(cmd.Type) {
	case "factory":
		recipe := catalogs.RecipeForOutput(cmd.ResourceID)
		if recipe == nil {
			return nil, catalog.NewNotFoundError("recipe for", cmd.ResourceID)
		}
		return planning.NewFactoryStep(cmd.ResourceID, cmd.Level, recipe.TimeRequired), nil

	case "destination":
		destination := catalogs.DestinationForResource(cmd.ResourceID)
		if destination == nil {
			return nil, catalog.NewNotFoundError("destination for", cmd.ResourceID)
		}
		if catalogs.TrainByID(cmd.TrainID) == nil {
			return nil, catalog.NewNotFoundError("train", cmd.TrainID)
		}
		return planning.NewDestinationStep(cmd.ResourceID, cmd.Level, destination.TravelTime, cmd.TrainID), nil

	case "delivery":
		order := catalogs.OrderByID(cmd.OrderID)
		if order == nil {
			return nil, catalog.NewNotFoundError("order", cmd.OrderID)
		}
		if catalogs.TrainByID(cmd.TrainID) == nil {
			return nil, catalog.NewNotFoundError("train", cmd.TrainID)
		}
		return planning.NewDeliveryStep(cmd.ResourceID, cmd.Level, order.TravelTime, cmd.TrainID, cmd.OrderID), nil

	case "submit":
		order := catalogs.OrderByID(cmd.OrderID)
		if order == nil {
			return nil, catalog.NewNotFoundError("order", cmd.OrderID)
		}
		if order.RequirementFor(cmd.ResourceID) == nil {
			return nil, catalog.NewValidationError("resource", fmt.Sprintf("order %s has no line for %s", cmd.OrderID, cmd.ResourceID))
		}
		return planning.NewSubmitStep(cmd.ResourceID, cmd.Level, 0, cmd.OrderID), nil

	default:
		return nil, catalog.NewValidationError("type", fmt.Sprintf("unknown step type %q", cmd.Type))
	}
}
