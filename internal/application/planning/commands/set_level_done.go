package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// SetLevelDoneCommand flips a level's done flag. The flag's only effect on
// the model is blocking new step addition.
type SetLevelDoneCommand struct {
	Level int
	Done  bool
}

// SetLevelDoneResponse reports whether the level existed.
type SetLevelDoneResponse struct {
	Updated bool
}

// SetLevelDoneHandler handles the SetLevelDone command
type SetLevelDoneHandler struct {
	store *planStore
}

// NewSetLevelDoneHandler creates a new SetLevelDoneHandler
func NewSetLevelDoneHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *SetLevelDoneHandler {
	return &SetLevelDoneHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the SetLevelDone command
func (h *SetLevelDoneHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetLevelDoneCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SetLevelDoneCommand")
	}

	plan, _, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	level := plan.Level(cmd.Level)
	if level == nil {
		common.LoggerFromContext(ctx).Log("WARNING", "set done skipped: level not found", map[string]interface{}{
			"level": cmd.Level,
		})
		return &SetLevelDoneResponse{Updated: false}, nil
	}

	level.Done = cmd.Done

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("level %d done=%t", cmd.Level, cmd.Done))

	return &SetLevelDoneResponse{Updated: true}, nil
}
