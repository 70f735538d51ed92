package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// RemoveLevelCommand deletes a level and renumbers the survivors to a
// contiguous 1..N range.
type RemoveLevelCommand struct {
	Level int
}

// RemoveLevelResponse carries the old-to-new level mapping so callers can
// re-target an active level that moved. Removed is false when the level
// did not exist (a logged no-op).
type RemoveLevelResponse struct {
	Removed      bool
	Mapping      map[int]int
	LevelNumbers []int
}

// RemoveLevelHandler handles the RemoveLevel command
type RemoveLevelHandler struct {
	store *planStore
}

// NewRemoveLevelHandler creates a new RemoveLevelHandler
func NewRemoveLevelHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *RemoveLevelHandler {
	return &RemoveLevelHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the RemoveLevel command
func (h *RemoveLevelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RemoveLevelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RemoveLevelCommand")
	}

	plan, _, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	mapping := plan.RemoveLevel(cmd.Level)
	if mapping == nil {
		common.LoggerFromContext(ctx).Log("WARNING", "remove level skipped: level not found", map[string]interface{}{
			"level": cmd.Level,
		})
		return &RemoveLevelResponse{Removed: false, LevelNumbers: plan.LevelNumbers()}, nil
	}

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("removed level %d", cmd.Level))

	return &RemoveLevelResponse{
		Removed:      true,
		Mapping:      mapping,
		LevelNumbers: plan.LevelNumbers(),
	}, nil
}
