package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// InsertLevelCommand inserts an empty level before the given number,
// shifting that level and everything after it up by one.
type InsertLevelCommand struct {
	Before int
}

// InsertLevelResponse reports the plan shape after the insertion.
type InsertLevelResponse struct {
	InsertedLevel int
	LevelNumbers  []int
}

// InsertLevelHandler handles the InsertLevel command
type InsertLevelHandler struct {
	store *planStore
}

// NewInsertLevelHandler creates a new InsertLevelHandler
func NewInsertLevelHandler(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *InsertLevelHandler {
	return &InsertLevelHandler{store: newPlanStore(plans, catalogs, activity)}
}

// Handle executes the InsertLevel command
func (h *InsertLevelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*InsertLevelCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *InsertLevelCommand")
	}

	plan, _, err := h.store.load(ctx)
	if err != nil {
		return nil, err
	}

	level := plan.InsertLevel(cmd.Before)

	if err := h.store.save(ctx, plan); err != nil {
		return nil, err
	}
	h.store.record(ctx, plan, fmt.Sprintf("inserted empty level %d", level.Level))

	return &InsertLevelResponse{
		InsertedLevel: level.Level,
		LevelNumbers:  plan.LevelNumbers(),
	}, nil
}
