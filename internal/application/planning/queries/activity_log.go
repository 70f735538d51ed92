package queries

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// ActivityLogQuery requests the most recent activity entries for the plan.
// A limit of 0 or less returns the full history.
type ActivityLogQuery struct {
	Limit int
}

// ActivityLogResponse carries entries newest first.
type ActivityLogResponse struct {
	Entries []*planning.ActivityEntry
}

// ActivityLogHandler handles the ActivityLog query
type ActivityLogHandler struct {
	activity planning.ActivityLogRepository
}

// NewActivityLogHandler creates a new ActivityLogHandler
func NewActivityLogHandler(activity planning.ActivityLogRepository) *ActivityLogHandler {
	return &ActivityLogHandler{activity: activity}
}

// Handle executes the ActivityLog query
func (h *ActivityLogHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ActivityLogQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ActivityLogQuery")
	}

	entries, err := h.activity.List(ctx, planning.DefaultPlanID, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity log: %w", err)
	}
	return &ActivityLogResponse{Entries: entries}, nil
}
