package planning

import (
	"context"
	"time"
)

// PlanRepository is the persistence boundary for the production plan.
// The domain only ever sees fully reconstructed plans; load returns nil
// (not an error) when no plan has been saved yet.
type PlanRepository interface {
	Load(ctx context.Context, planID string) (*ProductionPlan, error)
	Save(ctx context.Context, plan *ProductionPlan) error
	Delete(ctx context.Context, planID string) error
}

// ActivityEntry is one line of the plan's activity log.
type ActivityEntry struct {
	PlanID    string
	Timestamp time.Time
	Level     string
	Message   string
}

// ActivityLogRepository records what happened to a plan over time.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, planID string, limit int) ([]*ActivityEntry, error)
}
