package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// planStore bundles the repositories every planning command needs and the
// load/save choreography around a structural mutation.
type planStore struct {
	plans    planning.PlanRepository
	catalogs catalog.Repository
	activity planning.ActivityLogRepository
}

func newPlanStore(plans planning.PlanRepository, catalogs catalog.Repository, activity planning.ActivityLogRepository) *planStore {
	return &planStore{plans: plans, catalogs: catalogs, activity: activity}
}

// load fetches the current plan and a catalog snapshot. A missing plan is
// not an error: the session starts with a fresh single-level plan.
func (s *planStore) load(ctx context.Context) (*planning.ProductionPlan, *catalog.Catalogs, error) {
	plan, err := s.plans.Load(ctx, planning.DefaultPlanID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		plan = planning.NewProductionPlan(planning.DefaultPlanID)
	}

	catalogs, err := s.catalogs.LoadCatalogs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	return plan, catalogs, nil
}

func (s *planStore) save(ctx context.Context, plan *planning.ProductionPlan) error {
	if err := s.plans.Save(ctx, plan); err != nil {
		return fmt.Errorf("failed to save plan: %w", err)
	}
	return nil
}

// record appends an activity log line and mirrors it to the context logger.
// Activity logging is best-effort: a failed append never fails the command.
func (s *planStore) record(ctx context.Context, plan *planning.ProductionPlan, message string) {
	entry := &planning.ActivityEntry{
		PlanID:    plan.ID,
		Timestamp: time.Now().UTC(),
		Level:     "INFO",
		Message:   message,
	}
	if err := s.activity.Append(ctx, entry); err != nil {
		common.LoggerFromContext(ctx).Log("WARNING", "activity log append failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	common.LoggerFromContext(ctx).Log("INFO", message, map[string]interface{}{"plan": plan.ID})
}

// warnIntegrity logs the data-integrity warnings of the touched levels.
func warnIntegrity(ctx context.Context, plan *planning.ProductionPlan, catalogs *catalog.Catalogs, levels ...int) {
	logger := common.LoggerFromContext(ctx)
	for _, number := range levels {
		for _, warning := range planning.LevelWarnings(plan.Level(number), catalogs) {
			logger.Log("WARNING", warning.String(), map[string]interface{}{"level": number})
		}
	}
}
