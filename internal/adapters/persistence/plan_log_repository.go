package persistence

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/domain/planning"
	"gorm.io/gorm"
)

// GormPlanLogRepository implements planning.ActivityLogRepository using GORM
type GormPlanLogRepository struct {
	db *gorm.DB
}

// NewGormPlanLogRepository creates a new GORM plan log repository
func NewGormPlanLogRepository(db *gorm.DB) *GormPlanLogRepository {
	return &GormPlanLogRepository{db: db}
}

// Append writes one activity entry
func (r *GormPlanLogRepository) Append(ctx context.Context, entry *planning.ActivityEntry) error {
	model := &PlanLogModel{
		PlanID:    entry.PlanID,
		Timestamp: entry.Timestamp,
		Level:     entry.Level,
		Message:   entry.Message,
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append plan log: %w", err)
	}
	return nil
}

// List returns the most recent entries for a plan, newest first.
// A limit of 0 or less returns everything.
func (r *GormPlanLogRepository) List(ctx context.Context, planID string, limit int) ([]*planning.ActivityEntry, error) {
	query := r.db.WithContext(ctx).Where("plan_id = ?", planID).Order("timestamp DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []PlanLogModel
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list plan logs: %w", err)
	}

	entries := make([]*planning.ActivityEntry, 0, len(models))
	for _, model := range models {
		entries = append(entries, &planning.ActivityEntry{
			PlanID:    model.PlanID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
		})
	}
	return entries, nil
}
