package persistence

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
	"gorm.io/gorm"
)

// GormPlanRepository implements planning.PlanRepository using GORM.
//
// Plans are saved as a transactional rewrite: the plan row is upserted and
// all level and step rows are replaced. Plans are small (tens of steps), so
// rewriting beats diffing and can never leave orphaned rows behind.
type GormPlanRepository struct {
	db       *gorm.DB
	catalogs catalog.Repository
}

// NewGormPlanRepository creates a new GORM plan repository. The catalog
// repository is needed on load to recompute derived inventory deltas.
func NewGormPlanRepository(db *gorm.DB, catalogs catalog.Repository) *GormPlanRepository {
	return &GormPlanRepository{db: db, catalogs: catalogs}
}

// Load reconstructs a plan from its rows, or returns nil when no plan with
// the given ID has been saved.
func (r *GormPlanRepository) Load(ctx context.Context, planID string) (*planning.ProductionPlan, error) {
	var model PlanModel
	result := r.db.WithContext(ctx).Where("id = ?", planID).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load plan: %w", result.Error)
	}

	plan := &planning.ProductionPlan{
		ID:                   model.ID,
		Levels:               map[int]*planning.PlanningLevel{},
		TotalTime:            model.TotalTime,
		MaxConcurrentWorkers: model.MaxConcurrentWorkers,
	}

	var levels []PlanLevelModel
	if err := r.db.WithContext(ctx).Where("plan_id = ?", planID).Order("level").Find(&levels).Error; err != nil {
		return nil, fmt.Errorf("failed to load plan levels: %w", err)
	}
	for _, levelModel := range levels {
		level := planning.NewPlanningLevel(levelModel.Level)
		level.Done = levelModel.Done
		plan.Levels[levelModel.Level] = level
	}

	var steps []PlanStepModel
	if err := r.db.WithContext(ctx).Where("plan_id = ?", planID).Order("level, position").Find(&steps).Error; err != nil {
		return nil, fmt.Errorf("failed to load plan steps: %w", err)
	}
	for _, stepModel := range steps {
		level, ok := plan.Levels[stepModel.Level]
		if !ok {
			return nil, fmt.Errorf("step %s references missing level %d", stepModel.ID, stepModel.Level)
		}
		level.Steps = append(level.Steps, &planning.Step{
			ID:           stepModel.ID,
			Type:         planning.StepType(stepModel.StepType),
			ResourceID:   stepModel.ResourceID,
			LevelID:      stepModel.Level,
			TimeRequired: stepModel.TimeRequired,
			TrainID:      stepModel.TrainID,
			OrderID:      stepModel.OrderID,
		})
	}

	// A plan must always have level 1; tolerate rows written before the
	// plan got its first step.
	if len(plan.Levels) == 0 {
		plan.Levels[1] = planning.NewPlanningLevel(1)
	}

	catalogs, err := r.catalogs.LoadCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs for plan: %w", err)
	}
	for _, level := range plan.Levels {
		level.Recompute(catalogs)
	}

	return plan, nil
}

// Save rewrites the plan's rows inside one transaction
func (r *GormPlanRepository) Save(ctx context.Context, plan *planning.ProductionPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &PlanModel{
			ID:                   plan.ID,
			TotalTime:            plan.TotalTime,
			MaxConcurrentWorkers: plan.MaxConcurrentWorkers,
		}
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save plan: %w", err)
		}

		if err := tx.Where("plan_id = ?", plan.ID).Delete(&PlanLevelModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear plan levels: %w", err)
		}
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&PlanStepModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear plan steps: %w", err)
		}

		for _, number := range plan.LevelNumbers() {
			level := plan.Levels[number]
			levelModel := &PlanLevelModel{
				PlanID: plan.ID,
				Level:  number,
				Done:   level.Done,
			}
			if err := tx.Create(levelModel).Error; err != nil {
				return fmt.Errorf("failed to save plan level %d: %w", number, err)
			}
			for position, step := range level.Steps {
				stepModel := &PlanStepModel{
					ID:           step.ID,
					PlanID:       plan.ID,
					Level:        number,
					Position:     position,
					StepType:     string(step.Type),
					ResourceID:   step.ResourceID,
					TimeRequired: step.TimeRequired,
					TrainID:      step.TrainID,
					OrderID:      step.OrderID,
				}
				if err := tx.Create(stepModel).Error; err != nil {
					return fmt.Errorf("failed to save plan step %s: %w", step.ID, err)
				}
			}
		}
		return nil
	})
}

// Delete removes the plan and all its rows
func (r *GormPlanRepository) Delete(ctx context.Context, planID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", planID).Delete(&PlanStepModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan steps: %w", err)
		}
		if err := tx.Where("plan_id = ?", planID).Delete(&PlanLevelModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan levels: %w", err)
		}
		if err := tx.Where("id = ?", planID).Delete(&PlanModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete plan: %w", err)
		}
		return nil
	})
}
