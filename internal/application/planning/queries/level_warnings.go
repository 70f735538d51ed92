package queries

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// LevelWarningsQuery re-derives the soft-constraint state of one level:
// data-integrity problems, train-slot occupancy against the plan's worker
// limit, and per-factory queue pressure. Nothing here is stored; warnings
// are always computed from current state.
type LevelWarningsQuery struct {
	Level int
}

// FactoryQueueWarning flags a factory whose per-level queue bound is
// exceeded by the factory steps currently in the level.
type FactoryQueueWarning struct {
	FactoryID    string
	FactoryName  string
	StepCount    int
	QueueMaxSize int
}

// LevelWarningsResponse carries everything a UI needs to render warning
// badges for a level.
type LevelWarningsResponse struct {
	LevelFound           bool
	Integrity            []planning.IntegrityWarning
	TrainSteps           int
	MaxConcurrentWorkers int
	OverCapacity         bool
	FactoryQueues        []FactoryQueueWarning
}

// LevelWarningsHandler handles the LevelWarnings query
type LevelWarningsHandler struct {
	plans    planning.PlanRepository
	catalogs catalog.Repository
}

// NewLevelWarningsHandler creates a new LevelWarningsHandler
func NewLevelWarningsHandler(plans planning.PlanRepository, catalogs catalog.Repository) *LevelWarningsHandler {
	return &LevelWarningsHandler{plans: plans, catalogs: catalogs}
}

// Handle executes the LevelWarnings query
func (h *LevelWarningsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*LevelWarningsQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *LevelWarningsQuery")
	}

	plan, err := h.plans.Load(ctx, planning.DefaultPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}
	if plan == nil {
		plan = planning.NewProductionPlan(planning.DefaultPlanID)
	}

	catalogs, err := h.catalogs.LoadCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	level := plan.Level(query.Level)
	if level == nil {
		return &LevelWarningsResponse{LevelFound: false}, nil
	}

	response := &LevelWarningsResponse{
		LevelFound:           true,
		Integrity:            planning.LevelWarnings(level, catalogs),
		TrainSteps:           level.TrainStepCount(),
		MaxConcurrentWorkers: plan.MaxConcurrentWorkers,
	}
	response.OverCapacity = plan.MaxConcurrentWorkers > 0 && response.TrainSteps > plan.MaxConcurrentWorkers

	for _, factory := range catalogs.Factories {
		count := level.FactoryStepCount(factory)
		if factory.QueueMaxSize > 0 && count > factory.QueueMaxSize {
			response.FactoryQueues = append(response.FactoryQueues, FactoryQueueWarning{
				FactoryID:    factory.ID,
				FactoryName:  factory.Name,
				StepCount:    count,
				QueueMaxSize: factory.QueueMaxSize,
			})
		}
	}

	return response, nil
}
