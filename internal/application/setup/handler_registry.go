package setup

import (
	catalogCommands "github.com/jmolina/railplan-go/internal/application/catalog/commands"
	catalogQueries "github.com/jmolina/railplan-go/internal/application/catalog/queries"
	"github.com/jmolina/railplan-go/internal/application/common"
	planningCommands "github.com/jmolina/railplan-go/internal/application/planning/commands"
	planningQueries "github.com/jmolina/railplan-go/internal/application/planning/queries"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/planning"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	plans    planning.PlanRepository
	catalogs catalog.Repository
	activity planning.ActivityLogRepository
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	plans planning.PlanRepository,
	catalogs catalog.Repository,
	activity planning.ActivityLogRepository,
) *HandlerRegistry {
	return &HandlerRegistry{
		plans:    plans,
		catalogs: catalogs,
		activity: activity,
	}
}

// RegisterAll registers every command and query handler with the mediator
func (r *HandlerRegistry) RegisterAll(m common.Mediator) error {
	if err := r.RegisterPlanningHandlers(m); err != nil {
		return err
	}
	return r.RegisterCatalogHandlers(m)
}

// RegisterPlanningHandlers registers the plan editing and query handlers
func (r *HandlerRegistry) RegisterPlanningHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*planningCommands.InsertLevelCommand](m,
		planningCommands.NewInsertLevelHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.RemoveLevelCommand](m,
		planningCommands.NewRemoveLevelHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.AddStepCommand](m,
		planningCommands.NewAddStepHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.RemoveStepCommand](m,
		planningCommands.NewRemoveStepHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.MoveStepCommand](m,
		planningCommands.NewMoveStepHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.ReorderStepCommand](m,
		planningCommands.NewReorderStepHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}

	// Rewind and fast-forward share one handler
	shiftHandler := planningCommands.NewShiftStepHandler(r.plans, r.catalogs, r.activity)
	if err := common.RegisterHandler[*planningCommands.RewindStepCommand](m, shiftHandler); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.FastForwardStepCommand](m, shiftHandler); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planningCommands.CreateResourceJobCommand](m,
		planningCommands.NewCreateResourceJobHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.SetLevelDoneCommand](m,
		planningCommands.NewSetLevelDoneHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningCommands.ClearPlanCommand](m,
		planningCommands.NewClearPlanHandler(r.plans, r.catalogs, r.activity)); err != nil {
		return err
	}

	if err := common.RegisterHandler[*planningQueries.GetPlanQuery](m,
		planningQueries.NewGetPlanHandler(r.plans)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningQueries.ProjectInventoryQuery](m,
		planningQueries.NewProjectInventoryHandler(r.plans)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*planningQueries.LevelWarningsQuery](m,
		planningQueries.NewLevelWarningsHandler(r.plans, r.catalogs)); err != nil {
		return err
	}
	return common.RegisterHandler[*planningQueries.ActivityLogQuery](m,
		planningQueries.NewActivityLogHandler(r.activity))
}

// RegisterCatalogHandlers registers the catalog editing and query handlers
func (r *HandlerRegistry) RegisterCatalogHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*catalogCommands.SaveResourceCommand](m,
		catalogCommands.NewSaveResourceHandler(r.catalogs)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*catalogCommands.SaveFactoryCommand](m,
		catalogCommands.NewSaveFactoryHandler(r.catalogs)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*catalogCommands.SaveDestinationCommand](m,
		catalogCommands.NewSaveDestinationHandler(r.catalogs)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*catalogCommands.SaveTrainCommand](m,
		catalogCommands.NewSaveTrainHandler(r.catalogs)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*catalogCommands.SaveOrderCommand](m,
		catalogCommands.NewSaveOrderHandler(r.catalogs)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*catalogCommands.DeleteOrderCommand](m,
		catalogCommands.NewDeleteOrderHandler(r.catalogs)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*catalogCommands.RecordDeliveryCommand](m,
		catalogCommands.NewRecordDeliveryHandler(r.catalogs)); err != nil {
		return err
	}
	return common.RegisterHandler[*catalogQueries.GetCatalogsQuery](m,
		catalogQueries.NewGetCatalogsHandler(r.catalogs))
}
