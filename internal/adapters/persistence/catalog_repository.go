package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormCatalogRepository implements catalog.Repository using GORM
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// LoadCatalogs fetches the full reference data snapshot in one pass.
func (r *GormCatalogRepository) LoadCatalogs(ctx context.Context) (*catalog.Catalogs, error) {
	catalogs := catalog.NewCatalogs()

	var resources []ResourceModel
	if err := r.db.WithContext(ctx).Find(&resources).Error; err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	for _, model := range resources {
		catalogs.Resources[model.ID] = &catalog.Resource{
			ID:   model.ID,
			Name: model.Name,
			Icon: model.Icon,
		}
	}

	var factories []FactoryModel
	if err := r.db.WithContext(ctx).Find(&factories).Error; err != nil {
		return nil, fmt.Errorf("failed to load factories: %w", err)
	}
	for _, model := range factories {
		catalogs.Factories[model.ID] = &catalog.Factory{
			ID:           model.ID,
			Name:         model.Name,
			QueueMaxSize: model.QueueMaxSize,
		}
	}

	var recipes []RecipeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipes: %w", err)
	}
	for _, model := range recipes {
		factory, ok := catalogs.Factories[model.FactoryID]
		if !ok {
			return nil, fmt.Errorf("recipe %d references unknown factory %s", model.ID, model.FactoryID)
		}
		recipe, err := recipeModelToEntity(&model)
		if err != nil {
			return nil, err
		}
		factory.Recipes = append(factory.Recipes, *recipe)
	}

	var destinations []DestinationModel
	if err := r.db.WithContext(ctx).Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}
	for _, model := range destinations {
		destination, err := destinationModelToEntity(&model)
		if err != nil {
			return nil, err
		}
		catalogs.Destinations[destination.ID] = destination
	}

	var trains []TrainModel
	if err := r.db.WithContext(ctx).Find(&trains).Error; err != nil {
		return nil, fmt.Errorf("failed to load trains: %w", err)
	}
	for _, model := range trains {
		catalogs.Trains[model.ID] = &catalog.Train{
			ID:       model.ID,
			Name:     model.Name,
			Capacity: model.Capacity,
			Class:    catalog.ParseTrainClass(model.Class),
			Engine:   model.Engine,
			Country:  catalog.Country(model.Country),
		}
	}

	var orders []OrderModel
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	for _, model := range orders {
		order, err := orderModelToEntity(&model)
		if err != nil {
			return nil, err
		}
		catalogs.Orders = append(catalogs.Orders, order)
	}

	return catalogs, nil
}

// SaveResource upserts a resource
func (r *GormCatalogRepository) SaveResource(ctx context.Context, resource *catalog.Resource) error {
	model := &ResourceModel{ID: resource.ID, Name: resource.Name, Icon: resource.Icon}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save resource: %w", err)
	}
	return nil
}

// SaveFactory upserts a factory and rewrites its recipe rows
func (r *GormCatalogRepository) SaveFactory(ctx context.Context, factory *catalog.Factory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := &FactoryModel{
			ID:           factory.ID,
			Name:         factory.Name,
			QueueMaxSize: factory.QueueMaxSize,
		}
		if err := tx.Save(model).Error; err != nil {
			return fmt.Errorf("failed to save factory: %w", err)
		}

		if err := tx.Where("factory_id = ?", factory.ID).Delete(&RecipeModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear recipes: %w", err)
		}
		for i := range factory.Recipes {
			recipeModel, err := recipeEntityToModel(factory.ID, &factory.Recipes[i])
			if err != nil {
				return err
			}
			if err := tx.Create(recipeModel).Error; err != nil {
				return fmt.Errorf("failed to save recipe: %w", err)
			}
		}
		return nil
	})
}

// SaveDestination upserts a destination
func (r *GormCatalogRepository) SaveDestination(ctx context.Context, destination *catalog.Destination) error {
	classesJSON, err := json.Marshal(destination.Classes)
	if err != nil {
		return fmt.Errorf("failed to marshal destination classes: %w", err)
	}
	model := &DestinationModel{
		ID:          destination.ID,
		Name:        destination.Name,
		ResourceID:  destination.ResourceID,
		TravelTime:  destination.TravelTime,
		ClassesJSON: string(classesJSON),
		Country:     string(destination.Country),
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save destination: %w", err)
	}
	return nil
}

// SaveTrain upserts a train
func (r *GormCatalogRepository) SaveTrain(ctx context.Context, train *catalog.Train) error {
	model := &TrainModel{
		ID:       train.ID,
		Name:     train.Name,
		Capacity: train.Capacity,
		Class:    string(train.Class),
		Engine:   train.Engine,
		Country:  string(train.Country),
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save train: %w", err)
	}
	return nil
}

// SaveOrder upserts an order, including delivered progress on its lines
func (r *GormCatalogRepository) SaveOrder(ctx context.Context, order *catalog.Order) error {
	model, err := orderEntityToModel(order)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

// DeleteOrder removes an order row
func (r *GormCatalogRepository) DeleteOrder(ctx context.Context, orderID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&OrderModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func recipeModelToEntity(model *RecipeModel) (*catalog.Recipe, error) {
	var requires []catalog.ResourceRequirement
	if model.RequiresJSON != "" {
		if err := json.Unmarshal([]byte(model.RequiresJSON), &requires); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recipe inputs: %w", err)
		}
	}
	return &catalog.Recipe{
		ResourceID:   model.ResourceID,
		TimeRequired: model.TimeRequired,
		OutputAmount: model.OutputAmount,
		Requires:     requires,
	}, nil
}

func recipeEntityToModel(factoryID string, recipe *catalog.Recipe) (*RecipeModel, error) {
	requiresJSON, err := json.Marshal(recipe.Requires)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipe inputs: %w", err)
	}
	return &RecipeModel{
		FactoryID:    factoryID,
		ResourceID:   recipe.ResourceID,
		TimeRequired: recipe.TimeRequired,
		OutputAmount: recipe.OutputAmount,
		RequiresJSON: string(requiresJSON),
	}, nil
}

func destinationModelToEntity(model *DestinationModel) (*catalog.Destination, error) {
	var classes []catalog.TrainClass
	if model.ClassesJSON != "" {
		if err := json.Unmarshal([]byte(model.ClassesJSON), &classes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal destination classes: %w", err)
		}
	}
	return &catalog.Destination{
		ID:         model.ID,
		Name:       model.Name,
		ResourceID: model.ResourceID,
		TravelTime: model.TravelTime,
		Classes:    classes,
		Country:    catalog.Country(model.Country),
	}, nil
}

func orderModelToEntity(model *OrderModel) (*catalog.Order, error) {
	var resources []catalog.ResourceRequirement
	if model.ResourcesJSON != "" {
		if err := json.Unmarshal([]byte(model.ResourcesJSON), &resources); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order resources: %w", err)
		}
	}
	var classes []catalog.TrainClass
	if model.ClassesJSON != "" {
		if err := json.Unmarshal([]byte(model.ClassesJSON), &classes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order classes: %w", err)
		}
	}
	var countries []catalog.Country
	if model.CountriesJSON != "" {
		if err := json.Unmarshal([]byte(model.CountriesJSON), &countries); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order countries: %w", err)
		}
	}
	return &catalog.Order{
		ID:             model.ID,
		Name:           model.Name,
		Type:           catalog.ParseOrderType(model.Type),
		Resources:      resources,
		TravelTime:     model.TravelTime,
		Classes:        classes,
		Countries:      countries,
		ExpirationTime: model.ExpirationTime,
	}, nil
}

func orderEntityToModel(order *catalog.Order) (*OrderModel, error) {
	resourcesJSON, err := json.Marshal(order.Resources)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order resources: %w", err)
	}
	classesJSON, err := json.Marshal(order.Classes)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order classes: %w", err)
	}
	countriesJSON, err := json.Marshal(order.Countries)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order countries: %w", err)
	}
	return &OrderModel{
		ID:             order.ID,
		Type:           string(order.Type),
		Name:           order.Name,
		TravelTime:     order.TravelTime,
		ClassesJSON:    string(classesJSON),
		CountriesJSON:  string(countriesJSON),
		ExpirationTime: order.ExpirationTime,
		ResourcesJSON:  string(resourcesJSON),
	}, nil
}
