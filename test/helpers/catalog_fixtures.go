package helpers

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/jmolina/railplan-go/internal/adapters/persistence"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// SeedCatalog writes a small but complete catalog into the test database:
// two gatherable resources with destinations, one smelted resource with a
// factory recipe, four trains of mixed class and country, and one building
// order. Tests that need more write it on top.
func SeedCatalog(t *testing.T, db *gorm.DB) catalog.Repository {
	t.Helper()
	ctx := context.Background()
	repo := persistence.NewGormCatalogRepository(db)

	resources := []*catalog.Resource{
		{ID: "iron", Name: "Iron Ore"},
		{ID: "coal", Name: "Coal"},
		{ID: "steel", Name: "Steel"},
	}
	for _, resource := range resources {
		if err := repo.SaveResource(ctx, resource); err != nil {
			t.Fatalf("failed to seed resource %s: %v", resource.ID, err)
		}
	}

	smeltery := &catalog.Factory{
		ID:           "smeltery",
		Name:         "Smeltery",
		QueueMaxSize: 2,
		Recipes: []catalog.Recipe{
			{
				ResourceID:   "steel",
				TimeRequired: 60,
				OutputAmount: 40,
				Requires: []catalog.ResourceRequirement{
					{ResourceID: "iron", Amount: 10},
					{ResourceID: "coal", Amount: 30},
				},
			},
		},
	}
	if err := repo.SaveFactory(ctx, smeltery); err != nil {
		t.Fatalf("failed to seed factory: %v", err)
	}

	destinations := []*catalog.Destination{
		{
			ID:         "coal-mine",
			Name:       "Coal Mine",
			ResourceID: "coal",
			TravelTime: 30,
			Classes:    []catalog.TrainClass{catalog.TrainClassCommon, catalog.TrainClassRare},
			Country:    "BRITAIN",
		},
		{
			ID:         "iron-mine",
			Name:       "Iron Mine",
			ResourceID: "iron",
			TravelTime: 30,
			Country:    "BRITAIN",
		},
	}
	for _, destination := range destinations {
		if err := repo.SaveDestination(ctx, destination); err != nil {
			t.Fatalf("failed to seed destination %s: %v", destination.ID, err)
		}
	}

	trains := []*catalog.Train{
		{ID: "t1", Name: "Blue Comet", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"},
		{ID: "t2", Name: "Iron Duke", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"},
		{ID: "t3", Name: "Black Prince", Capacity: 30, Class: catalog.TrainClassRare, Country: "BRITAIN"},
		{ID: "t4", Name: "Adler", Capacity: 50, Class: catalog.TrainClassEpic, Country: "GERMANY"},
	}
	for _, train := range trains {
		if err := repo.SaveTrain(ctx, train); err != nil {
			t.Fatalf("failed to seed train %s: %v", train.ID, err)
		}
	}

	bridge := &catalog.Order{
		ID:   "bridge",
		Name: "Town Bridge",
		Type: catalog.OrderTypeBuilding,
		Resources: []catalog.ResourceRequirement{
			{ResourceID: "coal", Amount: 30},
			{ResourceID: "steel", Amount: 80},
		},
	}
	if err := repo.SaveOrder(ctx, bridge); err != nil {
		t.Fatalf("failed to seed order: %v", err)
	}

	return repo
}
