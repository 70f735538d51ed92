package planning_test

import "github.com/jmolina/railplan-go/internal/domain/catalog"

// testCatalogs builds the reference data shared by the planning tests:
// a smeltery producing steel from iron and coal, mines for the raw
// resources, four trains, and a building order asking for coal.
func testCatalogs() *catalog.Catalogs {
	c := catalog.NewCatalogs()

	c.Resources["iron"] = &catalog.Resource{ID: "iron", Name: "Iron"}
	c.Resources["coal"] = &catalog.Resource{ID: "coal", Name: "Coal"}
	c.Resources["steel"] = &catalog.Resource{ID: "steel", Name: "Steel"}

	c.Factories["smeltery"] = &catalog.Factory{
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

	c.Destinations["coal-mine"] = &catalog.Destination{
		ID:         "coal-mine",
		Name:       "Coal Mine",
		ResourceID: "coal",
		TravelTime: 30,
		Classes:    []catalog.TrainClass{catalog.TrainClassCommon, catalog.TrainClassRare},
		Country:    "BRITAIN",
	}
	c.Destinations["iron-mine"] = &catalog.Destination{
		ID:         "iron-mine",
		Name:       "Iron Ore Mine",
		ResourceID: "iron",
		TravelTime: 45,
		Classes:    []catalog.TrainClass{catalog.TrainClassCommon},
		Country:    "BRITAIN",
	}

	c.Trains["t1"] = &catalog.Train{ID: "t1", Name: "Black Hawk", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"}
	c.Trains["t2"] = &catalog.Train{ID: "t2", Name: "Iron Duke", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"}
	c.Trains["t3"] = &catalog.Train{ID: "t3", Name: "Blue Comet", Capacity: 30, Class: catalog.TrainClassRare, Country: "BRITAIN"}
	c.Trains["t4"] = &catalog.Train{ID: "t4", Name: "Prussian P8", Capacity: 50, Class: catalog.TrainClassEpic, Country: "GERMANY"}

	c.Orders = []*catalog.Order{
		{
			ID:   "bridge",
			Name: "River Bridge",
			Type: catalog.OrderTypeBuilding,
			Resources: []catalog.ResourceRequirement{
				{ResourceID: "coal", Amount: 30},
				{ResourceID: "steel", Amount: 80},
			},
		},
	}

	return c
}

// planningRequirement is shorthand for a shortfall requirement.
func planningRequirement(resourceID string, amount int) catalog.ResourceRequirement {
	return catalog.ResourceRequirement{ResourceID: resourceID, Amount: amount}
}
