package catalog

import "sort"

// Catalogs bundles the read-only reference data every planning operation
// needs: resources, factories (with their recipes), destinations, trains,
// and the current order list.
//
// Catalogs are passed explicitly to domain functions rather than reached
// through ambient state, so the planning core stays pure and testable.
type Catalogs struct {
	Resources    map[string]*Resource
	Factories    map[string]*Factory
	Destinations map[string]*Destination
	Trains       map[string]*Train
	Orders       []*Order
}

// NewCatalogs creates an empty catalog aggregate.
func NewCatalogs() *Catalogs {
	return &Catalogs{
		Resources:    make(map[string]*Resource),
		Factories:    make(map[string]*Factory),
		Destinations: make(map[string]*Destination),
		Trains:       make(map[string]*Train),
	}
}

// RecipeForOutput finds the recipe producing the given resource by scanning
// factories in ID order. First match wins: the catalog model assumes at most
// one recipe per output resource, and the ordered scan keeps the lookup
// deterministic when a catalog violates that assumption.
func (c *Catalogs) RecipeForOutput(resourceID string) *Recipe {
	for _, factory := range c.FactoryList() {
		if recipe := factory.RecipeForOutput(resourceID); recipe != nil {
			return recipe
		}
	}
	return nil
}

// FactoryForOutput finds the factory whose recipes produce the given
// resource, scanning in ID order like RecipeForOutput.
func (c *Catalogs) FactoryForOutput(resourceID string) *Factory {
	for _, factory := range c.FactoryList() {
		if factory.RecipeForOutput(resourceID) != nil {
			return factory
		}
	}
	return nil
}

// DestinationForResource finds a destination gathering the given resource.
func (c *Catalogs) DestinationForResource(resourceID string) *Destination {
	for _, destination := range c.Destinations {
		if destination.ResourceID == resourceID {
			return destination
		}
	}
	return nil
}

// TrainByID looks up a train by ID, returning nil if unknown.
func (c *Catalogs) TrainByID(id string) *Train {
	return c.Trains[id]
}

// OrderByID looks up an order by ID, returning nil if unknown.
func (c *Catalogs) OrderByID(id string) *Order {
	for _, order := range c.Orders {
		if order.ID == id {
			return order
		}
	}
	return nil
}

// TrainList returns all trains ordered by ID. The stable ordering is what
// makes tie-breaking in train selection deterministic.
func (c *Catalogs) TrainList() []*Train {
	trains := make([]*Train, 0, len(c.Trains))
	for _, train := range c.Trains {
		trains = append(trains, train)
	}
	sort.Slice(trains, func(i, j int) bool { return trains[i].ID < trains[j].ID })
	return trains
}

// DestinationList returns all destinations ordered by ID.
func (c *Catalogs) DestinationList() []*Destination {
	destinations := make([]*Destination, 0, len(c.Destinations))
	for _, destination := range c.Destinations {
		destinations = append(destinations, destination)
	}
	sort.Slice(destinations, func(i, j int) bool { return destinations[i].ID < destinations[j].ID })
	return destinations
}

// FactoryList returns all factories ordered by ID.
func (c *Catalogs) FactoryList() []*Factory {
	factories := make([]*Factory, 0, len(c.Factories))
	for _, factory := range c.Factories {
		factories = append(factories, factory)
	}
	sort.Slice(factories, func(i, j int) bool { return factories[i].ID < factories[j].ID })
	return factories
}
