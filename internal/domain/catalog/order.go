package catalog

// OrderType discriminates the kinds of orders a player can fulfil.
type OrderType string

const (
	// OrderTypeStory - delivery orders with a travel time and train restrictions
	OrderTypeStory OrderType = "STORY"

	// OrderTypeBoat - time-limited orders that expire
	OrderTypeBoat OrderType = "BOAT"

	// OrderTypeBuilding - construction orders submitted directly from inventory
	OrderTypeBuilding OrderType = "BUILDING"
)

// ParseOrderType converts a string to an OrderType, defaulting to STORY.
func ParseOrderType(s string) OrderType {
	switch s {
	case "STORY":
		return OrderTypeStory
	case "BOAT":
		return OrderTypeBoat
	case "BUILDING":
		return OrderTypeBuilding
	default:
		return OrderTypeStory
	}
}

// Order is an externally supplied demand for resources. The core treats
// orders as read-mostly input to step synthesis; only the Delivered amounts
// on resource lines are ever updated, and that happens outside the domain.
//
// Type-specific fields:
//   - STORY: TravelTime, Classes, Countries (train eligibility for deliveries)
//   - BOAT: ExpirationTime
//   - BUILDING: none
type Order struct {
	ID        string
	Name      string
	Type      OrderType
	Resources []ResourceRequirement

	TravelTime     int // seconds, STORY only
	Classes        []TrainClass
	Countries      []Country
	ExpirationTime int // unix seconds, BOAT only
}

// RequirementFor returns the order's resource line for the given resource,
// or nil if the order does not ask for it.
func (o *Order) RequirementFor(resourceID string) *ResourceRequirement {
	for i := range o.Resources {
		if o.Resources[i].ResourceID == resourceID {
			return &o.Resources[i]
		}
	}
	return nil
}

// IsComplete returns true when every resource line is fully delivered.
func (o *Order) IsComplete() bool {
	for i := range o.Resources {
		if !o.Resources[i].IsSatisfied() {
			return false
		}
	}
	return true
}
