package catalog

// Resource is an immutable reference entity describing a tradeable good.
// Resources are created through catalog editing and looked up by ID everywhere else.
type Resource struct {
	ID   string
	Name string
	Icon string
}

// ResourceRequirement is a quantity of a resource needed by a recipe or an order.
// Delivered tracks fulfilment progress and is only meaningful on order lines.
type ResourceRequirement struct {
	ResourceID string
	Amount     int
	Delivered  int
}

// Remaining returns how many units are still outstanding on this line.
func (r *ResourceRequirement) Remaining() int {
	remaining := r.Amount - r.Delivered
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsSatisfied returns true when the delivered amount covers the requirement.
func (r *ResourceRequirement) IsSatisfied() bool {
	return r.Delivered >= r.Amount
}

// Recipe describes how a factory turns input resources into an output resource.
//
// A given output resource should map to at most one recipe system-wide; lookups
// take the first match, which is a documented simplification for catalogs that
// carry alternative production paths.
type Recipe struct {
	ResourceID   string // output resource
	TimeRequired int    // seconds
	OutputAmount int
	Requires     []ResourceRequirement
}
