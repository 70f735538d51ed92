package catalog

// Factory owns a set of recipes and bounds concurrent production.
//
// QueueMaxSize limits how many factory steps producing this factory's outputs
// may coexist in a single planning level. The limit is a level-validity
// constraint surfaced as a warning, never enforced by mutation.
type Factory struct {
	ID           string
	Name         string
	QueueMaxSize int
	Recipes      []Recipe
}

// RecipeForOutput returns the factory's recipe producing the given resource,
// or nil if this factory does not produce it.
func (f *Factory) RecipeForOutput(resourceID string) *Recipe {
	for i := range f.Recipes {
		if f.Recipes[i].ResourceID == resourceID {
			return &f.Recipes[i]
		}
	}
	return nil
}
