package catalog

import "context"

// Repository provides persistence for the catalog reference data.
// The domain never loads data itself; application handlers fetch a
// Catalogs snapshot and pass it into domain functions.
type Repository interface {
	// LoadCatalogs fetches the full reference data snapshot.
	LoadCatalogs(ctx context.Context) (*Catalogs, error)

	SaveResource(ctx context.Context, resource *Resource) error
	SaveFactory(ctx context.Context, factory *Factory) error
	SaveDestination(ctx context.Context, destination *Destination) error
	SaveTrain(ctx context.Context, train *Train) error
	SaveOrder(ctx context.Context, order *Order) error

	DeleteOrder(ctx context.Context, orderID string) error
}
