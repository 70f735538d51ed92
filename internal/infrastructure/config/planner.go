package config

// PlannerConfig holds planning engine configuration
type PlannerConfig struct {
	// Plan identifier used when the CLI doesn't name one
	PlanID string `mapstructure:"plan_id"`

	// Maximum train-bearing steps per planning level; 0 means unbounded
	MaxConcurrentWorkers int `mapstructure:"max_concurrent_workers" validate:"min=0"`

	// Starting inventory applied before level 1 when projecting stock,
	// keyed by resource ID
	StartingInventory map[string]int `mapstructure:"starting_inventory"`
}
