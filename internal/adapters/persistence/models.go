package persistence

import (
	"time"
)

// ResourceModel represents the resources table
type ResourceModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
	Icon string `gorm:"column:icon"`
}

func (ResourceModel) TableName() string {
	return "resources"
}

// FactoryModel represents the factories table
type FactoryModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	Name         string `gorm:"column:name;not null"`
	QueueMaxSize int    `gorm:"column:queue_max_size;not null;default:0"`
}

func (FactoryModel) TableName() string {
	return "factories"
}

// RecipeModel represents the recipes table
// One row per producible output; input lines are stored as JSON text so the
// same model works on both PostgreSQL and SQLite.
type RecipeModel struct {
	ID           int    `gorm:"column:id;primaryKey;autoIncrement"`
	FactoryID    string `gorm:"column:factory_id;not null;index"`
	ResourceID   string `gorm:"column:resource_id;not null"`
	TimeRequired int    `gorm:"column:time_required;not null"`
	OutputAmount int    `gorm:"column:output_amount;not null"`
	RequiresJSON string `gorm:"column:requires;type:text"` // JSON array as text
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// DestinationModel represents the destinations table
type DestinationModel struct {
	ID            string `gorm:"column:id;primaryKey"`
	Name          string `gorm:"column:name;not null"`
	ResourceID    string `gorm:"column:resource_id;not null;index"`
	TravelTime    int    `gorm:"column:travel_time;not null"`
	ClassesJSON string `gorm:"column:classes;type:text"` // JSON array as text
	Country     string `gorm:"column:country"`
}

func (DestinationModel) TableName() string {
	return "destinations"
}

// TrainModel represents the trains table
type TrainModel struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name;not null"`
	Capacity int    `gorm:"column:capacity;not null"`
	Class    string `gorm:"column:class;not null"`
	Engine   string `gorm:"column:engine"`
	Country  string `gorm:"column:country"`
}

func (TrainModel) TableName() string {
	return "trains"
}

// OrderModel represents the orders table
// Requirement lines carry delivered progress, so they round-trip with the
// order rather than living in any plan table.
type OrderModel struct {
	ID            string `gorm:"column:id;primaryKey"`
	Type          string `gorm:"column:type;not null"`
	Name          string `gorm:"column:name"`
	TravelTime    int    `gorm:"column:travel_time"`
	ClassesJSON   string `gorm:"column:classes;type:text"`   // JSON array as text
	CountriesJSON string `gorm:"column:countries;type:text"` // JSON array as text
	ExpirationTime int    `gorm:"column:expiration_time"` // unix seconds, BOAT only
	ResourcesJSON  string `gorm:"column:resources;type:text"` // JSON array as text
}

func (OrderModel) TableName() string {
	return "orders"
}

// PlanModel represents the plans table
type PlanModel struct {
	ID                   string    `gorm:"column:id;primaryKey"`
	TotalTime            float64   `gorm:"column:total_time;not null;default:0"`
	MaxConcurrentWorkers int       `gorm:"column:max_concurrent_workers;not null"`
	CreatedAt            time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt            time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// PlanLevelModel represents the plan_levels table
type PlanLevelModel struct {
	PlanID string `gorm:"column:plan_id;primaryKey;not null"`
	Level  int    `gorm:"column:level;primaryKey;not null"`
	Done   bool   `gorm:"column:done;not null;default:false"`
}

func (PlanLevelModel) TableName() string {
	return "plan_levels"
}

// PlanStepModel represents the plan_steps table
// Position preserves step order within a level across save/load cycles.
type PlanStepModel struct {
	ID           string `gorm:"column:id;primaryKey"`
	PlanID       string `gorm:"column:plan_id;not null;index"`
	Level        int    `gorm:"column:level;not null"`
	Position     int    `gorm:"column:position;not null"`
	StepType     string `gorm:"column:step_type;not null"`
	ResourceID   string `gorm:"column:resource_id"`
	TimeRequired int    `gorm:"column:time_required"`
	TrainID      string `gorm:"column:train_id"`
	OrderID      string `gorm:"column:order_id"`
}

func (PlanStepModel) TableName() string {
	return "plan_steps"
}

// PlanLogModel represents the plan_logs table
type PlanLogModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	PlanID    string    `gorm:"column:plan_id;not null;index"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	Level     string    `gorm:"column:level;not null;default:'INFO'"`
	Message   string    `gorm:"column:message;type:text;not null"`
}

func (PlanLogModel) TableName() string {
	return "plan_logs"
}
