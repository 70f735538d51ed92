package planning

import "github.com/google/uuid"

// StepType discriminates the kinds of work a planning level can hold.
// Every consumer dispatches on this field; unknown types contribute nothing
// to inventory and are surfaced as data-integrity warnings.
type StepType string

const (
	// StepTypeFactory - produces a resource via its recipe
	StepTypeFactory StepType = "FACTORY"

	// StepTypeDestination - gathers a resource using an assigned train
	StepTypeDestination StepType = "DESTINATION"

	// StepTypeDelivery - consumes inventory and transports it to an order
	StepTypeDelivery StepType = "DELIVERY"

	// StepTypeSubmit - consumes inventory directly against an order, no train
	StepTypeSubmit StepType = "SUBMIT"
)

// ParseStepType converts a string to a StepType. Unknown strings are
// returned as-is so persistence round-trips don't silently rewrite data.
func ParseStepType(s string) StepType {
	return StepType(s)
}

// Step is one unit of planned work belonging to exactly one level.
//
// TrainID is set on destination and delivery steps; OrderID on delivery and
// submit steps. LevelID must always equal the number of the level physically
// holding the step — the plan editor is the only code allowed to move steps,
// and it maintains that invariant on every structural change.
type Step struct {
	ID           string
	Type         StepType
	ResourceID   string
	LevelID      int
	TimeRequired int // seconds
	TrainID      string
	OrderID      string
}

// NewFactoryStep creates a production step for the given resource.
func NewFactoryStep(resourceID string, level, timeRequired int) *Step {
	return &Step{
		ID:           uuid.New().String(),
		Type:         StepTypeFactory,
		ResourceID:   resourceID,
		LevelID:      level,
		TimeRequired: timeRequired,
	}
}

// NewDestinationStep creates a gathering step using the given train.
func NewDestinationStep(resourceID string, level, travelTime int, trainID string) *Step {
	return &Step{
		ID:           uuid.New().String(),
		Type:         StepTypeDestination,
		ResourceID:   resourceID,
		LevelID:      level,
		TimeRequired: travelTime,
		TrainID:      trainID,
	}
}

// NewDeliveryStep creates a transport step fulfilling an order with a train.
func NewDeliveryStep(resourceID string, level, travelTime int, trainID, orderID string) *Step {
	return &Step{
		ID:           uuid.New().String(),
		Type:         StepTypeDelivery,
		ResourceID:   resourceID,
		LevelID:      level,
		TimeRequired: travelTime,
		TrainID:      trainID,
		OrderID:      orderID,
	}
}

// NewSubmitStep creates a step handing a resource directly to an order.
func NewSubmitStep(resourceID string, level, timeRequired int, orderID string) *Step {
	return &Step{
		ID:           uuid.New().String(),
		Type:         StepTypeSubmit,
		ResourceID:   resourceID,
		LevelID:      level,
		TimeRequired: timeRequired,
		OrderID:      orderID,
	}
}

// UsesTrain returns true for step kinds that occupy a train for the level.
func (s *Step) UsesTrain() bool {
	return s.Type == StepTypeDestination || s.Type == StepTypeDelivery
}
