package planning

import (
	"fmt"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// PlanError is the base type for planning domain errors.
type PlanError struct {
	*catalog.DomainError
}

func NewPlanError(message string) *PlanError {
	return &PlanError{DomainError: catalog.NewDomainError(message)}
}

// NoProducerError indicates a resource with neither a gathering destination
// nor a producing recipe in the catalogs: the shortfall cannot be planned.
type NoProducerError struct {
	*PlanError
	ResourceID string
}

func NewNoProducerError(resourceID string) *NoProducerError {
	return &NoProducerError{
		PlanError:  NewPlanError(fmt.Sprintf("no destination or recipe produces %s", resourceID)),
		ResourceID: resourceID,
	}
}

// NoEligibleTrainError indicates no train in the catalog matches a
// destination's class and country restrictions, so gathering there can
// never be scheduled at any level.
type NoEligibleTrainError struct {
	*PlanError
	ResourceID    string
	DestinationID string
}

func NewNoEligibleTrainError(resourceID, destinationID string) *NoEligibleTrainError {
	return &NoEligibleTrainError{
		PlanError:     NewPlanError(fmt.Sprintf("no eligible train for destination %s gathering %s", destinationID, resourceID)),
		ResourceID:    resourceID,
		DestinationID: destinationID,
	}
}

// InvalidRequirementError indicates a shortfall request with a non-positive
// amount or empty resource.
type InvalidRequirementError struct {
	*PlanError
}

func NewInvalidRequirementError(message string) *InvalidRequirementError {
	return &InvalidRequirementError{PlanError: NewPlanError(message)}
}
