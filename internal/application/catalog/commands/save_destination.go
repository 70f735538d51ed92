package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// SaveDestinationCommand creates or updates a gathering destination.
type SaveDestinationCommand struct {
	Destination *catalog.Destination
}

// SaveDestinationResponse is empty on success.
type SaveDestinationResponse struct{}

// SaveDestinationHandler handles the SaveDestination command
type SaveDestinationHandler struct {
	catalogs catalog.Repository
}

// NewSaveDestinationHandler creates a new SaveDestinationHandler
func NewSaveDestinationHandler(catalogs catalog.Repository) *SaveDestinationHandler {
	return &SaveDestinationHandler{catalogs: catalogs}
}

// Handle executes the SaveDestination command
func (h *SaveDestinationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveDestinationCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveDestinationCommand")
	}
	if cmd.Destination == nil || cmd.Destination.ID == "" {
		return nil, catalog.NewValidationError("destination", "destination id is required")
	}
	if cmd.Destination.ResourceID == "" {
		return nil, catalog.NewValidationError("destination", "destination resource is required")
	}
	if cmd.Destination.TravelTime < 0 {
		return nil, catalog.NewValidationError("destination", "travel time cannot be negative")
	}

	if err := h.catalogs.SaveDestination(ctx, cmd.Destination); err != nil {
		return nil, fmt.Errorf("failed to save destination: %w", err)
	}
	return &SaveDestinationResponse{}, nil
}
