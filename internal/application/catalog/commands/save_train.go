package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// SaveTrainCommand creates or updates a train in the catalog.
type SaveTrainCommand struct {
	Train *catalog.Train
}

// SaveTrainResponse is empty on success.
type SaveTrainResponse struct{}

// SaveTrainHandler handles the SaveTrain command
type SaveTrainHandler struct {
	catalogs catalog.Repository
}

// NewSaveTrainHandler creates a new SaveTrainHandler
func NewSaveTrainHandler(catalogs catalog.Repository) *SaveTrainHandler {
	return &SaveTrainHandler{catalogs: catalogs}
}

// Handle executes the SaveTrain command
func (h *SaveTrainHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveTrainCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveTrainCommand")
	}
	if cmd.Train == nil || cmd.Train.ID == "" {
		return nil, catalog.NewValidationError("train", "train id is required")
	}
	if cmd.Train.Capacity <= 0 {
		return nil, catalog.NewValidationError("capacity", "train capacity must be positive")
	}

	if err := h.catalogs.SaveTrain(ctx, cmd.Train); err != nil {
		return nil, fmt.Errorf("failed to save train: %w", err)
	}
	return &SaveTrainResponse{}, nil
}
