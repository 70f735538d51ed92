package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// SaveFactoryCommand creates or updates a factory, including its recipes.
type SaveFactoryCommand struct {
	Factory *catalog.Factory
}

// SaveFactoryResponse is empty on success.
type SaveFactoryResponse struct{}

// SaveFactoryHandler handles the SaveFactory command
type SaveFactoryHandler struct {
	catalogs catalog.Repository
}

// NewSaveFactoryHandler creates a new SaveFactoryHandler
func NewSaveFactoryHandler(catalogs catalog.Repository) *SaveFactoryHandler {
	return &SaveFactoryHandler{catalogs: catalogs}
}

// Handle executes the SaveFactory command
func (h *SaveFactoryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveFactoryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveFactoryCommand")
	}
	if cmd.Factory == nil || cmd.Factory.ID == "" {
		return nil, catalog.NewValidationError("factory", "factory id is required")
	}
	for _, recipe := range cmd.Factory.Recipes {
		if recipe.ResourceID == "" {
			return nil, catalog.NewValidationError("recipe", "recipe output resource is required")
		}
		if recipe.OutputAmount <= 0 {
			return nil, catalog.NewValidationError("recipe", fmt.Sprintf("recipe for %s must output a positive amount", recipe.ResourceID))
		}
	}

	if err := h.catalogs.SaveFactory(ctx, cmd.Factory); err != nil {
		return nil, fmt.Errorf("failed to save factory: %w", err)
	}
	return &SaveFactoryResponse{}, nil
}
