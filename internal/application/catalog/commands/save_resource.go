package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// SaveResourceCommand creates or updates a resource in the catalog.
type SaveResourceCommand struct {
	Resource *catalog.Resource
}

// SaveResourceResponse is empty on success.
type SaveResourceResponse struct{}

// SaveResourceHandler handles the SaveResource command
type SaveResourceHandler struct {
	catalogs catalog.Repository
}

// NewSaveResourceHandler creates a new SaveResourceHandler
func NewSaveResourceHandler(catalogs catalog.Repository) *SaveResourceHandler {
	return &SaveResourceHandler{catalogs: catalogs}
}

// Handle executes the SaveResource command
func (h *SaveResourceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveResourceCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveResourceCommand")
	}
	if cmd.Resource == nil || cmd.Resource.ID == "" {
		return nil, catalog.NewValidationError("resource", "resource id is required")
	}

	if err := h.catalogs.SaveResource(ctx, cmd.Resource); err != nil {
		return nil, fmt.Errorf("failed to save resource: %w", err)
	}
	return &SaveResourceResponse{}, nil
}
