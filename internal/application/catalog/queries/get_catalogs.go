package queries

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// GetCatalogsQuery requests the full static catalog set.
type GetCatalogsQuery struct{}

// GetCatalogsResponse carries the loaded catalogs.
type GetCatalogsResponse struct {
	Catalogs *catalog.Catalogs
}

// GetCatalogsHandler handles the GetCatalogs query
type GetCatalogsHandler struct {
	catalogs catalog.Repository
}

// NewGetCatalogsHandler creates a new GetCatalogsHandler
func NewGetCatalogsHandler(catalogs catalog.Repository) *GetCatalogsHandler {
	return &GetCatalogsHandler{catalogs: catalogs}
}

// Handle executes the GetCatalogs query
func (h *GetCatalogsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetCatalogsQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetCatalogsQuery")
	}

	catalogs, err := h.catalogs.LoadCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	return &GetCatalogsResponse{Catalogs: catalogs}, nil
}
