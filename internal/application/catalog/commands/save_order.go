package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// SaveOrderCommand creates or updates an order and its requirement lines.
type SaveOrderCommand struct {
	Order *catalog.Order
}

// SaveOrderResponse is empty on success.
type SaveOrderResponse struct{}

// SaveOrderHandler handles the SaveOrder command
type SaveOrderHandler struct {
	catalogs catalog.Repository
}

// NewSaveOrderHandler creates a new SaveOrderHandler
func NewSaveOrderHandler(catalogs catalog.Repository) *SaveOrderHandler {
	return &SaveOrderHandler{catalogs: catalogs}
}

// Handle executes the SaveOrder command
func (h *SaveOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveOrderCommand")
	}
	if cmd.Order == nil || cmd.Order.ID == "" {
		return nil, catalog.NewValidationError("order", "order id is required")
	}
	switch cmd.Order.Type {
	case catalog.OrderTypeStory, catalog.OrderTypeBoat, catalog.OrderTypeBuilding:
	default:
		return nil, catalog.NewValidationError("order", fmt.Sprintf("unknown order type %q", cmd.Order.Type))
	}
	for _, req := range cmd.Order.Resources {
		if req.ResourceID == "" {
			return nil, catalog.NewValidationError("order", "requirement resource is required")
		}
		if req.Amount <= 0 {
			return nil, catalog.NewValidationError("order", fmt.Sprintf("requirement for %s must be positive", req.ResourceID))
		}
	}

	if err := h.catalogs.SaveOrder(ctx, cmd.Order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}
	return &SaveOrderResponse{}, nil
}

// DeleteOrderCommand removes a completed or abandoned order from the catalog.
type DeleteOrderCommand struct {
	OrderID string
}

// DeleteOrderResponse is empty on success.
type DeleteOrderResponse struct{}

// DeleteOrderHandler handles the DeleteOrder command
type DeleteOrderHandler struct {
	catalogs catalog.Repository
}

// NewDeleteOrderHandler creates a new DeleteOrderHandler
func NewDeleteOrderHandler(catalogs catalog.Repository) *DeleteOrderHandler {
	return &DeleteOrderHandler{catalogs: catalogs}
}

// Handle executes the DeleteOrder command
func (h *DeleteOrderHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteOrderCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteOrderCommand")
	}
	if cmd.OrderID == "" {
		return nil, catalog.NewValidationError("order_id", "order id is required")
	}

	if err := h.catalogs.DeleteOrder(ctx, cmd.OrderID); err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}
	return &DeleteOrderResponse{}, nil
}
