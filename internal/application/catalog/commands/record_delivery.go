package commands

import (
	"context"
	"fmt"

	"github.com/jmolina/railplan-go/internal/application/common"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// RecordDeliveryCommand books a delivered amount against an order requirement
// line. Delivered progress lives on the order, not in any plan, so replaying
// a plan's levels never changes it.
type RecordDeliveryCommand struct {
	OrderID    string
	ResourceID string
	Amount     int
}

// RecordDeliveryResponse reports the updated requirement line.
type RecordDeliveryResponse struct {
	Delivered int
	Remaining int
	Satisfied bool
}

// RecordDeliveryHandler handles the RecordDelivery command
type RecordDeliveryHandler struct {
	catalogs catalog.Repository
}

// NewRecordDeliveryHandler creates a new RecordDeliveryHandler
func NewRecordDeliveryHandler(catalogs catalog.Repository) *RecordDeliveryHandler {
	return &RecordDeliveryHandler{catalogs: catalogs}
}

// Handle executes the RecordDelivery command
func (h *RecordDeliveryHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RecordDeliveryCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordDeliveryCommand")
	}
	if cmd.OrderID == "" {
		return nil, catalog.NewValidationError("order_id", "order id is required")
	}
	if cmd.Amount <= 0 {
		return nil, catalog.NewValidationError("amount", "delivery amount must be positive")
	}

	catalogs, err := h.catalogs.LoadCatalogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}
	order := catalogs.OrderByID(cmd.OrderID)
	if order == nil {
		return nil, catalog.NewNotFoundError("order", cmd.OrderID)
	}
	requirement := order.RequirementFor(cmd.ResourceID)
	if requirement == nil {
		return nil, catalog.NewNotFoundError("order requirement", cmd.ResourceID)
	}

	requirement.Delivered += cmd.Amount
	if requirement.Delivered > requirement.Amount {
		requirement.Delivered = requirement.Amount
	}

	if err := h.catalogs.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log("INFO", fmt.Sprintf("Recorded delivery of %d %s for order %s", cmd.Amount, cmd.ResourceID, cmd.OrderID), map[string]interface{}{
		"order":     cmd.OrderID,
		"resource":  cmd.ResourceID,
		"delivered": requirement.Delivered,
	})

	return &RecordDeliveryResponse{
		Delivered: requirement.Delivered,
		Remaining: requirement.Remaining(),
		Satisfied: requirement.IsSatisfied(),
	}, nil
}
