package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/application/catalog/commands"
	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/test/helpers"
)

func TestSaveResourceCommand_RoundTrip(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := helpers.SeedCatalog(t, db)
	handler := commands.NewSaveResourceHandler(repo)

	// Act
	_, err := handler.Handle(context.Background(), &commands.SaveResourceCommand{
		Resource: &catalog.Resource{ID: "copper", Name: "Copper Ore"},
	})

	// Assert
	require.NoError(t, err)
	catalogs, err := repo.LoadCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Copper Ore", catalogs.Resources["copper"].Name)
}

func TestSaveTrainCommand_RejectsNonPositiveCapacity(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := helpers.SeedCatalog(t, db)
	handler := commands.NewSaveTrainHandler(repo)

	// Act
	_, err := handler.Handle(context.Background(), &commands.SaveTrainCommand{
		Train: &catalog.Train{ID: "t9", Name: "Broken", Capacity: 0, Class: catalog.TrainClassCommon},
	})

	// Assert
	require.Error(t, err)
	var validation *catalog.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestSaveOrderCommand_RejectsNonPositiveRequirement(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := helpers.SeedCatalog(t, db)
	handler := commands.NewSaveOrderHandler(repo)

	// Act
	_, err := handler.Handle(context.Background(), &commands.SaveOrderCommand{
		Order: &catalog.Order{
			ID:   "bad",
			Type: catalog.OrderTypeBuilding,
			Resources: []catalog.ResourceRequirement{
				{ResourceID: "coal", Amount: 0},
			},
		},
	})

	// Assert
	require.Error(t, err)
	var validation *catalog.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestRecordDeliveryCommand_ClampsAtRequirement(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := helpers.SeedCatalog(t, db)
	handler := commands.NewRecordDeliveryHandler(repo)

	// Act - deliver more than the bridge asks for
	result, err := handler.Handle(context.Background(), &commands.RecordDeliveryCommand{
		OrderID:    "bridge",
		ResourceID: "coal",
		Amount:     100,
	})

	// Assert
	require.NoError(t, err)
	response := result.(*commands.RecordDeliveryResponse)
	assert.Equal(t, 30, response.Delivered)
	assert.Equal(t, 0, response.Remaining)
	assert.True(t, response.Satisfied)

	// Progress persists with the order
	catalogs, err := repo.LoadCatalogs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, catalogs.OrderByID("bridge").RequirementFor("coal").Delivered)
}

func TestRecordDeliveryCommand_UnknownOrderFails(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := helpers.SeedCatalog(t, db)
	handler := commands.NewRecordDeliveryHandler(repo)

	// Act
	_, err := handler.Handle(context.Background(), &commands.RecordDeliveryCommand{
		OrderID:    "ghost",
		ResourceID: "coal",
		Amount:     1,
	})

	// Assert
	require.Error(t, err)
	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteOrderCommand_RemovesOrder(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := helpers.SeedCatalog(t, db)
	handler := commands.NewDeleteOrderHandler(repo)

	// Act
	_, err := handler.Handle(context.Background(), &commands.DeleteOrderCommand{OrderID: "bridge"})

	// Assert
	require.NoError(t, err)
	catalogs, err := repo.LoadCatalogs(context.Background())
	require.NoError(t, err)
	assert.Nil(t, catalogs.OrderByID("bridge"))
}
