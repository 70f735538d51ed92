package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

func TestCatalogs_RecipeForOutput_FirstMatchWins(t *testing.T) {
	// Arrange
	c := catalog.NewCatalogs()
	c.Factories["smeltery"] = &catalog.Factory{
		ID: "smeltery",
		Recipes: []catalog.Recipe{
			{ResourceID: "steel", OutputAmount: 40, TimeRequired: 60},
		},
	}

	// Act & Assert
	recipe := c.RecipeForOutput("steel")
	require.NotNil(t, recipe)
	assert.Equal(t, 40, recipe.OutputAmount)
	assert.Nil(t, c.RecipeForOutput("gold"))
	assert.Equal(t, "smeltery", c.FactoryForOutput("steel").ID)
}

func TestCatalogs_RecipeForOutput_ScansFactoriesInIDOrder(t *testing.T) {
	// Arrange - two factories both claim the same output; the one with the
	// lexicographically smaller ID must win every time
	c := catalog.NewCatalogs()
	c.Factories["zinc-works"] = &catalog.Factory{
		ID: "zinc-works",
		Recipes: []catalog.Recipe{
			{ResourceID: "steel", OutputAmount: 10, TimeRequired: 90},
		},
	}
	c.Factories["smeltery"] = &catalog.Factory{
		ID: "smeltery",
		Recipes: []catalog.Recipe{
			{ResourceID: "steel", OutputAmount: 40, TimeRequired: 60},
		},
	}

	// Act & Assert
	for i := 0; i < 20; i++ {
		recipe := c.RecipeForOutput("steel")
		require.NotNil(t, recipe)
		assert.Equal(t, 40, recipe.OutputAmount)
		assert.Equal(t, "smeltery", c.FactoryForOutput("steel").ID)
	}
}

func TestCatalogs_TrainListIsOrderedByID(t *testing.T) {
	c := catalog.NewCatalogs()
	c.Trains["t3"] = &catalog.Train{ID: "t3"}
	c.Trains["t1"] = &catalog.Train{ID: "t1"}
	c.Trains["t2"] = &catalog.Train{ID: "t2"}

	trains := c.TrainList()

	require.Len(t, trains, 3)
	assert.Equal(t, "t1", trains[0].ID)
	assert.Equal(t, "t2", trains[1].ID)
	assert.Equal(t, "t3", trains[2].ID)
}

func TestTrain_EligibilityFilters(t *testing.T) {
	train := &catalog.Train{ID: "t1", Class: catalog.TrainClassRare, Country: "BRITAIN"}

	assert.True(t, train.MatchesClass(nil), "empty allow-list matches all")
	assert.True(t, train.MatchesClass([]catalog.TrainClass{catalog.TrainClassRare}))
	assert.False(t, train.MatchesClass([]catalog.TrainClass{catalog.TrainClassEpic}))

	assert.True(t, train.MatchesCountry(nil))
	assert.False(t, train.MatchesCountry([]catalog.Country{"GERMANY"}))
}

func TestOrder_RequirementTracking(t *testing.T) {
	order := &catalog.Order{
		ID:   "bridge",
		Type: catalog.OrderTypeBuilding,
		Resources: []catalog.ResourceRequirement{
			{ResourceID: "coal", Amount: 30, Delivered: 30},
			{ResourceID: "steel", Amount: 80, Delivered: 20},
		},
	}

	require.NotNil(t, order.RequirementFor("steel"))
	assert.Equal(t, 60, order.RequirementFor("steel").Remaining())
	assert.True(t, order.RequirementFor("coal").IsSatisfied())
	assert.False(t, order.IsComplete())
	assert.Nil(t, order.RequirementFor("iron"))
}

func TestParseTrainClass(t *testing.T) {
	assert.Equal(t, catalog.TrainClassEpic, catalog.ParseTrainClass("EPIC"))
	assert.Equal(t, catalog.TrainClassCommon, catalog.ParseTrainClass("bogus"))
	assert.Greater(t, catalog.TrainClassLegendary.Order(), catalog.TrainClassEpic.Order())
}
