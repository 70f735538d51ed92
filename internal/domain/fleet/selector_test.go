package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
	"github.com/jmolina/railplan-go/internal/domain/fleet"
)

func testTrains() []*catalog.Train {
	return []*catalog.Train{
		{ID: "t1", Name: "Black Hawk", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"},
		{ID: "t2", Name: "Iron Duke", Capacity: 20, Class: catalog.TrainClassCommon, Country: "BRITAIN"},
		{ID: "t3", Name: "Blue Comet", Capacity: 30, Class: catalog.TrainClassRare, Country: "BRITAIN"},
		{ID: "t4", Name: "Prussian P8", Capacity: 50, Class: catalog.TrainClassEpic, Country: "GERMANY"},
	}
}

func TestSelector_PicksClosestCapacityFirst(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()

	// Act
	selected := selector.SelectTrains(map[string]bool{}, 25, testTrains(), nil, nil)

	// Assert - t1, t2 and t3 are all capacity-distance 5 from 25, so the
	// stable sort keeps catalog order: t1 is taken first, t2 tops it up.
	assert.Len(t, selected, 2)
	assert.Equal(t, "t1", selected[0].ID)
	assert.Equal(t, "t2", selected[1].ID)
}

func TestSelector_ExcludesBusyTrains(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()
	busy := map[string]bool{"t1": true, "t2": true}

	// Act
	selected := selector.SelectTrains(busy, 25, testTrains(), nil, nil)

	// Assert
	assert.NotEmpty(t, selected)
	for _, train := range selected {
		assert.NotContains(t, []string{"t1", "t2"}, train.ID)
	}
	assert.Equal(t, "t3", selected[0].ID)
}

func TestSelector_FiltersByClassAndCountry(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()

	// Act
	selected := selector.SelectTrains(
		map[string]bool{},
		40,
		testTrains(),
		[]catalog.TrainClass{catalog.TrainClassEpic},
		[]catalog.Country{"GERMANY"},
	)

	// Assert
	assert.Len(t, selected, 1)
	assert.Equal(t, "t4", selected[0].ID)
}

func TestSelector_UnderDeliversOnlyWhenExhausted(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()

	// Act - ask for more than the whole fleet carries
	selected := selector.SelectTrains(map[string]bool{}, 500, testTrains(), nil, nil)

	// Assert - every eligible train is in the result
	assert.Len(t, selected, 4)
	total := 0
	for _, train := range selected {
		total += train.Capacity
	}
	assert.Equal(t, 120, total)
}

func TestSelector_AccumulatedCapacityCoversAmount(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()

	for _, amount := range []int{1, 20, 21, 45, 70, 120} {
		// Act
		selected := selector.SelectTrains(map[string]bool{}, amount, testTrains(), nil, nil)

		// Assert - sufficiency or exhaustion
		total := 0
		for _, train := range selected {
			total += train.Capacity
		}
		if total < amount {
			assert.Len(t, selected, 4, "under-delivery must mean exhaustion (amount %d)", amount)
		} else {
			assert.GreaterOrEqual(t, total, amount)
		}
	}
}

func TestSelector_NoEligibleTrains(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()

	// Act
	selected := selector.SelectTrains(
		map[string]bool{},
		10,
		testTrains(),
		[]catalog.TrainClass{catalog.TrainClassLegendary},
		nil,
	)

	// Assert
	assert.Empty(t, selected)
}

func TestSelector_NonPositiveAmount(t *testing.T) {
	// Arrange
	selector := fleet.NewSelector()

	// Act & Assert
	assert.Empty(t, selector.SelectTrains(map[string]bool{}, 0, testTrains(), nil, nil))
	assert.Empty(t, selector.SelectTrains(map[string]bool{}, -5, testTrains(), nil, nil))
}
