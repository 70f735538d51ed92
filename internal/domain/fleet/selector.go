package fleet

import (
	"sort"

	"github.com/jmolina/railplan-go/internal/domain/catalog"
)

// Selector implements train selection for filling a capacity need.
type Selector struct{}

// NewSelector creates a new fleet selector
func NewSelector() *Selector {
	return &Selector{}
}

// SelectTrains picks a near-minimal set of trains whose combined capacity
// covers the requested amount.
//
// Business Rules:
//  1. Trains in the busy set (already claimed by a step in the current level)
//     are excluded outright.
//  2. Remaining trains are filtered by the allowed classes and countries;
//     an empty allow-list means no restriction.
//  3. Candidates are sorted by ascending distance of their capacity from the
//     requested amount; exact ties keep catalog order (stable sort).
//  4. Trains are accumulated greedily from that order until the summed
//     capacity reaches the amount or candidates run out.
//
// The result may under-deliver when eligible candidates are exhausted; that
// is a normal outcome, not an error, and callers must check sufficiency.
// A non-positive amount selects nothing.
//
// Selection is pure: reservation only happens when the caller writes the
// chosen train's ID into a new step.
func (s *Selector) SelectTrains(
	busy map[string]bool,
	amount int,
	trains []*catalog.Train,
	classes []catalog.TrainClass,
	countries []catalog.Country,
) []*catalog.Train {
	if amount <= 0 {
		return []*catalog.Train{}
	}

	candidates := make([]*catalog.Train, 0, len(trains))
	for _, train := range trains {
		if busy[train.ID] {
			continue
		}
		if !train.MatchesClass(classes) || !train.MatchesCountry(countries) {
			continue
		}
		candidates = append(candidates, train)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return capacityDistance(candidates[i], amount) < capacityDistance(candidates[j], amount)
	})

	selected := make([]*catalog.Train, 0, len(candidates))
	accumulated := 0
	for _, train := range candidates {
		if accumulated >= amount {
			break
		}
		selected = append(selected, train)
		accumulated += train.Capacity
	}

	return selected
}

func capacityDistance(train *catalog.Train, amount int) int {
	distance := train.Capacity - amount
	if distance < 0 {
		return -distance
	}
	return distance
}
