package catalog

// TrainClass represents the rarity tier of a train and encapsulates
// eligibility rules for destination assignment.
type TrainClass string

const (
	TrainClassCommon    TrainClass = "COMMON"
	TrainClassRare      TrainClass = "RARE"
	TrainClassEpic      TrainClass = "EPIC"
	TrainClassLegendary TrainClass = "LEGENDARY"
)

// Order returns numeric ordering for comparison. Higher order = rarer class.
func (c TrainClass) Order() int {
	switch c {
	case TrainClassCommon:
		return 1
	case TrainClassRare:
		return 2
	case TrainClassEpic:
		return 3
	case TrainClassLegendary:
		return 4
	default:
		return 0
	}
}

// ParseTrainClass converts a string to a TrainClass, defaulting to COMMON.
func ParseTrainClass(s string) TrainClass {
	switch s {
	case "COMMON":
		return TrainClassCommon
	case "RARE":
		return TrainClassRare
	case "EPIC":
		return TrainClassEpic
	case "LEGENDARY":
		return TrainClassLegendary
	default:
		return TrainClassCommon
	}
}

// Country identifies the region a train or destination belongs to.
// The set is open-ended: catalogs define their own regions.
type Country string

// Train is a capacity-bounded transport vehicle. A train may be referenced by
// at most one destination or delivery step within a single level; the same
// train reappearing in different levels models sequential reuse over time.
type Train struct {
	ID       string
	Name     string
	Capacity int
	Class    TrainClass
	Engine   string
	Country  Country
}

// MatchesClass returns true if the train's class is in the allowed set.
// An empty allowed set matches every class.
func (t *Train) MatchesClass(allowed []TrainClass) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, c := range allowed {
		if t.Class == c {
			return true
		}
	}
	return false
}

// MatchesCountry returns true if the train's country is in the allowed set.
// An empty allowed set matches every country.
func (t *Train) MatchesCountry(allowed []Country) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, c := range allowed {
		if t.Country == c {
			return true
		}
	}
	return false
}
