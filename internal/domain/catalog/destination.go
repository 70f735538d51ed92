package catalog

// Destination is a gatherable resource location. TravelTime becomes the
// duration of any step gathering here; Classes and Country restrict which
// trains may be assigned.
type Destination struct {
	ID         string
	Name       string
	ResourceID string
	TravelTime int // seconds
	Classes    []TrainClass
	Country    Country
}

// Countries returns the destination's country as an allow-list for train
// selection. A destination without a country does not restrict selection.
func (d *Destination) Countries() []Country {
	if d.Country == "" {
		return nil
	}
	return []Country{d.Country}
}
