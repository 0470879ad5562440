package domain

import "slices"

// A named building on the site that can be the origin or destination of a transport.
type Facility = string

var facilities = []Facility{
	"Bau 01-01", "Bau 01-02", "Bau 02-01", "Bau 02-02", "Bau 3", "Bau 4",
	"Bau 5", "Bau 7", "Bau 20", "Bau 22", "Bau 24-1", "Bau 24-2",
	"Bau 25-1", "Bau 25-2", "Bau 26", "Bau 28", "Bau 30", "Bau 40",
	"Bau 70", "Bau 78", "Bau 90", "Bau 91", "Bau 93",
}

// Facilities returns the selectable facilities in display order.
func Facilities() []Facility {
	return slices.Clone(facilities)
}

func IsFacility(name string) bool {
	return slices.Contains(facilities, name)
}
