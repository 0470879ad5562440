package domain

import "strconv"

// Precomputed travel time between two facilities. Entries carry no direction:
// the same minutes apply to From->To and To->From.
// Minutes is nil when the backend has no value for the pair.
type RouteDistance struct {
	From    string
	To      string
	Minutes *float64
}

// TravelMinutes returns a pointer to m for building entries.
func TravelMinutes(m float64) *float64 {
	return &m
}

// Connects reports whether the entry covers the unordered pair {a, b}.
func (r RouteDistance) Connects(a, b string) bool {
	return (r.From == a && r.To == b) || (r.From == b && r.To == a)
}

// FormatMinutes renders minutes in shortest form: 15, 12.5.
func FormatMinutes(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
