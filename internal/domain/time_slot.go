package domain

import (
	"fmt"
	"slices"
)

const slotsPerDay = 48

var timeSlots = buildTimeSlots()

// Half-hour start times "00:00", "00:30" ... "23:30".
func buildTimeSlots() []string {
	out := make([]string, 0, slotsPerDay)
	for i := 0; i < slotsPerDay; i++ {
		m := "00"
		if i%2 == 1 {
			m = "30"
		}
		out = append(out, fmt.Sprintf("%02d:%s", i/2, m))
	}
	return out
}

func TimeSlots() []string {
	return slices.Clone(timeSlots)
}
