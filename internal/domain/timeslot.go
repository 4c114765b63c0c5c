package domain

import (
	"fmt"
	"strings"
)

// Weekdays lists the days covered by the slot catalog, in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

const (
	// FirstSlotHour is the start hour of the earliest slot of each day.
	FirstSlotHour = 8
	// LastSlotHour is the end hour of the latest slot of each day.
	LastSlotHour = 18
)

// TimeSlot is one hour-long interval on one weekday.
type TimeSlot struct {
	Value string // "monday-8"
	Label string // "Monday 08:00 - 09:00"
	Day   string
	Time  string // "08:00"
	Hour  int
}

var (
	catalog      = generateTimeSlots()
	catalogIndex = indexTimeSlots(catalog)
)

func generateTimeSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(Weekdays)*(LastSlotHour-FirstSlotHour))
	for _, day := range Weekdays {
		for hour := FirstSlotHour; hour < LastSlotHour; hour++ {
			start := fmt.Sprintf("%02d:00", hour)
			end := fmt.Sprintf("%02d:00", hour+1)
			slots = append(slots, TimeSlot{
				Value: fmt.Sprintf("%s-%d", strings.ToLower(day), hour),
				Label: fmt.Sprintf("%s %s - %s", day, start, end),
				Day:   day,
				Time:  start,
				Hour:  hour,
			})
		}
	}
	return slots
}

func indexTimeSlots(slots []TimeSlot) map[string]int {
	idx := make(map[string]int, len(slots))
	for i, s := range slots {
		idx[s.Value] = i
	}
	return idx
}

// Catalog returns a copy of the weekly slot catalog (7 days x 10 hours).
func Catalog() []TimeSlot {
	out := make([]TimeSlot, len(catalog))
	copy(out, catalog)
	return out
}

// LookupSlot returns the catalog entry for value.
func LookupSlot(value string) (TimeSlot, bool) {
	i, ok := catalogIndex[value]
	if !ok {
		return TimeSlot{}, false
	}
	return catalog[i], true
}

// IsCatalogSlot reports whether value identifies a catalog entry.
func IsCatalogSlot(value string) bool {
	_, ok := catalogIndex[value]
	return ok
}

// SearchSlots returns the catalog entries whose label contains query,
// ignoring case. A blank query matches every slot.
func SearchSlots(query string) []TimeSlot {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Catalog()
	}
	var out []TimeSlot
	for _, s := range catalog {
		if strings.Contains(strings.ToLower(s.Label), q) {
			out = append(out, s)
		}
	}
	return out
}

// SlotsForDay returns the catalog entries of one weekday (case-insensitive).
func SlotsForDay(day string) []TimeSlot {
	var out []TimeSlot
	for _, s := range catalog {
		if strings.EqualFold(s.Day, day) {
			out = append(out, s)
		}
	}
	return out
}
