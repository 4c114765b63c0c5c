package domain

// MaxUnavailableSlots caps how many slots a user may mark unavailable.
const MaxUnavailableSlots = 20

// Constraints is a user's declared availability.
type Constraints struct {
	UnavailableSlots []string `json:"unavailableSlots"`
	AvoidBackToBack  bool     `json:"avoidBackToBack"`
}

// SlotSelection is the ordered set of slot values chosen as unavailable.
// The zero value is an empty selection.
type SlotSelection struct {
	values []string
}

// NewSlotSelection builds a selection from values, applying Toggle to each
// in turn so the cap and catalog membership hold.
func NewSlotSelection(values ...string) *SlotSelection {
	s := &SlotSelection{}
	for _, v := range values {
		s.Toggle(v)
	}
	return s
}

// Toggle removes value when it is selected; otherwise it appends value if
// the value is a catalog slot and the selection is below the cap.
// Removal is never subject to the cap. It reports whether the selection changed.
func (s *SlotSelection) Toggle(value string) bool {
	if s.Contains(value) {
		s.Remove(value)
		return true
	}
	if s.Full() || !IsCatalogSlot(value) {
		return false
	}
	s.values = append(s.values, value)
	return true
}

// Remove deletes value from the selection. It reports whether value was present.
func (s *SlotSelection) Remove(value string) bool {
	for i, v := range s.values {
		if v == value {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether value is selected.
func (s *SlotSelection) Contains(value string) bool {
	for _, v := range s.values {
		if v == value {
			return true
		}
	}
	return false
}

// Len returns the number of selected slots.
func (s *SlotSelection) Len() int {
	return len(s.values)
}

// Full reports whether the selection has reached MaxUnavailableSlots.
func (s *SlotSelection) Full() bool {
	return len(s.values) >= MaxUnavailableSlots
}

// Values returns a copy of the selected values in selection order.
func (s *SlotSelection) Values() []string {
	out := make([]string, len(s.values))
	copy(out, s.values)
	return out
}

// Slots returns the catalog entries of the selection in selection order.
// Values that are not catalog slots are skipped.
func (s *SlotSelection) Slots() []TimeSlot {
	out := make([]TimeSlot, 0, len(s.values))
	for _, v := range s.values {
		if slot, ok := LookupSlot(v); ok {
			out = append(out, slot)
		}
	}
	return out
}
