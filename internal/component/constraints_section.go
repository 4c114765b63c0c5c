package component

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timetable/internal/domain"
	"github.com/alexanderramin/timetable/internal/notify"
	"github.com/alexanderramin/timetable/internal/schema"
)

// ConstraintsSection owns the unavailable-slot selection and the
// back-to-back preference shown on the settings page.
type ConstraintsSection struct {
	selection       domain.SlotSelection
	avoidBackToBack bool

	open  bool
	query string

	opts options
}

// NewConstraintsSection returns a section with no slots selected and the
// back-to-back preference off.
func NewConstraintsSection(opts ...Option) *ConstraintsSection {
	return &ConstraintsSection{opts: buildOptions(opts)}
}

// Toggle selects an unselected slot if fewer than domain.MaxUnavailableSlots
// are selected, and deselects a selected one. It reports whether the
// selection changed.
func (s *ConstraintsSection) Toggle(value string) bool {
	start := time.Now()
	changed := s.selection.Toggle(value)
	observe(s.opts.observer, "constraints.toggle", start, nil, map[string]any{
		"slot":    value,
		"changed": changed,
		"count":   s.selection.Len(),
	})
	return changed
}

// RemoveTag deletes one selected slot, as clicking its tag does.
func (s *ConstraintsSection) RemoveTag(value string) bool {
	return s.selection.Remove(value)
}

// Selected reports whether value is currently selected.
func (s *ConstraintsSection) Selected(value string) bool {
	return s.selection.Contains(value)
}

// SelectedSlots returns the selected catalog entries in selection order.
func (s *ConstraintsSection) SelectedSlots() []domain.TimeSlot {
	return s.selection.Slots()
}

// SetAvoidBackToBack sets the back-to-back preference.
func (s *ConstraintsSection) SetAvoidBackToBack(v bool) { s.avoidBackToBack = v }

// AvoidBackToBack returns the back-to-back preference.
func (s *ConstraintsSection) AvoidBackToBack() bool { return s.avoidBackToBack }

// OpenPicker shows the searchable slot picker.
func (s *ConstraintsSection) OpenPicker() { s.open = true }

// ClosePicker hides the slot picker and clears its search.
func (s *ConstraintsSection) ClosePicker() {
	s.open = false
	s.query = ""
}

// PickerOpen reports whether the slot picker is shown.
func (s *ConstraintsSection) PickerOpen() bool { return s.open }

// SetQuery updates the picker's search text.
func (s *ConstraintsSection) SetQuery(q string) { s.query = q }

// Query returns the picker's search text.
func (s *ConstraintsSection) Query() string { return s.query }

// Options returns the catalog entries matching the current search.
func (s *ConstraintsSection) Options() []domain.TimeSlot {
	return domain.SearchSlots(s.query)
}

// TriggerLabel is the text of the picker's trigger button.
func (s *ConstraintsSection) TriggerLabel() string {
	n := s.selection.Len()
	switch n {
	case 0:
		return "Select unavailable time slots"
	case 1:
		return "1 time slot selected"
	default:
		return fmt.Sprintf("%d time slots selected", n)
	}
}

// Constraints returns the current values.
func (s *ConstraintsSection) Constraints() domain.Constraints {
	return domain.Constraints{
		UnavailableSlots: s.selection.Values(),
		AvoidBackToBack:  s.avoidBackToBack,
	}
}

// Submit validates the current values and reports the outcome as a
// notification. Nothing is stored beyond the section's own state.
func (s *ConstraintsSection) Submit() (domain.Constraints, error) {
	start := time.Now()
	c, err := schema.ValidateConstraints(s.Constraints())
	if err != nil {
		s.opts.notifier.Notify(notify.Notification{
			Title:       "Validation Error",
			Description: "Please check your selections and try again.",
			Severity:    notify.SeverityDestructive,
		})
		observe(s.opts.observer, "constraints.submit", start, err, nil)
		return domain.Constraints{}, err
	}

	s.opts.notifier.Notify(notify.Notification{
		Title:       "Constraints Updated",
		Description: fmt.Sprintf("Updated %d unavailable time slots and back-to-back preference (%s).",
			len(c.UnavailableSlots), onOff(c.AvoidBackToBack)),
	})
	observe(s.opts.observer, "constraints.submit", start, nil, map[string]any{
		"unavailable_slots":  len(c.UnavailableSlots),
		"avoid_back_to_back": c.AvoidBackToBack,
	})
	return c, nil
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
