package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstSlots returns the first n catalog values.
func firstSlots(n int) []string {
	out := make([]string, 0, n)
	for _, s := range Catalog()[:n] {
		out = append(out, s.Value)
	}
	return out
}

func TestSlotSelection_ToggleTwiceIsIdentity(t *testing.T) {
	for _, start := range [][]string{nil, {"monday-8"}, firstSlots(20), firstSlots(5)} {
		s := NewSlotSelection(start...)
		before := s.Values()
		for _, slot := range Catalog() {
			s.Toggle(slot.Value)
			s.Toggle(slot.Value)
			assert.ElementsMatch(t, before, s.Values(), "toggling %s twice", slot.Value)
		}
	}
}

func TestSlotSelection_CapRefusesTwentyFirst(t *testing.T) {
	s := NewSlotSelection(firstSlots(20)...)
	require.Equal(t, 20, s.Len())
	require.True(t, s.Full())

	changed := s.Toggle("sunday-17")
	assert.False(t, changed)
	assert.Equal(t, 20, s.Len())
	assert.False(t, s.Contains("sunday-17"))
}

func TestSlotSelection_RemoveAtCapThenAdd(t *testing.T) {
	s := NewSlotSelection(firstSlots(20)...)

	assert.True(t, s.Remove("monday-8"))
	assert.True(t, s.Toggle("sunday-17"))

	assert.Equal(t, 20, s.Len())
	assert.False(t, s.Contains("monday-8"))
	assert.True(t, s.Contains("sunday-17"))
}

func TestSlotSelection_DeselectAtCapIsAllowed(t *testing.T) {
	s := NewSlotSelection(firstSlots(20)...)
	assert.True(t, s.Toggle("monday-9"))
	assert.Equal(t, 19, s.Len())
}

func TestSlotSelection_RejectsUnknownSlot(t *testing.T) {
	s := &SlotSelection{}
	assert.False(t, s.Toggle("monday-20"))
	assert.Equal(t, 0, s.Len())
}

func TestSlotSelection_RemoveAbsentIsNoop(t *testing.T) {
	s := NewSlotSelection("monday-8")
	assert.False(t, s.Remove("monday-9"))
	assert.Equal(t, []string{"monday-8"}, s.Values())
}

func TestSlotSelection_SlotsInSelectionOrder(t *testing.T) {
	s := NewSlotSelection("friday-10", "monday-8")
	slots := s.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "Friday 10:00 - 11:00", slots[0].Label)
	assert.Equal(t, "Monday 08:00 - 09:00", slots[1].Label)
}
