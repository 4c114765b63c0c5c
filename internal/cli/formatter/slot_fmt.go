package formatter

import (
	"strings"

	"github.com/alexanderramin/timetable/internal/domain"
)

// FormatSlotTable renders catalog entries as an aligned table.
func FormatSlotTable(slots []domain.TimeSlot) string {
	if len(slots) == 0 {
		return Dim("No time slots found.")
	}
	rows := make([][]string, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, []string{s.Value, s.Day, s.Time, s.Label})
	}
	return RenderTable([]string{"VALUE", "DAY", "START", "LABEL"}, rows)
}

// FormatSlotTags renders selected slots as removable tags. The tag at
// focused (when >= 0) is highlighted.
func FormatSlotTags(slots []domain.TimeSlot, focused int) string {
	tags := make([]string, 0, len(slots))
	for i, s := range slots {
		tag := "[" + s.Label + " ×]"
		if i == focused {
			tags = append(tags, StyleHeader.Render(tag))
			continue
		}
		tags = append(tags, StyleBlue.Render(tag))
	}
	return strings.Join(tags, " ")
}
