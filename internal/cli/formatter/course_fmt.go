package formatter

import (
	"strings"

	"github.com/alexanderramin/timetable/internal/domain"
)

// FormatCourseList renders submitted courses in insertion order, two lines
// per course: the name, then code, teacher, and weekly hours.
// An empty list renders emptyMsg.
func FormatCourseList(entries []domain.CourseEntry, emptyMsg string) string {
	if len(entries) == 0 {
		return Dim(emptyMsg)
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(Bold(e.CourseName))
		b.WriteString("\n")
		b.WriteString(Dim(e.Summary()))
	}
	return b.String()
}
