package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Course is a scheduled academic offering as entered in the add-course form.
type Course struct {
	CourseName  string `json:"courseName"`
	CourseCode  string `json:"courseCode"`
	TeacherName string `json:"teacherName"`
	WeeklyHours int    `json:"weeklyHours"`
}

// DefaultWeeklyHours is the weekly hour load a blank course form starts with.
const DefaultWeeklyHours = 1

// DefaultCourse returns the values a fresh course form starts with.
func DefaultCourse() Course {
	return Course{WeeklyHours: DefaultWeeklyHours}
}

// Summary returns the secondary line shown under the course name in a list,
// e.g. "CS-101 — Dr. Sarah Johnson (3 hrs/week)".
func (c Course) Summary() string {
	return fmt.Sprintf("%s — %s (%d hrs/week)", c.CourseCode, c.TeacherName, c.WeeklyHours)
}

// CourseEntry is one submitted course held in a CourseList.
type CourseEntry struct {
	ID string
	Course
}

// CourseList is an ordered, session-local sequence of submitted courses.
// Entries are never deduplicated or sorted; insertion order is display order.
type CourseList struct {
	entries []CourseEntry
}

// Append adds c to the end of the list and returns the stored entry.
func (l *CourseList) Append(c Course) CourseEntry {
	e := CourseEntry{ID: uuid.New().String(), Course: c}
	l.entries = append(l.entries, e)
	return e
}

// Len returns the number of entries.
func (l *CourseList) Len() int {
	return len(l.entries)
}

// Empty reports whether no course has been added yet.
func (l *CourseList) Empty() bool {
	return len(l.entries) == 0
}

// Entries returns a copy of the list in insertion order.
func (l *CourseList) Entries() []CourseEntry {
	out := make([]CourseEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
