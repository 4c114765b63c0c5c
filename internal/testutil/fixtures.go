// Package testutil builds domain fixtures for tests across packages.
package testutil

import (
	"strconv"

	"github.com/alexanderramin/timetable/internal/domain"
)

// CourseOption overrides one field of a test course.
type CourseOption func(*domain.Course)

func WithCourseName(name string) CourseOption {
	return func(c *domain.Course) {
		c.CourseName = name
	}
}

func WithCourseCode(code string) CourseOption {
	return func(c *domain.Course) {
		c.CourseCode = code
	}
}

func WithTeacherName(name string) CourseOption {
	return func(c *domain.Course) {
		c.TeacherName = name
	}
}

func WithWeeklyHours(h int) CourseOption {
	return func(c *domain.Course) {
		c.WeeklyHours = h
	}
}

// NewTestCourse returns a valid course ("Intro to CS", CS-101, Dr. Smith,
// 3 hours) with opts applied.
func NewTestCourse(opts ...CourseOption) domain.Course {
	c := domain.Course{
		CourseName:  "Intro to CS",
		CourseCode:  "CS-101",
		TeacherName: "Dr. Smith",
		WeeklyHours: 3,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// CourseArgs returns the "course check" flags that describe c.
func CourseArgs(c domain.Course) []string {
	return []string{
		"--name", c.CourseName,
		"--code", c.CourseCode,
		"--teacher", c.TeacherName,
		"--hours", strconv.Itoa(c.WeeklyHours),
	}
}

// SlotValues returns the first n catalog values in catalog order
// (monday-8, monday-9, ...).
func SlotValues(n int) []string {
	catalog := domain.Catalog()
	n = min(n, len(catalog))
	out := make([]string, 0, n)
	for _, s := range catalog[:n] {
		out = append(out, s.Value)
	}
	return out
}

// NewTestConstraints returns constraints holding the first n catalog slots.
func NewTestConstraints(n int, avoidBackToBack bool) domain.Constraints {
	return domain.Constraints{
		UnavailableSlots: SlotValues(n),
		AvoidBackToBack:  avoidBackToBack,
	}
}
