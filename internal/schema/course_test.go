package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timetable/internal/domain"
)

func validCourse() domain.Course {
	return domain.Course{
		CourseName:  "Intro to CS",
		CourseCode:  "CS-101",
		TeacherName: "Dr. Sarah Johnson",
		WeeklyHours: 3,
	}
}

func TestValidateCourse_Valid(t *testing.T) {
	cases := map[string]func(*domain.Course){
		"sample":            func(*domain.Course) {},
		"min hours":         func(c *domain.Course) { c.WeeklyHours = 1 },
		"max hours":         func(c *domain.Course) { c.WeeklyHours = 40 },
		"code with space":   func(c *domain.Course) { c.CourseCode = "CS 101" },
		"code of 20 chars":  func(c *domain.Course) { c.CourseCode = strings.Repeat("A", 20) },
		"name of 100 chars": func(c *domain.Course) { c.CourseName = strings.Repeat("n", 100) },
		"single char names": func(c *domain.Course) { c.CourseName, c.TeacherName = "x", "y" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validCourse()
			mutate(&c)
			got, err := ValidateCourse(c)
			require.NoError(t, err)
			assert.Equal(t, c, got)
		})
	}
}

func TestValidateCourse_TrimsTextFields(t *testing.T) {
	c := validCourse()
	c.CourseName = "  Intro to CS  "
	c.CourseCode = " CS-101\t"

	got, err := ValidateCourse(c)
	require.NoError(t, err)
	assert.Equal(t, "Intro to CS", got.CourseName)
	assert.Equal(t, "CS-101", got.CourseCode)
}

func TestValidateCourse_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*domain.Course)
		field   string
		message string
	}{
		{"empty name", func(c *domain.Course) { c.CourseName = "" }, FieldCourseName, "Course name is required"},
		{"blank name", func(c *domain.Course) { c.CourseName = "   " }, FieldCourseName, "Course name is required"},
		{"long name", func(c *domain.Course) { c.CourseName = strings.Repeat("n", 101) }, FieldCourseName, "Course name must be less than 100 characters"},
		{"empty code", func(c *domain.Course) { c.CourseCode = "" }, FieldCourseCode, "Course code is required"},
		{"long code", func(c *domain.Course) { c.CourseCode = strings.Repeat("A", 21) }, FieldCourseCode, "Course code must be less than 20 characters"},
		{"bad code", func(c *domain.Course) { c.CourseCode = "CS#101" }, FieldCourseCode, "Course code can only contain letters, numbers, spaces, and hyphens"},
		{"empty teacher", func(c *domain.Course) { c.TeacherName = "" }, FieldTeacherName, "Teacher name is required"},
		{"long teacher", func(c *domain.Course) { c.TeacherName = strings.Repeat("t", 101) }, FieldTeacherName, "Teacher name must be less than 100 characters"},
		{"zero hours", func(c *domain.Course) { c.WeeklyHours = 0 }, FieldWeeklyHours, "Weekly hours must be at least 1"},
		{"41 hours", func(c *domain.Course) { c.WeeklyHours = 41 }, FieldWeeklyHours, "Weekly hours cannot exceed 40"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCourse()
			tc.mutate(&c)

			_, err := ValidateCourse(c)
			require.Error(t, err)
			verr, ok := AsValidationError(err)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
			assert.Equal(t, tc.message, verr.Field(tc.field))
		})
	}
}

func TestValidateCourse_ReportsEveryBadField(t *testing.T) {
	_, err := ValidateCourse(domain.Course{WeeklyHours: 0})
	verr, ok := AsValidationError(err)
	require.True(t, ok)

	msgs := verr.Messages()
	assert.Len(t, msgs, 4)
	assert.Equal(t, "Course name is required", msgs[FieldCourseName])
	assert.Equal(t, "Weekly hours must be at least 1", msgs[FieldWeeklyHours])
	assert.Contains(t, verr.Error(), "Teacher name is required")
}

func TestParseWeeklyHours(t *testing.T) {
	n, err := ParseWeeklyHours(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	for _, bad := range []string{"", "2.5", "three", "4h"} {
		_, err := ParseWeeklyHours(bad)
		verr, ok := AsValidationError(err)
		require.True(t, ok, "input %q", bad)
		assert.Equal(t, "Weekly hours must be a whole number", verr.Field(FieldWeeklyHours))
	}
}

func TestValidateCourseField(t *testing.T) {
	assert.NoError(t, ValidateCourseField(FieldCourseName, "Algebra"))
	assert.NoError(t, ValidateCourseField(FieldCourseCode, "MATH 2"))
	assert.NoError(t, ValidateCourseField(FieldWeeklyHours, "40"))

	err := ValidateCourseField(FieldCourseCode, "CS#101")
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Course code can only contain letters, numbers, spaces, and hyphens", verr.Field(FieldCourseCode))

	err = ValidateCourseField(FieldWeeklyHours, "41")
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Weekly hours cannot exceed 40", verr.Field(FieldWeeklyHours))

	err = ValidateCourseField(FieldTeacherName, "  ")
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Teacher name is required", verr.Field(FieldTeacherName))
}

func TestValidateCourseField_TextEdges(t *testing.T) {
	// Limits count characters, not bytes.
	assert.NoError(t, ValidateCourseField(FieldCourseName, strings.Repeat("é", 100)))
	assert.Error(t, ValidateCourseField(FieldCourseName, strings.Repeat("é", 101)))
	assert.NoError(t, ValidateCourseField(FieldCourseCode, "CS\t101"))

	err := ValidateCourseField(FieldCourseCode, "CS\u00a0101")
	verr, ok := AsValidationError(err)
	require.True(t, ok, "a no-break space is not a plain space")
	assert.Equal(t, "Course code can only contain letters, numbers, spaces, and hyphens", verr.Field(FieldCourseCode))

	err = ValidateCourseField(FieldWeeklyHours, "2.5")
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "Weekly hours must be a whole number", verr.Field(FieldWeeklyHours))
}

func TestValidateCourseField_UnknownField(t *testing.T) {
	err := ValidateCourseField("room", "B12")
	require.Error(t, err)
	_, ok := AsValidationError(err)
	assert.False(t, ok)
}
