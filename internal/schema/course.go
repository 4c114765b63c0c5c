package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/timetable/internal/domain"
)

// Course field names, as reported in FieldError.Field.
const (
	FieldCourseName  = "courseName"
	FieldCourseCode  = "courseCode"
	FieldTeacherName = "teacherName"
	FieldWeeklyHours = "weeklyHours"
)

// courseRules maps domain.Course fields to their validation tags.
// Length limits count runes.
var courseRules = map[string]string{
	"CourseName":  "required,max=100",
	"CourseCode":  "required,max=20," + courseCodeTag,
	"TeacherName": "required,max=100",
	"WeeklyHours": "min=1,max=40",
}

var courseFieldRules = map[string]string{
	FieldCourseName:  courseRules["CourseName"],
	FieldCourseCode:  courseRules["CourseCode"],
	FieldTeacherName: courseRules["TeacherName"],
	FieldWeeklyHours: courseRules["WeeklyHours"],
}

const msgWeeklyHoursWhole = "Weekly hours must be a whole number"

var messages = map[string]string{
	FieldCourseName + ".required":             "Course name is required",
	FieldCourseName + ".max":                  "Course name must be less than 100 characters",
	FieldCourseCode + ".required":             "Course code is required",
	FieldCourseCode + ".max":                  "Course code must be less than 20 characters",
	FieldCourseCode + "." + courseCodeTag:     "Course code can only contain letters, numbers, spaces, and hyphens",
	FieldTeacherName + ".required":            "Teacher name is required",
	FieldTeacherName + ".max":                 "Teacher name must be less than 100 characters",
	FieldWeeklyHours + ".min":                 "Weekly hours must be at least 1",
	FieldWeeklyHours + ".max":                 "Weekly hours cannot exceed 40",
	FieldUnavailableSlots + ".max":            "Cannot select more than 20 unavailable time slots",
	FieldUnavailableSlots + "." + timeSlotTag: "Unknown time slot",
}

// TrimCourse returns c with surrounding whitespace removed from its text fields.
func TrimCourse(c domain.Course) domain.Course {
	c.CourseName = strings.TrimSpace(c.CourseName)
	c.CourseCode = strings.TrimSpace(c.CourseCode)
	c.TeacherName = strings.TrimSpace(c.TeacherName)
	return c
}

// ValidateCourse trims and validates c. On success it returns the cleaned
// record; otherwise the error is a *ValidationError.
func ValidateCourse(c domain.Course) (domain.Course, error) {
	c = TrimCourse(c)
	if err := fromValidator(validate.Struct(c)); err != nil {
		return domain.Course{}, err
	}
	return c, nil
}

// ParseWeeklyHours converts form text into an hour count. Non-integer
// input yields a *ValidationError for the weeklyHours field; "2.5" is
// rejected, not truncated.
func ParseWeeklyHours(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Fields: []FieldError{{Field: FieldWeeklyHours, Message: msgWeeklyHoursWhole}}}
	}
	return n, nil
}

// ValidateCourseField checks a single form field as typed by the user.
// It applies the same rules as ValidateCourse.
func ValidateCourseField(field, value string) error {
	rule, ok := courseFieldRules[field]
	if !ok {
		return fmt.Errorf("unknown course field %q", field)
	}

	var subject any = strings.TrimSpace(value)
	if field == FieldWeeklyHours {
		n, err := ParseWeeklyHours(value)
		if err != nil {
			return err
		}
		subject = n
	}

	return fromVar(field, validate.Var(subject, rule))
}
