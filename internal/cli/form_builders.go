package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/timetable/internal/component"
	"github.com/alexanderramin/timetable/internal/schema"
)

// courseInput returns a huh.Input bound to one course field. The field's
// rule is re-checked as the user types and any failure is shown as the
// description; it never blocks moving on, so a bad record still reaches
// the submit path.
func courseInput(title, placeholder, field string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		DescriptionFunc(func() string { return fieldMessage(field, *value) }, value)
}

// fieldMessage returns the inline error for value, or "" when it passes.
func fieldMessage(field, value string) string {
	err := schema.ValidateCourseField(field, value)
	if err == nil {
		return ""
	}
	if ve, ok := schema.AsValidationError(err); ok {
		return ve.Field(field)
	}
	return err.Error()
}

// courseForm returns the themed add-course form bound to fields. The
// trailing confirm chooses between submitting and cancelling.
func courseForm(fields *component.CourseFields, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			courseInput("Course Name", "e.g., Introduction to Computer Science", schema.FieldCourseName, &fields.CourseName),
			courseInput("Course Code", "e.g., CS-101", schema.FieldCourseCode, &fields.CourseCode),
			courseInput("Teacher Name", "e.g., Dr. Sarah Johnson", schema.FieldTeacherName, &fields.TeacherName),
			courseInput("Weekly Hours", "e.g., 3", schema.FieldWeeklyHours, &fields.WeeklyHours),
			huh.NewConfirm().
				Affirmative("Add Course").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithTheme(timetableHuhTheme()).WithShowHelp(false)
}
