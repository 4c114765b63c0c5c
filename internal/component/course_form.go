package component

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/timetable/internal/domain"
	"github.com/alexanderramin/timetable/internal/notify"
	"github.com/alexanderramin/timetable/internal/schema"
)

// CourseFields holds the add-course form values exactly as typed.
type CourseFields struct {
	CourseName  string
	CourseCode  string
	TeacherName string
	WeeklyHours string
}

func defaultCourseFields() CourseFields {
	d := domain.DefaultCourse()
	return CourseFields{
		CourseName:  d.CourseName,
		CourseCode:  d.CourseCode,
		TeacherName: d.TeacherName,
		WeeklyHours: strconv.Itoa(d.WeeklyHours),
	}
}

// CourseForm collects and validates a single course.
type CourseForm struct {
	// Fields is bound directly to the input widgets.
	Fields CourseFields

	onSubmit func(domain.Course)
	onCancel func()
	opts     options
}

// NewCourseForm returns a form with default values. onSubmit and onCancel
// may be nil.
func NewCourseForm(onSubmit func(domain.Course), onCancel func(), opts ...Option) *CourseForm {
	return &CourseForm{
		Fields:   defaultCourseFields(),
		onSubmit: onSubmit,
		onCancel: onCancel,
		opts:     buildOptions(opts),
	}
}

// Submit re-validates the whole record. An invalid record leaves the
// fields untouched, emits a destructive notification, and returns a
// *schema.ValidationError. A valid record is passed to onSubmit and the
// form resets to its defaults.
func (f *CourseForm) Submit() (domain.Course, error) {
	start := time.Now()
	course, err := f.parse()
	if err == nil {
		course, err = schema.ValidateCourse(course)
	}
	if err != nil {
		f.opts.notifier.Notify(notify.Notification{
			Title:       "Validation Error",
			Description: "Please check your input and try again.",
			Severity:    notify.SeverityDestructive,
		})
		observe(f.opts.observer, "course.submit", start, err, nil)
		return domain.Course{}, err
	}

	f.opts.notifier.Notify(notify.Notification{
		Title:       "Course Added Successfully",
		Description: fmt.Sprintf("%s has been added to your timetable.", course.CourseName),
	})
	if f.onSubmit != nil {
		f.onSubmit(course)
	}
	f.Reset()
	observe(f.opts.observer, "course.submit", start, nil, map[string]any{"course_code": course.CourseCode})
	return course, nil
}

// CanCancel reports whether a cancel handler was supplied.
func (f *CourseForm) CanCancel() bool {
	return f.onCancel != nil
}

// Cancel invokes the cancel handler without validating or clearing the
// fields. It reports whether a handler ran.
func (f *CourseForm) Cancel() bool {
	if f.onCancel == nil {
		return false
	}
	start := time.Now()
	f.onCancel()
	observe(f.opts.observer, "course.cancel", start, nil, nil)
	return true
}

// Reset restores the default values.
func (f *CourseForm) Reset() {
	f.Fields = defaultCourseFields()
}

// FieldError returns the inline validation error for one field's current
// value, or nil when it is valid.
func (f *CourseForm) FieldError(field string) error {
	switch field {
	case schema.FieldCourseName:
		return schema.ValidateCourseField(field, f.Fields.CourseName)
	case schema.FieldCourseCode:
		return schema.ValidateCourseField(field, f.Fields.CourseCode)
	case schema.FieldTeacherName:
		return schema.ValidateCourseField(field, f.Fields.TeacherName)
	case schema.FieldWeeklyHours:
		return schema.ValidateCourseField(field, f.Fields.WeeklyHours)
	}
	return fmt.Errorf("unknown course field %q", field)
}

func (f *CourseForm) parse() (domain.Course, error) {
	hours, err := schema.ParseWeeklyHours(f.Fields.WeeklyHours)
	if err != nil {
		return domain.Course{}, err
	}
	return domain.Course{
		CourseName:  f.Fields.CourseName,
		CourseCode:  f.Fields.CourseCode,
		TeacherName: f.Fields.TeacherName,
		WeeklyHours: hours,
	}, nil
}
