package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/timetable/internal/domain"
	"github.com/alexanderramin/timetable/internal/notify"
	"github.com/alexanderramin/timetable/internal/schema"
)

func fillIntroToCS(f *CourseForm) {
	f.Fields = CourseFields{
		CourseName:  "Intro to CS",
		CourseCode:  "CS-101",
		TeacherName: "Dr. Sarah Johnson",
		WeeklyHours: "3",
	}
}

func TestCourseForm_Defaults(t *testing.T) {
	f := NewCourseForm(nil, nil)
	assert.Equal(t, CourseFields{WeeklyHours: "1"}, f.Fields)
	assert.False(t, f.CanCancel())
}

func TestCourseForm_SubmitValid(t *testing.T) {
	buf := notify.NewBuffer()
	var got []domain.Course
	f := NewCourseForm(func(c domain.Course) { got = append(got, c) }, nil, WithNotifier(buf))
	fillIntroToCS(f)

	course, err := f.Submit()
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, course, got[0])
	assert.Equal(t, 3, course.WeeklyHours)
	assert.Equal(t, CourseFields{WeeklyHours: "1"}, f.Fields, "form resets after success")

	notes := buf.Drain()
	require.Len(t, notes, 1)
	assert.Equal(t, "Course Added Successfully", notes[0].Title)
	assert.Equal(t, "Intro to CS has been added to your timetable.", notes[0].Description)
	assert.Equal(t, notify.SeverityDefault, notes[0].Severity)
}

func TestCourseForm_SubmitInvalid(t *testing.T) {
	cases := map[string]func(*CourseFields){
		"zero hours":     func(f *CourseFields) { f.WeeklyHours = "0" },
		"41 hours":       func(f *CourseFields) { f.WeeklyHours = "41" },
		"fraction hours": func(f *CourseFields) { f.WeeklyHours = "2.5" },
		"bad code":       func(f *CourseFields) { f.CourseCode = "CS#101" },
		"empty name":     func(f *CourseFields) { f.CourseName = "" },
		"empty teacher":  func(f *CourseFields) { f.TeacherName = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			buf := notify.NewBuffer()
			called := false
			f := NewCourseForm(func(domain.Course) { called = true }, nil, WithNotifier(buf))
			fillIntroToCS(f)
			mutate(&f.Fields)
			before := f.Fields

			_, err := f.Submit()
			require.Error(t, err)
			_, ok := schema.AsValidationError(err)
			assert.True(t, ok)

			assert.False(t, called, "onSubmit must not run")
			assert.Equal(t, before, f.Fields, "fields stay as typed")

			notes := buf.Drain()
			require.Len(t, notes, 1)
			assert.Equal(t, "Validation Error", notes[0].Title)
			assert.Equal(t, "Please check your input and try again.", notes[0].Description)
			assert.Equal(t, notify.SeverityDestructive, notes[0].Severity)
		})
	}
}

func TestCourseForm_SubmitWithoutHandler(t *testing.T) {
	f := NewCourseForm(nil, nil)
	fillIntroToCS(f)
	_, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "1", f.Fields.WeeklyHours)
}

func TestCourseForm_CancelDoesNotValidateOrClear(t *testing.T) {
	buf := notify.NewBuffer()
	cancelled := 0
	f := NewCourseForm(nil, func() { cancelled++ }, WithNotifier(buf))
	f.Fields.CourseCode = "CS#101"

	assert.True(t, f.Cancel())
	assert.Equal(t, 1, cancelled)
	assert.Equal(t, "CS#101", f.Fields.CourseCode)
	assert.Empty(t, buf.Drain())
}

func TestCourseForm_CancelWithoutHandler(t *testing.T) {
	f := NewCourseForm(nil, nil)
	assert.False(t, f.Cancel())
}

func TestCourseForm_FieldError(t *testing.T) {
	f := NewCourseForm(nil, nil)
	assert.Error(t, f.FieldError(schema.FieldCourseName))
	assert.NoError(t, f.FieldError(schema.FieldWeeklyHours))

	f.Fields.CourseCode = "CS-101"
	assert.NoError(t, f.FieldError(schema.FieldCourseCode))

	assert.Error(t, f.FieldError("room"))
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(e UseCaseEvent) { r.events = append(r.events, e) }

func TestCourseForm_ObservesSubmit(t *testing.T) {
	obs := &recordingObserver{}
	f := NewCourseForm(nil, nil, WithObserver(obs))

	_, _ = f.Submit()
	fillIntroToCS(f)
	_, _ = f.Submit()

	require.Len(t, obs.events, 2)
	assert.Equal(t, "course.submit", obs.events[0].Name)
	assert.False(t, obs.events[0].Success)
	assert.True(t, obs.events[1].Success)
	assert.Equal(t, "CS-101", obs.events[1].Fields["course_code"])
}
