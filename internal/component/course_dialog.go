package component

import "github.com/alexanderramin/timetable/internal/domain"

// EmptyCoursesMessage is shown in place of the course list before any course is added.
const EmptyCoursesMessage = "No courses added yet."

// CourseDialog owns the add-course modal and the session's list of
// submitted courses.
type CourseDialog struct {
	open    bool
	courses domain.CourseList
	form    *CourseForm
}

// NewCourseDialog returns a closed dialog with an empty course list.
func NewCourseDialog(opts ...Option) *CourseDialog {
	d := &CourseDialog{}
	d.form = NewCourseForm(d.add, d.Close, opts...)
	return d
}

func (d *CourseDialog) add(c domain.Course) {
	d.courses.Append(c)
	d.open = false
}

// Open shows the modal.
func (d *CourseDialog) Open() { d.open = true }

// Close hides the modal without touching the course list.
func (d *CourseDialog) Close() { d.open = false }

// IsOpen reports whether the modal is shown.
func (d *CourseDialog) IsOpen() bool { return d.open }

// Form returns the form rendered inside the modal.
func (d *CourseDialog) Form() *CourseForm { return d.form }

// Submit submits the form; on success the course is appended and the modal closes.
func (d *CourseDialog) Submit() (domain.Course, error) { return d.form.Submit() }

// Cancel cancels the form, closing the modal.
func (d *CourseDialog) Cancel() { d.form.Cancel() }

// Courses returns the submitted courses in insertion order.
func (d *CourseDialog) Courses() []domain.CourseEntry { return d.courses.Entries() }

// Len returns the number of submitted courses.
func (d *CourseDialog) Len() int { return d.courses.Len() }
