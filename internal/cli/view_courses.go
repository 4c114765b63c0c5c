package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/component"
)

const (
	coursesTitle   = "Courses"
	coursesTagline = "Manage your academic courses and schedules"

	dialogTitle       = "Add New Course"
	dialogDescription = "Fill in the details below to add a new course to your timetable"
)

var (
	keyAddCourse = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add course"))
	keyCancel    = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
	keyNextField = key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "next"))
)

// coursesView lists the courses added this session and hosts the
// add-course dialog. The list lives in the dialog and is dropped when
// the page is left.
type coursesView struct {
	state  *SharedState
	dialog *component.CourseDialog

	// form is the huh rendering of the dialog's CourseForm; nil when closed.
	form      *huh.Form
	confirmed bool
}

func newCoursesView(state *SharedState) *coursesView {
	return &coursesView{
		state:  state,
		dialog: component.NewCourseDialog(state.componentOptions()...),
	}
}

func (v *coursesView) ID() ViewID          { return ViewCourses }
func (v *coursesView) Title() string       { return coursesTitle }
func (v *coursesView) CapturesInput() bool { return v.dialog.IsOpen() }

func (v *coursesView) ShortHelp() []key.Binding {
	if v.dialog.IsOpen() {
		return []key.Binding{keyNextField, keyCancel}
	}
	return []key.Binding{keyAddCourse}
}

func (v *coursesView) Init() tea.Cmd { return nil }

func (v *coursesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !v.dialog.IsOpen() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keyAddCourse) {
			return v, v.openDialog()
		}
		return v, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		v.cancelDialog()
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	switch v.form.State {
	case huh.StateCompleted:
		if v.confirmed {
			return v, v.submitDialog()
		}
		v.cancelDialog()
		return v, nil
	case huh.StateAborted:
		v.cancelDialog()
		return v, nil
	}
	return v, cmd
}

// openDialog opens the dialog with a fresh form bound to its fields.
// Values typed before an earlier cancel are discarded.
func (v *coursesView) openDialog() tea.Cmd {
	v.dialog.Open()
	v.dialog.Form().Reset()
	return v.rebuildForm()
}

func (v *coursesView) rebuildForm() tea.Cmd {
	v.confirmed = true
	v.form = courseForm(&v.dialog.Form().Fields, &v.confirmed)
	return v.form.Init()
}

// submitDialog runs the dialog's submit. On failure the dialog stays open
// with the typed values and a new form starting from the first field.
func (v *coursesView) submitDialog() tea.Cmd {
	if _, err := v.dialog.Submit(); err != nil {
		return v.rebuildForm()
	}
	v.form = nil
	return nil
}

// cancelDialog closes the dialog without touching the list.
func (v *coursesView) cancelDialog() {
	v.dialog.Cancel()
	v.form = nil
}

func (v *coursesView) View() string {
	var b strings.Builder
	b.WriteString(formatter.PageHeading(coursesTitle, coursesTagline))
	b.WriteString("\n\n")

	if v.dialog.IsOpen() && v.form != nil {
		content := formatter.Dim(dialogDescription) + "\n\n" + v.form.View()
		b.WriteString(formatter.RenderBox(dialogTitle, content))
		b.WriteString("\n\n")
	}

	b.WriteString(formatter.Bold("Your Courses"))
	b.WriteString("\n\n")
	b.WriteString(formatter.FormatCourseList(v.dialog.Courses(), component.EmptyCoursesMessage))
	return b.String()
}
