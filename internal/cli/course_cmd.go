package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/component"
	"github.com/alexanderramin/timetable/internal/notify"
	"github.com/alexanderramin/timetable/internal/schema"
)

// ErrInvalidInput is returned by the check commands when validation fails.
// The details have already been printed.
var ErrInvalidInput = errors.New("invalid input")

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Work with course records",
	}
	cmd.AddCommand(newCourseCheckCmd(app))
	return cmd
}

func newCourseCheckCmd(app *App) *cobra.Command {
	var fields component.CourseFields

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a course the way the add-course dialog does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			buf := notify.NewBuffer()
			dialog := component.NewCourseDialog(
				component.WithNotifier(notify.Multi(buf, notify.NewLogNotifier(app.Logger))),
				component.WithObserver(component.NewLogUseCaseObserver(app.Logger)),
			)
			dialog.Open()
			dialog.Form().Fields = fields

			_, err := dialog.Submit()
			printNotifications(out, buf)
			if err != nil {
				printFieldErrors(out, err)
				return ErrInvalidInput
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.FormatCourseList(dialog.Courses(), component.EmptyCoursesMessage))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&fields.CourseName, "name", "", "Course name")
	f.StringVar(&fields.CourseCode, "code", "", "Course code (letters, numbers, spaces, hyphens)")
	f.StringVar(&fields.TeacherName, "teacher", "", "Teacher name")
	f.StringVar(&fields.WeeklyHours, "hours", "1", "Weekly hours (1-40)")

	return cmd
}

func printNotifications(w io.Writer, buf *notify.Buffer) {
	for _, n := range buf.Drain() {
		fmt.Fprintln(w, formatter.FormatNotificationLine(n))
	}
}

func printFieldErrors(w io.Writer, err error) {
	ve, ok := schema.AsValidationError(err)
	if !ok {
		fmt.Fprintln(w, "  "+err.Error())
		return
	}
	for _, fe := range ve.Fields {
		fmt.Fprintf(w, "  %s %s\n", formatter.StyleRed.Render(fe.Field+":"), fe.Message)
	}
}
