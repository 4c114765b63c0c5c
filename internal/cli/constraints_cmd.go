package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/component"
	"github.com/alexanderramin/timetable/internal/notify"
)

func newConstraintsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "constraints",
		Short: "Work with availability constraints",
	}
	cmd.AddCommand(newConstraintsCheckCmd(app))
	return cmd
}

func newConstraintsCheckCmd(app *App) *cobra.Command {
	var slots []string
	var avoidBackToBack bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Build a slot selection and validate it",
		Long: `Each --slot is toggled in order, exactly as picking it in the
settings page would: a repeated slot is deselected, and slots past the
limit or outside the catalog are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			buf := notify.NewBuffer()
			section := component.NewConstraintsSection(
				component.WithNotifier(notify.Multi(buf, notify.NewLogNotifier(app.Logger))),
				component.WithObserver(component.NewLogUseCaseObserver(app.Logger)),
			)

			for _, s := range slots {
				if !section.Toggle(s) {
					fmt.Fprintln(out, formatter.Dim("skipped "+s))
				}
			}
			section.SetAvoidBackToBack(avoidBackToBack)

			_, err := section.Submit()
			printNotifications(out, buf)
			if err != nil {
				printFieldErrors(out, err)
				return ErrInvalidInput
			}

			fmt.Fprintln(out, section.TriggerLabel())
			if tags := section.SelectedSlots(); len(tags) > 0 {
				fmt.Fprintln(out, formatter.FormatSlotTags(tags, -1))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&slots, "slot", nil, "Slot value to toggle, e.g. monday-8 (repeatable)")
	cmd.Flags().BoolVar(&avoidBackToBack, "avoid-back-to-back", false, "Avoid back-to-back classes")

	return cmd
}
