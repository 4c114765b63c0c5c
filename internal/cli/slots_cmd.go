package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/domain"
)

func newSlotsCmd() *cobra.Command {
	var day string
	var search string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "List the weekly time slot catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slots := domain.SearchSlots(search)
			if day != "" {
				slots = filterDay(slots, day)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSlotTable(slots))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only show slots on this weekday (e.g. monday)")
	cmd.Flags().StringVar(&search, "search", "", "Only show slots whose label contains this text")

	return cmd
}

func filterDay(slots []domain.TimeSlot, day string) []domain.TimeSlot {
	onDay := make(map[string]bool)
	for _, s := range domain.SlotsForDay(day) {
		onDay[s.Value] = true
	}
	out := slots[:0:0]
	for _, s := range slots {
		if onDay[s.Value] {
			out = append(out, s)
		}
	}
	return out
}
