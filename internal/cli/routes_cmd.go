package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/timetable/internal/cli/formatter"
	"github.com/alexanderramin/timetable/internal/nav"
)

func newRoutesCmd() *cobra.Command {
	var current string

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List navigation destinations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sidebar := nav.NewSidebar()
			if err := sidebar.Navigate(current); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRoutes(sidebar.Items()))
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", nav.PathDashboard, "Path to mark as active")

	return cmd
}
