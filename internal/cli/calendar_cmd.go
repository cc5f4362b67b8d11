package cli

import (
	"fmt"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var (
		month   monthFlag
		filters filterFlags
		next    int
	)

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show a month grid with its festivals",
		Example: "  utsav calendar --month 2025-10\n  utsav cal --next 1 --category harvest",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := filters.apply(app.Session); err != nil {
				return err
			}
			if month.set {
				app.Session.SetMonth(month.month)
			}
			if next != 0 {
				app.Session.SetMonth(app.Session.DisplayedMonth().Add(next))
			}
			return printCalendar(cmd, app)
		},
	}

	cmd.Flags().Var(&month, "month", "Month to show (default: the current month)")
	cmd.Flags().IntVar(&next, "next", 0, "Months to move forward from the shown month (negative moves back)")
	filters.register(cmd.Flags())

	return cmd
}

// printCalendar writes the session's displayed month and its festival
// legend.
func printCalendar(cmd *cobra.Command, app *App) error {
	s := app.Session
	m := s.DisplayedMonth()
	cells := s.Grid()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.RenderMonth(m, cells, formatter.MonthOptions{Today: s.Clock().Today()}))
	fmt.Fprint(out, formatter.RenderMonthLegend(cells, s.IsFavorite))
	if summary := filterSummary(s); summary != "" {
		fmt.Fprintln(out, formatter.Dim(summary))
	}
	return nil
}
