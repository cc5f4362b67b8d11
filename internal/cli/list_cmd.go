package cli

import (
	"fmt"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	var (
		filters filterFlags
		sort    sortFlag
		width   int
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List festivals matching the filters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session
			if err := filters.apply(s); err != nil {
				return err
			}
			if sort.mode != "" {
				s.SetSort(sort.mode)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatFestivalList(s.Filtered(), formatter.ListOptions{
				Today:      s.Clock().Today(),
				IsFavorite: s.IsFavorite,
				MaxCol:     width,
			}))
			if summary := filterSummary(s); summary != "" {
				fmt.Fprintln(out, formatter.Dim(summary))
			}
			return nil
		},
	}

	filters.register(cmd.Flags())
	cmd.Flags().Var(&sort, "sort", "Order: catalog, date or name")
	cmd.Flags().IntVar(&width, "max-width", 40, "Truncate wide columns (0 disables)")

	return cmd
}

func newUpcomingCmd(app *App) *cobra.Command {
	var (
		filters filterFlags
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show festivals after today, soonest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session
			if err := filters.apply(s); err != nil {
				return err
			}
			n := app.UpcomingLimit
			if cmd.Flags().Changed("limit") {
				n = limit
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUpcoming(s.Upcoming(n), formatter.ListOptions{
				Today:      s.Clock().Today(),
				IsFavorite: s.IsFavorite,
			}))
			return nil
		},
	}

	filters.register(cmd.Flags())
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum festivals to show (0 for all)")

	return cmd
}
