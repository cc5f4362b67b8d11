package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCollectionsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the catalog's named collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := app.Session.Catalog().Collections()
			out := cmd.OutOrStdout()
			if len(cols) == 0 {
				fmt.Fprintln(out, formatter.Dim("The catalog defines no collections."))
				return nil
			}
			rows := make([][]string, 0, len(cols))
			for _, c := range cols {
				rows = append(rows, []string{c.Name, c.Title, strconv.Itoa(len(c.FestivalIDs))})
			}
			fmt.Fprint(out, formatter.RenderTable([]string{"NAME", "TITLE", "FESTIVALS"}, rows))
			return nil
		},
	}
}
