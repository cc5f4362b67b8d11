package cli

import (
	"fmt"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFavCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fav",
		Aliases: []string{"favorites"},
		Short:   "Manage favorite festivals",
	}

	cmd.AddCommand(
		newFavListCmd(app),
		newFavToggleCmd(app),
		newFavPruneCmd(app),
	)

	return cmd
}

func newFavListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favorite festivals in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFavorites(s.AllFavorites(), s.Clock().Today()))
			return nil
		},
	}
}

func newFavToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <festival-id>",
		Short: "Add or remove a festival from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := toggleFavorite(cmd, app, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func newFavPruneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Delete stored favorites that are no longer in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Favorites.Prune(cmd.Context(), app.Session.Catalog())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(removed) == 0 {
				fmt.Fprintln(out, formatter.Dim("Nothing to prune."))
				return nil
			}
			for _, id := range removed {
				fmt.Fprintf(out, "%s %s\n", formatter.StyleRed.Render("✖"), id)
			}
			fmt.Fprintf(out, "Pruned %d stale favorite(s).\n", len(removed))
			return nil
		},
	}
}

// toggleFavorite flips the session's favorite and persists the result.
// When persisting fails the session is flipped back so memory and storage
// agree.
func toggleFavorite(cmd *cobra.Command, app *App, id string) (string, error) {
	s := app.Session
	on, ok := s.ToggleFavorite(id)
	if !ok {
		return "", fmt.Errorf("festival not found: %q", id)
	}
	if err := app.Favorites.Save(cmd.Context(), id, on); err != nil {
		s.ToggleFavorite(id)
		return "", err
	}
	return favoriteMessage(s, id, on), nil
}
