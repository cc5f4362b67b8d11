package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/utsav/internal/cli/formatter"
	"github.com/alexanderramin/utsav/internal/domain"
	"github.com/alexanderramin/utsav/internal/repository"
	"github.com/spf13/cobra"
)

// detailWidth is the wrap width for prose in non-interactive output.
const detailWidth = 80

func newShowCmd(app *App) *cobra.Command {
	var (
		tab    tabFlag
		recipe string
	)

	cmd := &cobra.Command{
		Use:   "show <festival-id>",
		Short: "Show a festival's details",
		Example: "  utsav show diwali\n" +
			"  utsav show diwali --tab shopping\n" +
			"  utsav show diwali --recipe besan-laddu",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Session
			id := args[0]
			if !s.Select(id) {
				return fmt.Errorf("festival not found: %q", id)
			}
			if tab.tab != "" {
				s.SetTab(tab.tab)
			}
			if recipe != "" {
				s.SetTab(domain.TabRecipes)
				s.OpenRecipe(recipe)
				o, _ := s.OpenDetail()
				if _, ok := o.Recipe(); !ok {
					return fmt.Errorf("festival %q has no recipe %q", id, recipe)
				}
			}

			o, _ := s.OpenDetail()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDetail(o, formatter.DetailOptions{
				Today:    s.Clock().Today(),
				Favorite: s.IsFavorite(id),
				Width:    detailWidth,
				Cursor:   -1,
			}))
			return printFavoriteSince(cmd, app, id)
		},
	}

	cmd.Flags().Var(&tab, "tab", "Section to show: overview, celebrate, recipes, decorations or shopping")
	cmd.Flags().StringVar(&recipe, "recipe", "", "Open one of the festival's recipes (implies --tab recipes)")

	return cmd
}

// printFavoriteSince adds the day a favorite was stored. Favorites that
// only exist in memory print nothing.
func printFavoriteSince(cmd *cobra.Command, app *App, id string) error {
	if !app.Session.IsFavorite(id) {
		return nil
	}
	fav, err := app.Favorites.Get(cmd.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	day := domain.CivilDayOf(fav.CreatedAt.In(app.Session.Clock().Location()))
	fmt.Fprintln(cmd.OutOrStdout(), "\n"+formatter.Dim("★ Favorite since "+formatter.HumanDay(day)))
	return nil
}
