package cli

import (
	"github.com/alexanderramin/utsav/internal/service"
	"github.com/alexanderramin/utsav/internal/session"
	"github.com/spf13/cobra"
)

// App holds the browsing session and the services CLI commands use.
type App struct {
	Session   *session.Session
	Favorites service.FavoriteService

	// UpcomingLimit caps the upcoming list when no -n flag is given.
	UpcomingLimit int

	// IsInteractive reports whether stdout is a terminal. When true, the
	// bare "utsav" command opens the TUI instead of printing the calendar.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "utsav" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "utsav",
		Short:         "Festival calendar with recipes, decorations and shopping lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd.Context(), app)
			}
			return printCalendar(cmd, app)
		},
	}

	root.AddCommand(
		newCalendarCmd(app),
		newListCmd(app),
		newUpcomingCmd(app),
		newShowCmd(app),
		newFavCmd(app),
		newCollectionsCmd(app),
		newTUICmd(app),
	)

	return root
}
