package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// defaultGameID is played when 'play' gets no argument.
const defaultGameID = "shooter"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the games 'play' accepts",
	Long:  `Shows the registered game ids and marks the one 'shooter play' starts by default.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), formatGameList(registry.List()))
	},
}

// formatGameList renders one game per line, marking the default.
func formatGameList(games []registry.GameInfo) string {
	if len(games) == 0 {
		return "No games registered.\n"
	}

	width := 0
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	out := ""
	for _, g := range games {
		mark := ""
		if g.ID == defaultGameID {
			mark = "  (default)"
		}
		out += fmt.Sprintf("  %-*s  %s%s\n", width, g.ID, g.Title, mark)
	}
	return out
}
