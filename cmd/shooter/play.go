package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var (
	flagDifficulty string
	flagHoldMS     int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game id defaults to "shooter".

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Space/Up/W   - Fire
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.shooter/screenshots
  Q/Ctrl+C     - Quit

Difficulty options (constant spawn rate, no progression):
  easy   - 2% chance of a new enemy per frame
  normal - 3% chance of a new enemy per frame
  hard   - 5% chance of a new enemy per frame

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --seed 1234 --fps 30
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().IntVar(&flagHoldMS, "hold", 0, "Move key hold window in ms (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available games.")
		os.Exit(1)
	}
	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	gameCfg, source, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", "source", source)

	hold := gameCfg.Input.HoldWindow()
	if flagHoldMS > 0 {
		hold = time.Duration(flagHoldMS) * time.Millisecond
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(tui.Options{
		Game:       game,
		Runtime:    cfg,
		ViewportW:  gameCfg.Viewport.Width,
		ViewportH:  gameCfg.Viewport.Height,
		HoldWindow: hold,
		Logger:     logger,
	})
	if runErr != nil {
		closeLog() //nolint:errcheck // Exiting anyway
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
