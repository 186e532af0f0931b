package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/WangLucas2013/Sum-Game/internal/core"
	"github.com/WangLucas2013/Sum-Game/internal/games/sumgrid"
	"github.com/WangLucas2013/Sum-Game/internal/platform/tui"
	"github.com/WangLucas2013/Sum-Game/internal/registry"
	"github.com/WangLucas2013/Sum-Game/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round of the given mode, or show the mode picker if no
mode is specified.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Select or deselect the block under the cursor
  P            - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  sumgame play
  sumgame play sum
  sumgame play sum_timed --fps 30
  sumgame play sum --config ./my-theme.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom theme config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
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

	sumgrid.SetConfigPath(flagConfig)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'sumgame list' to see available modes.")
			os.Exit(1)
		}
	} else {
		gameID, err = tui.RunModeSelector(cfg, store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if gameID == "" {
			// User quit the selector
			return
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(game, store, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
