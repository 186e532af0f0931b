// sumgame is a terminal puzzle where you pick blocks that add up to a
// target sum before the rising grid reaches the top.
//
// Usage:
//
//	sumgame play [mode]      - Play (shows a mode picker if no mode given)
//	sumgame list             - List available modes
//	sumgame scores [mode]    - Show high scores
//	sumgame serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.sumgame/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register both modes
	_ "github.com/WangLucas2013/Sum-Game/internal/games/sumgrid"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sumgame",
	Short: "Sum Game - Pick blocks that add up to the target",
	Long: `Sum Game is a terminal puzzle. Blocks carry values 1-9; select
blocks so their values add up to the target sum. Matched blocks clear,
the stack grows from below, and the game ends when it reaches the top.

Available commands:
  play     - Play a round (classic or timed)
  list     - Show available modes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  sumgame play
  sumgame play sum_timed
  sumgame scores sum
  sumgame serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sumgame/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
