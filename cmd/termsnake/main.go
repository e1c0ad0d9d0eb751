// termsnake is a classic snake game for the terminal.
//
// Usage:
//
//	termsnake                 - Play with the default settings
//	termsnake version         - Print the version
//
// Global flags:
//
//	--config <path>       - Path to a custom config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard, fixed
//	--seed <value>        - RNG seed for reproducible apple placement
//	--debug               - Write a debug log to ~/.termsnake/debug.log
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termsnake",
	Short: "Classic snake in your terminal",
	Long: `termsnake is a terminal snake game. Eat apples to grow and score;
every 5 points the level rises and the snake speeds up. The game ends
when the snake hits a wall or itself.

Controls:
  WASD / arrows - Move
  Enter         - Start
  R             - Restart
  Esc           - Back to menu (after game over)
  Q / Ctrl+C    - Quit

Difficulty presets:
  easy   - Slower start, same top speed
  normal - Default pacing
  hard   - Faster start
  fixed  - No speed-up across levels

Examples:
  termsnake
  termsnake --difficulty hard
  termsnake --seed 42
  termsnake --config ./my-snake.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.termsnake/debug.log")

	rootCmd.AddCommand(versionCmd)
}
