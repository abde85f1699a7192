// flap is a terminal flap-reflex game: tap to keep a falling body airborne
// and thread it through the gaps of an endless stream of pipes.
//
// Usage:
//
//	flap play             - Play in the current terminal
//	flap scores           - Show the high score table
//	flap serve            - Host the game over SSH
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 60)
//	--db <path>     - Scores database path (default: ~/.flaptui/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flap",
	Short: "A flap-reflex game for your terminal",
	Long: `flap is a terminal game: gravity pulls the body down, the spacebar
boosts it up, and an endless stream of gated pipes scrolls toward you.

Examples:
  flap play
  flap play --config ./my-tuning.yaml --sound
  flap scores
  flap serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flaptui/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
