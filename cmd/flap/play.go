package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glidekit/flaptui/internal/audio"
	"github.com/glidekit/flaptui/internal/config"
	"github.com/glidekit/flaptui/internal/engine"
	"github.com/glidekit/flaptui/internal/platform/tui"
)

var (
	flagConfig string
	flagSound  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game.

Controls:
  Space/Up   - Flap (also starts the session)
  Enter      - Start without flapping
  P/Esc      - Pause
  R          - Retry (after game over)
  Tab        - High scores
  Q/Ctrl+C   - Quit

Examples:
  flap play
  flap play --sound
  flap play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flap"})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("could not open scores database, best record will not persist", "error", err)
		store = nil
	}

	opts := []engine.Option{}
	if store != nil {
		opts = append(opts, engine.WithRecordStore(store))
	}

	var player *audio.Player
	if flagSound {
		player, err = audio.NewPlayer()
		if err != nil {
			logger.Warn("could not open audio device, continuing without sound", "error", err)
		} else {
			opts = append(opts, engine.WithListener(player))
		}
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	eng := engine.New(cfg.Tuning(), rnd, opts...)

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		eng.SetPlayfield(tui.PlayfieldFor(w, h))
	}

	runErr := tui.Run(eng, store, flagFPS)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
