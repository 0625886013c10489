package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/ranger/internal/application/game"
	"github.com/younwookim/ranger/internal/application/replay"
	"github.com/younwookim/ranger/internal/application/scene/playing"
	"github.com/younwookim/ranger/internal/application/system"
)

var flagRecord string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a window",
	Long: `Open the game window and play.

Controls:
  WASD         - Move
  Mouse        - Aim
  Left button  - Shoot
  ESC          - Pause
  F5           - Save recording (with --record)
  Z/Space      - Restart after game over
  Q            - Quit after game over

Examples:
  ranger play
  ranger play --arena demo --record run.rpl`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Watch a recorded run in a window",
	Long: `Replay a recording made with 'ranger play --record' or 'ranger sim --record'.
The recording's seed and arena are used; --seed and --arena are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file (e.g. --record run.rpl)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession(flagConfig, flagArena, flagLogLevel, os.Stderr)
	if err != nil {
		return err
	}

	return s.runWindow(resolveSeed(flagSeed), playing.Options{
		RecordPath: flagRecord,
		Arena:      s.arenaName,
	})
}

func runReplay(_ *cobra.Command, args []string) error {
	data, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	arenaName := flagArena
	if data.Arena != "" {
		arenaName = data.Arena
	}

	s, err := newSession(flagConfig, arenaName, flagLogLevel, os.Stderr)
	if err != nil {
		return err
	}
	s.useReplayRate(data)
	s.logger.Info("replaying", "file", args[0], "frames", len(data.Frames), "seed", data.Seed)

	return s.runWindow(data.Seed, playing.Options{
		Source: replay.NewReplayer(*data),
		Arena:  arenaName,
	})
}

// runWindow builds the simulation and blocks until the window closes
func (s *session) runWindow(seed int64, opts playing.Options) error {
	sim := system.NewSimulation(s.game, s.arena, seed, s.logger)
	scn := playing.New(sim, s.logger, opts)

	d := s.game.Display
	g := game.New(scn, d.ScreenWidth, d.ScreenHeight, d.TPS)

	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Ranger - %s", s.arena.Name))
	ebiten.SetTPS(d.TPS)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
