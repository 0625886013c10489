package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/ranger/internal/application/replay"
	"github.com/younwookim/ranger/internal/application/system"
	"github.com/younwookim/ranger/internal/ecs"
)

var (
	flagTicks     int
	flagSimReplay string
	flagSimRecord string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print a summary",
	Long: `Run the simulation without a window. By default an autopilot stands
still and shoots at the nearest enemy; with --replay the recorded input is
used instead, along with the recording's seed and arena.

Examples:
  ranger sim --ticks 3600 --seed 42
  ranger sim --ticks 3600 --seed 42 --record bot.rpl
  ranger sim --replay run.rpl`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to run (0 = until input runs out)")
	simCmd.Flags().StringVar(&flagSimReplay, "replay", "", "Drive the run from a recording")
	simCmd.Flags().StringVar(&flagSimRecord, "record", "", "Record the autopilot input to file")
}

func runSim(cmd *cobra.Command, _ []string) error {
	res, err := simulate(simOptions{
		ConfigDir:  flagConfig,
		Arena:      flagArena,
		Seed:       flagSeed,
		Ticks:      flagTicks,
		ReplayPath: flagSimReplay,
		RecordPath: flagSimRecord,
		LogLevel:   flagLogLevel,
	}, os.Stderr)
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), res)
	return nil
}

type simOptions struct {
	ConfigDir  string
	Arena      string
	Seed       int64
	Ticks      int
	ReplayPath string
	RecordPath string
	LogLevel   string
}

// simResult is the outcome of a headless run
type simResult struct {
	Arena      string
	Seed       int64
	TPS        int
	Ticks      int
	Stats      system.CombatStats
	Health     int
	Enemies    int
	PlayerDead bool
}

func simulate(opts simOptions, logOut io.Writer) (simResult, error) {
	var data *replay.ReplayData
	if opts.ReplayPath != "" {
		var err error
		if data, err = replay.Load(opts.ReplayPath); err != nil {
			return simResult{}, err
		}
		if data.Arena != "" {
			opts.Arena = data.Arena
		}
	}

	s, err := newSession(opts.ConfigDir, opts.Arena, opts.LogLevel, logOut)
	if err != nil {
		return simResult{}, err
	}

	seed := resolveSeed(opts.Seed)
	if data != nil {
		seed = data.Seed
		s.useReplayRate(data)
	}
	sim := system.NewSimulation(s.game, s.arena, seed, s.logger)

	var source system.InputSource = system.NewAutoPilot(sim)
	if data != nil {
		source = replay.NewReplayer(*data)
	}

	var rec *replay.Recorder
	if opts.RecordPath != "" {
		rec = replay.NewRecorder(seed, s.arenaName, s.game.Display.TPS)
		source = &recordingSource{source: source, recorder: rec}
	}

	last := sim.Run(source, opts.Ticks)
	s.logger.Debug("simulation finished", "ticks", sim.Tick(), "lastTick", last.Tick)

	if rec != nil {
		if err := rec.Save(opts.RecordPath); err != nil {
			return simResult{}, err
		}
		s.logger.Info("recording saved", "file", opts.RecordPath, "frames", rec.FrameCount())
	}

	w := sim.World
	return simResult{
		Arena:      s.arenaName,
		Seed:       seed,
		TPS:        s.game.Display.TPS,
		Ticks:      sim.Tick(),
		Stats:      sim.Stats(),
		Health:     w.Health[w.PlayerID].Current,
		Enemies:    w.CountEnemies(),
		PlayerDead: last.PlayerDead,
	}, nil
}

// recordingSource records every input it hands out
type recordingSource struct {
	source   system.InputSource
	recorder *replay.Recorder
}

func (r *recordingSource) Next() (ecs.InputState, bool) {
	input, ok := r.source.Next()
	if ok {
		r.recorder.RecordFrame(input)
	}
	return input, ok
}

func printSummary(w io.Writer, res simResult) {
	outcome := "survived"
	if res.PlayerDead {
		outcome = "died"
	}

	fmt.Fprintf(w, "Simulation - %s\n", res.Arena)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s %d\n", "Seed", res.Seed)
	fmt.Fprintf(w, "  %-10s %d\n", "Ticks", res.Ticks)
	fmt.Fprintf(w, "  %-10s %s (%d hp)\n", "Player", outcome, res.Health)
	fmt.Fprintf(w, "  %-10s %d\n", "Shots", res.Stats.Shots)
	fmt.Fprintf(w, "  %-10s %d\n", "Hits", res.Stats.Hits)
	fmt.Fprintf(w, "  %-10s %d\n", "Kills", res.Stats.Kills)
	fmt.Fprintf(w, "  %-10s %d\n", "Spawned", res.Stats.Spawned)
	fmt.Fprintf(w, "  %-10s %d\n", "Enemies", res.Enemies)
	fmt.Fprintf(w, "  %-10s %d\n", "Damage", res.Stats.DamageTaken)
}
