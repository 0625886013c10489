// ranger is a top-down arena shooter built around an AABB collision core.
//
// Usage:
//
//	ranger play              - Play in a window
//	ranger replay <file>     - Watch a recorded run
//	ranger sim --ticks N     - Run headless and print a summary
//
// Global flags:
//
//	--config <dir>     - Read game.yaml and arenas/ from dir instead of the embedded set
//	--arena <name>     - Arena to load (default: demo)
//	--seed <value>     - RNG seed (0 = random based on time)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/ranger/internal/application/replay"
	"github.com/younwookim/ranger/internal/application/system"
	"github.com/younwookim/ranger/internal/domain/arena"
	"github.com/younwookim/ranger/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig   string
	flagArena    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ranger",
	Short: "Ranger - a top-down arena shooter",
	Long: `Ranger is a top-down arena shooter. Move with WASD, aim with the mouse
and hold the left button to shoot. Enemies spawn on a timer and chase you.

Examples:
  ranger play
  ranger play --record run.rpl
  ranger replay run.rpl
  ranger sim --ticks 3600 --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagArena, "arena", "demo", "Arena name")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simCmd)
}

// session holds what every command needs before it can build a simulation
type session struct {
	logger    *log.Logger
	game      *config.GameConfig
	arena     *arena.Arena
	arenaName string
}

// newSession loads the configs and the arena and sets up logging
func newSession(configDir, arenaName, level string, logOut io.Writer) (*session, error) {
	logger, err := newLogger(logOut, level)
	if err != nil {
		return nil, err
	}

	loader, err := newLoader(configDir)
	if err != nil {
		return nil, err
	}

	gameCfg, arenaCfg, err := loader.LoadAll(arenaName)
	if err != nil {
		return nil, err
	}

	a := system.LoadArena(arenaCfg, gameCfg)
	logger.Debug("arena loaded", "arena", a.ID, "obstacles", len(a.Obstacles), "spawns", len(a.EnemySpawns))

	return &session{
		logger:    logger,
		game:      gameCfg,
		arena:     a,
		arenaName: arenaName,
	}, nil
}

func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "ranger",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// newLoader reads configs from dir, or from the embedded set when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// useReplayRate runs at the tick rate the recording was made with, so a
// replay steps with the same dt whatever the current config says
func (s *session) useReplayRate(data *replay.ReplayData) {
	if data.TPS <= 0 || data.TPS == s.game.Display.TPS {
		return
	}
	s.logger.Warn("using the recording's tick rate", "tps", data.TPS, "configured", s.game.Display.TPS)
	s.game.Display.TPS = data.TPS
}

func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
