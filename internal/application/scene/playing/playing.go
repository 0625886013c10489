// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/ranger/internal/application/game"
	"github.com/younwookim/ranger/internal/application/replay"
	"github.com/younwookim/ranger/internal/application/scene"
	"github.com/younwookim/ranger/internal/application/state"
	"github.com/younwookim/ranger/internal/application/system"
	"github.com/younwookim/ranger/internal/domain/physics"
	"github.com/younwookim/ranger/internal/ecs"
)

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGrid      = color.RGBA{40, 90, 40, 255}
	colorObstacle  = color.RGBA{80, 80, 100, 255}
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorEnemy     = color.RGBA{200, 100, 100, 255}
	colorBullet    = color.RGBA{255, 200, 100, 255}
	colorFacing    = color.RGBA{255, 255, 255, 255}
	colorHit       = color.RGBA{255, 0, 0, 255}
	colorClear     = color.RGBA{0, 255, 0, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorHurtFlash = color.RGBA{120, 0, 0, 60}
)

const hurtFlash = 0.2 // seconds

// Options configures a Playing scene
type Options struct {
	// Source replaces live input, e.g. with a replay
	Source system.InputSource
	// RecordPath enables recording; the file is written on game over and exit
	RecordPath string
	// Arena is the arena name stored in recordings
	Arena string
}

// Playing is the main gameplay scene
type Playing struct {
	sim         *system.Simulation
	inputSystem *system.InputSystem
	source      system.InputSource
	replaying   bool
	state       state.GameState
	logger      *log.Logger
	screenW     int
	screenH     int

	hurtTimer float32

	arenaName      string
	recorder       *replay.Recorder
	recordFilename string
}

// New creates a new Playing scene around a simulation.
// If opts.RecordPath is not empty, gameplay will be recorded.
func New(sim *system.Simulation, logger *log.Logger, opts Options) *Playing {
	cfg := sim.Config()

	p := &Playing{
		sim:            sim,
		inputSystem:    system.NewInputSystem(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight),
		state:          state.StatePlaying,
		logger:         logger,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		arenaName:      opts.Arena,
		recordFilename: opts.RecordPath,
	}

	p.source = p.inputSystem
	if opts.Source != nil {
		p.source = opts.Source
		p.replaying = true
	}

	if p.recordFilename != "" && !p.replaying {
		p.recorder = replay.NewRecorder(sim.Seed(), p.arenaName, cfg.Display.TPS)
		logger.Info("recording enabled", "file", p.recordFilename, "seed", sim.Seed())
	}

	p.bindCombat()
	return p
}

func (p *Playing) bindCombat() {
	p.sim.Combat.OnPlayerHit = func(int) {
		p.hurtTimer = hurtFlash
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float32) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.state.Transition(state.EventTogglePause)
			return nil, nil
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
		p.Tick()
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = p.state.Transition(state.EventTogglePause)
		}
	case state.StateGameOver, state.StateReplayEnded:
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return nil, game.ErrQuit
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// Tick runs one simulation step with the next input
func (p *Playing) Tick() {
	if !p.state.Running() {
		return
	}

	input, ok := p.source.Next()
	if !ok {
		p.state = p.state.Transition(state.EventInputExhausted)
		p.logger.Info("replay finished", "ticks", p.sim.Tick())
		return
	}

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.hurtTimer = float32(math.Max(0, float64(p.hurtTimer-p.sim.DT())))
	report := p.sim.Step(input)

	if report.PlayerDead {
		p.state = p.state.Transition(state.EventPlayerDied)
		stats := p.sim.Stats()
		p.logger.Info("game over", "tick", report.Tick, "kills", stats.Kills, "shots", stats.Shots)
		p.saveRecording()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrEmpty):
		return
	case err != nil:
		p.logger.Error("failed to save recording", "file", filename, "error", err)
	default:
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	seed := time.Now().UnixNano()
	if r, ok := p.source.(*replay.Replayer); ok {
		r.Reset()
		seed = r.Seed()
	}

	p.sim.Reset(seed)
	p.bindCombat()
	p.hurtTimer = 0
	p.state = p.state.Transition(state.EventRestart)

	if p.recorder != nil {
		p.recorder = replay.NewRecorder(seed, p.arenaName, p.sim.Config().Display.TPS)
		p.logger.Info("recording restarted", "seed", seed)
	}
}

// State returns the current game state
func (p *Playing) State() state.GameState {
	return p.state
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	debug := p.sim.Config().Debug
	if debug.Grid {
		p.drawGrid(screen)
	}

	w := p.sim.World
	p.drawBoxes(screen, w.IsObstacle, colorObstacle)
	p.drawBoxes(screen, w.IsEnemy, colorEnemy)
	p.drawBoxes(screen, w.IsBullet, colorBullet)
	p.drawBoxes(screen, w.IsPlayer, colorPlayer)
	p.drawFacing(screen)

	if debug.Outlines {
		p.drawOutlines(screen)
	}

	if p.hurtTimer > 0 {
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorHurtFlash)
	}

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawEndOverlay(screen, "GAME OVER")
	case state.StateReplayEnded:
		p.drawEndOverlay(screen, "REPLAY FINISHED")
	}
}

func (p *Playing) toScreen(v mgl32.Vec3) (float64, float64) {
	return system.WorldToScreen(v, p.screenW, p.screenH)
}

func (p *Playing) drawGrid(screen *ebiten.Image) {
	for _, field := range p.sim.Arena.Grid.Fields() {
		p.drawOutline(screen, field, colorGrid)
	}
}

func (p *Playing) drawBoxes(screen *ebiten.Image, tag map[ecs.EntityID]struct{}, c color.Color) {
	for id := range tag {
		box := p.sim.World.Box[id]
		x, y := p.toScreen(box.Corners().A)
		ebitenutil.DrawRect(screen, x, y, float64(2*box.HalfWidth), float64(2*box.HalfHeight), c)
	}
}

// drawOutlines draws every box red if it touched something this tick, green otherwise
func (p *Playing) drawOutlines(screen *ebiten.Image) {
	w := p.sim.World
	for id, box := range w.Box {
		c := colorClear
		if w.Collided[id] {
			c = colorHit
		}
		p.drawOutline(screen, box, c)
	}
}

func (p *Playing) drawOutline(screen *ebiten.Image, box physics.Box, c color.Color) {
	for _, edge := range box.Corners().Edges() {
		x1, y1 := p.toScreen(edge.From)
		x2, y2 := p.toScreen(edge.To)
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, c)
	}
}

func (p *Playing) drawFacing(screen *ebiten.Image) {
	w := p.sim.World
	id := w.PlayerID
	if id == 0 {
		return
	}

	pos := w.Position[id]
	angle := float64(w.Facing[id].Angle)
	length := float64(w.Box[id].HalfWidth) + 12
	x, y := p.toScreen(pos)
	ebitenutil.DrawLine(screen, x, y, x+math.Cos(angle)*length, y-math.Sin(angle)*length, colorFacing)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	w := p.sim.World

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	health := w.Health[w.PlayerID]
	healthRatio := 0.0
	if health.Max > 0 {
		healthRatio = math.Max(0, float64(health.Current)/float64(health.Max))
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	stats := p.sim.Stats()
	status := fmt.Sprintf("HP %d/%d  Kills %d  Enemies %d  Bullets %d  Tick %d",
		health.Current, health.Max, stats.Kills, w.CountEnemies(), w.CountBullets(), p.sim.Tick())
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-38)

	help := "WASD: Move | LClick: Shoot | ESC: Pause | F5: Save recording"
	if p.replaying {
		help = fmt.Sprintf("REPLAY seed %d | ESC: Pause", p.sim.Seed())
	}
	ebitenutil.DebugPrint(screen, help)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawEndOverlay(screen *ebiten.Image, title string) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	stats := p.sim.Stats()
	text := fmt.Sprintf("%s\n\nKills: %d\nShots: %d\nTicks: %d\n\nPress Z to restart, Q to quit",
		title, stats.Kills, stats.Shots, p.sim.Tick())
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-40)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
