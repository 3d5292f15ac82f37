package gale

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Default logical resolution, matching the world extent's aspect ratio.
const (
	DefaultWidth  = 1000
	DefaultHeight = 700
)

// keyBindings maps ebiten keys to the rune surface HandleKey speaks. Both
// the digit row and keypad +/- are bound.
var keyBindings = map[ebiten.Key]rune{
	ebiten.KeyDigit1:     '1',
	ebiten.KeyDigit2:     '2',
	ebiten.KeyDigit3:     '3',
	ebiten.KeyDigit4:     '4',
	ebiten.KeyDigit5:     '5',
	ebiten.KeyDigit6:     '6',
	ebiten.KeyDigit7:     '7',
	ebiten.KeyDigit8:     '8',
	ebiten.KeyDigit9:     '9',
	ebiten.KeyEqual:      '+',
	ebiten.KeyKPAdd:      '+',
	ebiten.KeyMinus:      '-',
	ebiten.KeyKPSubtract: '-',
	ebiten.KeyD:          'd',
	ebiten.KeyN:          'n',
	ebiten.KeyC:          'c',
	ebiten.KeyW:          'w',
	ebiten.KeyT:          't',
	ebiten.KeyS:          's',
	ebiten.KeyP:          'p',
	ebiten.KeyR:          'r',
	ebiten.KeyQ:          'q',
	ebiten.KeyEscape:     KeyEscape,
}

// GameConfig configures NewGame. Zero values fall back to defaults; a nil
// Scene/Env/Sky is created fresh (empty scene, day mode).
type GameConfig struct {
	Scene *Scene
	Env   *Env
	Sky   *Sky

	Width  int
	Height int

	ShowHUD bool
	ShowFPS bool

	// OnAction is called for every key press that did something, after the
	// mutation has been applied. Quit is reported before termination.
	OnAction func(Action)
}

// Game ties the simulation to the ebitengine run loop: Update runs the
// edge-detected key dispatch and one fixed-rate simulation tick, Draw
// renders backdrop, scene, and HUD. Draw mutates nothing, so extra draws
// between ticks are harmless.
type Game struct {
	scene *Scene
	env   *Env
	sky   *Sky

	canvas  *Canvas
	width   int
	height  int
	showHUD bool
	showFPS bool

	onAction func(Action)
	pressed  []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// NewGame builds a Game from the config.
func NewGame(cfg GameConfig) *Game {
	g := &Game{
		scene:    cfg.Scene,
		env:      cfg.Env,
		sky:      cfg.Sky,
		canvas:   NewCanvas(),
		width:    cfg.Width,
		height:   cfg.Height,
		showHUD:  cfg.ShowHUD,
		showFPS:  cfg.ShowFPS,
		onAction: cfg.OnAction,
	}
	if g.scene == nil {
		g.scene = NewScene()
	}
	if g.env == nil {
		g.env = NewEnv(1)
	}
	if g.sky == nil {
		g.sky = NewSky(g.env.Day)
	}
	if g.width <= 0 {
		g.width = DefaultWidth
	}
	if g.height <= 0 {
		g.height = DefaultHeight
	}
	return g
}

// Scene returns the game's scene.
func (g *Game) Scene() *Scene {
	return g.scene
}

// Env returns the game's simulation state.
func (g *Game) Env() *Env {
	return g.env
}

// Update implements ebiten.Game: dispatch newly pressed keys, then advance
// every entity one tick, then step the backdrop transition.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	for _, k := range g.pressed {
		key, ok := keyBindings[k]
		if !ok {
			continue
		}
		action := HandleKey(key, g.scene, g.env)
		if action == ActionNone {
			continue
		}
		if g.onAction != nil {
			g.onAction(action)
		}
		if action == ActionQuit {
			return ebiten.Termination
		}
	}

	g.sky.SetDay(g.env.Day)
	g.scene.UpdateAll(g.env)
	g.sky.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.sky.Draw(g.canvas)
	g.scene.DrawAll(g.canvas, g.env)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout implements ebiten.Game with a fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Windmill Scene", 10, 10)

	mode := "Mode: DAY"
	if !g.env.Day {
		mode = "Mode: NIGHT"
	}
	if g.env.Paused {
		mode += " (PAUSED)"
	}
	ebitenutil.DebugPrintAt(screen, mode, 10, 26)

	if sel := g.scene.Selected(g.env); sel != nil {
		status := "ROTATING"
		if !sel.Rotating() {
			status = "STOPPED"
		}
		info := fmt.Sprintf("Windmill #%d: Speed = %.1f | %s",
			g.env.SelectedWindmill, sel.Speed(), status)
		ebitenutil.DebugPrintAt(screen, info, 10, 42)
	}

	if g.showFPS {
		fps := fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, fps, 10, 58)
	}

	controls := "1-9 Select | +/- Speed | D/N Day/Night | C Cloud | W Windmill | " +
		"T Rotate | S Sun | P Pause | R Reset | Q Quit"
	ebitenutil.DebugPrintAt(screen, controls, 10, g.height-22)
}
