// Command gale runs the windmill scene demo in an ebitengine window.
//
// Usage:
//
//	gale [-config path]
//
// The config path may also come from the GALE_CONFIG environment variable;
// the flag wins. Without a config file the demo runs on defaults.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/phanxgames/gale"
	"github.com/phanxgames/gale/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "path to TOML config (default $GALE_CONFIG or gale.toml)")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		path = os.Getenv("GALE_CONFIG")
	}
	if path == "" {
		path = "gale.toml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	env := gale.NewEnv(seed)
	env.Day = !cfg.Sim.Night
	env.Paused = cfg.Sim.Paused

	scene := gale.NewScene()
	scene.Populate()

	game := gale.NewGame(gale.GameConfig{
		Scene:   scene,
		Env:     env,
		Sky:     gale.NewSky(env.Day),
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		ShowHUD: cfg.Sim.ShowHUD,
		ShowFPS: cfg.Sim.ShowFPS,
		OnAction: func(a gale.Action) {
			logAction(log, a, scene, env)
		},
	})

	log.Info("starting",
		zap.Uint64("seed", seed),
		zap.Int("windmills", len(scene.Windmills())),
		zap.Int("clouds", len(scene.Clouds())),
	)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("stopped")
	return nil
}

// logAction reports an applied key action with whatever context it has.
func logAction(log *zap.Logger, a gale.Action, scene *gale.Scene, env *gale.Env) {
	fields := []zap.Field{zap.Stringer("action", a)}
	switch a {
	case gale.ActionSelect, gale.ActionSpeedUp, gale.ActionSpeedDown, gale.ActionToggleRotation:
		if sel := scene.Selected(env); sel != nil {
			fields = append(fields,
				zap.Int("windmill", env.SelectedWindmill),
				zap.Float64("speed", sel.Speed()),
				zap.Bool("rotating", sel.Rotating()),
			)
		}
	case gale.ActionAddCloud:
		fields = append(fields, zap.Int("clouds", len(scene.Clouds())))
	case gale.ActionAddWindmill:
		fields = append(fields, zap.Int("windmills", len(scene.Windmills())))
	case gale.ActionTogglePause:
		fields = append(fields, zap.Bool("paused", env.Paused))
	case gale.ActionToggleCelestial:
		fields = append(fields, zap.Bool("animate", env.AnimateCelestial))
	}
	log.Info("key", fields...)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
