// Package gale is a real-time 2D windmill scene for [Ebitengine]: rotating
// windmills, drifting clouds, and a sun/moon, animated at a fixed 60 Hz
// tick and driven entirely by single-key commands.
//
// # Quick start
//
//	scene := gale.NewScene()
//	scene.Populate()
//	env := gale.NewEnv(seed)
//
//	game := gale.NewGame(gale.GameConfig{
//		Scene: scene, Env: env, ShowHUD: true,
//	})
//	ebiten.RunGame(game)
//
// # Model
//
// Every scene member implements [Entity]: a position, a visibility flag, a
// per-tick Update, and a self-Draw against the [Surface] primitive sink.
// [Scene] owns the entities exclusively and runs all updates, then all
// draws, in insertion order each frame. Process-wide mode flags (day/night,
// pause, celestial animation, windmill selection) live in [Env] and are
// passed explicitly, so the whole simulation is deterministic under a fixed
// seed and key sequence, and testable without a display via [Recorder].
//
// # Controls
//
// Digits 1-9 select a windmill; +/- adjust its speed; d/n switch day and
// night; c and w spawn a cloud or windmill; t stops or restarts the
// selected rotor; s toggles the sun/moon animation; p pauses; r resets the
// scene to the start layout; q or escape quits.
//
// [Ebitengine]: https://ebitengine.org
package gale
