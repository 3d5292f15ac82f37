package gale

import "testing"

func newTestScene(t *testing.T) (*Scene, *Env) {
	t.Helper()
	env := NewEnv(1)
	s := NewScene()
	s.Populate()
	t.Cleanup(func() { s.Clear(env) })
	return s, env
}

func TestHandleKeySelect(t *testing.T) {
	s, env := newTestScene(t)
	if got := HandleKey('2', s, env); got != ActionSelect {
		t.Fatalf("action = %v, want select", got)
	}
	if env.SelectedWindmill != 2 {
		t.Errorf("selection = %d, want 2", env.SelectedWindmill)
	}
}

func TestHandleKeySelectOutOfRangeIsNoOp(t *testing.T) {
	s, env := newTestScene(t)
	env.SelectedWindmill = 2
	if got := HandleKey('5', s, env); got != ActionNone {
		t.Fatalf("action = %v, want none", got)
	}
	if env.SelectedWindmill != 2 {
		t.Errorf("selection = %d, want unchanged 2", env.SelectedWindmill)
	}
}

func TestHandleKeySpeedAdjust(t *testing.T) {
	s, env := newTestScene(t)
	env.SelectedWindmill = 2

	if got := HandleKey('+', s, env); got != ActionSpeedUp {
		t.Fatalf("action = %v, want speed_up", got)
	}
	if got := s.Windmills()[1].Speed(); got != 2.5 {
		t.Errorf("speed = %v, want 2.5", got)
	}

	if got := HandleKey('-', s, env); got != ActionSpeedDown {
		t.Fatalf("action = %v, want speed_down", got)
	}
	if got := s.Windmills()[1].Speed(); got != 2.0 {
		t.Errorf("speed = %v, want 2.0", got)
	}

	// '=' and '_' are the unshifted/shifted aliases.
	if got := HandleKey('=', s, env); got != ActionSpeedUp {
		t.Errorf("action for '=' = %v, want speed_up", got)
	}
	if got := HandleKey('_', s, env); got != ActionSpeedDown {
		t.Errorf("action for '_' = %v, want speed_down", got)
	}
}

func TestHandleKeySpeedWithoutSelectionIsNoOp(t *testing.T) {
	s, env := newTestScene(t)
	env.SelectedWindmill = 0
	if got := HandleKey('+', s, env); got != ActionNone {
		t.Errorf("action = %v, want none", got)
	}
	for i, w := range s.Windmills() {
		if w.Speed() != 2.0 {
			t.Errorf("windmill %d speed = %v, want 2.0", i, w.Speed())
		}
	}
}

func TestHandleKeyDayNight(t *testing.T) {
	s, env := newTestScene(t)
	if got := HandleKey('n', s, env); got != ActionNight {
		t.Fatalf("action = %v, want night", got)
	}
	if env.Day {
		t.Error("day = true, want false")
	}
	if got := HandleKey('d', s, env); got != ActionDay {
		t.Fatalf("action = %v, want day", got)
	}
	if !env.Day {
		t.Error("day = false, want true")
	}
}

func TestHandleKeySpawns(t *testing.T) {
	s, env := newTestScene(t)
	if got := HandleKey('c', s, env); got != ActionAddCloud {
		t.Fatalf("action = %v, want add_cloud", got)
	}
	if len(s.Clouds()) != 4 {
		t.Errorf("clouds = %d, want 4", len(s.Clouds()))
	}
	if got := HandleKey('w', s, env); got != ActionAddWindmill {
		t.Fatalf("action = %v, want add_windmill", got)
	}
	if len(s.Windmills()) != 4 {
		t.Errorf("windmills = %d, want 4", len(s.Windmills()))
	}
	// The new windmill is selectable immediately.
	if got := HandleKey('4', s, env); got != ActionSelect {
		t.Errorf("action = %v, want select", got)
	}
}

func TestHandleKeyToggleRotation(t *testing.T) {
	s, env := newTestScene(t)
	env.SelectedWindmill = 1
	if got := HandleKey('t', s, env); got != ActionToggleRotation {
		t.Fatalf("action = %v, want toggle_rotation", got)
	}
	if s.Windmills()[0].Rotating() {
		t.Error("rotating = true, want false")
	}

	env.SelectedWindmill = 0
	if got := HandleKey('t', s, env); got != ActionNone {
		t.Errorf("action = %v, want none without selection", got)
	}
}

func TestHandleKeyToggles(t *testing.T) {
	s, env := newTestScene(t)
	if got := HandleKey('s', s, env); got != ActionToggleCelestial {
		t.Fatalf("action = %v, want toggle_celestial", got)
	}
	if env.AnimateCelestial {
		t.Error("animateCelestial = true, want false")
	}
	if got := HandleKey('p', s, env); got != ActionTogglePause {
		t.Fatalf("action = %v, want toggle_pause", got)
	}
	if !env.Paused {
		t.Error("paused = false, want true")
	}
	HandleKey('p', s, env)
	if env.Paused {
		t.Error("paused = true, want false after second press")
	}
}

func TestHandleKeyReset(t *testing.T) {
	s, env := newTestScene(t)
	HandleKey('w', s, env)
	HandleKey('c', s, env)
	env.SelectedWindmill = 4

	if got := HandleKey('r', s, env); got != ActionReset {
		t.Fatalf("action = %v, want reset", got)
	}
	if len(s.Windmills()) != 3 || len(s.Clouds()) != 3 {
		t.Errorf("scene = %d windmills / %d clouds, want 3/3",
			len(s.Windmills()), len(s.Clouds()))
	}
	if env.SelectedWindmill != 1 {
		t.Errorf("selection = %d, want 1", env.SelectedWindmill)
	}
}

func TestHandleKeyQuit(t *testing.T) {
	s, env := newTestScene(t)
	if got := HandleKey('q', s, env); got != ActionQuit {
		t.Errorf("action = %v, want quit", got)
	}
	if got := HandleKey(KeyEscape, s, env); got != ActionQuit {
		t.Errorf("action for escape = %v, want quit", got)
	}
}

func TestHandleKeyUnknownIsNoOp(t *testing.T) {
	s, env := newTestScene(t)
	for _, k := range []rune{'x', 'z', '0', ' ', '\n', 'é'} {
		if got := HandleKey(k, s, env); got != ActionNone {
			t.Errorf("action for %q = %v, want none", k, got)
		}
	}
}

func TestHandleKeyUppercaseAliases(t *testing.T) {
	s, env := newTestScene(t)
	if got := HandleKey('N', s, env); got != ActionNight {
		t.Errorf("action for 'N' = %v, want night", got)
	}
	if got := HandleKey('P', s, env); got != ActionTogglePause {
		t.Errorf("action for 'P' = %v, want toggle_pause", got)
	}
	if got := HandleKey('Q', s, env); got != ActionQuit {
		t.Errorf("action for 'Q' = %v, want quit", got)
	}
}

func TestActionString(t *testing.T) {
	if got := ActionAddWindmill.String(); got != "add_windmill" {
		t.Errorf("String = %q, want add_windmill", got)
	}
	if got := Action(200).String(); got != "unknown" {
		t.Errorf("String = %q, want unknown", got)
	}
}
