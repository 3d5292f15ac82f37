package gale

// KeyEscape is the escape key as delivered by the run loop host.
const KeyEscape rune = 0x1b

// Action identifies what a key press did to the simulation. ActionNone
// covers both unbound keys and bound keys whose effect was a no-op
// (selecting a windmill that does not exist, adjusting speed with nothing
// selected).
type Action uint8

const (
	ActionNone Action = iota
	ActionSelect
	ActionSpeedUp
	ActionSpeedDown
	ActionDay
	ActionNight
	ActionAddCloud
	ActionAddWindmill
	ActionToggleRotation
	ActionToggleCelestial
	ActionTogglePause
	ActionReset
	ActionQuit
)

// actionNames is indexed by Action.
var actionNames = [...]string{
	"none",
	"select",
	"speed_up",
	"speed_down",
	"day",
	"night",
	"add_cloud",
	"add_windmill",
	"toggle_rotation",
	"toggle_celestial",
	"toggle_pause",
	"reset",
	"quit",
}

// String returns a stable snake_case name for logging.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// HandleKey applies one discrete key press to the scene and env and
// reports what happened. The mapping is total: every rune is covered and
// the default is ignore. All mutations are synchronous; state is final
// before the next redraw.
//
// Bindings: digits select a windmill by 1-based index, +/- adjust the
// selected windmill's speed, d/n set day/night, c/w spawn a cloud or
// windmill, t toggles the selected windmill's rotation, s toggles the
// sun/moon animation, p pauses, r resets, q/escape quits. Letters are
// case-insensitive.
func HandleKey(key rune, s *Scene, env *Env) Action {
	if key >= 'A' && key <= 'Z' {
		key += 'a' - 'A'
	}

	switch key {
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n := int(key - '0')
		if n > len(s.Windmills()) {
			return ActionNone
		}
		env.SelectedWindmill = n
		return ActionSelect

	case '+', '=':
		sel := s.Selected(env)
		if sel == nil {
			return ActionNone
		}
		sel.IncreaseSpeed()
		return ActionSpeedUp

	case '-', '_':
		sel := s.Selected(env)
		if sel == nil {
			return ActionNone
		}
		sel.DecreaseSpeed()
		return ActionSpeedDown

	case 'd':
		env.Day = true
		return ActionDay

	case 'n':
		env.Day = false
		return ActionNight

	case 'c':
		s.SpawnCloud(env)
		return ActionAddCloud

	case 'w':
		s.SpawnWindmill(env)
		return ActionAddWindmill

	case 't':
		sel := s.Selected(env)
		if sel == nil {
			return ActionNone
		}
		sel.ToggleRotation()
		return ActionToggleRotation

	case 's':
		env.AnimateCelestial = !env.AnimateCelestial
		return ActionToggleCelestial

	case 'p':
		env.Paused = !env.Paused
		return ActionTogglePause

	case 'r':
		s.Reset(env)
		return ActionReset

	case 'q', KeyEscape:
		return ActionQuit
	}

	return ActionNone
}
