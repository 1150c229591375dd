package ui

import (
	"time"

	"life-tiles/internal/core"
	"life-tiles/pkg/presets"
	"life-tiles/pkg/session"
)

// Action names a control a presentation layer can trigger.
type Action string

const (
	ActionToggleRun    Action = "toggle-run"
	ActionStep         Action = "step"
	ActionUndo         Action = "undo"
	ActionRedo         Action = "redo"
	ActionClear        Action = "clear"
	ActionFill         Action = "fill"
	ActionInvert       Action = "invert"
	ActionRandom       Action = "random"
	ActionFaster       Action = "faster"
	ActionSlower       Action = "slower"
	ActionPresetPrefix Action = "preset:"
)

// PresetAction returns the action that loads the named preset.
func PresetAction(name string) Action { return ActionPresetPrefix + Action(name) }

// Controls lists the buttons in display order.
var Controls = []Action{
	ActionToggleRun, ActionStep, ActionUndo, ActionRedo,
	ActionClear, ActionFill, ActionInvert, ActionRandom,
	ActionSlower, ActionFaster,
}

// Label returns the button caption for a, given the run state.
func Label(a Action, running bool) string {
	switch a {
	case ActionToggleRun:
		if running {
			return "Stop"
		}
		return "Start"
	case ActionStep:
		return "Step"
	case ActionUndo:
		return "Back"
	case ActionRedo:
		return "Forward"
	case ActionClear:
		return "Clear"
	case ActionFill:
		return "Fill"
	case ActionInvert:
		return "Invert"
	case ActionRandom:
		return "Random"
	case ActionFaster:
		return "Faster"
	case ActionSlower:
		return "Slower"
	}
	if name, ok := presetName(a); ok {
		return name
	}
	return string(a)
}

// Apply runs a against the session. seed supplies the random fill seed.
// Unknown actions report false.
func Apply(s *session.Session, a Action, seed func() int64) bool {
	switch a {
	case ActionToggleRun:
		s.ToggleRunning()
	case ActionStep:
		s.Step()
	case ActionUndo:
		s.Undo()
	case ActionRedo:
		s.Redo()
	case ActionClear:
		s.Clear()
	case ActionFill:
		s.Fill()
	case ActionInvert:
		s.Invert()
	case ActionRandom:
		if seed == nil {
			seed = func() int64 { return time.Now().UnixNano() }
		}
		s.Randomize(seed())
	case ActionFaster:
		s.SetInterval(core.NudgeInterval(s.Interval(), -1))
	case ActionSlower:
		s.SetInterval(core.NudgeInterval(s.Interval(), 1))
	default:
		name, ok := presetName(a)
		if !ok {
			return false
		}
		return s.PlacePreset(name)
	}
	return true
}

// PresetActions returns one action per preset, in menu order.
func PresetActions() []Action {
	names := presets.Names()
	out := make([]Action, len(names))
	for i, name := range names {
		out[i] = PresetAction(name)
	}
	return out
}

func presetName(a Action) (string, bool) {
	prefix := string(ActionPresetPrefix)
	if len(a) <= len(prefix) || string(a[:len(prefix)]) != prefix {
		return "", false
	}
	return string(a[len(prefix):]), true
}
