package drop

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Key    string  `yaml:"key,omitempty"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level document of an input script.
type script struct {
	ExitWhenDone bool         `yaml:"exitWhenDone"`
	Steps        []scriptStep `yaml:"steps"`
}

// ScriptRunner replays a scripted sequence of key holds, pointer events,
// waits, and screenshots, one step per frame. Attach to a Game with
// SetScript; the runner then replaces the game's input source.
type ScriptRunner struct {
	steps        []scriptStep
	cursor       int
	waitCount    int
	done         bool
	exitWhenDone bool
	input        *ScriptedInput
}

// LoadScript parses an input script written in YAML or JSON. dt is the frame
// duration reported to the game while the script runs.
func LoadScript(data []byte, dt float64) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{
		steps:        sc.Steps,
		exitWhenDone: sc.ExitWhenDone,
		input:        NewScriptedInput(dt),
	}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "hold", "release":
		if _, ok := parseKey(st.Key); !ok {
			return fmt.Errorf("%s: unknown key %q", st.Action, st.Key)
		}
	case "press", "release_pointer", "tap", "drag", "wait", "screenshot":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Input returns the input source the runner drives.
func (r *ScriptRunner) Input() *ScriptedInput {
	return r.input
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update before the
// game reads input.
func (r *ScriptRunner) step(g *Game) {
	r.input.Advance()

	if r.done {
		return
	}
	// Wait for pending pointer events to drain before advancing.
	if r.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "hold":
		k, _ := parseKey(st.Key)
		r.input.Hold(k)
	case "release":
		k, _ := parseKey(st.Key)
		r.input.Release(k)
	case "press":
		r.input.InjectPress(st.X, st.Y)
	case "release_pointer":
		r.input.InjectRelease(st.X, st.Y)
	case "tap":
		r.input.InjectTap(st.X, st.Y)
	case "drag":
		r.input.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.input.Pending() == 0 {
		r.done = true
	}
}
