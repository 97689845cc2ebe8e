package colorific

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a replay script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Row    *int    `json:"row,omitempty"`
	Col    *int    `json:"col,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a replay script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected clicks, waits and screenshots across
// frames for automated play-throughs. Attach to a Director via
// SetScriptRunner.
//
// Supported actions:
//
//	click      {"x", "y"} in logical pixels, or {"row", "col"} on the board
//	wait       {"frames"}
//	settle     wait until the active board accepts input (or has finished)
//	screenshot {"label"}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadScript parses a JSON replay script and returns a ScriptRunner ready to
// be attached to a Director.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "click":
			if (st.Row == nil) != (st.Col == nil) {
				return nil, fmt.Errorf("parse script: step %d: row and col must be given together", i)
			}
		case "wait", "settle", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called from Update
// before injected input is processed.
func (d *Director) SetScriptRunner(runner *ScriptRunner) {
	d.runner = runner
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(d *Director) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling {
		if b := d.Board(); b != nil && b.Phase() == PhaseSettling {
			return
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if d.screenshot != nil {
			d.screenshot(st.Label)
		}
	case "click":
		if st.Row != nil {
			cfg := DefaultBoardConfig()
			if b := d.Board(); b != nil {
				cfg = b.Config()
			}
			d.InjectCell(cfg, *st.Row, *st.Col)
		} else {
			d.InjectClick(st.X, st.Y)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && len(d.injectQueue) == 0 {
		r.done = true
	}
}
