package tinsel

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a show script.
type scriptStep struct {
	Action string `json:"action"`
	Label  string `json:"label,omitempty"`
	Path   string `json:"path,omitempty"`
	Index  int    `json:"index,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// showScript is the top-level JSON structure for a show script.
type showScript struct {
	Steps []scriptStep `json:"steps"`
}

// scriptHost is what a script drives: the show plus the window-level
// abilities a script can ask for.
type scriptHost interface {
	Show() *Show
	Screenshot(label string)
	LoadPhoto(path string) (any, error)
}

// ScriptRunner plays a scripted sequence of commands, one step per frame,
// for demos and automated visual checks. Attach via RunConfig.Script.
//
// Actions: start, toggle, select (index), close, add (path), wait (frames),
// screenshot (label).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON show script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script showScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "start", "toggle", "select", "close", "add", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Command errors are logged and do
// not stop the script.
func (r *ScriptRunner) step(h scriptHost) {
	if r.done {
		return
	}
	// Count down wait frames.
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

	s := h.Show()
	var err error
	switch st.Action {
	case "start":
		err = s.Start()
	case "toggle":
		err = s.ToggleMode()
	case "select":
		err = s.SelectPhotoIndex(st.Index)
	case "close":
		err = s.ClosePhoto()
	case "add":
		var img any
		if img, err = h.LoadPhoto(st.Path); err == nil {
			s.AddPhoto(img)
		}
	case "screenshot":
		h.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	if err != nil {
		s.Logger().Warn("script step failed", "step", r.cursor-1, "action", st.Action, "err", err)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
