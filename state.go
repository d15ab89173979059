package tinsel

import (
	"errors"
	"fmt"
)

// State is the active phase of the show.
type State uint8

const (
	StateIntro              State = iota // waiting for start
	StateCountdown                       // particles spell each countdown label
	StateTransitionAnnounce              // particles spell the announcement
	StateTreeAssemble                    // particles gather into the tree
	StateInteractiveTree                 // steady state; DisplayMode applies
)

var stateNames = [...]string{"Intro", "Countdown", "TransitionAnnounce", "TreeAssemble", "InteractiveTree"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// DisplayMode selects the photo layout inside StateInteractiveTree. It is
// ignored in every other state.
type DisplayMode uint8

const (
	ModeCompact    DisplayMode = iota // tree assembled, photos hidden
	ModeScattered                     // cloud of particles, photos orbiting
	ModePhotoFocus                    // one photo enlarged in front of the camera
)

var modeNames = [...]string{"Compact", "Scattered", "PhotoFocus"}

func (m DisplayMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("DisplayMode(%d)", uint8(m))
}

// ErrInvalidCommand is returned when a command is not valid in the current
// state. The machine is left unchanged.
var ErrInvalidCommand = errors.New("invalid command")

// Snapshot is an immutable view of the machine.
type Snapshot struct {
	State          State
	Mode           DisplayMode
	CountdownIndex int
	FocusedID      string
}

// TreeConfiguration reports whether particles and ornaments form the tree.
func (s Snapshot) TreeConfiguration() bool {
	return s.State == StateTreeAssemble ||
		(s.State == StateInteractiveTree && s.Mode == ModeCompact)
}

// Emphasized reports whether the particles spell a label.
func (s Snapshot) Emphasized() bool {
	return s.State == StateCountdown || s.State == StateTransitionAnnounce
}

// InMode reports whether the show is interactive and in mode m.
func (s Snapshot) InMode(m DisplayMode) bool {
	return s.State == StateInteractiveTree && s.Mode == m
}

// Machine tracks the presentation state. It is not safe for concurrent use;
// all commands are expected on the frame goroutine.
type Machine struct {
	labels   []string
	snap     Snapshot
	onChange func(prev, next Snapshot)
}

// NewMachine creates a machine in StateIntro that counts down through labels.
func NewMachine(labels []string) *Machine {
	return &Machine{
		labels: append([]string(nil), labels...),
		snap:   Snapshot{State: StateIntro, CountdownIndex: -1},
	}
}

// OnChange registers fn to be called synchronously after every successful
// transition, including countdown index changes. Replaces any previous
// observer.
func (m *Machine) OnChange(fn func(prev, next Snapshot)) {
	m.onChange = fn
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot { return m.snap }

// State returns the current presentation state.
func (m *Machine) State() State { return m.snap.State }

// Mode returns the current display mode. Meaningful only in StateInteractiveTree.
func (m *Machine) Mode() DisplayMode { return m.snap.Mode }

// CountdownIndex returns the position in the label sequence, or -1 before Start.
func (m *Machine) CountdownIndex() int { return m.snap.CountdownIndex }

// FocusedID returns the id of the focused photo, or "".
func (m *Machine) FocusedID() string { return m.snap.FocusedID }

// Labels returns the countdown sequence.
func (m *Machine) Labels() []string { return m.labels }

// Label returns the countdown label for the current index, or "".
func (m *Machine) Label() string {
	i := m.snap.CountdownIndex
	if i < 0 || i >= len(m.labels) {
		return ""
	}
	return m.labels[i]
}

// Start leaves the intro and begins the countdown at index 0.
func (m *Machine) Start() error {
	if err := m.require("start", StateIntro); err != nil {
		return err
	}
	next := m.snap
	next.State = StateCountdown
	next.CountdownIndex = 0
	m.set(next)
	return nil
}

// Tick advances the countdown. On the last label the next tick moves to
// StateTransitionAnnounce.
func (m *Machine) Tick() error {
	if err := m.require("tick", StateCountdown); err != nil {
		return err
	}
	next := m.snap
	if next.CountdownIndex < len(m.labels)-1 {
		next.CountdownIndex++
	} else {
		next.State = StateTransitionAnnounce
	}
	m.set(next)
	return nil
}

// CompleteAnnounce signals that the announcement has finished playing.
func (m *Machine) CompleteAnnounce() error {
	if err := m.require("complete announce", StateTransitionAnnounce); err != nil {
		return err
	}
	next := m.snap
	next.State = StateTreeAssemble
	m.set(next)
	return nil
}

// Settle enters the interactive steady state with the tree assembled.
func (m *Machine) Settle() error {
	if err := m.require("settle", StateTreeAssemble); err != nil {
		return err
	}
	m.set(Snapshot{
		State:          StateInteractiveTree,
		Mode:           ModeCompact,
		CountdownIndex: m.snap.CountdownIndex,
	})
	return nil
}

// ToggleMode switches between Compact and Scattered. From PhotoFocus it
// returns to Compact. Focus is always cleared.
func (m *Machine) ToggleMode() error {
	if err := m.require("toggle mode", StateInteractiveTree); err != nil {
		return err
	}
	next := m.snap
	if next.Mode == ModeCompact {
		next.Mode = ModeScattered
	} else {
		next.Mode = ModeCompact
	}
	next.FocusedID = ""
	m.set(next)
	return nil
}

// SelectPhoto focuses the photo with the given id. Photos are hidden in
// Compact mode, so selection is rejected there.
func (m *Machine) SelectPhoto(id string) error {
	if err := m.require("select photo", StateInteractiveTree); err != nil {
		return err
	}
	if m.snap.Mode == ModeCompact {
		return fmt.Errorf("select photo in %s mode: %w", m.snap.Mode, ErrInvalidCommand)
	}
	next := m.snap
	next.Mode = ModePhotoFocus
	next.FocusedID = id
	m.set(next)
	return nil
}

// ClosePhoto leaves PhotoFocus and returns to Scattered.
func (m *Machine) ClosePhoto() error {
	if err := m.require("close photo", StateInteractiveTree); err != nil {
		return err
	}
	if m.snap.Mode != ModePhotoFocus {
		return fmt.Errorf("close photo in %s mode: %w", m.snap.Mode, ErrInvalidCommand)
	}
	next := m.snap
	next.Mode = ModeScattered
	next.FocusedID = ""
	m.set(next)
	return nil
}

func (m *Machine) require(op string, s State) error {
	if m.snap.State != s {
		return fmt.Errorf("%s in state %s: %w", op, m.snap.State, ErrInvalidCommand)
	}
	return nil
}

func (m *Machine) set(next Snapshot) {
	prev := m.snap
	m.snap = next
	if m.onChange != nil {
		m.onChange(prev, next)
	}
}
