package tinsel

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
)

// Show is the top-level object that owns the state machine, the transition
// engine, the motion layer and the timers that move the presentation along.
// All methods must be called from the frame goroutine.
type Show struct {
	cfg Config
	rng *rand.Rand

	machine   *Machine
	engine    *Engine
	motion    *Motion
	pool      *Pool
	ornaments *OrnamentSet
	gallery   *Gallery

	timers     Timers
	stateTimer *Timer
	view       Viewpoint
	clock      float64

	logger *log.Logger
	debug  bool

	frame Frame
}

// NewShow builds a show in StateIntro with particles scattered widely.
// The config is assumed valid; see Config.Validate.
func NewShow(cfg Config) *Show {
	rng := NewRand(cfg.Seed)
	s := &Show{
		cfg:       cfg,
		rng:       rng,
		machine:   NewMachine(cfg.Countdown),
		motion:    NewMotion(),
		pool:      NewPool(rng, cfg.Particles, Scatter(rng, cfg.Particles, IntroScatterRange)),
		ornaments: NewOrnamentSet(rng, cfg.Ornaments),
		gallery:   NewGallery(),
		logger:    NewLogger(nil, log.InfoLevel),
	}
	s.engine = NewEngine(rng, s.pool, s.ornaments, s.gallery, s.motion, s.labelFor)
	s.engine.AnnounceLabel = cfg.Announce
	s.machine.OnChange(s.changed)
	return s
}

// SetLogger replaces the show's logger.
func (s *Show) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Logger returns the show's logger.
func (s *Show) Logger() *log.Logger {
	return s.logger
}

// SetViewpoint sets the position photos turn to face while scattered.
func (s *Show) SetViewpoint(v Viewpoint) {
	s.view = v
}

// --- Commands ---

// Start begins the countdown.
func (s *Show) Start() error {
	return s.machine.Start()
}

// ToggleMode flips between the assembled tree and the scattered cloud.
func (s *Show) ToggleMode() error {
	return s.machine.ToggleMode()
}

// SelectPhoto enlarges the photo with the given id.
func (s *Show) SelectPhoto(id string) error {
	return s.machine.SelectPhoto(id)
}

// SelectPhotoIndex enlarges the i-th photo in insertion order.
func (s *Show) SelectPhotoIndex(i int) error {
	planes := s.gallery.Planes()
	if i < 0 || i >= len(planes) {
		return fmt.Errorf("select photo %d of %d: %w", i, len(planes), ErrInvalidCommand)
	}
	return s.machine.SelectPhoto(planes[i].ID)
}

// ClosePhoto returns from the enlarged photo to the scattered layout.
func (s *Show) ClosePhoto() error {
	return s.machine.ClosePhoto()
}

// AddPhoto registers an image and returns the new photo with its generated id.
func (s *Show) AddPhoto(image any) Photo {
	p := s.gallery.Add(image)
	s.logger.Debug("photo added", "id", p.ID, "count", s.gallery.Len())
	s.engine.PhotoAdded(s.machine.Snapshot())
	return p
}

// Close cancels every pending timer. The show stays readable but no longer
// advances on its own.
func (s *Show) Close() {
	s.timers.StopAll()
	s.stateTimer = nil
}

// --- Queries ---

// Snapshot returns the current presentation state.
func (s *Show) Snapshot() Snapshot { return s.machine.Snapshot() }

// State returns the current presentation state.
func (s *Show) State() State { return s.machine.State() }

// Mode returns the current display mode.
func (s *Show) Mode() DisplayMode { return s.machine.Mode() }

// FocusedID returns the focused photo id, or "".
func (s *Show) FocusedID() string { return s.machine.FocusedID() }

// Label returns the countdown label currently spelled, or "".
func (s *Show) Label() string {
	if s.machine.State() != StateCountdown {
		return ""
	}
	return s.machine.Label()
}

// Photos returns the photo list in insertion order.
func (s *Show) Photos() []Photo { return s.gallery.Photos() }

// GalleryVisible reports whether the UI should offer the photo gallery.
func (s *Show) GalleryVisible() bool {
	return s.machine.Snapshot().InMode(ModeScattered)
}

// Busy reports whether any transition tween is running.
func (s *Show) Busy() bool { return s.engine.Busy() }

// Elapsed returns the show clock in seconds.
func (s *Show) Elapsed() float64 { return s.clock }

// Pool returns the particle pool.
func (s *Show) Pool() *Pool { return s.pool }

// Ornaments returns the ornament set.
func (s *Show) Ornaments() *OrnamentSet { return s.ornaments }

// Gallery returns the photo gallery.
func (s *Show) Gallery() *Gallery { return s.gallery }

// Motion returns the idle motion layer.
func (s *Show) Motion() *Motion { return s.motion }

// --- Frame loop ---

// Update advances the show by dt seconds: timers first, then transition
// tweens, then idle motion.
func (s *Show) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.clock += dt
	s.timers.Advance(dt)
	s.engine.Update(float32(dt))
	s.motion.Update(FrameInput{T: s.clock, DT: dt}, s.machine.Snapshot(), s.pool, s.gallery, s.view)

	if s.debug {
		s.debugLog(frameStats{
			updateTime: time.Since(t0),
			particles:  s.pool.Len(),
			timers:     s.timers.Len(),
			busy:       s.engine.Busy(),
		})
	}
}

func (s *Show) labelFor(snap Snapshot) string {
	labels := s.machine.Labels()
	if snap.CountdownIndex < 0 || snap.CountdownIndex >= len(labels) {
		return ""
	}
	return labels[snap.CountdownIndex]
}

// changed runs synchronously inside every machine transition, so the new
// tweens capture their start values before the next frame.
func (s *Show) changed(prev, next Snapshot) {
	s.logger.Debug("state change",
		"from", prev.State, "to", next.State,
		"mode", next.Mode, "index", next.CountdownIndex, "focus", next.FocusedID)

	s.engine.Apply(prev, next)

	if prev.State != next.State || prev.CountdownIndex != next.CountdownIndex {
		s.scheduleFor(next)
	}
}

// scheduleFor replaces the state timer with the one owned by snap's state.
func (s *Show) scheduleFor(snap Snapshot) {
	s.stateTimer.Stop()
	s.stateTimer = nil

	switch snap.State {
	case StateCountdown:
		s.stateTimer = s.timers.After(s.cfg.CountdownInterval, func() { s.fire("tick", s.machine.Tick) })
	case StateTransitionAnnounce:
		s.stateTimer = s.timers.After(s.cfg.AnnounceHold, func() { s.fire("complete announce", s.machine.CompleteAnnounce) })
	case StateTreeAssemble:
		s.stateTimer = s.timers.After(s.cfg.SettleDelay, func() { s.fire("settle", s.machine.Settle) })
	}
}

func (s *Show) fire(name string, fn func() error) {
	if err := fn(); err != nil {
		s.logger.Warn("timer ignored", "timer", name, "err", err)
	}
}
