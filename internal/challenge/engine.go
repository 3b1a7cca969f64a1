package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/verte-zerg/sugarcut/internal/store"
)

// Store keys for the persisted challenge fields.
const (
	KeyLength    = "challengeType"
	KeyStartDate = "startDate"
	KeyHistory   = "checkInHistory"
)

// Engine owns the challenge state and writes every mutation through to a KV.
// Queries are recomputed from the current state on every call.
type Engine struct {
	mu sync.Mutex

	kv            store.KV
	clock         clockwork.Clock
	loc           *time.Location
	logger        *slog.Logger
	defaultLength Length

	length   Length
	start    time.Time
	hasStart bool
	history  History
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to determine today.
func WithClock(clock clockwork.Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithLocation sets the location whose calendar date is today.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithLogger sets the logger for persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDefaultLength sets the length used on first run. Unsupported values are ignored.
func WithDefaultLength(l Length) Option {
	return func(e *Engine) {
		if l.Valid() {
			e.defaultLength = l
		}
	}
}

// New returns an engine over kv. Call Load before use.
func New(kv store.KV, opts ...Option) *Engine {
	e := &Engine{
		kv:            kv,
		clock:         clockwork.NewRealClock(),
		loc:           time.Local,
		logger:        slog.Default(),
		defaultLength: Length21,
		length:        Length21,
		history:       History{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.length = e.defaultLength
	return e
}

// Load reads the persisted state. Unreadable fields fall back to their
// defaults and are logged; they never abort loading the others. When no
// length was ever stored, a default challenge starting today is initialized
// and persisted; the returned error reports a failure of that write only.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.length = e.defaultLength
	e.start = time.Time{}
	e.hasStart = false
	e.history = History{}

	var initErr error
	initialized := false
	raw, ok, err := e.kv.Load(ctx, KeyLength)
	switch {
	case err != nil:
		e.readFailure(KeyLength, err)
	case !ok:
		initErr = e.initializeLocked(ctx, e.defaultLength)
		initialized = true
	default:
		length, perr := ParseLength(raw)
		if perr != nil {
			e.readFailure(KeyLength, perr)
		} else {
			e.length = length
		}
	}

	if !initialized {
		e.loadStartDate(ctx)
	}
	e.loadHistory(ctx)
	return initErr
}

func (e *Engine) loadStartDate(ctx context.Context) {
	raw, ok, err := e.kv.Load(ctx, KeyStartDate)
	if err != nil {
		e.readFailure(KeyStartDate, err)
		return
	}
	if !ok {
		return
	}
	start, err := ParseDate(raw)
	if err != nil {
		e.readFailure(KeyStartDate, err)
		return
	}
	e.start = start
	e.hasStart = true
}

func (e *Engine) loadHistory(ctx context.Context) {
	raw, ok, err := e.kv.Load(ctx, KeyHistory)
	if err != nil {
		e.readFailure(KeyHistory, err)
		return
	}
	if !ok {
		return
	}
	h, err := decodeHistory(raw)
	if err != nil {
		e.readFailure(KeyHistory, err)
		return
	}
	e.history = h
}

// Initialize starts a challenge of the given length today. History is kept.
func (e *Engine) Initialize(ctx context.Context, length Length) error {
	if !length.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initializeLocked(ctx, length)
}

func (e *Engine) initializeLocked(ctx context.Context, length Length) error {
	e.length = length
	e.start = e.today()
	e.hasStart = true
	return errors.Join(
		e.save(ctx, KeyLength, length.String()),
		e.save(ctx, KeyStartDate, FormatDate(e.start)),
	)
}

// Reset wipes the history and restarts the challenge today. A zero length
// keeps the current one.
func (e *Engine) Reset(ctx context.Context, length Length) error {
	if length != 0 && !length.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if length == 0 {
		length = e.length
	}
	if !length.Valid() {
		length = Length21
	}
	e.length = length
	e.start = e.today()
	e.hasStart = true
	e.history = History{}

	return errors.Join(
		e.save(ctx, KeyLength, length.String()),
		e.save(ctx, KeyStartDate, FormatDate(e.start)),
		e.saveHistory(ctx),
	)
}

// CheckIn marks today as done. Checking in twice on the same day writes nothing.
// A challenge that was never started is initialized first.
func (e *Engine) CheckIn(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var initErr error
	if !e.hasStart {
		e.logger.Warn("check-in without a started challenge, starting one today",
			slog.Int("length", int(e.length)))
		length := e.length
		if !length.Valid() {
			length = e.defaultLength
		}
		initErr = e.initializeLocked(ctx, length)
	}

	today := e.today()
	if e.history.Has(today) {
		return initErr
	}
	e.history[FormatDate(today)] = true
	return errors.Join(initErr, e.saveHistory(ctx))
}

// CurrentStreak returns the number of consecutive checked-in days from the
// start date, granting grace for today. It is 0 before any challenge starts.
func (e *Engine) CurrentStreak() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.streakLocked()
}

func (e *Engine) streakLocked() int {
	if !e.hasStart {
		return 0
	}
	return Streak(e.start, e.today(), e.history)
}

// IsCheckedInToday reports whether today has a check-in.
func (e *Engine) IsCheckedInToday() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Has(e.today())
}

// TotalCompletedDays counts every checked-in day in the history.
func (e *Engine) TotalCompletedDays() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Completed()
}

// Length returns the current challenge length.
func (e *Engine) Length() Length {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.length
}

// StartDate returns the start date and whether a challenge has started.
func (e *Engine) StartDate() (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.start, e.hasStart
}

// History returns a copy of the check-in history.
func (e *Engine) History() History {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Clone()
}

// Today returns the engine's current calendar date.
func (e *Engine) Today() time.Time {
	return e.today()
}

// Progress returns a derived snapshot of the challenge.
func (e *Engine) Progress() Progress {
	e.mu.Lock()
	defer e.mu.Unlock()

	today := e.today()
	streak := e.streakLocked()
	return Progress{
		Length:         e.length,
		StartDate:      e.start,
		Started:        e.hasStart,
		Today:          today,
		Streak:         streak,
		TotalCompleted: e.history.Completed(),
		CheckedInToday: e.history.Has(today),
		Percentage:     Percentage(streak, e.length),
		DaysRemaining:  DaysRemaining(streak, e.length),
		Milestones:     Milestones(streak, e.length),
	}
}

func (e *Engine) today() time.Time {
	return CivilDate(e.clock.Now().In(e.loc))
}

func (e *Engine) saveHistory(ctx context.Context) error {
	raw, err := encodeHistory(e.history)
	if err != nil {
		return e.writeFailure(KeyHistory, err)
	}
	return e.save(ctx, KeyHistory, raw)
}

func (e *Engine) save(ctx context.Context, key, value string) error {
	if err := e.kv.Save(ctx, key, value); err != nil {
		return e.writeFailure(key, err)
	}
	return nil
}

func (e *Engine) readFailure(key string, err error) {
	e.logger.Warn("failed to read challenge field, using default",
		slog.String("key", key), slog.String("error", err.Error()))
}

func (e *Engine) writeFailure(key string, err error) error {
	e.logger.Error("failed to persist challenge field",
		slog.String("key", key), slog.String("error", err.Error()))
	return &PersistError{Op: "save", Key: key, Err: err}
}
