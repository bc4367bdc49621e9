package toast

import (
	"sync"
	"time"
)

// Severity classifies a notification.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

const (
	// dedupWindow: a Show call repeating the same message within this window
	// is ignored (guards against double-submit notification storms).
	dedupWindow = 2000 * time.Millisecond
	// dismissAfter: an accepted toast auto-clears this long after Show.
	dismissAfter = 3000 * time.Millisecond
)

// Store is the process-wide notification state. At most one toast is visible
// and at most one dismiss timer is pending; the last accepted Show wins.
type Store struct {
	mu       sync.Mutex
	message  string
	severity Severity

	lastMessage string
	lastShownAt time.Time
	timer       *time.Timer
	generation  uint64

	dedup   time.Duration
	dismiss time.Duration
	now     func() time.Time

	// onShow, when set, receives every accepted toast (render hook).
	onShow func(message string, severity Severity)
}

// NewStore creates a toast store with the default windows.
func NewStore() *Store {
	return &Store{dedup: dedupWindow, dismiss: dismissAfter, now: time.Now}
}

// OnShow registers a render hook invoked for each accepted Show call,
// with the store lock held (keep it cheap).
func (s *Store) OnShow(fn func(message string, severity Severity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onShow = fn
}

// Show displays a toast. A call repeating the current de-dup message within
// the de-dup window is a no-op: state untouched, timer not reset. Otherwise
// the pending dismiss timer (if any) is replaced and the toast auto-clears
// after the dismiss interval, which also clears the de-dup memory.
func (s *Store) Show(message string, severity Severity) {
	if severity == "" {
		severity = Info
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if message == s.lastMessage && now.Sub(s.lastShownAt) < s.dedup {
		return
	}
	s.lastMessage = message
	s.lastShownAt = now

	if s.timer != nil {
		s.timer.Stop()
	}
	s.message = message
	s.severity = severity
	// Stop does not cancel a callback that already fired and is waiting on
	// the lock; the generation check in expire makes it a no-op.
	s.generation++
	gen := s.generation
	s.timer = time.AfterFunc(s.dismiss, func() { s.expire(gen) })

	if s.onShow != nil {
		s.onShow(message, severity)
	}
}

// Hide clears the toast immediately, cancelling any pending timer and
// resetting the de-dup memory.
func (s *Store) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.message = ""
	s.lastMessage = ""
}

// Current returns the visible toast; ok is false when idle.
func (s *Store) Current() (message string, severity Severity, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == "" {
		return "", "", false
	}
	return s.message, s.severity, true
}

// expire is the timer callback: dismiss the toast and forget the de-dup
// message so an identical message shown later is accepted again. A stale
// callback (superseded by a later accepted Show) must not touch the state.
func (s *Store) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.message = ""
	s.lastMessage = ""
	s.timer = nil
}
