package toast

import (
	"sync/atomic"
	"testing"
	"time"
)

// newTestStore scales the windows down so the timer tests run quickly.
func newTestStore(dedup, dismiss time.Duration) *Store {
	return &Store{dedup: dedup, dismiss: dismiss, now: time.Now}
}

func TestShow_DedupWindowBoundary(t *testing.T) {
	s := NewStore() // real 2000 ms window, driven by a manual clock
	base := time.Now()
	clock := base
	s.now = func() time.Time { return clock }

	var accepted int32
	s.OnShow(func(string, Severity) { atomic.AddInt32(&accepted, 1) })

	s.Show("A", Error)
	clock = base.Add(1999 * time.Millisecond)
	s.Show("A", Error) // inside the window: suppressed
	clock = base.Add(2000 * time.Millisecond)
	s.Show("A", Error) // window elapsed: accepted

	if got := atomic.LoadInt32(&accepted); got != 2 {
		t.Fatalf("accepted shows: want 2, got %d", got)
	}
	s.Hide()
}

func TestShow_DistinctMessageInsideWindowAccepted(t *testing.T) {
	s := NewStore()
	base := time.Now()
	s.now = func() time.Time { return base }

	s.Show("A", Info)
	s.Show("B", Info) // different content: accepted even at the same instant
	if msg, _, ok := s.Current(); !ok || msg != "B" {
		t.Fatalf("want current toast B, got %q ok=%v", msg, ok)
	}
	s.Hide()
}

// show("A") then show("A") 500ms later then show("A") 2500ms after the
// first: exactly the 1st and 3rd are accepted. Windows scaled 10x down.
func TestShow_RepeatScenario(t *testing.T) {
	s := newTestStore(200*time.Millisecond, 300*time.Millisecond)
	var accepted int32
	s.OnShow(func(string, Severity) { atomic.AddInt32(&accepted, 1) })

	s.Show("A", Error)
	time.Sleep(50 * time.Millisecond)
	s.Show("A", Error) // 50ms after first: suppressed
	time.Sleep(200 * time.Millisecond)
	s.Show("A", Error) // 250ms after first: accepted

	if got := atomic.LoadInt32(&accepted); got != 2 {
		t.Fatalf("store must show A exactly twice, got %d", got)
	}
	s.Hide()
}

func TestShow_SuppressedCallDoesNotResetTimer(t *testing.T) {
	s := newTestStore(400*time.Millisecond, 300*time.Millisecond)
	s.Show("A", Info)
	time.Sleep(150 * time.Millisecond)
	s.Show("A", Info) // suppressed; must not extend the dismiss timer
	time.Sleep(250 * time.Millisecond)
	// 400ms after the accepted Show: the 300ms timer has fired
	if _, _, ok := s.Current(); ok {
		t.Fatalf("toast must have auto-dismissed on the original timer")
	}
}

func TestShow_NewMessageReplacesTimer(t *testing.T) {
	s := newTestStore(50*time.Millisecond, 300*time.Millisecond)
	s.Show("A", Info)
	time.Sleep(150 * time.Millisecond)
	s.Show("B", Success) // accepted: timer replaced
	time.Sleep(250 * time.Millisecond)
	// 400ms after A but only 250ms after B: B still visible
	if msg, sev, ok := s.Current(); !ok || msg != "B" || sev != Success {
		t.Fatalf("want B still visible, got %q/%v ok=%v", msg, sev, ok)
	}
	time.Sleep(150 * time.Millisecond)
	if _, _, ok := s.Current(); ok {
		t.Fatalf("B must have auto-dismissed 300ms after its Show")
	}
}

// A dismiss callback that already fired but lost the race against a newer
// accepted Show must not clear the newer toast.
func TestExpire_StaleTimerCannotClearNewerToast(t *testing.T) {
	s := newTestStore(0, time.Hour)
	s.Show("A", Error)
	staleGen := s.generation
	s.Show("B", Success)

	// what the fired-but-parked callback of A's timer would run
	s.expire(staleGen)

	if msg, _, ok := s.Current(); !ok || msg != "B" {
		t.Fatalf("stale timer cleared the newer toast: msg=%q ok=%v", msg, ok)
	}
	// the current generation still dismisses normally
	s.expire(s.generation)
	if _, _, ok := s.Current(); ok {
		t.Fatal("current-generation expiry must dismiss the toast")
	}
}

// A Show landing right at the previous toast's dismiss boundary keeps its
// own full dismiss window even when both callbacks race on the lock.
func TestShow_AtDismissBoundaryKeepsNewToast(t *testing.T) {
	s := newTestStore(0, 50*time.Millisecond)
	s.Show("A", Info)
	time.Sleep(50 * time.Millisecond) // land on the boundary
	s.Show("B", Info)
	time.Sleep(25 * time.Millisecond)
	if msg, _, ok := s.Current(); !ok || msg != "B" {
		t.Fatalf("toast B must survive A's expiry: msg=%q ok=%v", msg, ok)
	}
	s.Hide()
}

func TestDismiss_ClearsDedupMemory(t *testing.T) {
	s := newTestStore(10*time.Second, 100*time.Millisecond)
	var accepted int32
	s.OnShow(func(string, Severity) { atomic.AddInt32(&accepted, 1) })

	s.Show("A", Info)
	time.Sleep(200 * time.Millisecond) // auto-dismiss fires
	s.Show("A", Info)                  // same message, but memory was cleared
	if got := atomic.LoadInt32(&accepted); got != 2 {
		t.Fatalf("identical message after dismissal must be accepted, got %d", got)
	}
	s.Hide()
}

func TestHide_ImmediateAndResetsDedup(t *testing.T) {
	s := NewStore()
	var accepted int32
	s.OnShow(func(string, Severity) { atomic.AddInt32(&accepted, 1) })

	s.Show("A", Error)
	s.Hide()
	if _, _, ok := s.Current(); ok {
		t.Fatalf("Hide must clear the message immediately")
	}
	s.Show("A", Error) // de-dup memory was reset by Hide
	if got := atomic.LoadInt32(&accepted); got != 2 {
		t.Fatalf("show after Hide must be accepted, got %d", got)
	}
	s.Hide()
}

func TestShow_DefaultSeverityIsInfo(t *testing.T) {
	s := NewStore()
	s.Show("hello", "")
	if _, sev, ok := s.Current(); !ok || sev != Info {
		t.Fatalf("empty severity must default to info, got %v", sev)
	}
	s.Hide()
}
