package engine

import (
	"testing"
	"time"
)

func newTestCombo(t *testing.T, timeout time.Duration, threshold int) (*Combo, *ManualScheduler, *[]int) {
	t.Helper()
	sched := NewManualScheduler()
	clock := NewMockClock(time.Unix(1000, 0))
	stops := &[]int{}
	combo := NewCombo(clock, sched, timeout, threshold, func(final int) {
		*stops = append(*stops, final)
	})
	return combo, sched, stops
}

// TestComboCountsEveryEvent verifies count == N for N events within the window
func TestComboCountsEveryEvent(t *testing.T) {
	combo, sched, _ := newTestCombo(t, 10*time.Second, 10)

	for i := 1; i <= 25; i++ {
		update := combo.RegisterEvent()
		if update.Count != i {
			t.Fatalf("event %d: count = %d, want %d", i, update.Count, i)
		}
		// Stay inside the window
		sched.Advance(time.Second)
	}
	if combo.Count() != 25 {
		t.Errorf("final count = %d, want 25", combo.Count())
	}
}

// TestComboDecayResetsOnce verifies exactly one stop notification on timeout
func TestComboDecayResetsOnce(t *testing.T) {
	combo, sched, stops := newTestCombo(t, 10*time.Second, 100)

	combo.RegisterEvent()
	combo.RegisterEvent()
	combo.RegisterEvent()

	sched.Advance(10 * time.Second)

	if combo.Count() != 0 {
		t.Errorf("count after decay = %d, want 0", combo.Count())
	}
	if len(*stops) != 1 {
		t.Fatalf("stop notifications = %d, want 1", len(*stops))
	}
	if (*stops)[0] != 3 {
		t.Errorf("final count = %d, want 3", (*stops)[0])
	}

	// No further fires
	sched.Advance(time.Minute)
	if len(*stops) != 1 {
		t.Errorf("stop notifications after extra time = %d, want 1", len(*stops))
	}
}

// TestComboTimerRearmed verifies the decay timer is single-shot and rearmed,
// not accumulating: events inside the window keep the combo alive
func TestComboTimerRearmed(t *testing.T) {
	combo, sched, stops := newTestCombo(t, 10*time.Second, 100)

	combo.RegisterEvent()
	sched.Advance(9 * time.Second)
	combo.RegisterEvent() // rearms; old timer must not fire
	sched.Advance(9 * time.Second)

	if combo.Count() != 2 {
		t.Fatalf("count = %d, want 2 (old timer fired?)", combo.Count())
	}
	if len(*stops) != 0 {
		t.Fatalf("unexpected stop notification")
	}

	sched.Advance(time.Second)
	if combo.Count() != 0 {
		t.Errorf("count = %d, want 0 after full timeout", combo.Count())
	}
	if len(*stops) != 1 || (*stops)[0] != 2 {
		t.Errorf("stops = %v, want [2]", *stops)
	}
}

// TestComboPowerMode verifies activation exactly at the threshold and the
// recorded activation count
func TestComboPowerMode(t *testing.T) {
	combo, _, _ := newTestCombo(t, 10*time.Second, 5)

	for i := 1; i <= 4; i++ {
		update := combo.RegisterEvent()
		if update.PowerMode {
			t.Fatalf("power mode active at count %d, threshold 5", i)
		}
		if update.PowerModeEntered {
			t.Fatalf("power mode entered at count %d", i)
		}
	}

	update := combo.RegisterEvent()
	if !update.PowerMode || !update.PowerModeEntered {
		t.Fatalf("power mode not entered at threshold: %+v", update)
	}
	if update.PowerModeStart != 5 {
		t.Errorf("power mode start count = %d, want 5", update.PowerModeStart)
	}

	// Entered only once
	update = combo.RegisterEvent()
	if !update.PowerMode {
		t.Errorf("power mode dropped while combo alive")
	}
	if update.PowerModeEntered {
		t.Errorf("power mode entered a second time")
	}
	if update.PowerModeStart != 5 {
		t.Errorf("power mode start drifted to %d", update.PowerModeStart)
	}
}

// TestComboPowerModeDeactivatesOnStop verifies power mode exits with the combo
func TestComboPowerModeDeactivatesOnStop(t *testing.T) {
	combo, sched, _ := newTestCombo(t, 10*time.Second, 2)

	combo.RegisterEvent()
	combo.RegisterEvent()
	if !combo.PowerModeActive() {
		t.Fatalf("power mode not active at threshold")
	}

	sched.Advance(10 * time.Second)
	if combo.PowerModeActive() {
		t.Errorf("power mode still active after decay")
	}
	if combo.PowerModeStartCount() != 0 {
		t.Errorf("power mode start count = %d, want 0", combo.PowerModeStartCount())
	}
}

// TestComboStopIdempotent verifies double stop matches single stop
func TestComboStopIdempotent(t *testing.T) {
	combo, _, stops := newTestCombo(t, 10*time.Second, 5)

	combo.RegisterEvent()
	combo.RegisterEvent()

	if final := combo.Stop(); final != 2 {
		t.Errorf("first stop = %d, want 2", final)
	}
	if final := combo.Stop(); final != 0 {
		t.Errorf("second stop = %d, want 0", final)
	}
	if len(*stops) != 1 {
		t.Errorf("stop notifications = %d, want 1", len(*stops))
	}
	if combo.Count() != 0 || combo.PowerModeActive() || combo.PowerModeStartCount() != 0 {
		t.Errorf("state not fully reset after double stop")
	}
}

// TestComboInvariant verifies count==0 <=> no deadline <=> power mode off
func TestComboInvariant(t *testing.T) {
	combo, sched, _ := newTestCombo(t, 5*time.Second, 1)

	if _, ok := combo.Deadline(); ok {
		t.Errorf("idle combo has a deadline")
	}

	combo.RegisterEvent()
	if _, ok := combo.Deadline(); !ok {
		t.Errorf("active combo has no deadline")
	}
	if !combo.PowerModeActive() {
		t.Errorf("threshold 1 combo should enter power mode on first event")
	}

	sched.Advance(5 * time.Second)
	if _, ok := combo.Deadline(); ok {
		t.Errorf("decayed combo still has a deadline")
	}
	if combo.PowerModeActive() {
		t.Errorf("decayed combo still in power mode")
	}
}

// TestComboConfigure verifies tuning applies to subsequent events
func TestComboConfigure(t *testing.T) {
	combo, sched, _ := newTestCombo(t, 10*time.Second, 100)

	combo.RegisterEvent()
	combo.Configure(2*time.Second, 2)

	combo.RegisterEvent()
	if !combo.PowerModeActive() {
		t.Errorf("new threshold not applied")
	}

	sched.Advance(2 * time.Second)
	if combo.Count() != 0 {
		t.Errorf("new timeout not applied, count = %d", combo.Count())
	}
}
