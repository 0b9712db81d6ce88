package timer

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"five minutes", "5 min", 300, false},
		{"one minute", "1 min", 60, false},
		{"ten minutes", "10 min", 600, false},
		{"zero minutes", "0 min", 0, false},
		{"bare number", "7", 420, false},
		{"empty", "", 0, true},
		{"whitespace only", "   ", 0, true},
		{"not a number", "soon", 0, true},
		{"negative", "-3 min", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDuration(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDuration(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountdownRunsToCompletion(t *testing.T) {
	c := New("5 min")

	if c.State() != StateIdle {
		t.Fatalf("new countdown state = %v, want idle", c.State())
	}
	if c.Total() != 300 || c.Remaining() != 300 {
		t.Fatalf("new countdown total/remaining = %d/%d, want 300/300", c.Total(), c.Remaining())
	}

	if completed := c.Start(); completed {
		t.Fatal("Start on a non-zero countdown reported completion")
	}
	if c.State() != StateRunning {
		t.Fatalf("state after Start = %v, want running", c.State())
	}

	// The completion transition must be reported on exactly one tick.
	completions := 0
	for i := 0; i < 300; i++ {
		if c.Tick() {
			completions++
			if i != 299 {
				t.Errorf("completion reported on tick %d, want tick 299", i)
			}
		}
	}
	if completions != 1 {
		t.Fatalf("completion reported %d times, want 1", completions)
	}
	if c.State() != StateCompleted {
		t.Fatalf("state after countdown = %v, want completed", c.State())
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining after countdown = %d, want 0", c.Remaining())
	}

	// Further ticks are discarded and never re-report completion.
	if c.Tick() {
		t.Error("tick after completion reported completion again")
	}
	if c.Remaining() != 0 {
		t.Errorf("remaining went negative: %d", c.Remaining())
	}
}

func TestCountdownPauseResume(t *testing.T) {
	c := New("1 min")
	c.Start()

	for i := 0; i < 10; i++ {
		c.Tick()
	}
	if c.Remaining() != 50 {
		t.Fatalf("remaining after 10 ticks = %d, want 50", c.Remaining())
	}

	c.Toggle()
	if c.State() != StatePaused {
		t.Fatalf("state after Toggle = %v, want paused", c.State())
	}

	// Paused countdowns ignore ticks entirely.
	for i := 0; i < 5; i++ {
		if c.Tick() {
			t.Fatal("tick while paused reported completion")
		}
	}
	if c.Remaining() != 50 {
		t.Errorf("remaining changed while paused: %d, want 50", c.Remaining())
	}

	c.Toggle()
	if c.State() != StateRunning {
		t.Fatalf("state after second Toggle = %v, want running", c.State())
	}
	c.Tick()
	if c.Remaining() != 49 {
		t.Errorf("remaining after resume tick = %d, want 49", c.Remaining())
	}
}

func TestCountdownToggleIsNoOpOutsideRunOrPause(t *testing.T) {
	c := New("1 min")
	c.Toggle()
	if c.State() != StateIdle {
		t.Errorf("Toggle while idle moved state to %v", c.State())
	}

	c.Start()
	for c.Tick() == false {
	}
	c.Toggle()
	if c.State() != StateCompleted {
		t.Errorf("Toggle after completion moved state to %v", c.State())
	}
}

func TestCountdownReset(t *testing.T) {
	c := New("3 min")
	c.Start()
	for i := 0; i < 30; i++ {
		c.Tick()
	}

	c.Reset()
	if c.State() != StateIdle {
		t.Fatalf("state after Reset = %v, want idle", c.State())
	}
	if c.Remaining() != 180 {
		t.Errorf("remaining after Reset = %d, want 180", c.Remaining())
	}

	// A reset countdown can run again from the top.
	if completed := c.Start(); completed {
		t.Fatal("Start after Reset reported immediate completion")
	}
	if c.State() != StateRunning {
		t.Fatalf("state after restart = %v, want running", c.State())
	}
}

func TestCountdownUnparseableDurationCompletesImmediately(t *testing.T) {
	c := New("whenever")

	if c.Total() != 0 {
		t.Fatalf("unparseable duration total = %d, want 0", c.Total())
	}
	if completed := c.Start(); !completed {
		t.Fatal("Start on a zero-length countdown did not report completion")
	}
	if c.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", c.State())
	}
	if got := c.Progress(); got != 1 {
		t.Errorf("progress of completed zero-length countdown = %v, want 1", got)
	}
}

func TestCountdownStartIsIdempotent(t *testing.T) {
	c := New("2 min")
	c.Start()
	c.Tick()

	if completed := c.Start(); completed {
		t.Fatal("second Start reported completion")
	}
	if c.Remaining() != 119 {
		t.Errorf("second Start altered remaining: %d, want 119", c.Remaining())
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		duration string
		ticks    int
		want     string
	}{
		{"5 min", 0, "05:00"},
		{"5 min", 1, "04:59"},
		{"1 min", 51, "00:09"},
		{"10 min", 0, "10:00"},
		{"1 min", 60, "00:00"},
	}

	for _, tt := range tests {
		c := New(tt.duration)
		c.Start()
		for i := 0; i < tt.ticks; i++ {
			c.Tick()
		}
		if got := c.FormatRemaining(); got != tt.want {
			t.Errorf("FormatRemaining after %d ticks of %q = %q, want %q",
				tt.ticks, tt.duration, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	c := New("1 min")
	if got := c.Progress(); got != 0 {
		t.Errorf("idle progress = %v, want 0", got)
	}

	c.Start()
	for i := 0; i < 30; i++ {
		c.Tick()
	}
	if got := c.Progress(); got != 0.5 {
		t.Errorf("halfway progress = %v, want 0.5", got)
	}

	for i := 0; i < 30; i++ {
		c.Tick()
	}
	if got := c.Progress(); got != 1 {
		t.Errorf("finished progress = %v, want 1", got)
	}
}
