// Package timer implements the countdown used while a timed wellness
// activity is in progress. The machine is pure: it owns no goroutines or
// tickers, the host delivers one Tick per elapsed second. Nothing here
// is persisted; closing the widget discards the countdown entirely.
package timer

import (
	"fmt"
	"strconv"
	"strings"
)

// State is the countdown lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ParseDuration converts a catalog duration string of the form
// "<integer> min" into whole seconds.
func ParseDuration(duration string) (int, error) {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty duration")
	}
	minutes, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", duration, err)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("negative duration %q", duration)
	}
	return minutes * 60, nil
}

// Countdown is the timer state machine. The zero value is unusable; use New.
type Countdown struct {
	total     int
	remaining int
	state     State
}

// New builds an Idle countdown from a catalog duration string. An
// unparseable duration yields a zero-length countdown whose Start
// completes immediately, rather than propagating an undefined duration.
func New(duration string) *Countdown {
	seconds, err := ParseDuration(duration)
	if err != nil {
		seconds = 0
	}
	return &Countdown{
		total:     seconds,
		remaining: seconds,
		state:     StateIdle,
	}
}

// Start moves an Idle countdown to Running. It reports whether the
// countdown completed as a result, which only happens for a zero-length
// duration. Starting in any other state is a no-op.
func (c *Countdown) Start() bool {
	if c.state != StateIdle {
		return false
	}
	if c.remaining <= 0 {
		c.state = StateCompleted
		return true
	}
	c.state = StateRunning
	return false
}

// Toggle flips Running to Paused and back. No-op in Idle or Completed.
func (c *Countdown) Toggle() {
	switch c.state {
	case StateRunning:
		c.state = StatePaused
	case StatePaused:
		c.state = StateRunning
	}
}

// Tick consumes one elapsed second. It reports whether this tick drove
// the Running->Completed transition; the host must invoke its completion
// callback exactly when Tick returns true, which happens at most once
// per countdown. Ticks in any state but Running are discarded.
func (c *Countdown) Tick() bool {
	if c.state != StateRunning {
		return false
	}
	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.state = StateCompleted
		return true
	}
	return false
}

// Reset returns the countdown to Idle with the full duration remaining.
func (c *Countdown) Reset() {
	c.state = StateIdle
	c.remaining = c.total
}

// State returns the current lifecycle state.
func (c *Countdown) State() State {
	return c.state
}

// Remaining returns the remaining whole seconds.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Total returns the full duration in whole seconds.
func (c *Countdown) Total() int {
	return c.total
}

// Progress returns the completed fraction in [0, 1].
func (c *Countdown) Progress() float64 {
	if c.total <= 0 {
		if c.state == StateCompleted {
			return 1
		}
		return 0
	}
	p := float64(c.total-c.remaining) / float64(c.total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// FormatRemaining renders the remaining time as zero-padded MM:SS.
func (c *Countdown) FormatRemaining() string {
	return fmt.Sprintf("%02d:%02d", c.remaining/60, c.remaining%60)
}
