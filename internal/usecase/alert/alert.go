// Package alert holds the single banner shown after a cart or coupon action.
// A new message replaces the current one and restarts its expiry timer.
package alert

import (
	"sync"
	"time"

	"storefront-cart/internal/pkg/clock"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

const DefaultTTL = 5 * time.Second

type Alert struct {
	Message   string
	Severity  Severity
	ShownAt   time.Time
	ExpiresAt time.Time
}

type Projection struct {
	mu      sync.Mutex
	clock   clock.Clock
	ttl     time.Duration
	current *Alert
	timer   clock.Timer
	// generation guards against a timer that fired while Show was replacing it.
	generation uint64

	// The clear callback keeps its own timer so a message without one (a cart
	// banner) never cancels the callback of the message it replaces.
	onClear      func()
	clearTimer   clock.Timer
	clearPending uint64
}

func NewProjection(clk clock.Clock, ttl time.Duration) *Projection {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Projection{clock: clk, ttl: ttl}
}

// Show displays message and schedules its removal; the latest message wins
// the slot. A non-nil onClear runs ttl after this message unless a later
// message brings its own callback first. Empty messages are ignored and
// report false.
func (p *Projection) Show(severity Severity, message string, onClear func()) bool {
	if message == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.generation++
	gen := p.generation

	now := p.clock.Now()
	p.current = &Alert{
		Message:   message,
		Severity:  severity,
		ShownAt:   now,
		ExpiresAt: now.Add(p.ttl),
	}
	p.timer = p.clock.AfterFunc(p.ttl, func() { p.expire(gen) })

	if onClear != nil {
		if p.clearTimer != nil {
			p.clearTimer.Stop()
		}
		p.clearPending++
		pending := p.clearPending
		p.onClear = onClear
		p.clearTimer = p.clock.AfterFunc(p.ttl, func() { p.runClear(pending) })
	}
	return true
}

// Current returns the alert on display, if any.
func (p *Projection) Current() (Alert, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return Alert{}, false
	}
	return *p.current, true
}

// Dismiss clears the alert right away and runs the pending clear callback.
func (p *Projection) Dismiss() {
	p.mu.Lock()
	if p.current == nil && p.onClear == nil {
		p.mu.Unlock()
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.current = nil
	p.timer = nil
	p.generation++
	cb := p.takeClear()
	p.mu.Unlock()

	if cb != nil {
		cb()
	}
}

func (p *Projection) expire(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return
	}
	p.current = nil
	p.timer = nil
}

func (p *Projection) runClear(pending uint64) {
	p.mu.Lock()
	if pending != p.clearPending {
		p.mu.Unlock()
		return
	}
	cb := p.takeClear()
	p.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// takeClear must be called with mu held.
func (p *Projection) takeClear() func() {
	cb := p.onClear
	if p.clearTimer != nil {
		p.clearTimer.Stop()
	}
	p.onClear = nil
	p.clearTimer = nil
	p.clearPending++
	return cb
}
