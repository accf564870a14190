// Package quota provides per-client request quotas using fixed-window counters.
package quota

import (
	"sync"
	"time"

	"github.com/careerkit/career-tools/internal/tools"
)

// Decision is the outcome of a quota check.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Store decides whether a client identity may make another generation request.
// Implementations must apply the read-check-increment atomically with respect
// to concurrent requests from the same identity.
type Store interface {
	// Allow checks the quota for identity on the given tool and consumes one
	// request if allowed. The increment is never rolled back: requests that
	// are later abandoned still count against the window.
	Allow(identity string, tool tools.Kind) Decision
	// Stop releases any background resources held by the store.
	Stop()
}

// window tracks request counts for one identity+tool within the current
// fixed window.
type window struct {
	start time.Time
	count int
}

// Limiter is an in-memory Store. State is lost on process restart, which is
// acceptable: this is a soft limit, not a security control.
type Limiter struct {
	windows       map[string]*window // identity+tool -> window
	mu            sync.Mutex
	config        *Config
	now           func() time.Time
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a quota limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &Limiter{
		windows: make(map[string]*window),
		config:  config,
		now:     time.Now,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow checks and consumes quota for one request.
func (l *Limiter) Allow(identity string, tool tools.Kind) Decision {
	if !l.config.Enabled {
		return Decision{Allowed: true}
	}

	toolCfg := l.config.ForTool(tool)
	if toolCfg.Limit <= 0 {
		return Decision{Allowed: true}
	}

	key := identity + ":" + string(tool)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, exists := l.windows[key]
	// A request arriving exactly at the window boundary starts a new window:
	// reset takes precedence over increment.
	if !exists || now.Sub(w.start) >= toolCfg.Window {
		w = &window{start: now}
		l.windows[key] = w
	}

	reset := w.start.Add(toolCfg.Window)

	if w.count >= toolCfg.Limit {
		retryAfter := reset.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Decision{
			Allowed:    false,
			Limit:      toolCfg.Limit,
			Remaining:  0,
			ResetTime:  reset,
			RetryAfter: retryAfter,
		}
	}

	w.count++
	return Decision{
		Allowed:   true,
		Limit:     toolCfg.Limit,
		Remaining: toolCfg.Limit - w.count,
		ResetTime: reset,
	}
}

// cleanupLoop periodically removes expired windows to prevent unbounded
// memory growth from one-off identities.
func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.cleanupWindows()
		case <-l.cleanupStop:
			return
		}
	}
}

// cleanupWindows drops windows that rolled over more than an hour ago.
func (l *Limiter) cleanupWindows() {
	now := l.now()
	maxWindow := l.config.longestWindow()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, w := range l.windows {
		if now.Sub(w.start) >= maxWindow+time.Hour {
			delete(l.windows, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
