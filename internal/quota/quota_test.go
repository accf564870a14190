package quota

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/careerkit/career-tools/internal/tools"
)

func testConfig(limit int, window time.Duration) *Config {
	return &Config{
		Enabled: true,
		Tools: map[tools.Kind]ToolConfig{
			tools.CoverLetter: {Limit: limit, Window: window},
		},
		Default: ToolConfig{Limit: limit, Window: window},
	}
}

func TestLimiter_AllowUpToLimit(t *testing.T) {
	limiter := NewLimiter(testConfig(3, time.Hour))
	defer limiter.Stop()

	identity := "203.0.113.7"

	for i := 0; i < 3; i++ {
		d := limiter.Allow(identity, tools.CoverLetter)
		if !d.Allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if d.Limit != 3 {
			t.Errorf("Expected limit 3, got %d", d.Limit)
		}
		if d.Remaining != 2-i {
			t.Errorf("Expected remaining %d, got %d", 2-i, d.Remaining)
		}
	}

	d := limiter.Allow(identity, tools.CoverLetter)
	if d.Allowed {
		t.Error("Expected 4th request to be denied")
	}
	if d.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", d.Remaining)
	}
	if d.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
	if d.RetryAfter > time.Hour {
		t.Errorf("Expected retry after within the window, got %v", d.RetryAfter)
	}
}

func TestLimiter_WindowReset(t *testing.T) {
	limiter := NewLimiter(testConfig(2, time.Hour))
	defer limiter.Stop()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	identity := "203.0.113.7"

	limiter.Allow(identity, tools.CoverLetter)
	limiter.Allow(identity, tools.CoverLetter)

	if d := limiter.Allow(identity, tools.CoverLetter); d.Allowed {
		t.Fatal("Expected request over limit to be denied")
	}

	// Advance exactly to the window boundary: reset takes precedence.
	current = current.Add(time.Hour)

	d := limiter.Allow(identity, tools.CoverLetter)
	if !d.Allowed {
		t.Error("Expected request in fresh window to be allowed")
	}
	if d.Remaining != 1 {
		t.Errorf("Expected fresh window remaining 1, got %d", d.Remaining)
	}
}

func TestLimiter_IdentitiesIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig(1, time.Hour))
	defer limiter.Stop()

	if d := limiter.Allow("203.0.113.7", tools.CoverLetter); !d.Allowed {
		t.Error("Expected first identity to be allowed")
	}
	if d := limiter.Allow("203.0.113.8", tools.CoverLetter); !d.Allowed {
		t.Error("Expected second identity to be allowed")
	}
	if d := limiter.Allow("203.0.113.7", tools.CoverLetter); d.Allowed {
		t.Error("Expected exhausted identity to be denied")
	}
}

func TestLimiter_ToolsIndependent(t *testing.T) {
	cfg := &Config{
		Enabled: true,
		Tools: map[tools.Kind]ToolConfig{
			tools.CoverLetter: {Limit: 1, Window: time.Hour},
			tools.Salary:      {Limit: 1, Window: time.Hour},
		},
		Default: ToolConfig{Limit: 1, Window: time.Hour},
	}
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	identity := "203.0.113.7"

	if d := limiter.Allow(identity, tools.CoverLetter); !d.Allowed {
		t.Error("Expected cover letter request to be allowed")
	}
	if d := limiter.Allow(identity, tools.Salary); !d.Allowed {
		t.Error("Expected salary request on same identity to be allowed")
	}
	if d := limiter.Allow(identity, tools.CoverLetter); d.Allowed {
		t.Error("Expected second cover letter request to be denied")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if d := limiter.Allow("203.0.113.7", tools.CoverLetter); !d.Allowed {
			t.Errorf("Expected request %d to be allowed when disabled", i+1)
		}
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	limiter := NewLimiter(testConfig(100, time.Hour))
	defer limiter.Stop()

	identity := "203.0.113.7"

	var wg sync.WaitGroup
	allowedCount := 0
	var mu sync.Mutex

	// 200 concurrent requests against a limit of 100: exactly 100 may pass.
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := limiter.Allow(identity, tools.CoverLetter)
			if d.Allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_CleanupDropsExpiredWindows(t *testing.T) {
	cfg := testConfig(5, time.Minute)
	cfg.CleanupInterval = 0 // drive cleanup manually
	limiter := NewLimiter(cfg)
	defer limiter.Stop()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("203.0.113.%d", i+1), tools.CoverLetter)
	}

	current = current.Add(2 * time.Hour)
	limiter.cleanupWindows()

	limiter.mu.Lock()
	remaining := len(limiter.windows)
	limiter.mu.Unlock()

	if remaining != 0 {
		t.Errorf("Expected all idle windows to be cleaned up, %d remain", remaining)
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	d := limiter.Allow("203.0.113.7", tools.CoverLetter)
	if !d.Allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if d.Limit != 5 {
		t.Errorf("Expected default cover letter limit 5, got %d", d.Limit)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("QUOTA_COVER_LETTER_LIMIT", "3")
	t.Setenv("QUOTA_COVER_LETTER_WINDOW", "30m")

	cfg := LoadConfig()
	tc := cfg.ForTool(tools.CoverLetter)
	if tc.Limit != 3 {
		t.Errorf("Expected limit 3, got %d", tc.Limit)
	}
	if tc.Window != 30*time.Minute {
		t.Errorf("Expected window 30m, got %v", tc.Window)
	}

	// Other tools keep defaults.
	if cfg.ForTool(tools.Salary).Limit != 10 {
		t.Errorf("Expected salary limit 10, got %d", cfg.ForTool(tools.Salary).Limit)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("QUOTA_ENABLED", "false")

	cfg := LoadConfig()
	if cfg.Enabled {
		t.Error("Expected quota to be disabled")
	}
}
