package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"
	"time"
)

// FrameProfiler watches update durations and captures a CPU profile when frames
// keep running over budget
type FrameProfiler struct {
	// Budget is the longest acceptable update
	Budget time.Duration
	// Streak is how many consecutive slow updates trigger a capture
	Streak int
	// Cooldown is the minimum time between captures
	Cooldown time.Duration
	// CaptureDuration is how long each CPU profile runs
	CaptureDuration time.Duration

	dir         string
	slow        int
	lastCapture time.Time

	mu        sync.Mutex
	capturing bool

	// capture is replaced in tests
	capture func(reason string) error
}

// NewFrameProfiler creates a profiler writing to dir
func NewFrameProfiler(dir string, budget time.Duration) *FrameProfiler {
	p := &FrameProfiler{
		Budget:          budget,
		Streak:          30,
		Cooldown:        10 * time.Second,
		CaptureDuration: 5 * time.Second,
		dir:             dir,
	}
	p.capture = p.captureCPU
	return p
}

// Observe records one update duration and starts a capture when warranted.
// It reports whether a capture was started.
func (p *FrameProfiler) Observe(now time.Time, d time.Duration) bool {
	if d <= p.Budget {
		p.slow = 0
		return false
	}
	p.slow++
	if p.slow < p.Streak {
		return false
	}
	if !p.lastCapture.IsZero() && now.Sub(p.lastCapture) < p.Cooldown {
		return false
	}

	p.mu.Lock()
	if p.capturing {
		p.mu.Unlock()
		return false
	}
	p.capturing = true
	p.mu.Unlock()

	p.slow = 0
	p.lastCapture = now
	reason := fmt.Sprintf("slow-%dms", d.Milliseconds())
	go func() {
		defer func() {
			p.mu.Lock()
			p.capturing = false
			p.mu.Unlock()
		}()
		if err := p.capture(reason); err != nil {
			log.Printf("profiler: %v", err)
		}
	}()
	return true
}

// Capturing reports whether a profile is being written
func (p *FrameProfiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

func (p *FrameProfiler) captureCPU(reason string) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}
	path := filepath.Join(p.dir, fmt.Sprintf("frame-%s-%s.cpu.prof", time.Now().Format("20060102-150405"), reason))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.CaptureDuration)
	pprof.StopCPUProfile()

	log.Printf("profiler: CPU profile saved to %s (go tool pprof -http=:8080 %s)", path, path)
	return nil
}
