package pipeline

import (
	"slices"
	"sync"
	"time"
)

// parseSample is one finished parse.
type parseSample struct {
	at      time.Time
	elapsed time.Duration
	lexemes int
}

// StatsSnapshot aggregates the parses seen in the current window.
type StatsSnapshot struct {
	Count    int     `json:"count"`
	Failures int     `json:"failures"`
	Lexemes  int     `json:"lexemes"`
	MinMs    int64   `json:"min_ms"`
	MaxMs    int64   `json:"max_ms"`
	AvgMs    float64 `json:"avg_ms"`
	P50Ms    float64 `json:"p50_ms"`
	P95Ms    float64 `json:"p95_ms"`
	P99Ms    float64 `json:"p99_ms"`
}

// Stats keeps a rolling window of parse timings and failures.
type Stats struct {
	mu       sync.Mutex
	window   time.Duration
	samples  []parseSample
	failures []time.Time
}

// NewStats returns a tracker over the given window, one hour if window <= 0.
func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Hour
	}
	return &Stats{window: window}
}

// Record adds a successful parse. Negative durations count as zero.
func (s *Stats) Record(elapsed time.Duration, lexemes int) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(now)
	s.samples = append(s.samples, parseSample{at: now, elapsed: max(elapsed, 0), lexemes: lexemes})
}

// RecordFailure counts a parse that returned an error.
func (s *Stats) RecordFailure() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(now)
	s.failures = append(s.failures, now)
}

// Snapshot aggregates the samples still inside the window. Expired samples
// are dropped as a side effect.
func (s *Stats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expireLocked(time.Now())

	snap := StatsSnapshot{Count: len(s.samples), Failures: len(s.failures)}
	if len(s.samples) == 0 {
		return snap
	}

	ms := make([]int64, len(s.samples))
	var total int64
	for i, sm := range s.samples {
		ms[i] = sm.elapsed.Milliseconds()
		total += ms[i]
		snap.Lexemes += sm.lexemes
	}
	slices.Sort(ms)

	snap.MinMs = ms[0]
	snap.MaxMs = ms[len(ms)-1]
	snap.AvgMs = float64(total) / float64(len(ms))
	snap.P50Ms = percentile(ms, 50)
	snap.P95Ms = percentile(ms, 95)
	snap.P99Ms = percentile(ms, 99)
	return snap
}

// expireLocked drops entries older than the window. Both slices are in
// arrival order, so only a prefix is ever removed.
func (s *Stats) expireLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	i := 0
	for i < len(s.samples) && s.samples[i].at.Before(cutoff) {
		i++
	}
	s.samples = s.samples[i:]

	j := 0
	for j < len(s.failures) && s.failures[j].Before(cutoff) {
		j++
	}
	s.failures = s.failures[j:]
}

// percentile interpolates linearly between the closest ranks of sorted.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := float64(len(sorted)-1) * min(max(pct, 0), 100) / 100
	lo := int(rank)
	if lo+1 >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := rank - float64(lo)
	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}
