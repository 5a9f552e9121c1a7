package entity

import "time"

// RateWindow models the per-key request history retained by the limiter:
// an ordered sequence of timestamps pruned to the trailing window. The
// production store keeps this state in Redis and mutates it atomically;
// this model documents the read-prune-append semantics the store must
// implement.
type RateWindow struct {
	Key        LimiterKey
	Limit      int
	Window     time.Duration
	Timestamps []time.Time
}

// NewRateWindow creates an empty window for a key.
func NewRateWindow(key LimiterKey, limit int, window time.Duration) *RateWindow {
	return &RateWindow{
		Key:    key,
		Limit:  limit,
		Window: window,
	}
}

// Prune drops timestamps that fell out of the trailing window.
func (w *RateWindow) Prune(now time.Time) {
	cutoff := now.Add(-w.Window)
	kept := w.Timestamps[:0]
	for _, t := range w.Timestamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.Timestamps = kept
}

// Exceeded reports whether the window already holds the allowed number
// of requests.
func (w *RateWindow) Exceeded() bool {
	return len(w.Timestamps) >= w.Limit
}

// Record appends the current request timestamp.
func (w *RateWindow) Record(now time.Time) {
	w.Timestamps = append(w.Timestamps, now)
}

// Count returns the number of requests currently inside the window.
func (w *RateWindow) Count() int {
	return len(w.Timestamps)
}
