// Package testpayloads generates synthetic provider payloads and runs them
// through the feedback engine, verifying its output invariants.
package testpayloads

// Config holds settings for a payload test run.
type Config struct {
	NumPayloads int    // number of payloads to generate
	Tone        string // feedback tone name
	OutputFile  string // optional file to dump generated payloads
	LogFile     string // optional log file
	Verbose     bool   // enable per-payload logging
}

// Stats accumulates results over a run.
type Stats struct {
	Generated    int
	Verified     int
	Failed       int
	TierCounts   map[string]int
	ScoreSum     int
	IssueTotal   int
	CasingCounts map[string]int
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{
		TierCounts:   make(map[string]int),
		CasingCounts: make(map[string]int),
	}
}
