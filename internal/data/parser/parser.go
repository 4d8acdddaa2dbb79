package parser

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

// Parser turns raw pmset output into sleep records.
type Parser struct {
	newID func() string
	mu    sync.Mutex
	stats model.ParseStats
}

// Option configures a Parser.
type Option func(*Parser)

// WithIDGenerator replaces the default UUID based record identifiers.
func WithIDGenerator(fn func() string) Option {
	return func(p *Parser) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// NewParser creates a new Parser instance.
func NewParser(opts ...Option) *Parser {
	p := &Parser{newID: uuid.NewString}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// splitLines splits on \n, \r\n and \r.
func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(newlineReplacer.Replace(raw), "\n")
}

// Cutoff returns the earliest start time kept for a window of windowDays ending at now.
// Calendar arithmetic is used so DST transitions keep local wall-clock semantics.
func Cutoff(now time.Time, windowDays int) time.Time {
	if windowDays < 1 {
		windowDays = 1
	}
	return now.AddDate(0, 0, -windowDays)
}

// ParseOutput extracts sleep records from raw log text, keeps those starting at or after
// the cutoff, and returns them newest first. Equal start times keep their input order.
// It never fails; malformed lines are skipped and counted.
func (p *Parser) ParseOutput(raw string, windowDays int, now time.Time) []model.SleepRecord {
	start := time.Now()
	lines := splitLines(raw)
	cutoff := Cutoff(now, windowDays)

	stats := model.ParseStats{
		TotalLines:  len(lines),
		SkipReasons: make(map[string]int),
	}
	records := make([]model.SleepRecord, 0)

	util.LogDebug(fmt.Sprintf("Start parsing %d lines, cutoff: %s", len(lines), cutoff.Format(time.RFC3339)))

	for i, line := range lines {
		if !strings.Contains(line, model.SleepMarker) {
			continue
		}
		stats.MatchedLines++

		record, err := ParseLine(line)
		if err != nil {
			stats.SkipReasons[err.Error()]++
			util.LogDebug(fmt.Sprintf("Skip sleep line %d - %v: %s", i+1, err, line))
			continue
		}
		stats.ParsedLines++

		if record.StartTime.Before(cutoff) {
			stats.Filtered++
			continue
		}
		record.ID = p.newID()
		records = append(records, record)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartTime.After(records[j].StartTime)
	})
	stats.Kept = len(records)

	p.mu.Lock()
	p.stats = stats
	p.mu.Unlock()

	util.LogInfo(fmt.Sprintf("Found %d sleep lines, parsed %d, kept %d (filtered %d), duration %v",
		stats.MatchedLines, stats.ParsedLines, stats.Kept, stats.Filtered, time.Since(start)))
	if skipped := stats.Skipped(); skipped > 0 {
		util.LogWarn(fmt.Sprintf("Skipped %d malformed sleep lines", skipped))
	}

	return records
}

// Stats returns the diagnostics of the most recent ParseOutput call.
func (p *Parser) Stats() model.ParseStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	stats := p.stats
	if p.stats.SkipReasons != nil {
		stats.SkipReasons = make(map[string]int, len(p.stats.SkipReasons))
		for k, v := range p.stats.SkipReasons {
			stats.SkipReasons[k] = v
		}
	}
	return stats
}
