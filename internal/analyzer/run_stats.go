package analyzer

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/penwyp/go-sleep-monitor/internal/core/model"
	"github.com/penwyp/go-sleep-monitor/internal/util"
)

type Phase string

const (
	PhaseAcquire Phase = "acquire"
	PhaseParse   Phase = "parse"
	PhaseGroup   Phase = "group"
	PhaseLayout  Phase = "layout"
)

var phaseOrder = []Phase{PhaseAcquire, PhaseParse, PhaseGroup, PhaseLayout}

// RunStats holds the phase timings of one analysis run
type RunStats struct {
	mu        sync.Mutex
	durations map[Phase]time.Duration
}

// NewRunStats creates a new RunStats instance
func NewRunStats() *RunStats {
	return &RunStats{durations: make(map[Phase]time.Duration)}
}

// Record stores the duration of a phase and logs it
func (rs *RunStats) Record(phase Phase, d time.Duration) {
	rs.mu.Lock()
	rs.durations[phase] += d
	rs.mu.Unlock()
	util.LogDebug(fmt.Sprintf("Phase %s duration: %v", phase, d))
}

// Duration returns the recorded duration of a phase
func (rs *RunStats) Duration(phase Phase) time.Duration {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.durations[phase]
}

// Total sums all recorded phases
func (rs *RunStats) Total() time.Duration {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	var total time.Duration
	for _, d := range rs.durations {
		total += d
	}
	return total
}

// PrintFinalStats logs the phase timings and a summary of skip reasons
func (rs *RunStats) PrintFinalStats(parse model.ParseStats) {
	rs.mu.Lock()
	timings := ""
	for _, phase := range phaseOrder {
		if d, ok := rs.durations[phase]; ok {
			timings += fmt.Sprintf(" %s:%v", phase, d)
		}
	}
	rs.mu.Unlock()

	util.LogDebug(fmt.Sprintf("Run timings:%s", timings))
	util.LogInfo(fmt.Sprintf("Parse statistics: %d lines, %d sleep lines, %d parsed, %d kept, %d outside window",
		parse.TotalLines, parse.MatchedLines, parse.ParsedLines, parse.Kept, parse.Filtered))

	if len(parse.SkipReasons) > 0 {
		reasons := make([]string, 0, len(parse.SkipReasons))
		for reason := range parse.SkipReasons {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)

		util.LogInfo("Skip reason summary:")
		for _, reason := range reasons {
			util.LogInfo(fmt.Sprintf("  %s: %d lines", reason, parse.SkipReasons[reason]))
		}
	}
}
