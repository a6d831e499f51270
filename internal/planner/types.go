package planner

import "time"

const (
	DefaultCapacityMinutes = 480
	DefaultStaleDays       = 7
	DefaultDeferThreshold  = 3
)

// TimeWindow is an inclusive span of the day a plan targets.
type TimeWindow struct {
	Start time.Time `json:"start" yaml:"start"`
	End   time.Time `json:"end" yaml:"end"`
}

// Contains reports whether t falls inside the window, ends included.
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

type FocusProfile struct {
	PrefersDeepWorkMorning bool `json:"prefersDeepWorkMorning" yaml:"prefersDeepWorkMorning"`
}

type RealityCheckResult struct {
	TotalEstimatedMinutes int `json:"totalEstimatedMinutes" yaml:"totalEstimatedMinutes"`
	CapacityMinutes       int `json:"capacityMinutes" yaml:"capacityMinutes"`
	ExcessMinutes         int `json:"excessMinutes" yaml:"excessMinutes"`
}

func (r RealityCheckResult) IsOverloaded() bool {
	return r.ExcessMinutes > 0
}

type InsightSummary struct {
	TotalCount              int      `json:"totalCount" yaml:"totalCount"`
	CompletedCount          int      `json:"completedCount" yaml:"completedCount"`
	IceboxCount             int      `json:"iceboxCount" yaml:"iceboxCount"`
	CompletionRate          float64  `json:"completionRate" yaml:"completionRate"`
	AverageEstimatedMinutes *float64 `json:"averageEstimatedMinutes,omitempty" yaml:"averageEstimatedMinutes,omitempty"`
}
