package planner

import "daycraft/internal/model"

type InsightEngine struct{}

func (InsightEngine) Summarize(tasks []model.TaskItem) InsightSummary {
	summary := InsightSummary{TotalCount: len(tasks)}

	estimated, estimates := 0, 0
	for _, t := range tasks {
		switch t.Status {
		case model.StatusDone:
			summary.CompletedCount++
		case model.StatusIcebox:
			summary.IceboxCount++
		}
		if t.EstimatedMinutes != nil {
			estimated += *t.EstimatedMinutes
			estimates++
		}
	}

	if summary.TotalCount > 0 {
		summary.CompletionRate = float64(summary.CompletedCount) / float64(summary.TotalCount)
	}
	if estimates > 0 {
		avg := float64(estimated) / float64(estimates)
		summary.AverageEstimatedMinutes = &avg
	}
	return summary
}
