package planner

import "daycraft/internal/model"

// RealityCheck compares the estimated open workload with a daily capacity.
type RealityCheck struct{}

// Evaluate sums estimates of todo and in-progress tasks. A capacity of zero
// or less uses DefaultCapacityMinutes.
func (RealityCheck) Evaluate(tasks []model.TaskItem, capacityMinutes int) RealityCheckResult {
	if capacityMinutes <= 0 {
		capacityMinutes = DefaultCapacityMinutes
	}

	total := 0
	for _, t := range tasks {
		if t.IsOpen() && t.EstimatedMinutes != nil {
			total += *t.EstimatedMinutes
		}
	}

	return RealityCheckResult{
		TotalEstimatedMinutes: total,
		CapacityMinutes:       capacityMinutes,
		ExcessMinutes:         max(0, total-capacityMinutes),
	}
}
