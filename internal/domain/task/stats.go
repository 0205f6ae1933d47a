package task

import "time"

// ComputeStats counts tasks per status and the overdue ones relative to now.
func ComputeStats(tasks []Task, now time.Time) Stats {
	var stats Stats
	for _, t := range tasks {
		stats.Total++
		switch t.Status {
		case StatusTodo:
			stats.Todo++
		case StatusInProgress:
			stats.InProgress++
		case StatusReview:
			stats.Review++
		case StatusDone:
			stats.Done++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
	}
	return stats
}
