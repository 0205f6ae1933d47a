package campaign

// ComputeStats aggregates campaigns. Active counts in-progress campaigns.
func ComputeStats(campaigns []Campaign) Stats {
	var stats Stats
	var progress int
	for _, c := range campaigns {
		stats.Total++
		switch c.Status {
		case StatusInProgress:
			stats.Active++
		case StatusCompleted:
			stats.Completed++
		case StatusPlanning:
			stats.Planning++
		}
		stats.TotalBudget += c.Budget
		progress += c.Progress
	}
	if stats.Total > 0 {
		stats.AvgProgress = float64(progress) / float64(stats.Total)
	}
	return stats
}
