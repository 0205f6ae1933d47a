package client

// ComputeStats aggregates clients. AvgSatisfaction averages only clients
// with a positive score and is 0 when there are none.
func ComputeStats(clients []Client) Stats {
	var stats Stats
	var satisfied int
	var satisfaction float64
	for _, c := range clients {
		stats.Total++
		switch c.Status {
		case StatusActive:
			stats.Active++
		case StatusPotential:
			stats.Potential++
		}
		stats.TotalBudget += c.TotalBudget
		if c.Satisfaction > 0 {
			satisfied++
			satisfaction += c.Satisfaction
		}
	}
	if satisfied > 0 {
		stats.AvgSatisfaction = satisfaction / float64(satisfied)
	}
	return stats
}
