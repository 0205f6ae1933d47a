package automation

import "strings"

// ListOptions filters rules by name substring and status.
type ListOptions struct {
	Query  string `json:"query,omitempty"`
	Status Status `json:"status,omitempty"`
}

func (o ListOptions) Matches(r Rule) bool {
	if o.Query != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(o.Query)) {
		return false
	}
	return o.Status == "" || r.Status == o.Status
}

// ComputeStats aggregates rules. AvgSuccessRate averages rules that have
// run at least once and is 0 when none have.
func ComputeStats(rules []Rule) Stats {
	var stats Stats
	var ran int
	var rate float64
	for _, r := range rules {
		stats.TotalRules++
		if r.Status == StatusActive {
			stats.ActiveRules++
		}
		stats.TotalExecutions += r.Executions
		if r.Executions > 0 {
			ran++
			rate += r.SuccessRate
		}
	}
	if ran > 0 {
		stats.AvgSuccessRate = rate / float64(ran)
	}
	return stats
}
