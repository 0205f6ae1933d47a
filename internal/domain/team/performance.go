package team

import "github.com/ganot/creativehub/internal/domain/task"

// ComputePerformance returns one entry per member, in roster order, describing
// the tasks assigned to that member.
func ComputePerformance(members []User, tasks []task.Task) []Performance {
	out := make([]Performance, 0, len(members))
	for _, m := range members {
		perf := Performance{
			ID:     m.ID,
			Name:   m.Name,
			Avatar: m.Avatar,
			Role:   m.Role,
			Status: m.Status,
		}
		weight := 0
		for _, t := range tasks {
			if t.AssignedTo != m.ID {
				continue
			}
			perf.TotalTasks++
			if t.Status == task.StatusDone {
				perf.CompletedTasks++
			}
			weight += t.Priority.Weight()
		}
		if perf.TotalTasks > 0 {
			perf.CompletionRate = float64(perf.CompletedTasks) / float64(perf.TotalTasks) * 100
			perf.AvgPriority = float64(weight) / float64(perf.TotalTasks)
		}
		out = append(out, perf)
	}
	return out
}

// FindMember returns the roster entry with the given id.
func FindMember(members []User, id string) (User, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return User{}, false
}
