// Package priority defines the urgency scale shared by campaigns and tasks.
package priority

// Level is the urgency of a campaign or task.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
	Urgent Level = "urgent"
)

// Weight maps a level onto 1 (low) through 4 (urgent). Unknown levels weigh 0.
func (l Level) Weight() int {
	switch l {
	case Low:
		return 1
	case Medium:
		return 2
	case High:
		return 3
	case Urgent:
		return 4
	default:
		return 0
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l.Weight() > 0
}
