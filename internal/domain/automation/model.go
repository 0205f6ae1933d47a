package automation

import (
	"slices"
	"time"
)

// TriggerType names what fires a rule.
type TriggerType string

const (
	TriggerSchedule      TriggerType = "schedule"
	TriggerEngagement    TriggerType = "engagement"
	TriggerMention       TriggerType = "mention"
	TriggerHashtag       TriggerType = "hashtag"
	TriggerFollowerCount TriggerType = "follower_count"
)

// ActionType names what a rule does when it fires.
type ActionType string

const (
	ActionPost   ActionType = "post"
	ActionReply  ActionType = "reply"
	ActionDM     ActionType = "dm"
	ActionReport ActionType = "report"
	ActionAlert  ActionType = "alert"
)

// Status is a rule's activation state.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
	StatusDraft  Status = "draft"
)

type Trigger struct {
	Type      TriggerType `json:"type" yaml:"type"`
	Condition string      `json:"condition" yaml:"condition"`
}

type Action struct {
	Type    ActionType `json:"type" yaml:"type"`
	Details string     `json:"details" yaml:"details"`
}

// Rule is a social-media automation. Executions and SuccessRate are
// descriptive; nothing in the store runs rules or updates them.
type Rule struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Trigger     Trigger    `json:"trigger" yaml:"trigger"`
	Action      Action     `json:"action" yaml:"action"`
	Status      Status     `json:"status" yaml:"status"`
	Platforms   []string   `json:"platforms,omitempty" yaml:"platforms,omitempty"`
	LastRun     *time.Time `json:"last_run,omitempty" yaml:"last_run,omitempty"`
	NextRun     *time.Time `json:"next_run,omitempty" yaml:"next_run,omitempty"`
	Executions  int        `json:"executions" yaml:"executions"`
	SuccessRate float64    `json:"success_rate" yaml:"success_rate"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at,omitempty"`
}

// Stats summarizes the rule collection.
type Stats struct {
	TotalRules      int     `json:"total_rules"`
	ActiveRules     int     `json:"active_rules"`
	TotalExecutions int     `json:"total_executions"`
	AvgSuccessRate  float64 `json:"avg_success_rate"`
}

// Clone returns a deep copy of r.
func (r Rule) Clone() Rule {
	r.Platforms = slices.Clone(r.Platforms)
	r.LastRun = cloneTime(r.LastRun)
	r.NextRun = cloneTime(r.NextRun)
	return r
}

// Toggled returns the status a toggle moves the rule to: active rules pause,
// every other status becomes active.
func (r Rule) Toggled() Status {
	if r.Status == StatusActive {
		return StatusPaused
	}
	return StatusActive
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
