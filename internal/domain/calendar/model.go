package calendar

import (
	"errors"
	"slices"
	"strings"
	"time"
)

// Type is the content format of a scheduled item.
type Type string

const (
	TypePost    Type = "post"
	TypeStory   Type = "story"
	TypeReel    Type = "reel"
	TypeVideo   Type = "video"
	TypeArticle Type = "article"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
)

var (
	ErrEventNotFound = errors.New("calendar event not found")
	ErrInvalidInput  = errors.New("invalid calendar event input")
)

type Content struct {
	Text     string   `json:"text" yaml:"text"`
	Images   []string `json:"images,omitempty" yaml:"images,omitempty"`
	Hashtags []string `json:"hashtags,omitempty" yaml:"hashtags,omitempty"`
}

// Event is a piece of content scheduled for publication. Time is the
// wall-clock "HH:MM" slot on Date.
type Event struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Date        time.Time `json:"date" yaml:"date"`
	Time        string    `json:"time,omitempty" yaml:"time,omitempty"`
	Type        Type      `json:"type" yaml:"type"`
	Platform    string    `json:"platform,omitempty" yaml:"platform,omitempty"`
	CampaignID  string    `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	ClientID    string    `json:"client_id,omitempty" yaml:"client_id,omitempty"`
	Status      Status    `json:"status" yaml:"status"`
	Content     Content   `json:"content" yaml:"content"`
	AssignedTo  string    `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

func (e Event) Clone() Event {
	e.Content.Images = slices.Clone(e.Content.Images)
	e.Content.Hashtags = slices.Clone(e.Content.Hashtags)
	return e
}

// OnDay reports whether the event falls on the calendar day of day, in
// day's location.
func (e Event) OnDay(day time.Time) bool {
	y1, m1, d1 := e.Date.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

type CreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	Type        Type      `json:"type,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	CampaignID  string    `json:"campaign_id,omitempty"`
	ClientID    string    `json:"client_id,omitempty"`
	Status      Status    `json:"status,omitempty"`
	Content     Content   `json:"content"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
}

func (r CreateRequest) Build(id string) Event {
	return Event{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Type:        r.Type,
		Platform:    r.Platform,
		CampaignID:  r.CampaignID,
		ClientID:    r.ClientID,
		Status:      r.Status,
		Content:     r.Content,
		AssignedTo:  r.AssignedTo,
	}.Clone()
}

func (r CreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

type UpdateRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Time        *string    `json:"time,omitempty"`
	Type        *Type      `json:"type,omitempty"`
	Platform    *string    `json:"platform,omitempty"`
	CampaignID  *string    `json:"campaign_id,omitempty"`
	ClientID    *string    `json:"client_id,omitempty"`
	Status      *Status    `json:"status,omitempty"`
	Content     *Content   `json:"content,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
}

func (r UpdateRequest) Apply(e *Event) {
	if r.Title != nil {
		e.Title = *r.Title
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
	if r.Date != nil {
		e.Date = *r.Date
	}
	if r.Time != nil {
		e.Time = *r.Time
	}
	if r.Type != nil {
		e.Type = *r.Type
	}
	if r.Platform != nil {
		e.Platform = *r.Platform
	}
	if r.CampaignID != nil {
		e.CampaignID = *r.CampaignID
	}
	if r.ClientID != nil {
		e.ClientID = *r.ClientID
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.Content != nil {
		e.Content = Content{
			Text:     r.Content.Text,
			Images:   slices.Clone(r.Content.Images),
			Hashtags: slices.Clone(r.Content.Hashtags),
		}
	}
	if r.AssignedTo != nil {
		e.AssignedTo = *r.AssignedTo
	}
}

func (r UpdateRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return ErrInvalidInput
	}
	return nil
}

// ListOptions filters events. Day matches on calendar date when non-zero.
type ListOptions struct {
	Day      time.Time `json:"day,omitempty"`
	Status   Status    `json:"status,omitempty"`
	ClientID string    `json:"client_id,omitempty"`
	Platform string    `json:"platform,omitempty"`
}

func (o ListOptions) Matches(e Event) bool {
	if !o.Day.IsZero() && !e.OnDay(o.Day) {
		return false
	}
	if o.Status != "" && e.Status != o.Status {
		return false
	}
	if o.ClientID != "" && e.ClientID != o.ClientID {
		return false
	}
	return o.Platform == "" || strings.EqualFold(e.Platform, o.Platform)
}
