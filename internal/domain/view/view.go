// Package view holds the dashboard's navigation state: which view is shown,
// the global search term and which create form is open.
package view

import (
	"errors"
	"fmt"
)

// View names a dashboard screen.
type View string

const (
	Dashboard     View = "dashboard"
	Campaigns     View = "campaigns"
	Tasks         View = "tasks"
	Clients       View = "clients"
	Calendar      View = "calendar"
	Analytics     View = "analytics"
	Automation    View = "automation"
	Messaging     View = "messaging"
	Teams         View = "teams"
	PersonalTasks View = "personal-tasks"
	Settings      View = "settings"
)

var ErrUnknownView = errors.New("unknown view")

var views = []View{
	Dashboard, Campaigns, Tasks, Clients, Calendar, Analytics,
	Automation, Messaging, Teams, PersonalTasks, Settings,
}

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	for _, known := range views {
		if v == known {
			return true
		}
	}
	return false
}

// ModalKind identifies the create form that is open. The zero value means
// no form is open.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalCampaign
	ModalTask
	ModalClient
	ModalAutomation
	ModalEvent
)

var ErrUnknownModal = errors.New("unknown modal kind")

var modalNames = map[ModalKind]string{
	ModalNone:       "none",
	ModalCampaign:   "campaign",
	ModalTask:       "task",
	ModalClient:     "client",
	ModalAutomation: "automation",
	ModalEvent:      "event",
}

// Open reports whether a form is showing.
func (k ModalKind) Open() bool {
	return k != ModalNone
}

func (k ModalKind) Valid() bool {
	_, ok := modalNames[k]
	return ok
}

func (k ModalKind) String() string {
	if name, ok := modalNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ModalKind(%d)", int(k))
}

// ParseModalKind maps a form name back to its kind. The empty string parses
// as ModalNone.
func ParseModalKind(s string) (ModalKind, error) {
	if s == "" {
		return ModalNone, nil
	}
	for kind, name := range modalNames {
		if name == s {
			return kind, nil
		}
	}
	return ModalNone, fmt.Errorf("%w: %q", ErrUnknownModal, s)
}

func (k ModalKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModal, int(k))
	}
	return []byte(k.String()), nil
}

func (k *ModalKind) UnmarshalText(text []byte) error {
	kind, err := ParseModalKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
