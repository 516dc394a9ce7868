// Package toast implements stacked, auto-dismissing transient notifications
// for bubbletea applications. A List owns the live notifications; application
// code pushes Notification values and the List handles dedup-by-id, autohide
// timers, dismissal, and rendering of the trailing window.
package toast

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"
)

// Type is the severity class of a notification.
type Type int

const (
	TypeInfo Type = iota
	TypeSuccess
	TypeWarning
	TypeError
)

// typeNames maps severity types to human-readable names.
var typeNames = map[Type]string{
	TypeInfo:    "info",
	TypeSuccess: "success",
	TypeWarning: "warning",
	TypeError:   "error",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeInfo]
}

// IDGenerator produces unique notification identifiers. The default
// generator returns ULIDs; tests supply deterministic generators.
type IDGenerator func() string

// NewULIDGenerator returns the default id strategy.
func NewULIDGenerator() IDGenerator {
	return func() string {
		return ulid.Make().String()
	}
}

// Notification is an immutable-after-construction description of one toast.
//
// The ID makes the notification unique within a List: pushing a second
// notification with the same ID replaces the first. New assigns a fresh ULID;
// callers wanting replace-on-repush supply a stable id via WithID.
type Notification struct {
	ID       string
	Type     Type
	Title    string
	Content  string
	Icon     string // icon name; empty derives from Type at render time
	Autohide bool
	OnClick  func() tea.Cmd
}

// New creates an info notification with the given content, a fresh ULID id,
// and autohide enabled.
func New(content string) Notification {
	return Notification{
		ID:       ulid.Make().String(),
		Type:     TypeInfo,
		Content:  content,
		Autohide: true,
	}
}

// Info creates an info notification.
func Info(content string) Notification { return New(content) }

// Success creates a success notification.
func Success(content string) Notification { return New(content).WithType(TypeSuccess) }

// Warning creates a warning notification.
func Warning(content string) Notification { return New(content).WithType(TypeWarning) }

// Error creates an error notification.
func Error(content string) Notification { return New(content).WithType(TypeError) }

// WithID sets a stable id, making repeated pushes replace the live toast.
func (n Notification) WithID(id string) Notification {
	n.ID = id
	return n
}

// WithTitle sets the title. Toasts without a title render content only.
func (n Notification) WithTitle(title string) Notification {
	n.Title = title
	return n
}

// WithIcon sets an explicit icon name, overriding the severity default.
func (n Notification) WithIcon(name string) Notification {
	n.Icon = name
	return n
}

// WithType sets the severity type.
func (n Notification) WithType(t Type) Notification {
	n.Type = t
	return n
}

// WithAutohide controls the auto-dismiss timer. Toasts with autohide
// disabled stay until dismissed and render a close affordance.
func (n Notification) WithAutohide(autohide bool) Notification {
	n.Autohide = autohide
	return n
}

// WithOnClick sets a click callback. Activating the toast's click region
// dismisses it and runs the returned command on the program loop.
func (n Notification) WithOnClick(fn func() tea.Cmd) Notification {
	n.OnClick = fn
	return n
}
