// Package notify carries transient user-facing notifications ("toasts")
// from components to whichever surface displays them.
package notify

import "sync"

// Severity distinguishes ordinary notifications from failures.
type Severity int

const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

func (s Severity) String() string {
	if s == SeverityDestructive {
		return "destructive"
	}
	return "default"
}

// Notification is one message shown to the user.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier receives notifications.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Nop discards all notifications.
type Nop struct{}

func (Nop) Notify(Notification) {}

type multi []Notifier

func (m multi) Notify(n Notification) {
	for _, t := range m {
		t.Notify(n)
	}
}

// Multi fans each notification out to every non-nil notifier.
func Multi(notifiers ...Notifier) Notifier {
	var m multi
	for _, n := range notifiers {
		if n != nil {
			m = append(m, n)
		}
	}
	return m
}

// Buffer queues notifications until a surface drains them.
type Buffer struct {
	mu      sync.Mutex
	pending []Notification
	last    *Notification
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Notify(n Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, n)
	b.last = &n
}

// Drain returns and clears the queued notifications, oldest first.
func (b *Buffer) Drain() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.pending
	b.pending = nil
	return out
}

// Last returns the most recent notification ever received, drained or not.
func (b *Buffer) Last() (Notification, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return Notification{}, false
	}
	return *b.last, true
}
