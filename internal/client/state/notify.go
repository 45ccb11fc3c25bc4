package state

import (
	"sync"
	"time"
)

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
)

// Notification is a transient, user-facing message.
type Notification struct {
	Type    NotificationType
	Message string
}

// DefaultNotificationDuration is how long a notification stays visible
// unless a caller overrides it.
const DefaultNotificationDuration = 5 * time.Second

// Notifier is the transient message channel. A new notification preempts the
// current one immediately; there is no queue. The zero value is ready to use.
// Safe for concurrent use (the auto-clear fires from a timer goroutine).
type Notifier struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
}

// Show displays a notification for the default duration.
func (n *Notifier) Show(typ NotificationType, message string) {
	n.ShowFor(typ, message, DefaultNotificationDuration)
}

// ShowFor displays a notification that auto-clears after d. d == 0 disables
// the auto-clear. Any pending notification and its timer are replaced.
func (n *Notifier) ShowFor(typ NotificationType, message string, d time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}

	cur := &Notification{Type: typ, Message: message}
	n.current = cur

	if d > 0 {
		n.timer = time.AfterFunc(d, func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			// only clear if nothing newer has preempted us
			if n.current == cur {
				n.current = nil
				n.timer = nil
			}
		})
	}
}

// Current returns the visible notification, or nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Take returns the visible notification and clears it. Useful for a
// line-oriented front end that prints each message exactly once.
func (n *Notifier) Take() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	cur := n.current
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	return cur
}

// Clear hides the current notification, if any.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
