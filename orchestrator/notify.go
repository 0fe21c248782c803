package orchestrator

import "time"

// Level distinguishes the tone of a notification. Fallbacks deliberately emit
// success- or info-level notifications, never errors: from the user's point of
// view an evaluation always completes.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
)

// Notification is pushed to the presentation layer out-of-band from the
// orchestrator's return values.
type Notification struct {
	Level       Level
	Message     string
	Description string
	Duration    time.Duration
}

type Notifier interface {
	Notify(Notification)
}

// QueueNotifier buffers notifications on a channel for the presentation layer
// to drain. When the buffer is full the new notification is dropped rather
// than blocking the orchestrator.
type QueueNotifier struct {
	ch chan Notification
}

func NewQueueNotifier(size int) *QueueNotifier {
	if size <= 0 {
		size = 8
	}
	return &QueueNotifier{ch: make(chan Notification, size)}
}

func (q *QueueNotifier) Notify(n Notification) {
	select {
	case q.ch <- n:
	default:
	}
}

// Events exposes the queue for consumption.
func (q *QueueNotifier) Events() <-chan Notification {
	return q.ch
}

// Close ends the stream once no further notifications will be sent. Notify
// must not be called after Close.
func (q *QueueNotifier) Close() {
	close(q.ch)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

// NopNotifier discards all notifications.
func NopNotifier() Notifier {
	return nopNotifier{}
}
