package core

import (
	"slices"
	"sync"
)

const notificationLimit = 100

// NotificationLog keeps the most recent notifications, oldest first.
type NotificationLog struct {
	mu      sync.RWMutex
	limit   int
	entries []Notification
}

func NewNotificationLog(limit int) *NotificationLog {
	if limit <= 0 {
		limit = notificationLimit
	}
	return &NotificationLog{limit: limit}
}

func (l *NotificationLog) Add(n Notification) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, n)
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = slices.Delete(l.entries, 0, over)
	}
}

func (l *NotificationLog) List() []Notification {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.entries)
}
