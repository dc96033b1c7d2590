// Package notify is the dismissible notification center: transient
// failures and confirmations surface here instead of being thrown at
// the caller.
package notify

import (
	"sync"
	"time"
)

// Level classifies a notification
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Notification is one user-visible message. Sticky entries never
// expire; a non-nil Retry means the failed action can be re-run from
// the notification itself.
type Notification struct {
	ID        int
	Level     Level
	Message   string
	Sticky    bool
	Retry     func()
	CreatedAt time.Time
}

// Center collects notifications. Entries auto-expire after ttl and can
// be dismissed earlier; Active returns the live ones in arrival order.
type Center struct {
	mu     sync.Mutex
	items  []Notification
	nextID int
	ttl    time.Duration
	now    func() time.Time
}

// NewCenter creates a center whose notifications live for ttl
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Center{
		ttl: ttl,
		now: time.Now,
	}
}

// Info pushes an informational message
func (c *Center) Info(message string) int {
	return c.push(LevelInfo, message)
}

// Success pushes a success message
func (c *Center) Success(message string) int {
	return c.push(LevelSuccess, message)
}

// Error pushes a failure message
func (c *Center) Error(message string) int {
	return c.push(LevelError, message)
}

// Failure pushes a sticky failure that stays until dismissed or
// retried. retry may be nil when the action cannot be re-run.
func (c *Center) Failure(message string, retry func()) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.items = append(c.items, Notification{
		ID:        c.nextID,
		Level:     LevelError,
		Message:   message,
		Sticky:    true,
		Retry:     retry,
		CreatedAt: c.now(),
	})
	return c.nextID
}

// Retry re-runs the action behind a sticky failure and dismisses it.
// Unknown ids and notifications without a retry action are no-ops.
func (c *Center) Retry(id int) bool {
	c.mu.Lock()
	var retry func()
	for i, item := range c.items {
		if item.ID == id && item.Retry != nil {
			retry = item.Retry
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if retry == nil {
		return false
	}
	retry()
	return true
}

func (c *Center) push(level Level, message string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	c.items = append(c.items, Notification{
		ID:        c.nextID,
		Level:     level,
		Message:   message,
		CreatedAt: c.now(),
	})
	return c.nextID
}

// Dismiss removes a notification by id before it expires
func (c *Center) Dismiss(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Active returns the notifications that have not expired or been
// dismissed, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl)
	live := c.items[:0]
	for _, item := range c.items {
		if item.Sticky || item.CreatedAt.After(cutoff) {
			live = append(live, item)
		}
	}
	c.items = live

	out := make([]Notification, len(live))
	copy(out, live)
	return out
}
