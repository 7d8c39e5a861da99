package prefs

import (
	"errors"
	"sync"
)

// Change sources recorded in events and the journal.
const (
	SourceInit     = "init"
	SourceTUI      = "tui"
	SourceCLI      = "cli"
	SourceExternal = "external"
)

// ErrControllerClosed is returned when operations are attempted on a closed controller.
var ErrControllerClosed = errors.New("controller is closed")

// ChangeEvent signals a theme change to subscribers.
type ChangeEvent struct {
	Previous Theme
	Current  Theme
	Source   string
}

// Controller is the single source of truth for the theme preference.
// It resolves the initial value from the store, serves reads, and fans
// change events out to subscribers. All mutation goes through Set and
// Toggle; consumers hold the controller and treat the value as read-only.
type Controller struct {
	mu          sync.RWMutex
	store       *Store
	key         string
	current     Theme
	persisted   bool // false after a failed write; toggling keeps working in memory
	subscribers []chan ChangeEvent
	closed      bool
}

// NewController resolves the persisted theme under key and returns a ready
// controller. A missing or invalid stored value resolves to def; resolution
// never fails.
func NewController(store *Store, key string, def Theme) *Controller {
	current := def
	if store != nil {
		if raw, ok := store.Get(key); ok {
			if t, err := ParseTheme(raw); err == nil {
				current = t
			}
		}
	}

	return &Controller{
		store:     store,
		key:       key,
		current:   current,
		persisted: true,
	}
}

// Current returns the active theme.
func (c *Controller) Current() Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Persisted reports whether the last write reached the store.
func (c *Controller) Persisted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.persisted
}

// Set applies t: updates the broadcast value, persists it, and notifies
// subscribers, all under one lock so no consumer observes an intermediate
// state. A persistence failure degrades silently to in-memory-only.
func (c *Controller) Set(t Theme, source string) error {
	if !t.IsValid() {
		return errors.New("refusing to apply invalid theme " + string(t))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrControllerClosed
	}

	previous := c.current
	c.current = t

	if c.store != nil {
		c.persisted = c.store.Set(c.key, string(t)) == nil
	}

	if previous != t {
		c.notify(ChangeEvent{Previous: previous, Current: t, Source: source})
	}
	return nil
}

// Toggle flips the theme and applies the result.
func (c *Controller) Toggle(source string) (Theme, error) {
	next := c.Current().Toggle()
	if err := c.Set(next, source); err != nil {
		return "", err
	}
	return next, nil
}

// Reload re-reads the store and adopts its value if it changed, without
// writing back. Used when the prefs file is modified by another process.
func (c *Controller) Reload() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.store == nil {
		return
	}

	raw, ok := c.store.Get(c.key)
	if !ok {
		return
	}
	t, err := ParseTheme(raw)
	if err != nil || t == c.current {
		return
	}

	previous := c.current
	c.current = t
	c.notify(ChangeEvent{Previous: previous, Current: t, Source: SourceExternal})
}

// Subscribe returns a channel that receives change events.
func (c *Controller) Subscribe() <-chan ChangeEvent {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan ChangeEvent, 10)
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscription and closes its channel.
func (c *Controller) Unsubscribe(ch <-chan ChangeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, sub := range c.subscribers {
		if sub == ch {
			c.subscribers = append(c.subscribers[:i], c.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Close closes all subscriber channels. Further mutation returns
// ErrControllerClosed; reads keep working.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	for _, ch := range c.subscribers {
		close(ch)
	}
	c.subscribers = nil
	return nil
}

// notify sends an event to all subscribers (non-blocking). Caller holds the lock.
func (c *Controller) notify(event ChangeEvent) {
	for _, ch := range c.subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, skip
		}
	}
}
