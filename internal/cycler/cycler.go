// Package cycler advances the hero section's rotating word on a fixed interval.
package cycler

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrNoWords is returned when a cycler is constructed with an empty word list.
var ErrNoWords = errors.New("word list is empty")

// Advance returns the index following current in a list of length n,
// wrapping to 0 after the last element. Caller guarantees n > 0.
func Advance(current, n int) int {
	return (current + 1) % n
}

// Cycler owns an index into a fixed word list and advances it over time.
// The word list is copied at construction and never mutated. Construct
// with New; the zero value is not usable.
type Cycler struct {
	mu       sync.Mutex
	words    []string
	interval time.Duration
	index    int
	ticker   *time.Ticker
	done     chan struct{}
	running  bool
}

// New validates the configuration and returns a stopped cycler at index 0.
// An empty word list or non-positive interval is a configuration error and
// prevents the cycler from being created at all.
func New(words []string, interval time.Duration) (*Cycler, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}

	return &Cycler{
		words:    append([]string(nil), words...),
		interval: interval,
	}, nil
}

// Words returns a copy of the word list.
func (c *Cycler) Words() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.words...)
}

// Index returns the current index.
func (c *Cycler) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the word at the current index.
func (c *Cycler) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.words[c.index]
}

// Interval returns the configured advancement interval.
func (c *Cycler) Interval() time.Duration {
	return c.interval
}

// Next advances the index by one, wrapping after the last word, and
// returns the new current word. This is the single mutation path for the
// index; the timer started by Start drives it through the same method.
func (c *Cycler) Next() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advanceLocked()
}

func (c *Cycler) advanceLocked() string {
	c.index = Advance(c.index, len(c.words))
	return c.words[c.index]
}

// Start begins a repeating timer that advances the index every interval,
// invoking onAdvance (if non-nil) with each new current word. Calling
// Start on a running cycler is a no-op. onAdvance must not call Stop.
func (c *Cycler) Start(onAdvance func(word string)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}
	c.running = true
	c.ticker = time.NewTicker(c.interval)
	c.done = make(chan struct{})

	go c.run(c.ticker, c.done, onAdvance)
}

func (c *Cycler) run(ticker *time.Ticker, done chan struct{}, onAdvance func(string)) {
	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if !c.running {
				c.mu.Unlock()
				return
			}
			word := c.advanceLocked()
			if onAdvance != nil {
				onAdvance(word)
			}
			c.mu.Unlock()

		case <-done:
			return
		}
	}
}

// Stop cancels the timer and freezes the index. Idempotent: calling it
// twice or on a never-started cycler is safe, and no advancement is
// observed after it returns.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	c.ticker.Stop()
	c.ticker = nil
	close(c.done)
}
