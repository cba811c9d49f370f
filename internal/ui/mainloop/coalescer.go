// Package mainloop schedules work onto the UI loop.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks posted from any goroutine into a
// single run of the most recent task. The config watcher uses it so a burst
// of file writes reloads the layout once.
type Coalescer struct {
	mu        sync.Mutex
	latest    map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that hands work to post, which must run
// the function on the UI loop.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		latest: make(map[string]func()),
		post:   post,
	}
}

// Post queues fn under key. If a task with the same key is already queued,
// fn replaces it and nothing new is posted.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, queued := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if queued {
		return
	}
	c.post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed {
		fn()
	}
}

// Destroy drops queued work; later posts are ignored.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.latest)
	c.mu.Unlock()
}
