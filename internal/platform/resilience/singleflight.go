package resilience

import (
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
)

// SingleFlight deduplicates concurrent lookups for the same key. Callers that
// arrive while a lookup is running share its result.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg   sync.WaitGroup
	val  any
	err  error
	dups int
}

func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		c.dups++
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	g.run(c, fn)

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()

	return c.val, c.err, c.dups > 0
}

// run converts a panic in fn into an error so waiters are always released.
func (g *SingleFlight) run(c *call, fn func() (any, error)) {
	defer c.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			c.val = nil
			c.err = crerr.Newf("singleflight call panicked: %s", fmt.Sprint(r))
		}
	}()
	c.val, c.err = fn()
}
