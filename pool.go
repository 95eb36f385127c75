package srtconn

import (
	"github.com/panjf2000/ants/v2"
)

// loopPool runs an Instance's long-lived loops (Acceptor, Event Engine, or
// the combined single-client/client worker) through a small fixed-capacity
// ants.Pool instead of bare `go func()`. The pool recovers a panicking loop
// and routes it through the instance's own logger rather than crashing the
// process; its capacity is exactly the instance's thread budget (never more
// than the three loops SPEC_FULL.md §5 allows), so Submit never queues.
type loopPool struct {
	pool *ants.Pool
	log  instanceLogger
}

func newLoopPool(capacity int, log instanceLogger) (*loopPool, error) {
	p, err := ants.NewPool(capacity, ants.WithPanicHandler(func(r interface{}) {
		log.errorf("loop panic recovered: %v", r)
	}))
	if err != nil {
		return nil, err
	}
	return &loopPool{pool: p, log: log}, nil
}

// spawn submits fn to run on one of the pool's goroutines. The pool does
// not track it; callers join it through their own sync.WaitGroup.
func (lp *loopPool) spawn(name string, fn func()) error {
	return lp.pool.Submit(func() {
		lp.log.debugf("loop %q started", name)
		fn()
		lp.log.debugf("loop %q exited", name)
	})
}

// release shuts the pool down; it does not wait for submitted loops to
// exit — callers join those separately via their own sync.WaitGroup.
func (lp *loopPool) release() {
	lp.pool.Release()
}
