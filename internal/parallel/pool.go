// Package parallel runs independent tasks on a fixed set of goroutines.
//
// Each worker owns a buffered queue; tasks are dealt round-robin and an
// idle worker steals from the other queues, so one slow task does not hold
// up the rest of a batch.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of worker goroutines. It is safe for concurrent use.
type Pool struct {
	queues []chan func()
	done   chan struct{}
	wg     sync.WaitGroup
	open   atomic.Bool

	// mu is held for reading while Run enqueues and for writing while
	// Close shuts the workers down.
	mu sync.RWMutex
}

// New starts a pool of n workers. If n is 0 or negative, GOMAXPROCS is
// used.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	size := max(n*4, 8)

	p := &Pool{
		queues: make([]chan func(), n),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), size)
	}
	p.open.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.work(i)
	}
	return p
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one task from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case fn := <-q:
			return fn
		default:
		}
	}
	return nil
}

// Run executes every task and returns when all of them have finished.
// On a closed pool the tasks run on the calling goroutine.
func (p *Pool) Run(tasks ...func()) {
	if len(tasks) == 0 {
		return
	}

	p.mu.RLock()
	if !p.open.Load() {
		p.mu.RUnlock()
		for _, fn := range tasks {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, fn := range tasks {
		p.queues[i%len(p.queues)] <- func() {
			defer wg.Done()
			fn()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Map calls fn for every element of in on the pool and returns the results
// in input order.
func Map[T, R any](p *Pool, in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	tasks := make([]func(), len(in))
	for i := range in {
		tasks[i] = func() { out[i] = fn(in[i]) }
	}
	p.Run(tasks...)
	return out
}

// Close stops the workers after the queued tasks have run. It is safe to
// call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.open.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return len(p.queues)
}
