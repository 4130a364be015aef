// Package arena provides a slot arena addressed by stable integer handles.
//
// Slots freed by Remove are recycled, but iteration always follows
// insertion order: live slots are threaded on an intrusive ring (see
// package ring) in the order they were inserted, so removing an element
// never renumbers or reorders the survivors.
//
// Arena is not safe for concurrent use.
package arena

import (
	"iter"

	"github.com/gogpu/bmesh/internal/ring"
)

// Arena stores *T values under handles of type H.
type Arena[H ring.Handle, T any] struct {
	items []*T
	next  []H
	prev  []H
	free  []H
	head  H
	count int
}

// New creates an empty arena with room for capacity elements.
func New[H ring.Handle, T any](capacity int) *Arena[H, T] {
	return &Arena[H, T]{
		items: make([]*T, 0, capacity),
		next:  make([]H, 0, capacity),
		prev:  make([]H, 0, capacity),
		head:  ring.None,
	}
}

func (a *Arena[H, T]) links(h H) (next, prev *H) {
	return &a.next[h], &a.prev[h]
}

// Insert stores v and returns its handle. The element is placed last in
// iteration order.
func (a *Arena[H, T]) Insert(v *T) H {
	if v == nil {
		panic("arena: insert of nil element")
	}

	var h H
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
		a.items[h] = v
	} else {
		h = H(len(a.items))
		a.items = append(a.items, v)
		a.next = append(a.next, ring.None)
		a.prev = append(a.prev, ring.None)
	}

	ring.Append(&a.head, h, a.links)
	a.count++
	return h
}

// Remove deletes the element stored under h. The handle may be handed out
// again by a later Insert.
func (a *Arena[H, T]) Remove(h H) {
	if !a.Contains(h) {
		panic("arena: remove of a dead handle")
	}
	ring.Remove(&a.head, h, a.links)
	a.items[h] = nil
	a.free = append(a.free, h)
	a.count--
}

// Contains reports whether h refers to a live element.
func (a *Arena[H, T]) Contains(h H) bool {
	return h >= 0 && int(h) < len(a.items) && a.items[h] != nil
}

// Get returns the element stored under h. It panics if h is dead.
func (a *Arena[H, T]) Get(h H) *T {
	if !a.Contains(h) {
		panic("arena: access through a dead handle")
	}
	return a.items[h]
}

// Len returns the number of live elements.
func (a *Arena[H, T]) Len() int {
	return a.count
}

// All iterates over the elements live when iteration starts, in insertion
// order. Elements may be removed during iteration; removed ones are skipped
// and elements inserted meanwhile are not visited.
func (a *Arena[H, T]) All() iter.Seq2[H, *T] {
	return func(yield func(H, *T) bool) {
		for _, h := range a.Handles() {
			if !a.Contains(h) {
				continue
			}
			if !yield(h, a.items[h]) {
				return
			}
		}
	}
}

// Handles returns the live handles in insertion order.
func (a *Arena[H, T]) Handles() []H {
	hs := make([]H, 0, a.count)
	ring.Walk(a.head, a.links, func(h H) bool {
		hs = append(hs, h)
		return true
	})
	return hs
}
