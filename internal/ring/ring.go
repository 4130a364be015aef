// Package ring implements intrusive circular doubly-linked lists over
// integer handles.
//
// The next/prev slots of a node live wherever the caller keeps them (an
// entity struct, a parallel slice, one of two slot pairs on an edge). A
// Links function hands those slots to the ring operations, so the same
// splice code serves every cycle a node takes part in.
//
// The empty ring and the missing node are both represented by None.
package ring

// None is the handle value meaning "no node".
const None = -1

// Handle is any int32-backed handle type.
type Handle interface {
	~int32
}

// Links returns pointers to the next and prev slots of node n for one
// particular ring.
type Links[H Handle] func(n H) (next, prev *H)

// InsertBefore splices the unlinked node n into the ring immediately
// before at. The ring head is not touched.
func InsertBefore[H Handle](at, n H, links Links[H]) {
	_, atPrev := links(at)
	p := *atPrev
	if p == None {
		panic("ring: insert before an unlinked node")
	}

	nNext, nPrev := links(n)
	*nNext = at
	*nPrev = p

	pNext, _ := links(p)
	*pNext = n
	*atPrev = n
}

// Push inserts n before the current head and makes it the new head.
// On an empty ring n becomes a single-node cycle.
func Push[H Handle](head *H, n H, links Links[H]) {
	if *head == None {
		selfLink(n, links)
		*head = n
		return
	}
	InsertBefore(*head, n, links)
	*head = n
}

// Append inserts n before the current head, leaving the head in place, so
// that a walk from the head visits n last.
func Append[H Handle](head *H, n H, links Links[H]) {
	if *head == None {
		selfLink(n, links)
		*head = n
		return
	}
	InsertBefore(*head, n, links)
}

// Remove unlinks n from the ring whose head is *head. A single-node ring
// becomes empty; if n was the head, the head advances to n's old next.
// The slots of n are reset to None.
func Remove[H Handle](head *H, n H, links Links[H]) {
	next, prev := links(n)
	nx, pv := *next, *prev
	if nx == None || pv == None {
		panic("ring: remove of an unlinked node")
	}

	if nx == n {
		if *head != n {
			panic("ring: single-node ring does not match head")
		}
		*head = None
	} else {
		pvNext, _ := links(pv)
		*pvNext = nx
		_, nxPrev := links(nx)
		*nxPrev = pv
		if *head == n {
			*head = nx
		}
	}

	*next, *prev = None, None
}

// Walk calls fn for every node of the ring starting at head, in next
// order, until fn returns false. The successor of a node is read before fn
// is called on it. fn must not unlink nodes other than n; if it unlinks
// head, the walk stops.
func Walk[H Handle](head H, links Links[H], fn func(n H) bool) {
	if head == None {
		return
	}
	n := head
	for {
		next, _ := links(n)
		nx := *next
		if !fn(n) {
			return
		}
		if nx == head || nx == None || nx == n {
			return
		}
		if hn, _ := links(head); *hn == None {
			return
		}
		n = nx
	}
}

// Len returns the number of nodes in the ring starting at head.
func Len[H Handle](head H, links Links[H]) int {
	count := 0
	Walk(head, links, func(H) bool {
		count++
		return true
	})
	return count
}

// Collect returns the nodes of the ring starting at head in next order.
// It verifies the prev link of every node it steps onto and gives up after
// limit nodes; ok is false if the ring is broken, does not close, or is
// longer than limit.
func Collect[H Handle](head H, links Links[H], limit int) (nodes []H, ok bool) {
	if head == None {
		return nil, true
	}
	n := head
	for len(nodes) < limit {
		nodes = append(nodes, n)
		next, _ := links(n)
		nx := *next
		if nx == None {
			return nodes, false
		}
		if _, nxPrev := links(nx); *nxPrev != n {
			return nodes, false
		}
		if nx == head {
			return nodes, true
		}
		n = nx
	}
	return nodes, false
}

func selfLink[H Handle](n H, links Links[H]) {
	next, prev := links(n)
	*next = n
	*prev = n
}
