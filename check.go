package bmesh

import (
	"errors"
	"fmt"

	"github.com/gogpu/bmesh/internal/ring"
)

// ErrCorrupt is wrapped by every violation Check reports.
var ErrCorrupt = errors.New("bmesh: mesh invariant violated")

// Check walks every cycle and attribute map of the mesh and reports each
// violated structural invariant. It returns nil for a consistent mesh.
// The returned error joins one error per violation, each wrapping
// ErrCorrupt.
//
// Check never panics on a corrupt mesh; it is meant for tests and for
// validating meshes before handing them to a converter.
func (m *Mesh) Check() error {
	c := checker{m: m, owned: make(map[FaceID]int, m.faces.Len())}
	c.vertices()
	c.edges()
	c.loops()
	c.faces()
	c.attributes()
	return errors.Join(c.errs...)
}

type checker struct {
	m    *Mesh
	errs []error

	// owned counts the loops naming each face.
	owned map[FaceID]int
}

func (c *checker) fail(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...))
}

// safeDisk is diskLinks that records a violation instead of panicking on a
// dead edge or a foreign endpoint.
func (c *checker) safeDisk(v VertexID, bad *bool) ring.Links[EdgeID] {
	var scratch [2]EdgeID
	return func(e EdgeID) (next, prev *EdgeID) {
		if !c.m.edges.Contains(e) {
			*bad = true
			scratch = [2]EdgeID{NoEdge, NoEdge}
			return &scratch[0], &scratch[1]
		}
		edge := c.m.edges.Get(e)
		if !edge.ContainsVertex(v) {
			*bad = true
			scratch = [2]EdgeID{NoEdge, NoEdge}
			return &scratch[0], &scratch[1]
		}
		return edge.diskSlots(v)
	}
}

func (c *checker) safeLoop(radial bool, bad *bool) ring.Links[LoopID] {
	var scratch [2]LoopID
	return func(l LoopID) (next, prev *LoopID) {
		if !c.m.loops.Contains(l) {
			*bad = true
			scratch = [2]LoopID{NoLoop, NoLoop}
			return &scratch[0], &scratch[1]
		}
		lp := c.m.loops.Get(l)
		if radial {
			return &lp.radialNext, &lp.radialPrev
		}
		return &lp.next, &lp.prev
	}
}

func (c *checker) vertices() {
	m := c.m
	degree := make(map[VertexID]int, m.vertices.Len())
	for _, e := range m.edges.All() {
		degree[e.v1]++
		degree[e.v2]++
	}

	limit := m.edges.Len() + 1
	for id, v := range m.vertices.All() {
		if v.edge == NoEdge {
			if degree[id] != 0 {
				c.fail("vertex %d has no disk head but %d incident edges", id, degree[id])
			}
			continue
		}
		bad := false
		disk, ok := ring.Collect(v.edge, c.safeDisk(id, &bad), limit)
		if bad || !ok {
			c.fail("vertex %d: disk cycle is broken", id)
			continue
		}
		if len(disk) != degree[id] {
			c.fail("vertex %d: disk cycle has %d edges, want %d", id, len(disk), degree[id])
		}
		seen := make(map[EdgeID]struct{}, len(disk))
		for _, e := range disk {
			if _, dup := seen[e]; dup {
				c.fail("vertex %d: edge %d appears twice in the disk cycle", id, e)
			}
			seen[e] = struct{}{}
		}
	}
}

func (c *checker) edges() {
	m := c.m
	uses := make(map[EdgeID]int, m.edges.Len())
	for _, l := range m.loops.All() {
		uses[l.edge]++
	}

	type pair struct{ a, b VertexID }
	pairs := make(map[pair]EdgeID, m.edges.Len())

	limit := m.loops.Len() + 1
	for id, e := range m.edges.All() {
		if e.v1 == e.v2 {
			c.fail("edge %d: endpoints are both vertex %d", id, e.v1)
		}
		if !m.vertices.Contains(e.v1) || !m.vertices.Contains(e.v2) {
			c.fail("edge %d: endpoint missing from the mesh", id)
			continue
		}

		p := pair{min(e.v1, e.v2), max(e.v1, e.v2)}
		if other, dup := pairs[p]; dup {
			c.fail("edges %d and %d connect the same vertices", other, id)
		}
		pairs[p] = id

		if e.loop == NoLoop {
			if uses[id] != 0 {
				c.fail("edge %d has no radial head but %d loops use it", id, uses[id])
			}
			continue
		}
		bad := false
		radial, ok := ring.Collect(e.loop, c.safeLoop(true, &bad), limit)
		if bad || !ok {
			c.fail("edge %d: radial cycle is broken", id)
			continue
		}
		if len(radial) != uses[id] {
			c.fail("edge %d: radial cycle has %d loops, want %d", id, len(radial), uses[id])
		}
		for _, l := range radial {
			if m.loops.Get(l).edge != id {
				c.fail("edge %d: radial cycle holds loop %d of edge %d", id, l, m.loops.Get(l).edge)
			}
		}
	}
}

func (c *checker) loops() {
	m := c.m
	for id, l := range m.loops.All() {
		if !m.vertices.Contains(l.vert) || !m.edges.Contains(l.edge) || !m.faces.Contains(l.face) {
			c.fail("loop %d: dangling vertex, edge or face reference", id)
			continue
		}
		c.owned[l.face]++
		if !m.edges.Get(l.edge).ContainsVertex(l.vert) {
			c.fail("loop %d: edge %d does not touch vertex %d", id, l.edge, l.vert)
		}
	}
}

func (c *checker) faces() {
	m := c.m
	limit := m.loops.Len() + 1
	for id, f := range m.faces.All() {
		bad := false
		loops, ok := ring.Collect(f.loop, c.safeLoop(false, &bad), limit)
		if bad || !ok {
			c.fail("face %d: loop cycle is broken", id)
			continue
		}
		if len(loops) != f.vertCount {
			c.fail("face %d: loop cycle has %d loops, vertcount is %d", id, len(loops), f.vertCount)
		}
		if n := c.owned[id]; n != len(loops) {
			c.fail("face %d: %d loops name it, its cycle holds %d", id, n, len(loops))
		}
		for i, l := range loops {
			lp := m.loops.Get(l)
			if lp.face != id {
				c.fail("face %d: loop %d belongs to face %d", id, l, lp.face)
				continue
			}
			next := m.loops.Get(loops[(i+1)%len(loops)])
			if !m.edges.Contains(lp.edge) {
				continue
			}
			edge := m.edges.Get(lp.edge)
			if !edge.ContainsVertex(lp.vert) || !edge.ContainsVertex(next.vert) {
				c.fail("face %d: edge %d of loop %d does not reach the next corner", id, lp.edge, l)
			}
		}
	}
}

func (c *checker) attributes() {
	m := c.m
	for k := range kindCount {
		s := &m.schemas[k]
		if len(s.defs) == 0 {
			continue
		}
		i := 0
		m.eachAttributes(k, func(attrs *Attributes) {
			for _, def := range s.defs {
				v, ok := (*attrs)[def.Name]
				switch {
				case !ok:
					c.fail("%v #%d: missing attribute %q", k, i, def.Name)
				case !def.CheckValue(v):
					c.fail("%v #%d: attribute %q is %v, want %v", k, i, def.Name, v, def)
				}
			}
			i++
		})
	}
}
