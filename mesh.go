package bmesh

import (
	"iter"

	"github.com/gogpu/bmesh/internal/arena"
	"github.com/gogpu/bmesh/internal/ring"
)

// Mesh is a non-manifold boundary representation: vertices, edges, loops
// and faces linked by disk, radial and loop cycles, plus one attribute
// schema per entity kind.
//
// The mesh owns every entity. Entities are created and destroyed only
// through its methods, which keep all cycles consistent. A Mesh is not
// safe for concurrent use.
type Mesh struct {
	vertices *arena.Arena[VertexID, Vertex]
	edges    *arena.Arena[EdgeID, Edge]
	loops    *arena.Arena[LoopID, Loop]
	faces    *arena.Arena[FaceID, Face]

	schemas [kindCount]schema
}

// NewMesh creates an empty mesh.
func NewMesh(opts ...Option) *Mesh {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := &Mesh{
		vertices: arena.New[VertexID, Vertex](o.vertices),
		edges:    arena.New[EdgeID, Edge](o.edges),
		loops:    arena.New[LoopID, Loop](o.loops),
		faces:    arena.New[FaceID, Face](o.faces),
	}
	for k := range kindCount {
		m.schemas[k].kind = k
	}
	for _, kd := range o.attributes {
		m.AddAttribute(kd.kind, kd.def)
	}
	return m
}

// Vertex returns the vertex v. It panics if v is not in the mesh.
func (m *Mesh) Vertex(v VertexID) *Vertex { return m.vertices.Get(v) }

// Edge returns the edge e. It panics if e is not in the mesh.
func (m *Mesh) Edge(e EdgeID) *Edge { return m.edges.Get(e) }

// Loop returns the loop l. It panics if l is not in the mesh.
func (m *Mesh) Loop(l LoopID) *Loop { return m.loops.Get(l) }

// Face returns the face f. It panics if f is not in the mesh.
func (m *Mesh) Face(f FaceID) *Face { return m.faces.Get(f) }

// HasVertex reports whether v refers to a vertex of the mesh.
func (m *Mesh) HasVertex(v VertexID) bool { return m.vertices.Contains(v) }

// HasEdge reports whether e refers to an edge of the mesh.
func (m *Mesh) HasEdge(e EdgeID) bool { return m.edges.Contains(e) }

// HasLoop reports whether l refers to a loop of the mesh.
func (m *Mesh) HasLoop(l LoopID) bool { return m.loops.Contains(l) }

// HasFace reports whether f refers to a face of the mesh.
func (m *Mesh) HasFace(f FaceID) bool { return m.faces.Contains(f) }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return m.vertices.Len() }

// EdgeCount returns the number of edges.
func (m *Mesh) EdgeCount() int { return m.edges.Len() }

// LoopCount returns the number of loops.
func (m *Mesh) LoopCount() int { return m.loops.Len() }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return m.faces.Len() }

// Vertices returns the vertex handles in insertion order.
func (m *Mesh) Vertices() []VertexID { return m.vertices.Handles() }

// Edges returns the edge handles in insertion order.
func (m *Mesh) Edges() []EdgeID { return m.edges.Handles() }

// Loops returns the loop handles in insertion order.
func (m *Mesh) Loops() []LoopID { return m.loops.Handles() }

// Faces returns the face handles in insertion order.
func (m *Mesh) Faces() []FaceID { return m.faces.Handles() }

// AllVertices iterates over the vertices present when iteration starts, in
// insertion order. The loop body may remove vertices; those not yet reached
// are skipped, and vertices added meanwhile are not visited.
func (m *Mesh) AllVertices() iter.Seq2[VertexID, *Vertex] { return m.vertices.All() }

// AllEdges iterates over edges in insertion order. Removal during
// iteration behaves as for AllVertices.
func (m *Mesh) AllEdges() iter.Seq2[EdgeID, *Edge] { return m.edges.All() }

// AllLoops iterates over loops in insertion order. Removal during
// iteration behaves as for AllVertices.
func (m *Mesh) AllLoops() iter.Seq2[LoopID, *Loop] { return m.loops.All() }

// AllFaces iterates over faces in insertion order. Removal during
// iteration behaves as for AllVertices.
func (m *Mesh) AllFaces() iter.Seq2[FaceID, *Face] { return m.faces.All() }

// RefreshIDs numbers vertices and faces 0..n-1 in collection order,
// overwriting their ID fields. Call it right before a conversion that
// needs dense indices; the mesh itself never maintains IDs.
func (m *Mesh) RefreshIDs() {
	i := 0
	for _, v := range m.vertices.All() {
		v.ID = i
		i++
	}
	i = 0
	for _, f := range m.faces.All() {
		f.ID = i
		i++
	}
}

// AddVertex creates an isolated vertex at p.
func (m *Mesh) AddVertex(p Vec3) VertexID {
	v := &Vertex{Point: p, edge: NoEdge}
	m.schemas[VertexKind].ensure(&v.Attributes)
	return m.vertices.Insert(v)
}

// AddEdge returns the edge between v1 and v2, creating it if the two
// vertices are not connected yet. It never creates a second edge between
// the same pair. It panics if v1 == v2.
func (m *Mesh) AddEdge(v1, v2 VertexID) EdgeID {
	if e, ok := m.FindEdge(v1, v2); ok {
		return e
	}

	e := &Edge{
		v1: v1, v2: v2,
		next1: NoEdge, prev1: NoEdge,
		next2: NoEdge, prev2: NoEdge,
		loop: NoLoop,
	}
	m.schemas[EdgeKind].ensure(&e.Attributes)
	id := m.edges.Insert(e)

	ring.Push(&m.Vertex(v1).edge, id, m.diskLinks(v1))
	ring.Push(&m.Vertex(v2).edge, id, m.diskLinks(v2))
	return id
}

// FindEdge returns the edge connecting v1 and v2, if any. The two disk
// cycles are walked in lock-step, so the cost is bounded by the smaller
// vertex degree. It panics if v1 == v2.
func (m *Mesh) FindEdge(v1, v2 VertexID) (EdgeID, bool) {
	assert(v1 != v2, "edge endpoints must be distinct")
	a, b := m.Vertex(v1), m.Vertex(v2)
	if a.edge == NoEdge || b.edge == NoEdge {
		return NoEdge, false
	}

	e1, e2 := a.edge, b.edge
	for {
		ed1, ed2 := m.Edge(e1), m.Edge(e2)
		if ed1.ContainsVertex(v2) {
			return e1, true
		}
		if ed2.ContainsVertex(v1) {
			return e2, true
		}
		e1, e2 = ed1.Next(v1), ed2.Next(v2)
		if e1 == a.edge || e2 == b.edge {
			return NoEdge, false
		}
	}
}

// AddFace creates a face over the given vertices, in order. Edges between
// consecutive vertices (including last to first) are created or reused
// with AddEdge. Loop i of the face references verts[i] and the edge from
// verts[i] to verts[(i+1)%n].
//
// No geometric validation is performed. It panics if verts is empty or
// two consecutive vertices are equal.
func (m *Mesh) AddFace(verts ...VertexID) FaceID {
	n := len(verts)
	assert(n > 0, "AddFace: no vertices")

	edges := make([]EdgeID, n)
	for i, v := range verts {
		edges[i] = m.AddEdge(v, verts[(i+1)%n])
	}

	f := &Face{loop: NoLoop, vertCount: n}
	m.schemas[FaceKind].ensure(&f.Attributes)
	fid := m.faces.Insert(f)

	for i, v := range verts {
		l := &Loop{
			vert: v, edge: edges[i], face: fid,
			next: NoLoop, prev: NoLoop,
			radialNext: NoLoop, radialPrev: NoLoop,
		}
		m.schemas[LoopKind].ensure(&l.Attributes)
		lid := m.loops.Insert(l)

		// Corners are appended so that the face cycle keeps the input
		// order starting at verts[0].
		ring.Append(&f.loop, lid, m.faceLinks)
		ring.Push(&m.Edge(edges[i]).loop, lid, m.radialLinks)
	}
	return fid
}

// diskLinks returns the slots of the disk cycle around v.
func (m *Mesh) diskLinks(v VertexID) ring.Links[EdgeID] {
	return func(e EdgeID) (next, prev *EdgeID) {
		return m.Edge(e).diskSlots(v)
	}
}

func (m *Mesh) radialLinks(l LoopID) (next, prev *LoopID) {
	lp := m.Loop(l)
	return &lp.radialNext, &lp.radialPrev
}

func (m *Mesh) faceLinks(l LoopID) (next, prev *LoopID) {
	lp := m.Loop(l)
	return &lp.next, &lp.prev
}
