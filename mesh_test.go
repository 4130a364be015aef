package bmesh

import (
	"slices"
	"testing"
)

// mustCheck fails the test if m violates a structural invariant.
func mustCheck(t *testing.T, m *Mesh) {
	t.Helper()
	if err := m.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}
}

// expectPanic fails the test if fn returns normally.
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	fn()
}

// unitQuad builds the unit square A(0,0,0) B(1,0,0) C(1,1,0) D(0,1,0).
func unitQuad(t *testing.T) (*Mesh, [4]VertexID, FaceID) {
	t.Helper()
	m := NewMesh()
	v := [4]VertexID{
		m.AddVertex(V3(0, 0, 0)),
		m.AddVertex(V3(1, 0, 0)),
		m.AddVertex(V3(1, 1, 0)),
		m.AddVertex(V3(0, 1, 0)),
	}
	f := m.AddFace(v[:]...)
	return m, v, f
}

func TestNewMeshEmpty(t *testing.T) {
	m := NewMesh()
	if m.VertexCount() != 0 || m.EdgeCount() != 0 || m.LoopCount() != 0 || m.FaceCount() != 0 {
		t.Errorf("NewMesh() counts = %d/%d/%d/%d, want all zero",
			m.VertexCount(), m.EdgeCount(), m.LoopCount(), m.FaceCount())
	}
	mustCheck(t, m)
}

func TestAddVertex(t *testing.T) {
	m := NewMesh()
	v := m.AddVertex(V3(1, 2, 3))

	vert := m.Vertex(v)
	if vert.Point != V3(1, 2, 3) {
		t.Errorf("Point = %v, want (1, 2, 3)", vert.Point)
	}
	if vert.Edge() != NoEdge {
		t.Errorf("Edge() = %d, want NoEdge for an isolated vertex", vert.Edge())
	}
	if vert.Attributes == nil {
		t.Error("Attributes = nil, want an empty map")
	}
	if !m.HasVertex(v) || m.VertexCount() != 1 {
		t.Errorf("HasVertex() = %v, VertexCount() = %d", m.HasVertex(v), m.VertexCount())
	}
}

func TestAddEdge(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))

	e := m.AddEdge(a, b)
	edge := m.Edge(e)
	if edge.Vert1() != a || edge.Vert2() != b {
		t.Errorf("endpoints = %d, %d, want %d, %d", edge.Vert1(), edge.Vert2(), a, b)
	}
	if edge.Loop() != NoLoop {
		t.Errorf("Loop() = %d, want NoLoop for a wire edge", edge.Loop())
	}
	if edge.OtherVertex(a) != b || edge.OtherVertex(b) != a {
		t.Error("OtherVertex() does not return the opposite endpoint")
	}

	// A single edge is its own disk neighbour at both ends.
	for _, v := range []VertexID{a, b} {
		if edge.Next(v) != e || edge.Prev(v) != e {
			t.Errorf("disk cycle of %d: next %d, prev %d, want %d", v, edge.Next(v), edge.Prev(v), e)
		}
		if m.Vertex(v).Edge() != e {
			t.Errorf("Vertex(%d).Edge() = %d, want %d", v, m.Vertex(v).Edge(), e)
		}
	}
	mustCheck(t, m)
}

func TestAddEdgeIsIdempotent(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))

	e1 := m.AddEdge(a, b)
	e2 := m.AddEdge(a, b)
	e3 := m.AddEdge(b, a)
	if e1 != e2 || e1 != e3 {
		t.Errorf("AddEdge() = %d, %d, %d, want one edge", e1, e2, e3)
	}
	if m.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", m.EdgeCount())
	}
	mustCheck(t, m)
}

func TestDiskCycleOrder(t *testing.T) {
	m := NewMesh()
	hub := m.AddVertex(V3(0, 0, 0))
	var spokes []EdgeID
	for i := range 4 {
		v := m.AddVertex(V3(float64(i), 1, 0))
		spokes = append(spokes, m.AddEdge(hub, v))
	}

	// Each new edge becomes the head of the disk cycle.
	got := m.VertexNeighborEdges(hub)
	want := []EdgeID{spokes[3], spokes[2], spokes[1], spokes[0]}
	if !slices.Equal(got, want) {
		t.Errorf("VertexNeighborEdges() = %v, want %v", got, want)
	}

	e := m.Vertex(hub).Edge()
	for range 4 {
		next := m.Edge(e).Next(hub)
		if m.Edge(next).Prev(hub) != e {
			t.Fatalf("Prev(Next(%d)) != %d", e, e)
		}
		e = next
	}
	mustCheck(t, m)
}

func TestFindEdge(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))
	c := m.AddVertex(V3(2, 0, 0))
	d := m.AddVertex(V3(3, 0, 0))

	if _, ok := m.FindEdge(a, b); ok {
		t.Error("FindEdge() between isolated vertices reported an edge")
	}

	ab := m.AddEdge(a, b)
	bc := m.AddEdge(b, c)
	m.AddEdge(c, d)

	tests := []struct {
		name   string
		v1, v2 VertexID
		want   EdgeID
		wantOK bool
	}{
		{"forward", a, b, ab, true},
		{"reverse", b, a, ab, true},
		{"shared endpoint", c, b, bc, true},
		{"not adjacent", a, c, NoEdge, false},
		{"far apart", a, d, NoEdge, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.FindEdge(tt.v1, tt.v2)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FindEdge(%d, %d) = %d, %v; want %d, %v", tt.v1, tt.v2, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFindEdgeHighValence(t *testing.T) {
	m := NewMesh()
	hub := m.AddVertex(V3(0, 0, 0))
	rim := make([]VertexID, 16)
	for i := range rim {
		rim[i] = m.AddVertex(V3(float64(i), 1, 0))
		m.AddEdge(hub, rim[i])
	}
	for i := range rim {
		e, ok := m.FindEdge(rim[i], hub)
		if !ok || !m.Edge(e).ContainsVertex(rim[i]) {
			t.Errorf("FindEdge(rim[%d], hub) = %d, %v", i, e, ok)
		}
	}
	if _, ok := m.FindEdge(rim[0], rim[1]); ok {
		t.Error("FindEdge() between two rim vertices reported an edge")
	}
}

func TestAddFaceQuad(t *testing.T) {
	m, v, f := unitQuad(t)

	if m.FaceCount() != 1 || m.EdgeCount() != 4 || m.LoopCount() != 4 {
		t.Fatalf("counts: faces %d, edges %d, loops %d; want 1, 4, 4",
			m.FaceCount(), m.EdgeCount(), m.LoopCount())
	}
	if got := m.Face(f).VertCount(); got != 4 {
		t.Errorf("VertCount() = %d, want 4", got)
	}
	if got := m.FaceCenter(f); !approxVec3(got, V3(0.5, 0.5, 0)) {
		t.Errorf("FaceCenter() = %v, want (0.5, 0.5, 0)", got)
	}
	if got := m.FaceNeighborVertices(f); !slices.Equal(got, v[:]) {
		t.Errorf("FaceNeighborVertices() = %v, want %v", got, v)
	}

	edges := m.FaceNeighborEdges(f)
	for i, e := range edges {
		want, ok := m.FindEdge(v[i], v[(i+1)%4])
		if !ok || e != want {
			t.Errorf("edge %d = %d, want the edge between %d and %d", i, e, v[i], v[(i+1)%4])
		}
	}
	mustCheck(t, m)
}

func TestAddFaceLoopLinks(t *testing.T) {
	m, v, f := unitQuad(t)

	first := m.Face(f).Loop()
	if got := m.Loop(first).Vert(); got != v[0] {
		t.Errorf("first corner at %d, want %d", got, v[0])
	}

	l := first
	for i := range 4 {
		loop := m.Loop(l)
		if loop.Face() != f {
			t.Errorf("loop %d: Face() = %d, want %d", i, loop.Face(), f)
		}
		if m.Loop(loop.Next()).Prev() != l {
			t.Errorf("loop %d: Next().Prev() is not the loop", i)
		}
		edge := m.Edge(loop.Edge())
		if !edge.ContainsVertex(loop.Vert()) || !edge.ContainsVertex(m.Loop(loop.Next()).Vert()) {
			t.Errorf("loop %d: edge does not join corner %d to the next corner", i, loop.Vert())
		}
		// The only loop of a border edge is its own radial neighbour.
		if loop.RadialNext() != l || loop.RadialPrev() != l {
			t.Errorf("loop %d: radial links %d/%d, want %d", i, loop.RadialNext(), loop.RadialPrev(), l)
		}
		l = loop.Next()
	}
	if l != first {
		t.Errorf("four Next() steps ended at %d, want %d", l, first)
	}
}

func TestAddFaceReusesEdges(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))
	c := m.AddVertex(V3(1, 1, 0))
	d := m.AddVertex(V3(0, -1, 0))

	ab := m.AddEdge(a, b)
	m.AddFace(a, b, c)
	m.AddFace(b, a, d)

	if m.EdgeCount() != 5 {
		t.Errorf("EdgeCount() = %d, want 5", m.EdgeCount())
	}
	if got := len(m.EdgeLoops(ab)); got != 2 {
		t.Errorf("radial cycle of the shared edge has %d loops, want 2", got)
	}
	mustCheck(t, m)
}

func TestAddFaceNonManifoldEdge(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))

	var faces []FaceID
	for i := range 3 {
		apex := m.AddVertex(V3(0.5, float64(i), 1))
		faces = append(faces, m.AddFace(a, b, apex))
	}

	ab, ok := m.FindEdge(a, b)
	if !ok {
		t.Fatal("FindEdge(a, b) found nothing")
	}
	got := m.EdgeNeighborFaces(ab)
	slices.Sort(got)
	if !slices.Equal(got, faces) {
		t.Errorf("EdgeNeighborFaces() = %v, want %v", got, faces)
	}
	mustCheck(t, m)
}

func TestAddFaceTwoVertices(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))
	f := m.AddFace(a, b)

	if m.EdgeCount() != 1 || m.LoopCount() != 2 {
		t.Errorf("EdgeCount() = %d, LoopCount() = %d; want 1, 2", m.EdgeCount(), m.LoopCount())
	}
	e := m.FaceNeighborEdges(f)
	if e[0] != e[1] {
		t.Errorf("FaceNeighborEdges() = %v, want the same edge twice", e)
	}
	mustCheck(t, m)
}

func TestAddFacePanics(t *testing.T) {
	m := NewMesh()
	a := m.AddVertex(V3(0, 0, 0))
	b := m.AddVertex(V3(1, 0, 0))

	expectPanic(t, "AddFace()", func() { m.AddFace() })
	expectPanic(t, "AddFace(a)", func() { m.AddFace(a) })
	expectPanic(t, "AddFace(a, a, b)", func() { m.AddFace(a, a, b) })
	expectPanic(t, "AddEdge(a, a)", func() { m.AddEdge(a, a) })
	expectPanic(t, "FindEdge(a, a)", func() { m.FindEdge(a, a) })
	expectPanic(t, "AddEdge to a dead vertex", func() { m.AddEdge(a, VertexID(99)) })
}

func TestEntityAccessorsPanicOnDeadHandle(t *testing.T) {
	m, v, f := unitQuad(t)
	m.RemoveVertex(v[0])

	expectPanic(t, "Vertex()", func() { m.Vertex(v[0]) })
	expectPanic(t, "Face()", func() { m.Face(f) })
	expectPanic(t, "Edge(NoEdge)", func() { m.Edge(NoEdge) })
	expectPanic(t, "Loop(NoLoop)", func() { m.Loop(NoLoop) })
	expectPanic(t, "OtherVertex()", func() {
		e := m.Vertex(v[2]).Edge()
		m.Edge(e).OtherVertex(VertexID(99))
	})
}

func TestCollectionsKeepInsertionOrder(t *testing.T) {
	m := NewMesh()
	var vs []VertexID
	for i := range 5 {
		vs = append(vs, m.AddVertex(V3(float64(i), 0, 0)))
	}
	m.RemoveVertex(vs[2])
	late := m.AddVertex(V3(9, 9, 9))

	want := []VertexID{vs[0], vs[1], vs[3], vs[4], late}
	if got := m.Vertices(); !slices.Equal(got, want) {
		t.Errorf("Vertices() = %v, want %v", got, want)
	}

	var xs []float64
	for _, v := range m.AllVertices() {
		xs = append(xs, v.Point[0])
	}
	if !slices.Equal(xs, []float64{0, 1, 3, 4, 9}) {
		t.Errorf("AllVertices() x coordinates = %v", xs)
	}
}

func TestRefreshIDs(t *testing.T) {
	m, v, _ := unitQuad(t)
	g := m.AddFace(v[1], v[0], m.AddVertex(V3(0.5, -1, 0)))
	m.RemoveVertex(v[3])
	m.RefreshIDs()

	i := 0
	for _, vert := range m.AllVertices() {
		if vert.ID != i {
			t.Errorf("vertex #%d has ID %d", i, vert.ID)
		}
		i++
	}
	if got := m.Face(g).ID; got != 0 {
		t.Errorf("surviving face ID = %d, want 0", got)
	}
}
