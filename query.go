package bmesh

import "github.com/gogpu/bmesh/internal/ring"

// VertexNeighborEdges returns the edges incident to v, walking its disk
// cycle from the head.
func (m *Mesh) VertexNeighborEdges(v VertexID) []EdgeID {
	var out []EdgeID
	ring.Walk(m.Vertex(v).edge, m.diskLinks(v), func(e EdgeID) bool {
		out = append(out, e)
		return true
	})
	return out
}

// VertexNeighborFaces returns the distinct faces using v, in the order
// they are met walking the disk cycle and each edge's radial cycle.
func (m *Mesh) VertexNeighborFaces(v VertexID) []FaceID {
	var out []FaceID
	seen := make(map[FaceID]struct{})
	for _, e := range m.VertexNeighborEdges(v) {
		for _, f := range m.EdgeNeighborFaces(e) {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out
}

// EdgeLoops returns the loops using e, walking its radial cycle.
func (m *Mesh) EdgeLoops(e EdgeID) []LoopID {
	var out []LoopID
	ring.Walk(m.Edge(e).loop, m.radialLinks, func(l LoopID) bool {
		out = append(out, l)
		return true
	})
	return out
}

// EdgeNeighborFaces returns the face of every loop in e's radial cycle.
// A face that uses e twice is listed twice.
func (m *Mesh) EdgeNeighborFaces(e EdgeID) []FaceID {
	loops := m.EdgeLoops(e)
	out := make([]FaceID, len(loops))
	for i, l := range loops {
		out[i] = m.Loop(l).face
	}
	return out
}

// EdgeCenter returns the midpoint of e.
func (m *Mesh) EdgeCenter(e EdgeID) Vec3 {
	edge := m.Edge(e)
	return meanVec3([]Vec3{m.Vertex(edge.v1).Point, m.Vertex(edge.v2).Point})
}

// FaceLoops returns the corners of f in face order, starting at f.Loop().
func (m *Mesh) FaceLoops(f FaceID) []LoopID {
	out := make([]LoopID, 0, m.Face(f).vertCount)
	ring.Walk(m.Face(f).loop, m.faceLinks, func(l LoopID) bool {
		out = append(out, l)
		return true
	})
	return out
}

// FaceNeighborVertices returns the vertices of f in face order.
func (m *Mesh) FaceNeighborVertices(f FaceID) []VertexID {
	loops := m.FaceLoops(f)
	out := make([]VertexID, len(loops))
	for i, l := range loops {
		out[i] = m.Loop(l).vert
	}
	return out
}

// FaceNeighborEdges returns the edges of f in face order: edge i connects
// vertex i and vertex i+1 (mod n) of FaceNeighborVertices.
func (m *Mesh) FaceNeighborEdges(f FaceID) []EdgeID {
	loops := m.FaceLoops(f)
	out := make([]EdgeID, len(loops))
	for i, l := range loops {
		out[i] = m.Loop(l).edge
	}
	return out
}

// FaceLoop returns the corner of f at vertex v. ok is false if v is not a
// vertex of f.
func (m *Mesh) FaceLoop(f FaceID, v VertexID) (l LoopID, ok bool) {
	l = NoLoop
	ring.Walk(m.Face(f).loop, m.faceLinks, func(id LoopID) bool {
		if m.Loop(id).vert == v {
			l, ok = id, true
			return false
		}
		return true
	})
	return l, ok
}

// FaceCenter returns the arithmetic mean of the vertex positions of f.
// The result is NaN for a face without vertices.
func (m *Mesh) FaceCenter(f FaceID) Vec3 {
	verts := m.FaceNeighborVertices(f)
	ps := make([]Vec3, len(verts))
	for i, v := range verts {
		ps[i] = m.Vertex(v).Point
	}
	return meanVec3(ps)
}
