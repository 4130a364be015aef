package bmesh

import "github.com/gogpu/bmesh/internal/ring"

// Removal cascades in ownership order: a vertex takes its edges with it,
// an edge takes the faces of its loops, a face takes its loops. Nothing is
// destroyed while something that depends on it is still alive.

// RemoveVertex removes v together with every incident edge and, through
// them, every face using one of those edges.
func (m *Mesh) RemoveVertex(v VertexID) {
	vert := m.Vertex(v)
	for vert.edge != NoEdge {
		m.RemoveEdge(vert.edge)
	}
	m.vertices.Remove(v)
}

// RemoveEdge removes e together with every face using it. The endpoints
// stay in the mesh.
func (m *Mesh) RemoveEdge(e EdgeID) {
	edge := m.Edge(e)
	for edge.loop != NoLoop {
		m.removeLoop(edge.loop)
	}

	ring.Remove(&m.Vertex(edge.v1).edge, e, m.diskLinks(edge.v1))
	ring.Remove(&m.Vertex(edge.v2).edge, e, m.diskLinks(edge.v2))
	m.edges.Remove(e)
}

// RemoveFace removes f and its loops. Edges and vertices stay; an edge
// whose radial cycle only held f's loop becomes a wire edge.
func (m *Mesh) RemoveFace(f FaceID) {
	face := m.Face(f)

	// Collect first: the face cycle is torn down while we go.
	loops := m.FaceLoops(f)
	for _, l := range loops {
		lp := m.Loop(l)
		lp.face = NoFace
		lp.next, lp.prev = NoLoop, NoLoop
		m.removeLoop(l)
	}

	face.loop = NoLoop
	face.vertCount = 0
	m.faces.Remove(f)
}

// removeLoop removes a single loop. A loop that still belongs to a face
// cannot go alone, so the whole face is removed instead.
func (m *Mesh) removeLoop(l LoopID) {
	loop := m.Loop(l)
	if loop.face != NoFace {
		m.RemoveFace(loop.face)
		return
	}

	ring.Remove(&m.Edge(loop.edge).loop, l, m.radialLinks)
	m.loops.Remove(l)
}
