package bmesh

// VertexID is a stable handle to a vertex of a Mesh.
type VertexID int32

// NoVertex is the VertexID meaning "no vertex".
const NoVertex VertexID = -1

// Vertex is a point of the mesh.
type Vertex struct {
	// ID is free for consumers; the mesh never reads it. See Mesh.RefreshIDs.
	ID int

	Point      Vec3
	Attributes Attributes

	// edge is the head of the disk cycle, or NoEdge for an isolated vertex.
	edge EdgeID
}

// Edge returns an arbitrary incident edge (the head of the vertex's disk
// cycle), or NoEdge if the vertex is isolated.
func (v *Vertex) Edge() EdgeID {
	return v.edge
}
