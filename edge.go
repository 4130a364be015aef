package bmesh

// EdgeID is a stable handle to an edge of a Mesh.
type EdgeID int32

// NoEdge is the EdgeID meaning "no edge".
const NoEdge EdgeID = -1

// Edge connects two distinct vertices. It sits in the disk cycle of each
// endpoint, so it carries one next/prev pair per endpoint.
type Edge struct {
	Attributes Attributes

	v1, v2       VertexID
	next1, prev1 EdgeID // disk cycle of v1
	next2, prev2 EdgeID // disk cycle of v2

	// loop is the head of the radial cycle, or NoLoop for a wire edge.
	loop LoopID
}

// Vert1 returns the first endpoint.
func (e *Edge) Vert1() VertexID { return e.v1 }

// Vert2 returns the second endpoint.
func (e *Edge) Vert2() VertexID { return e.v2 }

// Loop returns an arbitrary loop using this edge (the head of the radial
// cycle), or NoLoop if the edge borders no face.
func (e *Edge) Loop() LoopID { return e.loop }

// ContainsVertex reports whether v is an endpoint of e.
func (e *Edge) ContainsVertex(v VertexID) bool {
	return v == e.v1 || v == e.v2
}

// OtherVertex returns the endpoint of e that is not v.
// It panics if v is not an endpoint.
func (e *Edge) OtherVertex(v VertexID) VertexID {
	switch v {
	case e.v1:
		return e.v2
	case e.v2:
		return e.v1
	}
	panic("bmesh: OtherVertex: vertex is not an endpoint of the edge")
}

// Next returns the edge after e in the disk cycle of endpoint v.
// It panics if v is not an endpoint.
func (e *Edge) Next(v VertexID) EdgeID {
	next, _ := e.diskSlots(v)
	return *next
}

// Prev returns the edge before e in the disk cycle of endpoint v.
// It panics if v is not an endpoint.
func (e *Edge) Prev(v VertexID) EdgeID {
	_, prev := e.diskSlots(v)
	return *prev
}

// diskSlots returns the next/prev slots of e in the disk cycle of v.
func (e *Edge) diskSlots(v VertexID) (next, prev *EdgeID) {
	switch v {
	case e.v1:
		return &e.next1, &e.prev1
	case e.v2:
		return &e.next2, &e.prev2
	}
	panic("bmesh: disk cycle: vertex is not an endpoint of the edge")
}
