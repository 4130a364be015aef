package bmesh

// LoopID is a stable handle to a loop of a Mesh.
type LoopID int32

// NoLoop is the LoopID meaning "no loop".
const NoLoop LoopID = -1

// Loop is a face corner. It belongs to exactly one face and is a node of
// two cycles: the face's loop cycle (Next/Prev, in face order) and the
// radial cycle of its edge (RadialNext/RadialPrev).
//
// The edge of a loop runs from the loop's vertex to the vertex of the next
// loop of the face.
type Loop struct {
	Attributes Attributes

	vert VertexID
	edge EdgeID
	face FaceID

	next, prev             LoopID
	radialNext, radialPrev LoopID
}

// Vert returns the corner vertex.
func (l *Loop) Vert() VertexID { return l.vert }

// Edge returns the edge from this corner to the next one.
func (l *Loop) Edge() EdgeID { return l.edge }

// Face returns the owning face.
func (l *Loop) Face() FaceID { return l.face }

// Next returns the following corner of the face.
func (l *Loop) Next() LoopID { return l.next }

// Prev returns the preceding corner of the face.
func (l *Loop) Prev() LoopID { return l.prev }

// RadialNext returns the next loop around the same edge.
func (l *Loop) RadialNext() LoopID { return l.radialNext }

// RadialPrev returns the previous loop around the same edge.
func (l *Loop) RadialPrev() LoopID { return l.radialPrev }
