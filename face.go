package bmesh

// FaceID is a stable handle to a face of a Mesh.
type FaceID int32

// NoFace is the FaceID meaning "no face".
const NoFace FaceID = -1

// Face is a polygon. Its vertex and edge sequence is not stored; it is
// derived by walking the loop cycle.
type Face struct {
	// ID is free for consumers; the mesh never reads it. See Mesh.RefreshIDs.
	ID int

	Attributes Attributes

	vertCount int
	loop      LoopID
}

// VertCount returns the number of corners of the face.
func (f *Face) VertCount() int { return f.vertCount }

// Loop returns the first corner of the face.
func (f *Face) Loop() LoopID { return f.loop }
