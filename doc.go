// Package bmesh provides an editable non-manifold boundary-representation
// mesh with per-entity typed attributes.
//
// # Overview
//
// A Mesh holds four kinds of entities:
//   - Vertex: a position plus attributes
//   - Edge: an unordered pair of distinct vertices
//   - Loop: a face corner, one per vertex of a face
//   - Face: a polygon, defined by the cycle of its loops
//
// Edges may border any number of faces (including none, a wire edge), and
// a vertex need not have a single fan of faces around it. Procedural tools
// mutate a Mesh and hand it to a converter that produces render buffers.
//
// # Quick Start
//
//	m := bmesh.NewMesh()
//	a := m.AddVertex(bmesh.V3(0, 0, 0))
//	b := m.AddVertex(bmesh.V3(1, 0, 0))
//	c := m.AddVertex(bmesh.V3(1, 1, 0))
//	d := m.AddVertex(bmesh.V3(0, 1, 0))
//	f := m.AddFace(a, b, c, d)
//
//	m.FaceCenter(f)           // (0.5, 0.5, 0)
//	m.FaceNeighborVertices(f) // [a b c d]
//
// # Cycles
//
// Topology is kept in three kinds of circular doubly-linked lists:
//   - the disk cycle of a vertex links its incident edges
//   - the radial cycle of an edge links the loops that use it
//   - the loop cycle of a face links its corners in order
//
// Entities are addressed by typed handles (VertexID, EdgeID, LoopID,
// FaceID) that stay valid until the entity is removed. Only Mesh methods
// change topology, and removal cascades: removing a vertex removes its
// edges, removing an edge removes the faces that use it.
//
// # Attributes
//
// Each entity kind has a schema of named attribute definitions (integer or
// float vectors of fixed dimension). Every entity carries a value for
// every definition of its kind: new entities are stamped with copies of
// the defaults, and declaring an attribute back-fills existing entities.
//
//	m.AddLoopAttribute("uv", bmesh.Float, 2)
//	l, _ := m.FaceLoop(f, a)
//	m.Loop(l).Attributes["uv"] = bmesh.Vec2Value(f64.Vec2{0, 1})
//
// # Errors
//
// Broken preconditions (an edge from a vertex to itself, a dead handle)
// are programming errors and panic. Attribute values that do not match the
// schema are reset to the default and logged; see SetLogger. Check reports
// structural corruption as an error wrapping ErrCorrupt.
//
// # Concurrency
//
// A Mesh is not safe for concurrent use. Separate meshes may be edited
// from separate goroutines.
package bmesh

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
