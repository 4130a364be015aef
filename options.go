package bmesh

// Option configures a Mesh during creation.
//
// Example:
//
//	m := bmesh.NewMesh(
//	    bmesh.WithCapacity(1024, 3072, 4096, 1024),
//	    bmesh.WithAttribute(bmesh.LoopKind, "uv", bmesh.Float, 2),
//	)
type Option func(*meshOptions)

// meshOptions holds optional configuration for Mesh creation.
type meshOptions struct {
	vertices, edges, loops, faces int
	attributes                    []kindDefinition
}

type kindDefinition struct {
	kind Kind
	def  Definition
}

func defaultOptions() meshOptions {
	return meshOptions{}
}

// WithCapacity pre-sizes the entity collections. It is a hint; the mesh
// grows past it as needed.
func WithCapacity(vertices, edges, loops, faces int) Option {
	return func(o *meshOptions) {
		o.vertices = max(vertices, 0)
		o.edges = max(edges, 0)
		o.loops = max(loops, 0)
		o.faces = max(faces, 0)
	}
}

// WithAttribute declares an attribute in the schema of kind before any
// entity exists. Options are applied in order, so a repeated name keeps
// its first declaration.
func WithAttribute(kind Kind, name string, t BaseType, dims int) Option {
	return func(o *meshOptions) {
		o.attributes = append(o.attributes, kindDefinition{kind: kind, def: NewDefinition(name, t, dims)})
	}
}
