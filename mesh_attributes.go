package bmesh

// AddAttribute appends def to the schema of kind and stamps a copy of its
// default onto every existing entity of that kind.
//
// If the schema already has an attribute of that name, nothing changes
// and def itself is returned, not the existing definition.
// It panics if def is malformed (see NewDefinition) or its default does not
// match its type and dimension.
func (m *Mesh) AddAttribute(kind Kind, def Definition) Definition {
	assertf(kind < kindCount, "invalid entity kind %v", kind)
	s := &m.schemas[kind]
	if s.has(def.Name) {
		return def
	}
	assertf(def.Dimensions > 0, "attribute %q: dimensions must be positive, got %d", def.Name, def.Dimensions)
	assertf(def.CheckValue(def.Default), "attribute %q: default %v does not match %v", def.Name, def.Default, def)

	stored := def
	stored.Default = def.Default.Copy()
	s.defs = append(s.defs, stored)

	n := 0
	m.eachAttributes(kind, func(attrs *Attributes) {
		if *attrs == nil {
			*attrs = make(Attributes)
		}
		(*attrs)[def.Name] = def.Default.Copy()
		n++
	})
	Logger().Debug("bmesh: attribute declared",
		"kind", kind,
		"attribute", def.String(),
		"backfilled", n)
	return def
}

// HasAttribute reports whether the schema of kind declares name.
func (m *Mesh) HasAttribute(kind Kind, name string) bool {
	assertf(kind < kindCount, "invalid entity kind %v", kind)
	return m.schemas[kind].has(name)
}

// AttributeDefinitions returns a copy of the schema of kind, in
// declaration order.
func (m *Mesh) AttributeDefinitions(kind Kind) []Definition {
	assertf(kind < kindCount, "invalid entity kind %v", kind)
	return m.schemas[kind].definitions()
}

// AddVertexAttribute declares a vertex attribute. See AddAttribute.
func (m *Mesh) AddVertexAttribute(name string, t BaseType, dims int) Definition {
	return m.AddAttribute(VertexKind, NewDefinition(name, t, dims))
}

// AddEdgeAttribute declares an edge attribute. See AddAttribute.
func (m *Mesh) AddEdgeAttribute(name string, t BaseType, dims int) Definition {
	return m.AddAttribute(EdgeKind, NewDefinition(name, t, dims))
}

// AddLoopAttribute declares a loop attribute. See AddAttribute.
func (m *Mesh) AddLoopAttribute(name string, t BaseType, dims int) Definition {
	return m.AddAttribute(LoopKind, NewDefinition(name, t, dims))
}

// AddFaceAttribute declares a face attribute. See AddAttribute.
func (m *Mesh) AddFaceAttribute(name string, t BaseType, dims int) Definition {
	return m.AddAttribute(FaceKind, NewDefinition(name, t, dims))
}

// HasVertexAttribute reports whether vertices carry an attribute called name.
func (m *Mesh) HasVertexAttribute(name string) bool { return m.HasAttribute(VertexKind, name) }

// HasEdgeAttribute reports whether edges carry an attribute called name.
func (m *Mesh) HasEdgeAttribute(name string) bool { return m.HasAttribute(EdgeKind, name) }

// HasLoopAttribute reports whether loops carry an attribute called name.
func (m *Mesh) HasLoopAttribute(name string) bool { return m.HasAttribute(LoopKind, name) }

// HasFaceAttribute reports whether faces carry an attribute called name.
func (m *Mesh) HasFaceAttribute(name string) bool { return m.HasAttribute(FaceKind, name) }

// EnsureVertexAttributes brings the attribute map of v back in line with
// the vertex schema after direct writes. Missing values get the default;
// mistyped values are replaced by it and logged.
func (m *Mesh) EnsureVertexAttributes(v VertexID) {
	m.schemas[VertexKind].ensure(&m.Vertex(v).Attributes)
}

// EnsureEdgeAttributes is EnsureVertexAttributes for edges.
func (m *Mesh) EnsureEdgeAttributes(e EdgeID) {
	m.schemas[EdgeKind].ensure(&m.Edge(e).Attributes)
}

// EnsureLoopAttributes is EnsureVertexAttributes for loops.
func (m *Mesh) EnsureLoopAttributes(l LoopID) {
	m.schemas[LoopKind].ensure(&m.Loop(l).Attributes)
}

// EnsureFaceAttributes is EnsureVertexAttributes for faces.
func (m *Mesh) EnsureFaceAttributes(f FaceID) {
	m.schemas[FaceKind].ensure(&m.Face(f).Attributes)
}

// eachAttributes calls fn with the attribute map of every entity of kind.
func (m *Mesh) eachAttributes(kind Kind, fn func(*Attributes)) {
	switch kind {
	case VertexKind:
		for _, v := range m.vertices.All() {
			fn(&v.Attributes)
		}
	case EdgeKind:
		for _, e := range m.edges.All() {
			fn(&e.Attributes)
		}
	case LoopKind:
		for _, l := range m.loops.All() {
			fn(&l.Attributes)
		}
	case FaceKind:
		for _, f := range m.faces.All() {
			fn(&f.Attributes)
		}
	}
}
