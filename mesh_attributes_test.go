package bmesh

import (
	"slices"
	"testing"
)

func TestAddAttributeBackfills(t *testing.T) {
	m := NewMesh()
	var vs []VertexID
	for i := range 5 {
		vs = append(vs, m.AddVertex(V3(float64(i), 0, 0)))
	}

	m.AddVertexAttribute("w", Float, 1)
	for _, v := range vs {
		got, ok := m.Vertex(v).Attributes["w"]
		if !ok || !got.Equal(FloatValue(0)) {
			t.Errorf("vertex %d: w = %v, %v; want float[0]", v, got, ok)
		}
	}

	late := m.AddVertex(V3(9, 0, 0))
	if got := m.Vertex(late).Attributes["w"]; !got.Equal(FloatValue(0)) {
		t.Errorf("vertex added after the declaration: w = %v", got)
	}
	mustCheck(t, m)
}

func TestAddAttributeEveryKind(t *testing.T) {
	m, _, f := unitQuad(t)
	m.AddEdgeAttribute("crease", Float, 1)
	m.AddLoopAttribute("uv", Float, 2)
	m.AddFaceAttribute("material", Int, 1)

	for id, e := range m.AllEdges() {
		if _, ok := e.Attributes["crease"]; !ok {
			t.Errorf("edge %d has no crease", id)
		}
	}
	for _, l := range m.FaceLoops(f) {
		if got := m.Loop(l).Attributes["uv"]; !got.Equal(FloatValue(0, 0)) {
			t.Errorf("loop %d: uv = %v", l, got)
		}
	}
	if got := m.Face(f).Attributes["material"]; !got.Equal(IntValue(0)) {
		t.Errorf("material = %v, want int[0]", got)
	}

	if !m.HasEdgeAttribute("crease") || !m.HasLoopAttribute("uv") || !m.HasFaceAttribute("material") {
		t.Error("Has*Attribute() misses a declared attribute")
	}
	if m.HasVertexAttribute("uv") {
		t.Error("HasVertexAttribute(uv) = true, schemas must be per kind")
	}
	mustCheck(t, m)
}

func TestAddAttributeExistingNameIsNoop(t *testing.T) {
	m := NewMesh()
	v := m.AddVertex(V3(0, 0, 0))

	first := m.AddVertexAttribute("w", Float, 1)
	m.Vertex(v).Attributes["w"] = FloatValue(0.75)

	second := m.AddVertexAttribute("w", Int, 3)
	if second.Type != Int || second.Dimensions != 3 {
		t.Errorf("AddVertexAttribute() returned %v, want the argument back", second)
	}

	defs := m.AttributeDefinitions(VertexKind)
	if len(defs) != 1 || defs[0].Name != first.Name || defs[0].Type != Float {
		t.Errorf("schema = %v, want only the first declaration", defs)
	}
	if got := m.Vertex(v).Attributes["w"]; !got.Equal(FloatValue(0.75)) {
		t.Errorf("existing value overwritten: %v", got)
	}
}

func TestAddAttributeCustomDefault(t *testing.T) {
	m := NewMesh()
	v := m.AddVertex(V3(0, 0, 0))

	def := NewDefinition("color", Float, 4)
	def.Default = ColorValue(RGB(1, 1, 1))
	m.AddAttribute(VertexKind, def)

	// The schema keeps its own copy of the default.
	def.Default.Floats()[0] = 0

	if got := m.Vertex(v).Attributes["color"].RGBA(); got != RGB(1, 1, 1) {
		t.Errorf("back-filled color = %+v, want white", got)
	}
	w := m.AddVertex(V3(1, 0, 0))
	if got := m.Vertex(w).Attributes["color"].RGBA(); got != RGB(1, 1, 1) {
		t.Errorf("stamped color = %+v, want white", got)
	}

	// Stamped values are independent copies.
	m.Vertex(v).Attributes["color"].Floats()[1] = 0
	if got := m.Vertex(w).Attributes["color"].RGBA(); got != RGB(1, 1, 1) {
		t.Errorf("writing one vertex changed another: %+v", got)
	}
}

func TestAddAttributePanics(t *testing.T) {
	m := NewMesh()
	bad := NewDefinition("uv", Float, 2)
	bad.Default = FloatValue(1)

	expectPanic(t, "mismatched default", func() { m.AddAttribute(LoopKind, bad) })
	expectPanic(t, "zero dimensions", func() {
		m.AddAttribute(LoopKind, Definition{Name: "z", Type: Float, Default: FloatValue()})
	})
	expectPanic(t, "invalid kind", func() { m.AddAttribute(Kind(7), NewDefinition("x", Int, 1)) })
	if m.HasLoopAttribute("uv") {
		t.Error("rejected attribute was declared anyway")
	}
}

func TestAttributeDefinitionsIsACopy(t *testing.T) {
	m := NewMesh()
	m.AddFaceAttribute("material", Int, 1)
	m.AddFaceAttribute("smooth", Int, 1)

	defs := m.AttributeDefinitions(FaceKind)
	names := []string{defs[0].Name, defs[1].Name}
	if !slices.Equal(names, []string{"material", "smooth"}) {
		t.Errorf("AttributeDefinitions() names = %v, want declaration order", names)
	}

	defs[0].Default.Ints()[0] = 42
	defs[0].Name = "changed"
	again := m.AttributeDefinitions(FaceKind)
	if again[0].Name != "material" || !again[0].Default.Equal(IntValue(0)) {
		t.Errorf("schema changed through a returned copy: %v", again[0])
	}
}

func TestEnsureAttributes(t *testing.T) {
	m, v, f := unitQuad(t)
	m.AddVertexAttribute("w", Float, 1)
	m.AddEdgeAttribute("crease", Float, 1)
	m.AddLoopAttribute("uv", Float, 2)
	m.AddFaceAttribute("material", Int, 1)

	e := m.Vertex(v[0]).Edge()
	l := m.Face(f).Loop()

	tests := []struct {
		name   string
		attrs  Attributes
		key    string
		ensure func()
		want   Value
	}{
		{"vertex missing", m.Vertex(v[0]).Attributes, "w", func() { m.EnsureVertexAttributes(v[0]) }, FloatValue(0)},
		{"edge wrong kind", m.Edge(e).Attributes, "crease", func() { m.EnsureEdgeAttributes(e) }, FloatValue(0)},
		{"loop wrong length", m.Loop(l).Attributes, "uv", func() { m.EnsureLoopAttributes(l) }, FloatValue(0, 0)},
		{"face wrong kind", m.Face(f).Attributes, "material", func() { m.EnsureFaceAttributes(f) }, IntValue(0)},
	}

	corrupt := map[string]func(Attributes, string){
		"vertex missing":    func(a Attributes, k string) { delete(a, k) },
		"edge wrong kind":   func(a Attributes, k string) { a[k] = IntValue(1) },
		"loop wrong length": func(a Attributes, k string) { a[k] = FloatValue(1, 2, 3) },
		"face wrong kind":   func(a Attributes, k string) { a[k] = FloatValue(2) },
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corrupt[tt.name](tt.attrs, tt.key)
			if err := m.Check(); err == nil {
				t.Fatal("Check() = nil on a corrupted attribute map")
			}
			tt.ensure()
			if got := tt.attrs[tt.key]; !got.Equal(tt.want) {
				t.Errorf("after ensure %s = %v, want %v", tt.key, got, tt.want)
			}
			mustCheck(t, m)
		})
	}
}

func TestEnsureKeepsValidAndExtraValues(t *testing.T) {
	m := NewMesh(WithAttribute(VertexKind, "w", Float, 1))
	v := m.AddVertex(V3(0, 0, 0))

	attrs := m.Vertex(v).Attributes
	attrs["w"] = FloatValue(0.5)
	attrs["scratch"] = IntValue(1)
	m.EnsureVertexAttributes(v)

	if got := attrs["w"]; !got.Equal(FloatValue(0.5)) {
		t.Errorf("valid value replaced: %v", got)
	}
	if _, ok := attrs["scratch"]; !ok {
		t.Error("undeclared value dropped")
	}
}

func TestEnsureNilMap(t *testing.T) {
	m := NewMesh(WithAttribute(VertexKind, "w", Float, 1))
	v := m.AddVertex(V3(0, 0, 0))
	m.Vertex(v).Attributes = nil
	m.EnsureVertexAttributes(v)
	if _, ok := m.Vertex(v).Attributes["w"]; !ok {
		t.Error("EnsureVertexAttributes() did not rebuild a nil map")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{VertexKind, "vertex"},
		{EdgeKind, "edge"},
		{LoopKind, "loop"},
		{FaceKind, "face"},
		{Kind(9), "Kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.k), got, tt.want)
		}
	}
}
