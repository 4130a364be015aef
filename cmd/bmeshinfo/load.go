package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/gogpu/bmesh"
	"gopkg.in/yaml.v3"
)

// description is the YAML form of a mesh.
type description struct {
	Vertices   [][3]float64  `yaml:"vertices"`
	Edges      [][2]int      `yaml:"edges"`
	Faces      [][]int       `yaml:"faces"`
	Attributes []declaration `yaml:"attributes"`
	Values     []assignment  `yaml:"values"`
	Remove     removal       `yaml:"remove"`
}

// declaration adds one attribute to the schema of an entity kind.
type declaration struct {
	Kind string `yaml:"kind"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Dims int    `yaml:"dims"`
}

// assignment sets the attribute Name of one entity. Vertices and faces are
// addressed by Index; loops by face Index and Corner; edges by their
// endpoint indices.
type assignment struct {
	Kind   string    `yaml:"kind"`
	Index  int       `yaml:"index"`
	Corner int       `yaml:"corner"`
	Edge   [2]int    `yaml:"edge"`
	Name   string    `yaml:"name"`
	Value  yaml.Node `yaml:"value"`
}

// removal lists entities to remove after the mesh is built, applied in
// the order faces, edges, vertices.
type removal struct {
	Faces    []int    `yaml:"faces"`
	Edges    [][2]int `yaml:"edges"`
	Vertices []int    `yaml:"vertices"`
}

// loaded is a mesh built from a description together with the handles of
// its vertices and faces in description order.
type loaded struct {
	mesh     *bmesh.Mesh
	vertices []bmesh.VertexID
	faces    []bmesh.FaceID
}

// readDescription decodes the description in path. Unknown keys are
// rejected.
func readDescription(path string) (*description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d description
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: empty description", path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &d, nil
}

// build creates the mesh. When fix is set, every entity that received an
// attribute value is passed through the schema so that mistyped values
// are reset to the default (and logged); otherwise they are left for
// Mesh.Check to report.
func (d *description) build(fix bool) (*loaded, error) {
	m := bmesh.NewMesh(bmesh.WithCapacity(len(d.Vertices), 0, 0, len(d.Faces)))
	l := &loaded{mesh: m}

	for _, decl := range d.Attributes {
		kind, err := parseKind(decl.Kind)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", decl.Name, err)
		}
		t, err := parseBaseType(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", decl.Name, err)
		}
		if decl.Name == "" {
			return nil, errors.New("attribute without a name")
		}
		if decl.Dims <= 0 {
			return nil, fmt.Errorf("attribute %q: dims must be positive, got %d", decl.Name, decl.Dims)
		}
		m.AddAttribute(kind, bmesh.NewDefinition(decl.Name, t, decl.Dims))
	}

	for _, p := range d.Vertices {
		l.vertices = append(l.vertices, m.AddVertex(bmesh.V3(p[0], p[1], p[2])))
	}

	for i, e := range d.Edges {
		a, b, err := l.pair(e)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		m.AddEdge(a, b)
	}

	for i, f := range d.Faces {
		verts, err := l.faceVertices(f)
		if err != nil {
			return nil, fmt.Errorf("face %d: %w", i, err)
		}
		l.faces = append(l.faces, m.AddFace(verts...))
	}

	for i := range d.Values {
		if err := l.assign(&d.Values[i], fix); err != nil {
			return nil, fmt.Errorf("value %d (%s %q): %w", i, d.Values[i].Kind, d.Values[i].Name, err)
		}
	}

	if err := l.remove(&d.Remove); err != nil {
		return nil, err
	}

	bmesh.Logger().Debug("bmeshinfo: mesh built",
		"vertices", m.VertexCount(),
		"edges", m.EdgeCount(),
		"faces", m.FaceCount())
	return l, nil
}

func (l *loaded) vertex(i int) (bmesh.VertexID, error) {
	if i < 0 || i >= len(l.vertices) {
		return bmesh.NoVertex, fmt.Errorf("vertex index %d out of range [0, %d)", i, len(l.vertices))
	}
	v := l.vertices[i]
	if !l.mesh.HasVertex(v) {
		return bmesh.NoVertex, fmt.Errorf("vertex %d was removed", i)
	}
	return v, nil
}

func (l *loaded) face(i int) (bmesh.FaceID, error) {
	if i < 0 || i >= len(l.faces) {
		return bmesh.NoFace, fmt.Errorf("face index %d out of range [0, %d)", i, len(l.faces))
	}
	f := l.faces[i]
	if !l.mesh.HasFace(f) {
		return bmesh.NoFace, fmt.Errorf("face %d was removed", i)
	}
	return f, nil
}

func (l *loaded) pair(e [2]int) (bmesh.VertexID, bmesh.VertexID, error) {
	if e[0] == e[1] {
		return bmesh.NoVertex, bmesh.NoVertex, fmt.Errorf("endpoints are both vertex %d", e[0])
	}
	a, err := l.vertex(e[0])
	if err != nil {
		return bmesh.NoVertex, bmesh.NoVertex, err
	}
	b, err := l.vertex(e[1])
	if err != nil {
		return bmesh.NoVertex, bmesh.NoVertex, err
	}
	return a, b, nil
}

// faceVertices resolves face indices, rejecting what AddFace would panic
// on.
func (l *loaded) faceVertices(idx []int) ([]bmesh.VertexID, error) {
	if len(idx) < 2 {
		return nil, fmt.Errorf("need at least 2 vertices, got %d", len(idx))
	}
	verts := make([]bmesh.VertexID, len(idx))
	for i, j := range idx {
		v, err := l.vertex(j)
		if err != nil {
			return nil, err
		}
		verts[i] = v
	}
	for i := range idx {
		if next := idx[(i+1)%len(idx)]; next == idx[i] {
			return nil, fmt.Errorf("consecutive corners share vertex %d", idx[i])
		}
	}
	return verts, nil
}

func (l *loaded) assign(a *assignment, fix bool) error {
	m := l.mesh
	kind, err := parseKind(a.Kind)
	if err != nil {
		return err
	}
	def, ok := findDefinition(m, kind, a.Name)
	if !ok {
		return fmt.Errorf("no %v attribute %q is declared", kind, a.Name)
	}
	v, err := decodeValue(&a.Value, def)
	if err != nil {
		return err
	}

	switch kind {
	case bmesh.VertexKind:
		id, err := l.vertex(a.Index)
		if err != nil {
			return err
		}
		m.Vertex(id).Attributes[a.Name] = v
		if fix {
			m.EnsureVertexAttributes(id)
		}
	case bmesh.EdgeKind:
		v1, v2, err := l.pair(a.Edge)
		if err != nil {
			return err
		}
		id, ok := m.FindEdge(v1, v2)
		if !ok {
			return fmt.Errorf("no edge between vertices %d and %d", a.Edge[0], a.Edge[1])
		}
		m.Edge(id).Attributes[a.Name] = v
		if fix {
			m.EnsureEdgeAttributes(id)
		}
	case bmesh.LoopKind:
		f, err := l.face(a.Index)
		if err != nil {
			return err
		}
		loops := m.FaceLoops(f)
		if a.Corner < 0 || a.Corner >= len(loops) {
			return fmt.Errorf("corner %d out of range [0, %d)", a.Corner, len(loops))
		}
		m.Loop(loops[a.Corner]).Attributes[a.Name] = v
		if fix {
			m.EnsureLoopAttributes(loops[a.Corner])
		}
	case bmesh.FaceKind:
		id, err := l.face(a.Index)
		if err != nil {
			return err
		}
		m.Face(id).Attributes[a.Name] = v
		if fix {
			m.EnsureFaceAttributes(id)
		}
	}
	return nil
}

func (l *loaded) remove(r *removal) error {
	m := l.mesh
	for _, i := range r.Faces {
		f, err := l.face(i)
		if err != nil {
			return fmt.Errorf("remove face: %w", err)
		}
		m.RemoveFace(f)
	}
	for _, e := range r.Edges {
		a, b, err := l.pair(e)
		if err != nil {
			return fmt.Errorf("remove edge %v: %w", e, err)
		}
		id, ok := m.FindEdge(a, b)
		if !ok {
			return fmt.Errorf("remove edge %v: no such edge", e)
		}
		m.RemoveEdge(id)
	}
	for _, i := range r.Vertices {
		v, err := l.vertex(i)
		if err != nil {
			return fmt.Errorf("remove vertex: %w", err)
		}
		m.RemoveVertex(v)
	}
	return nil
}

func findDefinition(m *bmesh.Mesh, kind bmesh.Kind, name string) (bmesh.Definition, bool) {
	for _, def := range m.AttributeDefinitions(kind) {
		if def.Name == name {
			return def, true
		}
	}
	return bmesh.Definition{}, false
}

// decodeValue converts a YAML scalar, number list or "#rrggbb" colour into
// a value of the definition's base type. The number of components is not
// checked here; that is the schema's job.
func decodeValue(n *yaml.Node, def bmesh.Definition) (bmesh.Value, error) {
	var xs []float64
	switch {
	case n.Kind == yaml.ScalarNode && n.Tag == "!!str" && strings.HasPrefix(n.Value, "#"):
		if def.Type != bmesh.Float {
			return bmesh.Value{}, fmt.Errorf("colour %s for an %v attribute", n.Value, def.Type)
		}
		c, err := bmesh.ParseHex(n.Value)
		if err != nil {
			return bmesh.Value{}, err
		}
		if def.Dimensions == 3 {
			return bmesh.FloatValue(c.R, c.G, c.B), nil
		}
		return bmesh.ColorValue(c), nil
	case n.Kind == yaml.ScalarNode:
		var x float64
		if err := n.Decode(&x); err != nil {
			return bmesh.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
		xs = []float64{x}
	case n.Kind == yaml.SequenceNode:
		if err := n.Decode(&xs); err != nil {
			return bmesh.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
		}
	case n.Kind == 0:
		return bmesh.Value{}, errors.New("missing value")
	default:
		return bmesh.Value{}, fmt.Errorf("line %d: value must be a number, a list of numbers or a #hex colour", n.Line)
	}

	if def.Type == bmesh.Float {
		return bmesh.FloatValue(xs...), nil
	}
	is := make([]int64, len(xs))
	for i, x := range xs {
		if x != math.Trunc(x) {
			return bmesh.Value{}, fmt.Errorf("%v is not an integer", x)
		}
		if x < math.MinInt64 || x >= -math.MinInt64 {
			return bmesh.Value{}, fmt.Errorf("%v does not fit in int64", x)
		}
		is[i] = int64(x)
	}
	return bmesh.IntValue(is...), nil
}

func parseKind(s string) (bmesh.Kind, error) {
	for _, k := range []bmesh.Kind{bmesh.VertexKind, bmesh.EdgeKind, bmesh.LoopKind, bmesh.FaceKind} {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q (valid: vertex, edge, loop, face)", s)
}

func parseBaseType(s string) (bmesh.BaseType, error) {
	switch s {
	case "int":
		return bmesh.Int, nil
	case "float":
		return bmesh.Float, nil
	}
	return 0, fmt.Errorf("unknown base type %q (valid: int, float)", s)
}
