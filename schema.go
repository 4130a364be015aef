package bmesh

import "fmt"

// Kind identifies one of the four entity kinds. Each kind has its own
// attribute schema.
type Kind uint8

// Entity kinds.
const (
	VertexKind Kind = iota
	EdgeKind
	LoopKind
	FaceKind

	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case VertexKind:
		return "vertex"
	case EdgeKind:
		return "edge"
	case LoopKind:
		return "loop"
	case FaceKind:
		return "face"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// schema is the ordered list of attribute definitions of one entity kind.
// Names are unique; entries are never removed.
type schema struct {
	kind Kind
	defs []Definition
}

// has is a linear scan; schemas hold tens of entries at most.
func (s *schema) has(name string) bool {
	for i := range s.defs {
		if s.defs[i].Name == name {
			return true
		}
	}
	return false
}

// ensure makes attrs carry exactly one correctly typed value per
// definition. Missing values receive a copy of the default; values of the
// wrong type or dimension are replaced by one and reported at Warn level.
func (s *schema) ensure(attrs *Attributes) {
	if *attrs == nil {
		*attrs = make(Attributes, len(s.defs))
	}
	for i := range s.defs {
		def := &s.defs[i]
		v, ok := (*attrs)[def.Name]
		if ok && def.CheckValue(v) {
			continue
		}
		if ok {
			Logger().Warn("bmesh: attribute value does not match schema, reset to default",
				"kind", s.kind,
				"name", def.Name,
				"want", def.String(),
				"got", v.String())
		}
		(*attrs)[def.Name] = def.Default.Copy()
	}
}

// definitions returns a copy of the schema list.
func (s *schema) definitions() []Definition {
	out := make([]Definition, len(s.defs))
	for i, d := range s.defs {
		d.Default = d.Default.Copy()
		out[i] = d
	}
	return out
}
