package bmesh

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Definition declares a named, typed attribute that every entity of one
// kind carries.
type Definition struct {
	Name       string
	Type       BaseType
	Dimensions int

	// Default is stamped (as a copy) onto entities that lack the attribute.
	Default Value
}

// NewDefinition returns a definition whose default is a zero-filled
// payload of the given type and dimension. It panics if dims is not
// positive or t is not a valid base type.
func NewDefinition(name string, t BaseType, dims int) Definition {
	assertf(dims > 0, "attribute %q: dimensions must be positive, got %d", name, dims)
	assertf(t == Int || t == Float, "attribute %q: invalid base type %v", name, t)
	return Definition{
		Name:       name,
		Type:       t,
		Dimensions: dims,
		Default:    zeroValue(t, dims),
	}
}

// CheckValue reports whether v has the declared base type and dimension.
func (d Definition) CheckValue(v Value) bool {
	return v.Kind() == d.Type && v.Len() == d.Dimensions
}

// VertexFormat returns the GPU vertex format a mesh converter would use
// for this attribute. Only 1 to 4 dimensional definitions have one.
func (d Definition) VertexFormat() (gputypes.VertexFormat, bool) {
	var formats [4]gputypes.VertexFormat
	switch d.Type {
	case Float:
		formats = [4]gputypes.VertexFormat{
			gputypes.VertexFormatFloat32,
			gputypes.VertexFormatFloat32x2,
			gputypes.VertexFormatFloat32x3,
			gputypes.VertexFormatFloat32x4,
		}
	case Int:
		formats = [4]gputypes.VertexFormat{
			gputypes.VertexFormatSint32,
			gputypes.VertexFormatSint32x2,
			gputypes.VertexFormatSint32x3,
			gputypes.VertexFormatSint32x4,
		}
	default:
		return gputypes.VertexFormatUndefined, false
	}
	if d.Dimensions < 1 || d.Dimensions > len(formats) {
		return gputypes.VertexFormatUndefined, false
	}
	return formats[d.Dimensions-1], true
}

// String formats the definition as "uv float[2]".
func (d Definition) String() string {
	return fmt.Sprintf("%s %v[%d]", d.Name, d.Type, d.Dimensions)
}
