package bmesh

import (
	"fmt"
	"math"
)

// BaseType is the element type of an attribute payload.
type BaseType uint8

// Attribute base types. The zero BaseType is invalid.
const (
	Int BaseType = iota + 1
	Float
)

// String returns the base type name.
func (t BaseType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return fmt.Sprintf("BaseType(%d)", uint8(t))
	}
}

// Value is a fixed-length numeric attribute payload: either an integer
// vector or a float vector. The zero Value has no type and matches no
// definition.
type Value struct {
	kind   BaseType
	ints   []int64
	floats []float64
}

// IntValue returns an integer attribute value holding a copy of xs.
func IntValue(xs ...int64) Value {
	return Value{kind: Int, ints: append(make([]int64, 0, len(xs)), xs...)}
}

// FloatValue returns a float attribute value holding a copy of xs.
func FloatValue(xs ...float64) Value {
	return Value{kind: Float, floats: append(make([]float64, 0, len(xs)), xs...)}
}

// zeroValue returns a zero-filled payload of the given type and length.
func zeroValue(t BaseType, n int) Value {
	switch t {
	case Int:
		return Value{kind: Int, ints: make([]int64, n)}
	case Float:
		return Value{kind: Float, floats: make([]float64, n)}
	default:
		panic(fmt.Sprintf("bmesh: invalid attribute base type %v", t))
	}
}

// Kind returns the base type of the payload.
func (v Value) Kind() BaseType {
	return v.kind
}

// Len returns the payload length (the dimension).
func (v Value) Len() int {
	switch v.kind {
	case Int:
		return len(v.ints)
	case Float:
		return len(v.floats)
	default:
		return 0
	}
}

// Ints returns the backing integer payload, or nil for a non-integer value.
// Writes through the returned slice modify the value in place.
func (v Value) Ints() []int64 {
	if v.kind != Int {
		return nil
	}
	return v.ints
}

// Floats returns the backing float payload, or nil for a non-float value.
// Writes through the returned slice modify the value in place.
func (v Value) Floats() []float64 {
	if v.kind != Float {
		return nil
	}
	return v.floats
}

// Copy returns a deep copy of v. No two entities ever share payload
// storage: every default stamped onto an entity goes through Copy.
func (v Value) Copy() Value {
	switch v.kind {
	case Int:
		return IntValue(v.ints...)
	case Float:
		return FloatValue(v.floats...)
	default:
		return Value{}
	}
}

// Equal reports whether v and w have the same type and payload.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind || v.Len() != w.Len() {
		return false
	}
	switch v.kind {
	case Int:
		for i := range v.ints {
			if v.ints[i] != w.ints[i] {
				return false
			}
		}
	case Float:
		for i := range v.floats {
			if v.floats[i] != w.floats[i] {
				return false
			}
		}
	}
	return true
}

// Distance returns the Euclidean distance between two payloads of the same
// type and dimension. Values that cannot be compared yield +Inf.
func Distance(v, w Value) float64 {
	if v.kind != w.kind || v.Len() != w.Len() {
		return math.Inf(1)
	}
	var sum float64
	switch v.kind {
	case Int:
		for i := range v.ints {
			d := float64(v.ints[i]) - float64(w.ints[i])
			sum += d * d
		}
	case Float:
		for i := range v.floats {
			d := v.floats[i] - w.floats[i]
			sum += d * d
		}
	default:
		return math.Inf(1)
	}
	return math.Sqrt(sum)
}

// String formats the value as "float[1 0 0]".
func (v Value) String() string {
	switch v.kind {
	case Int:
		return fmt.Sprintf("int%v", v.ints)
	case Float:
		return fmt.Sprintf("float%v", v.floats)
	default:
		return "<none>"
	}
}

// Attributes maps attribute names to values on a single entity.
type Attributes map[string]Value
