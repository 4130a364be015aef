package bmesh

import "golang.org/x/image/math/f64"

// Vec2Value returns a 2-dimensional float value.
func Vec2Value(v f64.Vec2) Value {
	return FloatValue(v[:]...)
}

// Vec3Value returns a 3-dimensional float value.
func Vec3Value(v f64.Vec3) Value {
	return FloatValue(v[:]...)
}

// Vec4Value returns a 4-dimensional float value.
func Vec4Value(v f64.Vec4) Value {
	return FloatValue(v[:]...)
}

// ColorValue returns a 4-dimensional float value holding r, g, b, a.
func ColorValue(c RGBA) Value {
	return FloatValue(c.R, c.G, c.B, c.A)
}

// Vec2 returns the first two components of a float value. Missing
// components are zero; integer values yield the zero vector.
func (v Value) Vec2() f64.Vec2 {
	var out f64.Vec2
	copy(out[:], v.Floats())
	return out
}

// Vec3 returns the first three components of a float value, zero-padded.
func (v Value) Vec3() f64.Vec3 {
	var out f64.Vec3
	copy(out[:], v.Floats())
	return out
}

// Vec4 returns the first four components of a float value, zero-padded.
func (v Value) Vec4() f64.Vec4 {
	var out f64.Vec4
	copy(out[:], v.Floats())
	return out
}

// RGBA interprets a float value as a colour. A 3-component value is
// treated as opaque.
func (v Value) RGBA() RGBA {
	fs := v.Floats()
	c := v.Vec4()
	out := RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
	if len(fs) == 3 {
		out.A = 1
	}
	return out
}
