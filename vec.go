package bmesh

import "golang.org/x/image/math/f64"

// Vec3 is the position type of a vertex.
type Vec3 = f64.Vec3

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func addVec3(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scaleVec3(v Vec3, s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// meanVec3 returns the arithmetic mean of ps. An empty input divides by
// zero and yields NaN components.
func meanVec3(ps []Vec3) Vec3 {
	var sum Vec3
	for _, p := range ps {
		sum = addVec3(sum, p)
	}
	return scaleVec3(sum, 1/float64(len(ps)))
}
