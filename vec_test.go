package bmesh

import (
	"math"
	"testing"
)

const eps = 1e-12

func approxVec3(a, b Vec3) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestMeanVec3(t *testing.T) {
	tests := []struct {
		name string
		ps   []Vec3
		want Vec3
	}{
		{"single", []Vec3{V3(1, 2, 3)}, V3(1, 2, 3)},
		{"segment", []Vec3{V3(0, 0, 0), V3(2, 0, 0)}, V3(1, 0, 0)},
		{"unit square", []Vec3{V3(0, 0, 0), V3(1, 0, 0), V3(1, 1, 0), V3(0, 1, 0)}, V3(0.5, 0.5, 0)},
		{"negative", []Vec3{V3(-1, -1, -1), V3(1, 1, 1)}, V3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := meanVec3(tt.ps); !approxVec3(got, tt.want) {
				t.Errorf("meanVec3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeanVec3Empty(t *testing.T) {
	got := meanVec3(nil)
	for i, c := range got {
		if !math.IsNaN(c) {
			t.Errorf("meanVec3(nil)[%d] = %v, want NaN", i, c)
		}
	}
}
