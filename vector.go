package pmove

import "github.com/go-gl/mathgl/mgl32"

// Vector3 is the core's only vector type: three float32 lanes, bit-exact
// equality, no hidden normalization. Aliased directly to mgl32.Vec3 so the
// arithmetic below reads the same as the rest of the mgl32-based corpus.
type Vector3 = mgl32.Vec3

// Zero3 is the additive identity, spelled out for readability at call sites
// that zero a velocity or offset rather than relying on the zero value.
var Zero3 = Vector3{0, 0, 0}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

// lerpVec3 linearly interpolates from a to b at fraction f, used by Trace to
// compute end_pos from the entry fraction.
func lerpVec3(a, b Vector3, f float32) Vector3 {
	return Vector3{
		a.X() + (b.X()-a.X())*f,
		a.Y() + (b.Y()-a.Y())*f,
		a.Z() + (b.Z()-a.Z())*f,
	}
}
