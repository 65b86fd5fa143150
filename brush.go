package pmove

import (
	"github.com/google/uuid"
)

// vertexSlack is the tolerance applied when testing whether a candidate
// vertex (solved from three planes) is actually inside every other plane of
// the brush — float error means a true corner can read slightly outside.
const vertexSlack = 0.1

// detTripleEpsilon is the minimum |determinant| accepted before a
// three-plane system is treated as solvable; below it the planes are
// coplanar/parallel and the triple is skipped.
const detTripleEpsilon = 1e-6

// Brush is a convex solid: the intersection of all its half-spaces. Brushes
// are immutable after World construction — once AddBevels has run,
// nothing else may append planes.
type Brush struct {
	ID     uuid.UUID
	Planes []Plane
	Mins   Vector3
	Maxs   Vector3
}

// BrushFromPlanes builds a Brush and derives its AABB (but does not add
// bevels — callers that want Minkowski-safe edges call AddBevels
// separately).
func BrushFromPlanes(planes []Plane) *Brush {
	b := &Brush{
		ID:     uuid.New(),
		Planes: append([]Plane(nil), planes...),
	}
	b.Mins, b.Maxs = ComputeAABB(b.Planes)
	return b
}

// ComputeAABB is the exact plane-triple vertex enumeration form of AABB
// for every unordered triple of planes, solve the 3x3 system via Cramer's
// rule, accept the point iff it lies inside every other plane (with slack),
// and expand the running bounding box over all accepted vertices. If no
// triple yields an interior vertex the brush is degenerate and collapses to
// a zero-sized box at the origin.
func ComputeAABB(planes []Plane) (mins, maxs Vector3) {
	found := false

	for i := 0; i < len(planes); i++ {
		for j := i + 1; j < len(planes); j++ {
			for k := j + 1; k < len(planes); k++ {
				p, ok := solvePlaneTriple(planes[i], planes[j], planes[k])
				if !ok {
					continue
				}
				if !pointInsideOthers(planes, i, j, k, p) {
					continue
				}
				if !found {
					mins, maxs = p, p
					found = true
					continue
				}
				mins = Vector3{minf(mins.X(), p.X()), minf(mins.Y(), p.Y()), minf(mins.Z(), p.Z())}
				maxs = Vector3{maxf(maxs.X(), p.X()), maxf(maxs.Y(), p.Y()), maxf(maxs.Z(), p.Z())}
			}
		}
	}

	if !found {
		return Zero3, Zero3
	}
	return mins, maxs
}

// solvePlaneTriple solves n_i.p = d_i for three planes via Cramer's rule,
// skipping near-singular systems.
func solvePlaneTriple(a, b, c Plane) (Vector3, bool) {
	na, nb, nc := a.Normal, b.Normal, c.Normal

	det := na.Dot(nb.Cross(nc))
	if absf(det) < detTripleEpsilon {
		return Vector3{}, false
	}

	// Cramer's rule: replace each column of the normal matrix with the
	// distance vector in turn.
	d := Vector3{a.D, b.D, c.D}

	detX := d.Dot(nb.Cross(nc))
	detY := na.Dot(d.Cross(nc))
	detZ := na.Dot(nb.Cross(d))

	return Vector3{detX / det, detY / det, detZ / det}, true
}

func pointInsideOthers(planes []Plane, i, j, k int, p Vector3) bool {
	for m, pl := range planes {
		if m == i || m == j || m == k {
			continue
		}
		if pl.signedDist(p) > vertexSlack {
			return false
		}
	}
	return true
}

// axialDirections enumerates the six axis-aligned outward normals bevels
// may need to fill in.
var axialDirections = [6]Vector3{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// axialAlignmentEpsilon is the ">0.999" aligned-normal threshold for treating a plane as axial.
const axialAlignmentEpsilon = 0.999

// AddBevels scans a brush's planes for axis-aligned coverage and appends a
// synthetic axial plane for every one of the six directions missing one,
// Must run after ComputeAABB (it reads Mins/Maxs); the
// brush is expected to be append-only up to this point and frozen
// immediately after (brush construction is treated as
// arena-backed and immutable once the World is built).
func (b *Brush) AddBevels() {
	var hasAxis [6]bool
	for _, p := range b.Planes {
		for d, dir := range axialDirections {
			if p.Normal.Dot(dir) > axialAlignmentEpsilon {
				hasAxis[d] = true
			}
		}
	}

	for d, dir := range axialDirections {
		if hasAxis[d] {
			continue
		}
		var dist float32
		switch {
		case dir.X() > 0:
			dist = b.Maxs.X()
		case dir.X() < 0:
			dist = -b.Mins.X()
		case dir.Y() > 0:
			dist = b.Maxs.Y()
		case dir.Y() < 0:
			dist = -b.Mins.Y()
		case dir.Z() > 0:
			dist = b.Maxs.Z()
		case dir.Z() < 0:
			dist = -b.Mins.Z()
		}
		b.Planes = append(b.Planes, Plane{Normal: dir, D: dist})
	}
}
