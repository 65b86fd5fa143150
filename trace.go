package pmove

// TraceResult is the outcome of a swept-AABB trace against a single brush or
// a whole World.
type TraceResult struct {
	Fraction   float32 // in [0,1]; 1 == no hit
	EndPos     Vector3
	HitNormal  Vector3 // meaningful only when Fraction < 1
	HitDist    float32
	StartSolid bool
	AllSolid   bool
	BrushIndex int // -1 if none
}

// noHit is the canonical "swept clean through" result.
func noHit(end Vector3) TraceResult {
	return TraceResult{Fraction: 1, EndPos: end, BrushIndex: -1}
}

// TraceBrush is the swept-AABB-vs-convex-polyhedron algorithm, implemented
// via per-plane Minkowski expansion: each brush plane is offset
// outward by the moving box's support distance along the plane normal,
// reducing the box sweep to a point sweep against the expanded plane.
func TraceBrush(brush *Brush, start, end, mins, maxs Vector3) TraceResult {
	startsOut := false
	getsOut := false

	enterFrac := float32(-1)
	leaveFrac := float32(1)
	var clipPlane Plane
	haveClipPlane := false

	for _, pl := range brush.Planes {
		n := pl.Normal

		// Support offset: the corner of [mins,maxs] furthest in the
		// direction opposite the plane normal (i.e. the point of the moving
		// box that reaches the plane first).
		e := supportOffset(n, mins, maxs)
		dPrime := pl.D - e

		ds := n.Dot(start) - dPrime
		de := n.Dot(end) - dPrime

		if ds > 0 {
			startsOut = true
		}
		if de > 0 {
			getsOut = true
		}

		if ds > 0 && de >= ds {
			// Moving parallel to or away from this plane while outside it:
			// the sweep can never enter the brush through this plane.
			return noHit(end)
		}

		if ds <= 0 && de <= 0 {
			// This plane never restricts the sweep.
			continue
		}

		if ds > de {
			// Entering this plane.
			f := (ds - TraceEpsilon) / (ds - de)
			if f < 0 {
				f = 0
			}
			if f > enterFrac {
				enterFrac = f
				clipPlane = pl
				haveClipPlane = true
			}
		} else {
			// Leaving this plane.
			f := (ds + TraceEpsilon) / (ds - de)
			if f > 1 {
				f = 1
			}
			if f < leaveFrac {
				leaveFrac = f
			}
		}
	}

	if !startsOut {
		// Start position is already inside the brush.
		if !getsOut {
			return TraceResult{StartSolid: true, AllSolid: true, BrushIndex: -1}
		}
		return TraceResult{StartSolid: true, Fraction: 1, EndPos: end, BrushIndex: -1}
	}

	if enterFrac < leaveFrac {
		if enterFrac > -1 && enterFrac < 1 {
			f := maxf(enterFrac, 0)
			res := TraceResult{
				Fraction:  f,
				EndPos:    lerpVec3(start, end, f),
				HitDist:   f,
				BrushIndex: -1,
			}
			if haveClipPlane {
				res.HitNormal = clipPlane.Normal
			}
			return res
		}
	}

	return noHit(end)
}

// supportOffset computes n.x*(n.x>=0 ? mins.x : maxs.x) + ... — the
// Minkowski support-point distance used to shrink the swept box to a swept
// point against each plane.
func supportOffset(n, mins, maxs Vector3) float32 {
	var e float32
	if n.X() >= 0 {
		e += n.X() * mins.X()
	} else {
		e += n.X() * maxs.X()
	}
	if n.Y() >= 0 {
		e += n.Y() * mins.Y()
	} else {
		e += n.Y() * maxs.Y()
	}
	if n.Z() >= 0 {
		e += n.Z() * mins.Z()
	} else {
		e += n.Z() * maxs.Z()
	}
	return e
}

// TraceBox is a convenience wrapper over TraceWorld for the common case of
// sweeping a PlayerState's own bounding box between two points, so callers
// outside the package (e.g. a weapon's splash-damage check) don't have to
// pull Mins/Maxs out of the struct themselves.
func TraceBox(world *CollisionWorld, start, end Vector3, ps *PlayerState) TraceResult {
	return TraceWorld(world, start, end, ps.Mins, ps.Maxs)
}

// TraceWorld sweeps an AABB from start to end against every brush in world,
// returning the earliest (lowest-fraction) hit. Ties on fraction resolve to
// the lower brush index, matching iteration order.
func TraceWorld(world *CollisionWorld, start, end, mins, maxs Vector3) TraceResult {
	sMins := Vector3{
		minf(start.X()+mins.X(), end.X()+mins.X()),
		minf(start.Y()+mins.Y(), end.Y()+mins.Y()),
		minf(start.Z()+mins.Z(), end.Z()+mins.Z()),
	}
	sMaxs := Vector3{
		maxf(start.X()+maxs.X(), end.X()+maxs.X()),
		maxf(start.Y()+maxs.Y(), end.Y()+maxs.Y()),
		maxf(start.Z()+maxs.Z(), end.Z()+maxs.Z()),
	}

	best := noHit(end)
	best.Fraction = 1

	if world == nil {
		return best
	}

	for i, brush := range world.Brushes {
		if !sweptAABBOverlap(sMins, sMaxs, brush.Mins, brush.Maxs) {
			continue
		}

		res := TraceBrush(brush, start, end, mins, maxs)
		res.BrushIndex = i

		if res.AllSolid {
			return res
		}
		if res.Fraction < best.Fraction || (res.Fraction == best.Fraction && res.StartSolid && !best.StartSolid && best.BrushIndex == -1) {
			best = res
		}
	}

	if best.BrushIndex == -1 && best.Fraction >= 1 {
		best.EndPos = end
	} else {
		best.EndPos = lerpVec3(start, end, best.Fraction)
	}
	return best
}
