package pmove

// maxBumpsDefault is SlideMove's default outer-iteration bound.
const maxBumpsDefault = 4

// SlideMove is the multi-bump clip/slide loop: trace toward
// the desired endpoint, and whenever the trace clips something, record the
// hit plane and re-derive a velocity consistent with every plane recorded so
// far, for up to maxBumps iterations. Returns true iff the player ended the
// tick blocked by something (stuck-in-solid, cornered, or walled off).
func SlideMove(ps *PlayerState, world *CollisionWorld, dt float32, maxBumps int) bool {
	if maxBumps <= 0 {
		maxBumps = maxBumpsDefault
	}

	primalVelocity := ps.Velocity
	var planes []Vector3
	timeLeft := dt

	for bump := 0; bump < maxBumps; bump++ {
		end := ps.Origin.Add(ps.Velocity.Mul(timeLeft))
		tr := TraceWorld(world, ps.Origin, end, ps.Mins, ps.Maxs)

		if tr.AllSolid {
			ps.Velocity = Zero3
			return true
		}

		if tr.Fraction > 0 {
			ps.Origin = tr.EndPos
		}

		if tr.Fraction == 1 {
			break
		}

		timeLeft *= 1 - tr.Fraction

		// Duplicate-plane check: curved geometry decomposes into many
		// near-coplanar brushes; without this, the plane set fills with
		// near-duplicates and the player gets stuck at corners that are
		// really flat surfaces.
		duplicate := false
		for _, p := range planes {
			if tr.HitNormal.Dot(p) > 0.99 {
				duplicate = true
				break
			}
		}
		if duplicate {
			ps.Velocity = ClipVelocity(ps.Velocity, tr.HitNormal, Overclip)
			continue
		}

		if len(planes) >= MaxClipPlanes {
			ps.Velocity = Zero3
			return true
		}
		planes = append(planes, tr.HitNormal)

		// Single-plane solution: find a plane in the recorded set whose
		// clip is consistent with every other recorded plane.
		solved := false
		for i := range planes {
			clipped := ClipVelocity(ps.Velocity, planes[i], Overclip)

			consistent := true
			for j := range planes {
				if j == i {
					continue
				}
				if clipped.Dot(planes[j]) < 0 {
					consistent = false
					break
				}
			}
			if consistent {
				ps.Velocity = clipped
				solved = true
				break
			}
		}

		if !solved {
			if len(planes) == 2 {
				// Crease fallback: slide along the line where the two
				// planes meet.
				dir := planes[0].Cross(planes[1])
				if dl := dir.Len(); dl > 0.0001 {
					dir = dir.Mul(1 / dl)
					ps.Velocity = dir.Mul(dir.Dot(ps.Velocity))
				} else {
					ps.Velocity = Zero3
					return true
				}
			} else {
				// Corner: three or more non-reconcilable planes.
				ps.Velocity = Zero3
				return true
			}
		}

		// Anti-accel guard: if the re-derived velocity no longer points
		// along the velocity the player had entering this tick, stop dead
		// rather than let wall contact bounce the player backward.
		if ps.Velocity.Dot(primalVelocity) <= 0 {
			ps.Velocity = Zero3
			return true
		}
	}

	return false
}

// StepSlideMove is the try-step-if-blocked wrapper: run
// SlideMove first, and only if it reports a collision, retry from an
// elevated start position and keep whichever result lands on walkable
// ground. Trying the step first would cause vertical oscillation on flat
// ground — the ordering here is load-bearing, not cosmetic.
func StepSlideMove(ps *PlayerState, world *CollisionWorld, dt float32) {
	startOrigin := ps.Origin
	startVelocity := ps.Velocity

	blocked := SlideMove(ps, world, dt, maxBumpsDefault)
	if !blocked {
		return
	}

	flatOrigin := ps.Origin
	flatVelocity := ps.Velocity

	ps.Origin = startOrigin
	ps.Velocity = startVelocity

	stepUpEnd := ps.Origin.Add(Vector3{0, 0, StepHeight})
	upTrace := TraceWorld(world, ps.Origin, stepUpEnd, ps.Mins, ps.Maxs)
	if upTrace.AllSolid {
		ps.Origin = flatOrigin
		ps.Velocity = flatVelocity
		return
	}
	ps.Origin = upTrace.EndPos

	SlideMove(ps, world, dt, maxBumpsDefault)

	downEnd := ps.Origin.Sub(Vector3{0, 0, StepHeight})
	downTrace := TraceWorld(world, ps.Origin, downEnd, ps.Mins, ps.Maxs)

	if downTrace.Fraction < 1 && downTrace.HitNormal.Z() >= MinWalkNormalZ {
		ps.Origin = downTrace.EndPos
		return
	}

	// Step landed on something unwalkable (or nothing): discard it and keep
	// the flat slide's result.
	ps.Origin = flatOrigin
	ps.Velocity = flatVelocity
}
