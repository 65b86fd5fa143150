package pmove

// Accelerate is the shared ground/CPM-strafe accelerate formula
// formula: project the current velocity onto wishDir, accelerate toward
// wishSpeed at rate accel, capped so a single tick never overshoots wishSpeed.
func Accelerate(velocity Vector3, wishDir Vector3, wishSpeed, accel, dt float32) Vector3 {
	current := velocity.Dot(wishDir)
	add := wishSpeed - current
	if add <= 0 {
		return velocity
	}

	a := accel * wishSpeed * dt
	if a > add {
		a = add
	}
	return velocity.Add(wishDir.Mul(a))
}

// AirAccelerate is the strafe-jump air variant: the wishSpeed
// used to compute `add` is clamped to AirWishspeedCap, but the acceleration
// magnitude `a` still uses the uncapped wishSpeed. This dual-wishspeed split
// is what keeps `add` positive at large off-axis angles once the player is
// already above max ground speed — the mechanism strafe-jumping exploits.
func AirAccelerate(velocity Vector3, wishDir Vector3, wishSpeed, accel, dt float32) Vector3 {
	cappedWishSpeed := wishSpeed
	if cappedWishSpeed > AirWishspeedCap {
		cappedWishSpeed = AirWishspeedCap
	}

	current := velocity.Dot(wishDir)
	add := cappedWishSpeed - current
	if add <= 0 {
		return velocity
	}

	a := accel * wishSpeed * dt
	if a > add {
		a = add
	}
	return velocity.Add(wishDir.Mul(a))
}

// ApplyFriction is ground friction: below a 0.1 u/s
// speed floor the horizontal velocity is simply zeroed (vertical preserved);
// otherwise friction scales down speed using STOP_SPEED as a floor on the
// "control" term so low-speed stops don't take forever to settle.
func ApplyFriction(velocity Vector3, dt float32) Vector3 {
	horiz := Vector3{velocity.X(), velocity.Y(), 0}
	speed := horiz.Len()
	if speed < 0.1 {
		return Vector3{0, 0, velocity.Z()}
	}

	control := maxf(speed, StopSpeed)
	drop := control * GroundFriction * dt
	newSpeed := maxf(0, speed-drop)

	scale := newSpeed / speed
	return Vector3{velocity.X() * scale, velocity.Y() * scale, velocity.Z()}
}

// CpmAirControl implements the CPM W-turn air-control branch:
// a speed-preserving rotation of horizontal velocity toward wishDir, stronger
// the more aligned velocity already is with the wish direction.
func CpmAirControl(velocity Vector3, wishDir Vector3, dt float32) Vector3 {
	vz := velocity.Z()
	horiz := Vector3{velocity.X(), velocity.Y(), 0}

	speed := maxf(1, horiz.Len())
	velDir := horiz.Mul(1 / speed)

	dot := velDir.Dot(wishDir)
	if dot > 0 {
		k := 32 * CpmAirControlMult * dot * dot * dt
		blended := velDir.Mul(speed).Add(wishDir.Mul(k))
		if bl := blended.Len(); bl > 0.0001 {
			blended = blended.Mul(1 / bl)
		}
		horiz = blended.Mul(speed)
	}

	return Vector3{horiz.X(), horiz.Y(), vz}
}
