package pmove

import "math"

// CalcLaunchVelocity solves the one-shot launch velocity for a jump pad
// target is interpreted as the APEX of the resulting arc — the
// player arrives there with zero vertical velocity — which is the canonical
// canonical model; see calcLaunchVelocityLegacy for the
// deprecated alternative.
func CalcLaunchVelocity(start, target Vector3, gravity float32) Vector3 {
	h := maxf(target.Z()-start.Z(), 1)
	t := float32(math.Sqrt(float64(2 * h / gravity)))
	vz := gravity * t

	dxy := Vector3{target.X() - start.X(), target.Y() - start.Y(), 0}
	dist := dxy.Len()

	var vx, vy float32
	if dist > 1 {
		speed := dist / t
		dir := dxy.Mul(1 / dist)
		vx = dir.X() * speed
		vy = dir.Y() * speed
	}

	return Vector3{vx, vy, vz}
}

// calcLaunchVelocityLegacy is the deprecated horizontal-distance-time model
// deprecated alternative: it derives airtime from a caller-given
// total flight time rather than from the apex height, so for a target whose
// apex isn't at the end of the same time-of-flight it disagrees with
// CalcLaunchVelocity. Kept unexported; not part of the module's primary
// surface, but exercised by tests asserting the two models diverge.
//
// Deprecated: use CalcLaunchVelocity.
func calcLaunchVelocityLegacy(start, target Vector3, gravity, flightTime float32) Vector3 {
	if flightTime <= 0 {
		flightTime = 1
	}

	dz := target.Z() - start.Z()
	// z(t) = vz*t - 0.5*g*t^2  =>  vz = (dz + 0.5*g*t^2) / t
	vz := (dz + 0.5*gravity*flightTime*flightTime) / flightTime

	dxy := Vector3{target.X() - start.X(), target.Y() - start.Y(), 0}
	vx := dxy.X() / flightTime
	vy := dxy.Y() / flightTime

	return Vector3{vx, vy, vz}
}
