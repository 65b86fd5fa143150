package pmove

// ClipVelocity projects v off the plane n, biasing the
// removed component by overbounce so the next sub-step doesn't immediately
// re-contact the surface, then null out any residual that would still point
// into the plane (pure floating-point cleanup, not a physical effect).
func ClipVelocity(v, n Vector3, overbounce float32) Vector3 {
	backoff := v.Dot(n) * overbounce
	r := v.Sub(n.Mul(backoff))

	if r.Dot(n) < 0 {
		r = r.Sub(n.Mul(r.Dot(n)))
	}
	return r
}
