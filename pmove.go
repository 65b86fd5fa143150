package pmove

// AutohopCooldownTicks gates how soon after firing a jump another jump may
// fire while the button stays held. One tick means a player holding jump on
// flat ground hops again the very next tick they're grounded — continuous
// autohop — without double-firing inside the same tick's jump/land pair.
const AutohopCooldownTicks = uint32(1)

const minWishSpeedEpsilon = 0.0001

// wishVector computes the tick's wish direction/speed: built from
// yaw only (pitch never influences ground speed), zeroed on the vertical
// axis, normalized to a unit direction with a separate speed scalar.
func wishVector(cmd UserCommand, maxSpeed float32) (wishDir Vector3, wishSpeed float32) {
	forward, right, _ := AngleVectors(0, cmd.Yaw)

	wish := forward.Mul(cmd.ForwardMove).Add(right.Mul(cmd.SideMove))
	wish = Vector3{wish.X(), wish.Y(), 0}

	length := wish.Len()
	if length < minWishSpeedEpsilon {
		return Zero3, 0
	}

	return wish.Mul(1 / length), maxSpeed
}

// categorizePosition is a micro
// sweep from just above the origin down a quarter unit, using the walkable
// normal threshold to decide on_ground. The small upward lift avoids
// starting the trace exactly on a Minkowski-expanded surface, which would
// otherwise read as already-solid.
func categorizePosition(ps *PlayerState, world *CollisionWorld) {
	start := ps.Origin.Add(Vector3{0, 0, 0.125})
	end := ps.Origin.Add(Vector3{0, 0, -0.25})

	tr := TraceWorld(world, start, end, ps.Mins, ps.Maxs)

	if tr.Fraction < 1 && tr.HitNormal.Z() >= MinWalkNormalZ {
		ps.OnGround = true
		ps.GroundNormal = tr.HitNormal
	} else {
		ps.OnGround = false
		ps.GroundNormal = Zero3
	}
}

// checkJump buffers a fresh airborne
// press, fires on landing (or every tick thereafter while autohop cooldown
// has elapsed), and on the CPM ruleset stacks a double-jump boost when the
// previous jump fired within the double-jump window.
func checkJump(ps *PlayerState, cmd UserCommand) {
	held := cmd.jumpHeld()

	if !held {
		ps.JumpHeld = false
		ps.JumpBufferTicks = 0
		ps.AutohopCooldown = 0
		return
	}

	freshPress := held && !ps.JumpHeld
	ps.JumpHeld = true

	if !ps.OnGround {
		if freshPress {
			ps.JumpBufferTicks = JumpBufferTicks
		}
		return
	}

	canFire := freshPress || ps.AutohopCooldown == 0
	if !canFire {
		return
	}

	ps.JumpBufferTicks = 0
	ps.OnGround = false

	amount := JumpVelocity
	if ps.Ruleset == RulesetCPM {
		isDouble := ps.LastJumpTick > 0 && (ps.CommandTime-ps.LastJumpTick) <= CpmDoubleJumpWindowTicks
		if isDouble {
			amount += CpmDoubleJumpBoost
		}
	}

	ps.Velocity = Vector3{ps.Velocity.X(), ps.Velocity.Y(), maxf(ps.Velocity.Z()+amount, amount)}
	ps.LastJumpTick = ps.CommandTime
	ps.AutohopCooldown = AutohopCooldownTicks
}

// cpmAirDispatch implements the four-way CPM air-input branch:
// the combination of forward/side input selects standard air-accelerate,
// ground-style CPM strafe accel, a speed-preserving W-turn, or classic
// strafe-jump accel.
func cpmAirDispatch(ps *PlayerState, wishDir Vector3, hasForward, hasSide bool, dt float32) {
	switch {
	case !hasForward && !hasSide:
		ps.Velocity = AirAccelerate(ps.Velocity, wishDir, AirSpeed(ps.MaxSpeed), AirAccel, dt)
	case !hasForward && hasSide:
		ps.Velocity = Accelerate(ps.Velocity, wishDir, CpmWishSpeed, CpmStrafeAccel, dt)
	case hasForward && !hasSide:
		ps.Velocity = CpmAirControl(ps.Velocity, wishDir, dt)
	default: // hasForward && hasSide
		ps.Velocity = AirAccelerate(ps.Velocity, wishDir, AirSpeed(ps.MaxSpeed), AirAccel, dt)
	}
}

// PMove advances ps by one fixed tick against world under cmd. Every step
// below is mandatory and order-critical.
func PMove(ps *PlayerState, cmd UserCommand, world *CollisionWorld) {
	// 1. tick counter
	ps.CommandTime++

	// 2. wish direction/speed (yaw-only, pitch excluded)
	wishDir, wishSpeed := wishVector(cmd, ps.MaxSpeed)

	// 3. ground check
	wasAirborne := !ps.OnGround
	categorizePosition(ps, world)

	// 4. jump
	checkJump(ps, cmd)

	// 5. buffer decrement while airborne
	if !ps.OnGround && ps.JumpBufferTicks > 0 {
		ps.JumpBufferTicks--
	}

	skimming := ps.SkimTicks > 0

	// 6. friction
	if ps.OnGround && ps.SplashSlickTicks == 0 && !skimming {
		ps.Velocity = ApplyFriction(ps.Velocity, TickDt)
	}

	// 7. accelerate
	hasForward := absf(cmd.ForwardMove) > minWishSpeedEpsilon
	hasSide := absf(cmd.SideMove) > minWishSpeedEpsilon

	if ps.OnGround {
		accel := GroundAccelVQ3
		if ps.Ruleset == RulesetCPM {
			accel = GroundAccelCPM
		}
		ps.Velocity = Accelerate(ps.Velocity, wishDir, wishSpeed, accel, TickDt)
	} else if ps.Ruleset == RulesetCPM {
		cpmAirDispatch(ps, wishDir, hasForward, hasSide, TickDt)
	} else {
		ps.Velocity = AirAccelerate(ps.Velocity, wishDir, AirSpeed(ps.MaxSpeed), AirAccel, TickDt)
	}

	// 8. gravity
	if !ps.OnGround {
		ps.Velocity = Vector3{ps.Velocity.X(), ps.Velocity.Y(), ps.Velocity.Z() - ps.Gravity*TickDt}
	}

	// 9. move
	preCollisionVelocity := ps.Velocity
	StepSlideMove(ps, world, TickDt)

	// 10. re-categorize
	categorizePosition(ps, world)

	// 11. ground clip (skim preserves momentum instead)
	if ps.OnGround && !skimming {
		ps.Velocity = ClipVelocity(ps.Velocity, ps.GroundNormal, Overclip)
	}

	// 12. stair-glide
	if preCollisionVelocity.Z() > 0 && ps.OnGround && ps.GroundNormal.Z() > 0.99 {
		ps.OnGround = false
		ps.Velocity = Vector3{ps.Velocity.X(), ps.Velocity.Y(), preCollisionVelocity.Z()}
	}

	// 13. skim activation
	if wasAirborne && ps.OnGround {
		ps.LastLandTick = ps.CommandTime
		if preCollisionVelocity.Z() < -50 && ps.GroundNormal.Z() > 0.99 {
			ps.SkimTicks = SkimTicks
		}
	}

	// 14. slick suppression
	if ps.SplashSlickTicks > 0 && ps.Velocity.Z() > 0 {
		ps.OnGround = false
	}

	// 15. timer decrements
	if ps.SplashSlickTicks > 0 {
		ps.SplashSlickTicks--
	}
	if ps.SkimTicks > 0 {
		ps.SkimTicks--
	}
	if ps.AutohopCooldown > 0 {
		ps.AutohopCooldown--
	}
}
