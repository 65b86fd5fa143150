package pmove

// ButtonJump is the only UserCommand button bit PMove observes.
const ButtonJump uint32 = 1 << 0

// UserCommand is one frame's worth of player input. ForwardMove
// and SideMove are expected in [-1, 1]; Pitch/Yaw are in degrees.
type UserCommand struct {
	ForwardMove float32
	SideMove    float32
	Pitch       float32
	Yaw         float32
	Buttons     uint32
}

func (c UserCommand) jumpHeld() bool { return c.Buttons&ButtonJump != 0 }

// PlayerState is owned by the gameplay layer and borrowed mutably by PMove
// for the duration of a single tick. It must not be aliased
// during a pmove call.
type PlayerState struct {
	Origin   Vector3
	Velocity Vector3

	Mins Vector3
	Maxs Vector3

	OnGround     bool
	GroundNormal Vector3

	MaxSpeed float32
	Gravity  float32

	Ruleset Ruleset

	JumpHeld        bool
	JumpBufferTicks uint32

	SplashSlickTicks uint32
	SkimTicks        uint32

	LastLandTick uint32
	LastJumpTick uint32
	CommandTime  uint32

	AutohopCooldown uint32
}

// PlayerInit sets up a freshly spawned PlayerState with the standard
// defaults: a standard player AABB, VQ3 movement feel, zero velocity, and
// airborne-until-proven-otherwise.
func PlayerInit(ps *PlayerState, spawnOrigin Vector3) {
	*ps = PlayerState{
		Origin:   spawnOrigin,
		Velocity: Zero3,
		Mins:     Vector3{-15, -15, -24},
		Maxs:     Vector3{15, 15, 32},
		MaxSpeed: DefaultMaxSpeed,
		Gravity:  DefaultGravity,
		OnGround: false,
		Ruleset:  RulesetVQ3,
	}
}
