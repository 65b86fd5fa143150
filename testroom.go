package pmove

// testRoomHalf is the test room's interior half-extent on X and Y
// "a sealed-box 512^3 room").
const testRoomHalf = float32(256)

// testRoomHeight is the interior floor-to-ceiling height.
const testRoomHeight = float32(512)

// wallThickness is how deep each bounding slab brush is — thick enough that
// no trace can tunnel through it in one tick at any realistic speed.
const wallThickness = float32(32)

// WorldCreateTestRoom builds the sealed-box self-test world named in spec
// §6: a hollow 512-unit cube (floor at z=0, ceiling at z=512, walls at
// x,y = +-256) built from six solid bounding slabs around an empty
// interior, plus one interior step platform used by the step-up scenarios.
// Whether an empty brush list should fall
// back to this room automatically is a surface-layer policy left to the
// embedder — this constructor exists only to be called explicitly (e.g.
// from a test or a map loader with no collision data).
func WorldCreateTestRoom() *CollisionWorld {
	h := testRoomHalf
	z0, z1 := float32(0), testRoomHeight
	t := wallThickness

	brushes := []*Brush{
		axisAlignedBoxBrush(Vector3{-h - t, -h - t, z0 - t}, Vector3{h + t, h + t, z0}),   // floor
		axisAlignedBoxBrush(Vector3{-h - t, -h - t, z1}, Vector3{h + t, h + t, z1 + t}),    // ceiling
		axisAlignedBoxBrush(Vector3{-h - t, -h - t, z0 - t}, Vector3{-h, h + t, z1 + t}),   // -X wall
		axisAlignedBoxBrush(Vector3{h, -h - t, z0 - t}, Vector3{h + t, h + t, z1 + t}),     // +X wall
		axisAlignedBoxBrush(Vector3{-h - t, -h - t, z0 - t}, Vector3{h + t, -h, z1 + t}),   // -Y wall
		axisAlignedBoxBrush(Vector3{-h - t, h, z0 - t}, Vector3{h + t, h + t, z1 + t}),     // +Y wall

		// 16-unit-tall interior step platform spanning x,y in [-64,64],
		// used by the step-up-onto-a-platform scenario.
		axisAlignedBoxBrush(Vector3{-64, -64, 0}, Vector3{64, 64, 16}),
	}

	return WorldFromBrushes(brushes)
}

// axisAlignedBoxBrush builds a six-plane solid box brush spanning
// [mins,maxs]. Every plane is already axial, so AddBevels is a no-op here,
// but it's called anyway to keep brush construction uniform across the
// package.
func axisAlignedBoxBrush(mins, maxs Vector3) *Brush {
	planes := []Plane{
		{Normal: Vector3{1, 0, 0}, D: maxs.X()},
		{Normal: Vector3{-1, 0, 0}, D: -mins.X()},
		{Normal: Vector3{0, 1, 0}, D: maxs.Y()},
		{Normal: Vector3{0, -1, 0}, D: -mins.Y()},
		{Normal: Vector3{0, 0, 1}, D: maxs.Z()},
		{Normal: Vector3{0, 0, -1}, D: -mins.Z()},
	}
	b := BrushFromPlanes(planes)
	b.AddBevels()
	return b
}
