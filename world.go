package pmove

import "github.com/google/uuid"

// CollisionWorld is an ordered, immutable sequence of brushes.
// No acceleration structure beyond the per-brush AABB is required; Trace's
// broadphase is a linear scan with an AABB reject test, which is
// sufficient for the brush counts this core targets (a handful to a few
// thousand, not a full BSP-scale map).
type CollisionWorld struct {
	ID     uuid.UUID
	Brushes []*Brush
}

// WorldFromBrushes builds a CollisionWorld from an already-constructed brush
// list. A nil or empty slice is not an error: the resulting
// world simply never produces a trace hit, which is the same degenerate
// behaviour a zero-sized brush AABB already gives per-brush.
func WorldFromBrushes(brushes []*Brush) *CollisionWorld {
	return &CollisionWorld{
		ID:      uuid.New(),
		Brushes: append([]*Brush(nil), brushes...),
	}
}

// sweptAABBOverlap reports whether the swept bounding box [sMins,sMaxs]
// overlaps a brush's static AABB — the broadphase reject test used by
// TraceWorld before paying for a per-plane Minkowski trace.
func sweptAABBOverlap(sMins, sMaxs, bMins, bMaxs Vector3) bool {
	return sMins.X() <= bMaxs.X() && sMaxs.X() >= bMins.X() &&
		sMins.Y() <= bMaxs.Y() && sMaxs.Y() >= bMins.Y() &&
		sMins.Z() <= bMaxs.Z() && sMaxs.Z() >= bMins.Z()
}
