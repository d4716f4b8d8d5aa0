package raycast

// HeightScale is the visual scale constant K of the projection.
const HeightScale = 14.0

// Height converts a hit distance into a wall-slice half height in pixels:
// HeightScale * maxDistance / distance. The result is not corrected by the
// cosine of the column's offset from the heading, so straight walls bow
// outward towards the edges of the view. A zero distance yields +Inf.
func Height(distance, maxDistance float64) float64 {
	return HeightScale * maxDistance / distance
}

// Heights projects every ray of view.
func Heights(view View, c Camera) []float64 {
	out := make([]float64, len(view))
	for i, r := range view {
		out[i] = Height(r.Distance, c.MaxDistance)
	}
	return out
}

// MissHeight is the height of a ray that reached MaxDistance without a hit.
// It is the smallest height a full-range cast produces.
func MissHeight() float64 { return HeightScale }
