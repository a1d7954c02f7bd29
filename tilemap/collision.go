package tilemap

import "math"

// boundaryEpsilon nudges a derived boundary just past the sub-cell edge so a
// box clamped against it does not re-probe as colliding next frame.
const boundaryEpsilon = 1e-4

// Hit describes solid geometry found at a probed point: the tile cell plus
// the sub-cell of its collision matrix. The four directional boundaries a
// mover clamps against are derived from it.
type Hit struct {
	Row, Col       int
	SubRow, SubCol int
}

// Left is the world x a rightward-moving edge stops against.
func (h Hit) Left() float64 {
	return float64(h.Col)*TileSize + float64(h.SubCol)*SectionSize - boundaryEpsilon
}

// Right is the world x a leftward-moving edge stops against. It snaps to the
// sub-cell's own width rather than the prober's entry depth.
func (h Hit) Right() float64 {
	return float64(h.Col)*TileSize + float64(h.SubCol)*SectionSize + SectionSize
}

// Top is the world y a downward-moving edge stops against.
func (h Hit) Top() float64 {
	return float64(h.Row)*TileSize + float64(h.SubRow)*SectionSize - boundaryEpsilon
}

// Bottom is the world y an upward-moving edge stops against.
func (h Hit) Bottom() float64 {
	return float64(h.Row)*TileSize + float64(h.SubRow)*SectionSize + SectionSize
}

// ProbePoint answers whether the world point (x, y) lies inside solid
// geometry on the object layer, at sub-tile precision. Points beyond the grid
// probe as empty: a moving box may legitimately sweep past the level edge.
func (l *Level) ProbePoint(x, y float64) (Hit, bool) {
	row := int(math.Floor(y / TileSize))
	col := int(math.Floor(x / TileSize))

	ptr := l.at(LayerObject, row, col)
	if ptr == nil {
		return Hit{}, false
	}

	def := l.registry.Tile(*ptr)
	if def.Collision == nil {
		return Hit{}, false
	}

	subRow := int(math.Floor((y - float64(row)*TileSize) / SectionSize))
	subCol := int(math.Floor((x - float64(col)*TileSize) / SectionSize))
	if !def.Collision[subRow][subCol] {
		return Hit{}, false
	}

	return Hit{Row: row, Col: col, SubRow: subRow, SubCol: subCol}, true
}
