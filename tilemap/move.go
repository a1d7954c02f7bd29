package tilemap

// Box is the axis-aligned footprint of a moving entity, owned by the entity
// and independent of the grid.
type Box struct {
	X, Y, W, H float64
}

func (b Box) Right() float64   { return b.X + b.W }
func (b Box) Bottom() float64  { return b.Y + b.H }
func (b Box) CenterX() float64 { return b.X + b.W/2 }
func (b Box) CenterY() float64 { return b.Y + b.H/2 }

// Overlaps reports whether two boxes intersect.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// MoveBox advances the box by velocity*dt, resolving collisions one axis at a
// time so diagonal motion into a wall slides along it instead of sticking.
//
// For each axis the full delta is applied first, then a probe point sweeps
// the box's leading edge in SectionSize steps (with a final probe exactly on
// the trailing corner, whatever the box height or width). The first hit
// clamps the box flush against the hit's derived boundary and ends the sweep;
// later solids on the same sweep are ignored, which bounds tunneling by step
// granularity rather than eliminating it. A zero velocity component has no
// leading edge, so its sweep is skipped and that axis stays untouched.
func (l *Level) MoveBox(b *Box, vx, vy, dt float64) {
	dx := vx * dt
	dy := vy * dt

	b.X += dx
	if dx != 0 {
		for probeY := b.Y; ; probeY += SectionSize {
			if probeY > b.Bottom() {
				probeY = b.Bottom()
			}

			if dx > 0 {
				if hit, ok := l.ProbePoint(b.Right(), probeY); ok {
					b.X = hit.Left() - b.W
					break
				}
			} else {
				if hit, ok := l.ProbePoint(b.X, probeY); ok {
					b.X = hit.Right()
					break
				}
			}

			if probeY == b.Bottom() {
				break
			}
		}
	}

	b.Y += dy
	if dy != 0 {
		for probeX := b.X; ; probeX += SectionSize {
			if probeX > b.Right() {
				probeX = b.Right()
			}

			if dy > 0 {
				if hit, ok := l.ProbePoint(probeX, b.Bottom()); ok {
					b.Y = hit.Top() - b.H
					break
				}
			} else {
				if hit, ok := l.ProbePoint(probeX, b.Y); ok {
					b.Y = hit.Bottom()
					break
				}
			}

			if probeX == b.Right() {
				break
			}
		}
	}
}
