package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallLevel builds a 6x8 level with a solid column at col 4 and a solid floor
// at row 4.
func wallLevel(t *testing.T) *Level {
	t.Helper()
	level := NewLevel(6, 8, testRegistry())
	for row := 0; row < 4; row++ {
		level.Place(row, 4, ptr("island", 1), false)
	}
	for col := 0; col < 8; col++ {
		level.Place(4, col, ptr("island", 1), false)
	}
	return level
}

func TestMoveRightStopsFlushAtBoundary(t *testing.T) {
	level := wallLevel(t)

	// 16x16 box at 60 units/sec crossing exactly one solid boundary this
	// frame. The wall column starts at x=64.
	box := &Box{X: 42, Y: 18, W: 16, H: 16}
	level.MoveBox(box, 60, 0, 0.1)

	assert.InDelta(t, 64, box.Right(), 1e-3)
	assert.Less(t, box.Right(), 64.0, "clamped just shy of the boundary")
	assert.Equal(t, 18.0, box.Y, "y untouched when only x velocity is nonzero")
}

func TestMoveLeftStopsAtSubCellRightEdge(t *testing.T) {
	level := wallLevel(t)

	// The wall column occupies x 64..80; a leftward box whose leading edge
	// ends up inside it is pushed back out to the sub-cell's right boundary.
	box := &Box{X: 90, Y: 18, W: 16, H: 16}
	level.MoveBox(box, -60, 0, 0.25)

	assert.InDelta(t, 80, box.X, 1e-6)
	assert.Equal(t, 18.0, box.Y)
}

func TestMoveDownLandsOnFloor(t *testing.T) {
	level := wallLevel(t)

	// Floor row 4 starts at y=64.
	box := &Box{X: 10, Y: 40, W: 16, H: 16}
	level.MoveBox(box, 0, 60, 0.2)

	assert.InDelta(t, 64-16, box.Y, 1e-3)
	assert.Less(t, box.Bottom(), 64.0)
	assert.Equal(t, 10.0, box.X)
}

func TestMoveUpStopsAtCeiling(t *testing.T) {
	level := NewLevel(6, 8, testRegistry())
	for col := 0; col < 8; col++ {
		level.Place(1, col, ptr("island", 1), false)
	}

	// Ceiling row occupies y 16..32; the top edge lands in its bottom
	// sub-band and snaps to the sub-cell's lower boundary.
	box := &Box{X: 10, Y: 40, W: 16, H: 16}
	level.MoveBox(box, 0, -60, 0.2)

	assert.InDelta(t, 32, box.Y, 1e-6)
}

func TestDiagonalCornerSlides(t *testing.T) {
	level := wallLevel(t)

	// Moving down-right with open cells to the right but floor below: the box
	// must keep its horizontal progress and slide along the floor instead of
	// stopping dead in the corner.
	box := &Box{X: 10, Y: 44, W: 16, H: 16}
	level.MoveBox(box, 30, 30, 0.5)

	assert.InDelta(t, 25, box.X, 1e-9, "horizontal motion preserved")
	assert.InDelta(t, 64-16, box.Y, 1e-3, "vertical motion clamped to the floor")
}

func TestZeroVelocityLeavesBoxAlone(t *testing.T) {
	level := wallLevel(t)

	// Resting flush against the wall and the floor: with no velocity there is
	// no leading edge, so neither axis may move or re-clamp.
	box := &Box{X: 64 - 16 - boundaryEpsilon, Y: 64 - 16 - boundaryEpsilon, W: 16, H: 16}
	before := *box
	level.MoveBox(box, 0, 0, 1.0/60)

	assert.Equal(t, before, *box)
}

func TestSweepProbesFullEdgeHeight(t *testing.T) {
	level := NewLevel(6, 8, testRegistry())
	// Single solid tile at (3,4): x 64..80, y 48..64.
	level.Place(3, 4, ptr("island", 1), false)

	// A tall box whose bottom corner alone overlaps the tile: the final probe
	// must land exactly on the bottom edge even though the step size does not
	// divide the height evenly.
	box := &Box{X: 40, Y: 20, W: 16, H: 30}
	level.MoveBox(box, 60, 0, 0.2)

	require.InDelta(t, 64-16, box.X, 1e-3, "bottom-corner hit must clamp the box")
}

func TestPartialTileLetsBoxIntoOpenSubCells(t *testing.T) {
	level := NewLevel(6, 8, testRegistry())
	// Tile at (1,4) is solid only in its top-left sub-cell (x 64..69.3,
	// y 16..21.3).
	level.Place(1, 4, ptr("island", 2), false)

	// A short box entering the tile's open lower band is not obstructed.
	box := &Box{X: 40, Y: 26, W: 8, H: 4}
	level.MoveBox(box, 60, 0, 0.3)

	assert.InDelta(t, 58, box.X, 1e-9)
}
