package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeEmptyCell(t *testing.T) {
	level := NewLevel(4, 4, testRegistry())

	_, hit := level.ProbePoint(8, 8)
	assert.False(t, hit)
}

func TestProbeIgnoresOtherLayers(t *testing.T) {
	level := NewLevel(4, 4, testRegistry())
	level.Place(0, 0, ptr("island", 0), false) // background
	level.Place(0, 0, ptr("island", 3), false) // overlay

	_, hit := level.ProbePoint(8, 8)
	assert.False(t, hit, "only the object layer carries collision")
}

func TestProbeTileWithoutMatrix(t *testing.T) {
	level := NewLevel(4, 4, testRegistry())
	level.Place(0, 0, ptr("island", 4), false)

	_, hit := level.ProbePoint(8, 8)
	assert.False(t, hit)
}

func TestProbeSubCellMapping(t *testing.T) {
	level := NewLevel(4, 4, testRegistry())
	level.Place(1, 1, ptr("island", 1), false)

	// Local fraction (0.1, 0.1) of the solid tile at (1,1).
	hit, ok := level.ProbePoint(16+0.1*TileSize, 16+0.1*TileSize)
	require.True(t, ok)
	assert.Equal(t, Hit{Row: 1, Col: 1, SubRow: 0, SubCol: 0}, hit)

	// Local fraction (0.9, 0.9).
	hit, ok = level.ProbePoint(16+0.9*TileSize, 16+0.9*TileSize)
	require.True(t, ok)
	assert.Equal(t, Hit{Row: 1, Col: 1, SubRow: 2, SubCol: 2}, hit)
}

func TestProbePartialMatrix(t *testing.T) {
	level := NewLevel(4, 4, testRegistry())
	level.Place(0, 0, ptr("island", 2), false) // only sub-cell (0,0) solid

	_, ok := level.ProbePoint(1, 1)
	assert.True(t, ok)

	_, ok = level.ProbePoint(14, 14)
	assert.False(t, ok, "open sub-cell of a partially solid tile")
}

func TestProbeOutsideGrid(t *testing.T) {
	level := NewLevel(2, 2, testRegistry())

	_, hit := level.ProbePoint(-5, 8)
	assert.False(t, hit)
	_, hit = level.ProbePoint(8, 200)
	assert.False(t, hit)
}

func TestHitBoundaries(t *testing.T) {
	hit := Hit{Row: 2, Col: 3, SubRow: 1, SubCol: 2}

	assert.InDelta(t, 3*TileSize+2*SectionSize, hit.Left(), 1e-3)
	assert.Less(t, hit.Left(), 3*TileSize+2*SectionSize, "left edge backs off by epsilon")
	assert.InDelta(t, 3*TileSize+2*SectionSize+SectionSize, hit.Right(), 1e-9)
	assert.Less(t, hit.Top(), 2*TileSize+1*SectionSize)
	assert.InDelta(t, 2*TileSize+1*SectionSize+SectionSize, hit.Bottom(), 1e-9)
}
