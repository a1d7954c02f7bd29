package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u8(v uint8) *uint8 { return &v }

// testRegistry builds a registry with one tileset covering the cases the
// grid, probe, and mover tests need.
//
//	0: plain background tile
//	1: solid object tile, full collision
//	2: object tile with only sub-cell (0,0) solid
//	3: overlay tile
//	4: object tile without a collision matrix
func testRegistry() *Registry {
	partial := &CollisionMatrix{}
	partial[0][0] = true

	reg := NewRegistry()
	reg.Add(&Tileset{
		ID: "island",
		Tiles: []TileDef{
			{X: 0, Y: 0, Layer: LayerBackground},
			{X: 16, Y: 0, Layer: LayerObject, Collision: FullCollision()},
			{X: 32, Y: 0, Layer: LayerObject, Collision: partial},
			{X: 48, Y: 0, Layer: LayerOverlay},
			{X: 64, Y: 0, Layer: LayerObject},
		},
	})
	return reg
}

func ptr(tileset string, index int) *Pointer {
	return &Pointer{Tileset: tileset, Index: index}
}

func TestResizePreservesOverlap(t *testing.T) {
	level := NewLevel(4, 4, testRegistry())
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			level.Place(r, c, ptr("island", 1), false)
		}
	}

	level.Resize(6, 3)

	assert.Equal(t, 6, level.Rows())
	assert.Equal(t, 3, level.Cols())
	for r := 0; r < 6; r++ {
		for c := 0; c < 3; c++ {
			cell := level.At(LayerObject, r, c)
			if r < 4 {
				require.NotNil(t, cell, "overlap cell (%d,%d) lost", r, c)
				assert.Equal(t, Pointer{Tileset: "island", Index: 1}, *cell)
			} else {
				assert.Nil(t, cell, "new cell (%d,%d) not empty", r, c)
			}
		}
	}
}

func TestResizeKeepsLayersInStep(t *testing.T) {
	level := NewLevel(2, 2, testRegistry())
	level.Resize(5, 7)

	for _, tag := range []Layer{LayerBackground, LayerObject, LayerOverlay} {
		grid := level.layer(tag)
		require.Len(t, grid, 5)
		for _, row := range grid {
			require.Len(t, row, 7)
		}
	}
}

func TestPlaceWritesTileDeclaredLayer(t *testing.T) {
	level := NewLevel(3, 3, testRegistry())

	// Tile 3 declares the overlay layer; placement must land there no matter
	// which layer the editor is showing.
	level.Place(1, 1, ptr("island", 3), false)

	assert.Nil(t, level.At(LayerBackground, 1, 1))
	assert.Nil(t, level.At(LayerObject, 1, 1))
	require.NotNil(t, level.At(LayerOverlay, 1, 1))
	assert.Equal(t, 3, level.At(LayerOverlay, 1, 1).Index)
}

func TestClearWipesAllLayers(t *testing.T) {
	level := NewLevel(3, 3, testRegistry())
	level.Place(1, 1, ptr("island", 0), false)
	level.Place(1, 1, ptr("island", 1), false)
	level.Place(1, 1, ptr("island", 3), false)

	level.Place(1, 1, nil, false)

	assert.Nil(t, level.At(LayerBackground, 1, 1))
	assert.Nil(t, level.At(LayerObject, 1, 1))
	assert.Nil(t, level.At(LayerOverlay, 1, 1))
}

func TestPlaceCopiesPointer(t *testing.T) {
	level := NewLevel(2, 2, testRegistry())
	p := ptr("island", 1)
	level.Place(0, 0, p, false)

	p.Index = 4
	assert.Equal(t, 1, level.At(LayerObject, 0, 0).Index, "stored cell aliases caller pointer")
}

func TestOutOfRangePanics(t *testing.T) {
	level := NewLevel(3, 3, testRegistry())

	assert.Panics(t, func() { level.Place(3, 0, ptr("island", 1), false) })
	assert.Panics(t, func() { level.At(LayerObject, 0, -1) })
}

func TestDanglingPointerPanics(t *testing.T) {
	reg := testRegistry()

	assert.Panics(t, func() { reg.Tile(Pointer{Tileset: "missing", Index: 0}) })
	assert.Panics(t, func() { reg.Tile(Pointer{Tileset: "island", Index: 99}) })
}
