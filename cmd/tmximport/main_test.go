package main

import (
	"testing"

	tiled "github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMapsNamedLayers(t *testing.T) {
	ts := &tiled.Tileset{Name: "Island"}
	m := &tiled.Map{
		Width:  2,
		Height: 2,
		Layers: []*tiled.Layer{
			{
				Name: "Background",
				Tiles: []*tiled.LayerTile{
					{ID: 4, Tileset: ts},
					{Nil: true},
					{Nil: true},
					{ID: 9, Tileset: ts},
				},
			},
			{
				Name: "object",
				Tiles: []*tiled.LayerTile{
					{Nil: true},
					{ID: 11, Tileset: ts},
					{Nil: true},
					{Nil: true},
				},
			},
			{
				Name: "decoration",
				Tiles: []*tiled.LayerTile{
					{ID: 1, Tileset: ts},
					{Nil: true},
					{Nil: true},
					{Nil: true},
				},
			},
		},
	}

	doc, err := convert(m)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Rows)
	assert.Equal(t, 2, doc.Cols)

	require.NotNil(t, doc.Background[0][0])
	assert.Equal(t, "island", doc.Background[0][0].Tileset)
	assert.Equal(t, 4, doc.Background[0][0].Index)
	require.NotNil(t, doc.Background[1][1])
	assert.Equal(t, 9, doc.Background[1][1].Index)

	require.NotNil(t, doc.Object[0][1])
	assert.Equal(t, 11, doc.Object[0][1].Index)

	// The unrecognized layer is dropped entirely.
	assert.Nil(t, doc.Overlay[0][0])
	assert.Nil(t, doc.Background[0][1])
}

func TestTilesetIDFallsBackToSource(t *testing.T) {
	assert.Equal(t, "cliffs", tilesetID(&tiled.Tileset{Source: "maps/Cliffs.tsx", Name: ""}))
	assert.Equal(t, "island", tilesetID(&tiled.Tileset{Name: "Island"}))
}
