package systems

import (
	"testing"

	"github.com/brackenfell/tidelands/archetypes"
	"github.com/brackenfell/tidelands/components"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func bptr(v bool) *bool { return &v }

// editorFixture wires the minimal world the editor operates on: a level with
// a grouped, rule-bearing tileset, a camera at the origin, the editor state
// and the input singleton.
//
//	0: wildcard rule (matches anything, score 0)
//	1: concrete Left=true
//	2: concrete Left=true, Top=true
func editorFixture(t *testing.T) (*ecs.ECS, *components.EditorData, *components.InputData, *tilemap.Level) {
	t.Helper()

	grp := uint8(1)
	reg := tilemap.NewRegistry()
	reg.Add(&tilemap.Tileset{
		ID: "sand",
		Tiles: []tilemap.TileDef{
			{Layer: tilemap.LayerObject, Group: &grp, AutoRule: &tilemap.AutoRule{}},
			{Layer: tilemap.LayerObject, Group: &grp, AutoRule: &tilemap.AutoRule{Left: bptr(true)}},
			{Layer: tilemap.LayerObject, Group: &grp, AutoRule: &tilemap.AutoRule{Left: bptr(true), Top: bptr(true)}},
		},
	})
	level := tilemap.NewLevel(10, 10, reg)

	e := ecs.NewECS(donburi.NewWorld())
	*components.Level.Get(archetypes.Level.Spawn(e)) = components.LevelData{Level: level, Name: "scratch"}
	archetypes.Camera.Spawn(e)

	editor := components.Editor.Get(archetypes.Editor.Spawn(e))
	*editor = components.EditorData{
		Open:            true,
		PanelOffset:     1,
		SelectedTileset: "sand",
		SelectedTile:    2,
		ShowBackground:  true,
		ShowObject:      true,
		ShowOverlay:     true,
		Zoom:            32,
	}

	input := components.Input.Get(archetypes.Input.Spawn(e))
	return e, editor, input, level
}

func TestWorldEditResolvesPlacedCell(t *testing.T) {
	e, editor, input, level := editorFixture(t)

	// Painting the rule-bearing tile 2 into empty surroundings must store
	// the best-scoring candidate, not the raw selection: only the wildcard
	// rule survives an all-absent signature.
	input.MouseDown = true
	input.MouseX = 5*tilemap.TileSize + 8
	input.MouseY = 5*tilemap.TileSize + 8
	handleWorldEdit(e, editor, input)

	placed := level.At(tilemap.LayerObject, 5, 5)
	require.NotNil(t, placed)
	assert.Equal(t, 0, placed.Index)
	assert.True(t, editor.Dirty)
}

func TestWorldEditResolvesAgainstNeighbors(t *testing.T) {
	e, editor, input, level := editorFixture(t)
	level.Place(5, 4, &tilemap.Pointer{Tileset: "sand", Index: 0}, false)

	input.MouseDown = true
	input.MouseX = 5*tilemap.TileSize + 8
	input.MouseY = 5*tilemap.TileSize + 8
	handleWorldEdit(e, editor, input)

	placed := level.At(tilemap.LayerObject, 5, 5)
	require.NotNil(t, placed)
	assert.Equal(t, 1, placed.Index, "west neighbor present selects the Left=true variant")
}

func TestWorldEditEnterPlacesRawSelection(t *testing.T) {
	e, editor, input, level := editorFixture(t)

	input.MouseDown = true
	input.Enter = true
	input.MouseX = 5*tilemap.TileSize + 8
	input.MouseY = 5*tilemap.TileSize + 8
	handleWorldEdit(e, editor, input)

	placed := level.At(tilemap.LayerObject, 5, 5)
	require.NotNil(t, placed)
	assert.Equal(t, 2, placed.Index, "held enter bypasses resolution")
}

func TestTileSheetTogglesCollisionSubCell(t *testing.T) {
	e, editor, input, level := editorFixture(t)
	editor.EditingTile = true

	ts, _ := level.Registry().Get("sand")
	ts.Tiles[2].Collision = tilemap.FullCollision()

	cell := panelWidth() / tilemap.Sections
	sub := cell / tilemap.Sections
	input.Click = true
	input.MouseX = panelLeft(editor) + cell + sub/2
	input.MouseY = paletteTop() + cell + sub/2
	handlePalette(e, editor, input)

	assert.False(t, ts.Tiles[2].Collision[0][0], "first click clears the sub-cell")
	assert.True(t, ts.Tiles[2].Collision[0][1], "other sub-cells stay solid")
	assert.True(t, editor.Dirty)

	handlePalette(e, editor, input)
	assert.True(t, ts.Tiles[2].Collision[0][0], "second click restores it")
}

func TestTileSheetCyclesRuleSlot(t *testing.T) {
	e, editor, input, level := editorFixture(t)
	editor.EditingTile = true

	ts, _ := level.Registry().Get("sand")
	ts.Tiles[2].AutoRule = &tilemap.AutoRule{}

	// Top-middle sheet cell edits the Top slot.
	cell := panelWidth() / tilemap.Sections
	input.Click = true
	input.MouseX = panelLeft(editor) + cell + cell/2
	input.MouseY = paletteTop() + cell/2

	handleTileSheet(e, editor, input)
	require.NotNil(t, ts.Tiles[2].AutoRule.Top)
	assert.True(t, *ts.Tiles[2].AutoRule.Top)

	handleTileSheet(e, editor, input)
	require.NotNil(t, ts.Tiles[2].AutoRule.Top)
	assert.False(t, *ts.Tiles[2].AutoRule.Top)

	handleTileSheet(e, editor, input)
	assert.Nil(t, ts.Tiles[2].AutoRule.Top, "third click returns the slot to wildcard")
	assert.Nil(t, ts.Tiles[2].AutoRule.Left, "other slots stay untouched")
}

func TestLayerCycleSyncsCollisionMatrix(t *testing.T) {
	def := &tilemap.TileDef{Layer: tilemap.LayerObject}
	syncLayerCollision(def)
	require.NotNil(t, def.Collision, "object tiles gain a full matrix")
	assert.True(t, def.Collision[1][1])

	def.Layer = tilemap.LayerBackground
	syncLayerCollision(def)
	assert.Nil(t, def.Collision, "leaving the object layer drops the matrix")
}

func TestPalettePanClamps(t *testing.T) {
	e, editor, input, level := editorFixture(t)

	ts, _ := level.Registry().Get("sand")
	for len(ts.Tiles) < 40 {
		ts.Tiles = append(ts.Tiles, tilemap.TileDef{Layer: tilemap.LayerObject})
	}

	// Zoom 32 on a 128px panel: 4 columns, 10 rows, 192px of overflow below
	// the palette area.
	editor.PanY = 500
	handlePalette(e, editor, input)
	assert.InDelta(t, 192, editor.PanY, 1e-9, "pan clamps to the palette extent")

	input.Horizontal = 1
	handlePalette(e, editor, input)
	assert.Zero(t, editor.PanX, "four columns fill the panel exactly, no horizontal slack")

	editor.PanY = 0
	input.Horizontal = 0
	input.Vertical = 1
	handlePalette(e, editor, input)
	assert.Greater(t, editor.PanY, 0.0, "vertical intent scrolls the palette")
}

func TestPaletteClickAccountsForPan(t *testing.T) {
	e, editor, input, level := editorFixture(t)

	ts, _ := level.Registry().Get("sand")
	for len(ts.Tiles) < 40 {
		ts.Tiles = append(ts.Tiles, tilemap.TileDef{Layer: tilemap.LayerObject})
	}

	editor.PanY = 32 // one row scrolled out of view
	input.Click = true
	input.MouseX = panelLeft(editor) + 2
	input.MouseY = paletteTop() + 2
	handlePalette(e, editor, input)

	assert.Equal(t, 4, editor.SelectedTile, "top-left palette cell is the second row's first tile")
	assert.False(t, editor.EditingTile)
}
