package systems

import (
	"testing"

	"github.com/brackenfell/tidelands/components"
	"github.com/stretchr/testify/assert"
)

func TestApplySavedEditorSettings(t *testing.T) {
	editor := &components.EditorData{
		SelectedTileset: "island",
		ShowBackground:  true,
		ShowObject:      true,
		ShowOverlay:     true,
		Zoom:            32,
	}
	saved := &SavedEditorSettings{
		SelectedTileset: "cliffs",
		ShowBackground:  false,
		ShowObject:      true,
		ShowOverlay:     false,
		Zoom:            48,
	}

	ApplySavedEditorSettings(editor, saved, []string{"island", "cliffs"})

	assert.Equal(t, "cliffs", editor.SelectedTileset)
	assert.False(t, editor.ShowBackground)
	assert.False(t, editor.ShowOverlay)
	assert.Equal(t, 48.0, editor.Zoom)
}

func TestApplySavedEditorSettingsKeepsUnknownTileset(t *testing.T) {
	editor := &components.EditorData{SelectedTileset: "island", Zoom: 32}
	saved := &SavedEditorSettings{SelectedTileset: "swamp", Zoom: 0}

	ApplySavedEditorSettings(editor, saved, []string{"island"})

	assert.Equal(t, "island", editor.SelectedTileset, "a tileset the level no longer loads stays unselected")
	assert.Equal(t, 32.0, editor.Zoom, "zero zoom from an old save is ignored")
}

func TestApplySavedEditorSettingsNil(t *testing.T) {
	editor := &components.EditorData{SelectedTileset: "island"}
	ApplySavedEditorSettings(editor, nil, []string{"island"})
	assert.Equal(t, "island", editor.SelectedTileset)
}
