package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EditorData is the in-game level editor state. The panel slides over the
// right side of the screen; the world stays live while it is open.
type EditorData struct {
	Open        bool
	PanelOffset float64      // 0 hidden, 1 fully slid in
	Slide       *gween.Tween // nil when the panel is at rest

	SelectedTileset string
	SelectedTile    int  // index into the selected tileset, -1 for none
	EditingTile     bool // property sheet open for the selected tile

	ShowBackground bool
	ShowObject     bool
	ShowOverlay    bool

	Zoom float64 // palette cell size on screen, in pixels
	PanX float64 // palette scroll, in tileset source pixels
	PanY float64

	Dirty bool // unsaved level or tileset edits
}

var Editor = donburi.NewComponentType[EditorData]()
