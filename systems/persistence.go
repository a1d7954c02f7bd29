package systems

import (
	"encoding/json"
	"log"

	"github.com/brackenfell/tidelands/components"
	"github.com/quasilyte/gdata"
)

// SavedEditorSettings is the slice of editor state worth keeping between
// runs: which tileset was in hand, which layers were visible and the
// palette zoom.
type SavedEditorSettings struct {
	SelectedTileset string  `json:"selectedTileset"`
	ShowBackground  bool    `json:"showBackground"`
	ShowObject      bool    `json:"showObject"`
	ShowOverlay     bool    `json:"showOverlay"`
	Zoom            float64 `json:"zoom"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tidelands",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadEditorSettings loads the saved editor settings, or nil when none exist.
func LoadEditorSettings() (*SavedEditorSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("editor")
	if err != nil {
		log.Printf("Warning: Could not load editor settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedEditorSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved editor settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveEditorSettings writes the editor settings to disk.
func SaveEditorSettings(s *SavedEditorSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize editor settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("editor", data); err != nil {
		log.Printf("Warning: Could not save editor settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentEditorSettings snapshots the live editor state.
func SaveCurrentEditorSettings(editor *components.EditorData) {
	saved := &SavedEditorSettings{
		SelectedTileset: editor.SelectedTileset,
		ShowBackground:  editor.ShowBackground,
		ShowObject:      editor.ShowObject,
		ShowOverlay:     editor.ShowOverlay,
		Zoom:            editor.Zoom,
	}
	_ = SaveEditorSettings(saved)
}

// ApplySavedEditorSettings pushes loaded settings into the editor singleton.
// The tileset is only restored when the level still references it.
func ApplySavedEditorSettings(editor *components.EditorData, saved *SavedEditorSettings, knownTilesets []string) {
	if saved == nil {
		return
	}

	for _, id := range knownTilesets {
		if id == saved.SelectedTileset {
			editor.SelectedTileset = saved.SelectedTileset
			break
		}
	}
	editor.ShowBackground = saved.ShowBackground
	editor.ShowObject = saved.ShowObject
	editor.ShowOverlay = saved.ShowOverlay
	if saved.Zoom > 0 {
		editor.Zoom = saved.Zoom
	}
}
