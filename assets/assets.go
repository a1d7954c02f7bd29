package assets

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/brackenfell/tidelands/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:levels all:tiles all:sprites
var assetFS embed.FS

var (
	imageCache   = map[string]*ebiten.Image{}
	tilesetArt   = map[string]*ebiten.Image{}
	tilesetCache = map[string]*tilemap.Tileset{}
)

// readFile prefers a file on disk under the assets directory so editor saves
// take effect on the next run, falling back to the embedded copy.
func readFile(relPath string) ([]byte, error) {
	if data, err := os.ReadFile(path.Join("assets", relPath)); err == nil {
		return data, nil
	}
	return assetFS.ReadFile(relPath)
}

// MustLoadImage loads and caches an image from the asset tree, panicking on
// a missing or undecodable file: broken embedded assets are a build problem,
// not a runtime condition.
func MustLoadImage(relPath string) *ebiten.Image {
	if img, ok := imageCache[relPath]; ok {
		return img
	}

	data, err := readFile(relPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", relPath, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("Failed to decode image %s: %v", relPath, err))
	}

	imageCache[relPath] = img
	return img
}

// LoadTileset loads a tileset's metadata and source image by ID. The image
// is registered for rendering under the same ID; definition order in the
// metadata is preserved exactly.
func LoadTileset(id string) (*tilemap.Tileset, error) {
	if ts, ok := tilesetCache[id]; ok {
		return ts, nil
	}

	metaPath := fmt.Sprintf("tiles/%s.png.meta.json", id)
	data, err := readFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("load tileset meta %s: %w", metaPath, err)
	}

	var doc tilemap.TilesetDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode tileset meta %s: %w", metaPath, err)
	}

	ts := &tilemap.Tileset{ID: id, Tiles: doc.Tiles}
	tilesetCache[id] = ts
	tilesetArt[id] = MustLoadImage(fmt.Sprintf("tiles/%s.png", id))
	return ts, nil
}

// TilesetImage returns the source image of a loaded tileset. Asking for an
// unloaded one means the registry and art fell out of step, which is a
// loader bug.
func TilesetImage(id string) *ebiten.Image {
	img, ok := tilesetArt[id]
	if !ok {
		panic(fmt.Sprintf("tileset image %q requested before its tileset was loaded", id))
	}
	return img
}

// LoadLevel reads a level document, loads every tileset it references into a
// fresh registry, and builds the live level. The registry is complete before
// the level exists; no grid operation ever observes a partial load.
func LoadLevel(name string) (*tilemap.Level, error) {
	data, err := readFile(fmt.Sprintf("levels/%s.json", name))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}

	var doc tilemap.LevelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode level %s: %w", name, err)
	}

	registry := tilemap.NewRegistry()
	for _, id := range doc.TilesetIDs() {
		ts, err := LoadTileset(id)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		registry.Add(ts)
	}

	level, err := doc.Build(registry)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return level, nil
}

// ObjectListing is one spawnable object anchored to a grid cell, stored in a
// level's optional companion objects file.
type ObjectListing struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Type string `json:"type"`
}

// LevelObjects reads the optional objects companion of a level. A missing
// file simply means the level spawns nothing.
func LevelObjects(name string) ([]ObjectListing, error) {
	data, err := readFile(fmt.Sprintf("levels/%s.objects.json", name))
	if err != nil {
		return nil, nil
	}

	var listings []ObjectListing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("decode objects for level %s: %w", name, err)
	}
	return listings, nil
}

// SaveLevel writes a level document to the on-disk assets directory as
// pretty-printed JSON, where it shadows the embedded copy.
func SaveLevel(name string, doc *tilemap.LevelDocument) error {
	return saveJSON(fmt.Sprintf("levels/%s.json", name), doc)
}

// SaveTileset writes tileset metadata next to its image on disk.
func SaveTileset(id string, doc *tilemap.TilesetDocument) error {
	return saveJSON(fmt.Sprintf("tiles/%s.png.meta.json", id), doc)
}

func saveJSON(relPath string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", relPath, err)
	}

	full := path.Join("assets", relPath)
	if err := os.MkdirAll(path.Dir(full), 0o755); err != nil {
		return fmt.Errorf("save %s: %w", relPath, err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", relPath, err)
	}
	return nil
}
