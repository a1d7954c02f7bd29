// Package tilemap implements the spatial core of the game: layered tile
// grids, rule-based auto-tiling, and sub-tile collision with axis-separated
// swept movement. It is pure data with no dependencies on ebitengine or
// donburi so it can be exercised headless by tools and tests.
package tilemap

import (
	"fmt"
	"image"
)

const (
	// TileSize is the world-space edge length of one grid cell.
	TileSize = 16.0

	// Sections is the per-axis subdivision of a tile's collision matrix.
	// Probe step size and boundary snapping are derived from it.
	Sections = 3
)

// SectionSize is the world-space edge length of one collision sub-cell.
const SectionSize = TileSize / Sections

// Layer identifies one of the three parallel grids of a level.
type Layer int

const (
	LayerBackground Layer = iota
	LayerObject
	LayerOverlay
)

var layerNames = [...]string{"Background", "Object", "Overlay"}

func (l Layer) String() string {
	if l < LayerBackground || l > LayerOverlay {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}

// MarshalJSON encodes the layer as its name, matching the persisted tileset
// metadata format.
func (l Layer) MarshalJSON() ([]byte, error) {
	if l < LayerBackground || l > LayerOverlay {
		return nil, fmt.Errorf("tilemap: cannot encode unknown layer %d", int(l))
	}
	return []byte(`"` + layerNames[l] + `"`), nil
}

// UnmarshalJSON decodes a layer name.
func (l *Layer) UnmarshalJSON(data []byte) error {
	for i, name := range layerNames {
		if string(data) == `"`+name+`"` {
			*l = Layer(i)
			return nil
		}
	}
	return fmt.Errorf("tilemap: unknown layer %s", string(data))
}

// Pointer references a tile definition inside a registry tileset. A grid cell
// holds either a pointer or nothing.
type Pointer struct {
	Tileset string `json:"tileset_id"`
	Index   int    `json:"tile_index"`
}

// CollisionMatrix marks the solid sub-regions of a tile. True means solid.
type CollisionMatrix [Sections][Sections]bool

// FullCollision returns a matrix with every sub-cell solid, the default for
// freshly cut object tiles.
func FullCollision() *CollisionMatrix {
	m := &CollisionMatrix{}
	for r := range m {
		for c := range m[r] {
			m[r][c] = true
		}
	}
	return m
}

// TileDef describes one tile of a tileset: its source-rect origin in the
// tileset image, which grid layer it belongs to, and its optional auto-tiling
// rule, group, and collision matrix.
type TileDef struct {
	X         float64          `json:"x"`
	Y         float64          `json:"y"`
	AutoRule  *AutoRule        `json:"auto_rule"`
	Layer     Layer            `json:"layer"`
	Group     *uint8           `json:"group"`
	Collision *CollisionMatrix `json:"collision_matrix"`
}

// groupsEqual reports whether two tile groups match. Two absent groups match
// each other, so ungrouped tiles form a family of their own.
func groupsEqual(a, b *uint8) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Tileset is a named, ordered collection of tile definitions sharing one
// source image. Definition order is a contract with asset authors: auto-tile
// tie-breaking scans in this order, so it must be preserved across save/load.
type Tileset struct {
	ID    string
	Tiles []TileDef
}

// TileAt returns the index of the tile whose source rect starts exactly at
// (x, y), preferring the last-defined tile when duplicates exist.
func (t *Tileset) TileAt(x, y float64) (int, bool) {
	found := -1
	for i, tile := range t.Tiles {
		if tile.X == x && tile.Y == y {
			found = i
		}
	}
	return found, found >= 0
}

// Cut scans the tileset's source image in TileSize steps and appends an
// object-layer tile with a full collision matrix for every non-transparent
// cell that has no definition yet. Existing object tiles that lack a matrix
// gain a full one. Cut only ever appends: removing definitions would
// invalidate pointers stored in levels.
func (t *Tileset) Cut(img image.Image) {
	bounds := img.Bounds()
	cols := bounds.Dx() / TileSize
	rows := bounds.Dy() / TileSize

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := float64(col * TileSize)
			y := float64(row * TileSize)

			if idx, ok := t.TileAt(x, y); ok {
				tile := &t.Tiles[idx]
				if tile.Layer == LayerObject && tile.Collision == nil {
					tile.Collision = FullCollision()
				}
				continue
			}

			if sectionTransparent(img, bounds.Min.X+col*TileSize, bounds.Min.Y+row*TileSize) {
				continue
			}

			t.Tiles = append(t.Tiles, TileDef{
				X:         x,
				Y:         y,
				Layer:     LayerObject,
				Collision: FullCollision(),
			})
		}
	}
}

// sectionTransparent reports whether a TileSize square of the image is fully
// transparent.
func sectionTransparent(img image.Image, startX, startY int) bool {
	for y := startY; y < startY+TileSize; y++ {
		for x := startX; x < startX+TileSize; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				return false
			}
		}
	}
	return true
}

// Registry is the immutable-per-level catalogue of tilesets a level's grids
// point into. It is loaded fully before any grid operation runs; the editor's
// add-tileset and cut operations may append to it but never remove entries.
type Registry struct {
	sets  map[string]*Tileset
	order []string
}

func NewRegistry() *Registry {
	return &Registry{sets: map[string]*Tileset{}}
}

// Add registers a tileset under its ID, replacing any previous registration.
func (r *Registry) Add(ts *Tileset) {
	if _, ok := r.sets[ts.ID]; !ok {
		r.order = append(r.order, ts.ID)
	}
	r.sets[ts.ID] = ts
}

// Get looks up a tileset by ID.
func (r *Registry) Get(id string) (*Tileset, bool) {
	ts, ok := r.sets[id]
	return ts, ok
}

// IDs returns the registered tileset IDs in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Tile resolves a pointer to its definition. A dangling pointer means the
// grid is inconsistent with its registry, which is a contract violation by
// the loading layer, so it panics rather than corrupting silently.
func (r *Registry) Tile(p Pointer) *TileDef {
	ts, ok := r.sets[p.Tileset]
	if !ok {
		panic(fmt.Sprintf("tilemap: pointer references unknown tileset %q", p.Tileset))
	}
	if p.Index < 0 || p.Index >= len(ts.Tiles) {
		panic(fmt.Sprintf("tilemap: pointer index %d out of range for tileset %q (%d tiles)",
			p.Index, p.Tileset, len(ts.Tiles)))
	}
	return &ts.Tiles[p.Index]
}
