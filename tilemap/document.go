package tilemap

import "fmt"

// Grid is the persisted form of one layer: rows×cols of nullable pointers.
type Grid [][]*Pointer

// LevelDocument is the on-disk level format. The core assumes documents have
// been decoded by the persistence layer; Build re-checks only the structural
// extent invariant, since a ragged grid would break every operation after it.
type LevelDocument struct {
	Rows       int  `json:"rows"`
	Cols       int  `json:"cols"`
	Background Grid `json:"background"`
	Object     Grid `json:"object"`
	Overlay    Grid `json:"overlay"`
}

// TilesetDocument is the on-disk tileset metadata format, stored next to the
// tileset image. Tile order in the document is load-bearing: auto-tile
// tie-breaking follows it.
type TilesetDocument struct {
	Tiles []TileDef `json:"tiles"`
}

// TilesetIDs collects every tileset referenced by any cell, so the loader
// knows which images and metadata to fetch before the level is built.
func (d *LevelDocument) TilesetIDs() []string {
	seen := map[string]bool{}
	var ids []string
	for _, grid := range []Grid{d.Background, d.Object, d.Overlay} {
		for _, row := range grid {
			for _, ptr := range row {
				if ptr != nil && !seen[ptr.Tileset] {
					seen[ptr.Tileset] = true
					ids = append(ids, ptr.Tileset)
				}
			}
		}
	}
	return ids
}

func (g Grid) check(name string, rows, cols int) error {
	if len(g) != rows {
		return fmt.Errorf("tilemap: %s layer has %d rows, document says %d", name, len(g), rows)
	}
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("tilemap: %s layer row %d has %d cols, document says %d", name, r, len(row), cols)
		}
	}
	return nil
}

// Build turns a decoded document into a live level backed by the given
// registry. Every referenced tileset must already be registered; a dangling
// reference here is a loader bug and fails loudly.
func (d *LevelDocument) Build(registry *Registry) (*Level, error) {
	for _, check := range []error{
		d.Background.check("background", d.Rows, d.Cols),
		d.Object.check("object", d.Rows, d.Cols),
		d.Overlay.check("overlay", d.Rows, d.Cols),
	} {
		if check != nil {
			return nil, check
		}
	}

	for _, id := range d.TilesetIDs() {
		if _, ok := registry.Get(id); !ok {
			return nil, fmt.Errorf("tilemap: document references unregistered tileset %q", id)
		}
	}

	level := NewLevel(d.Rows, d.Cols, registry)
	copyGrid(level.background, d.Background)
	copyGrid(level.object, d.Object)
	copyGrid(level.overlay, d.Overlay)
	return level, nil
}

// Document snapshots the level back into its persisted form. Cells are deep
// copied so later edits do not alias the snapshot.
func (l *Level) Document() *LevelDocument {
	return &LevelDocument{
		Rows:       l.rows,
		Cols:       l.cols,
		Background: snapshotGrid(l.background),
		Object:     snapshotGrid(l.object),
		Overlay:    snapshotGrid(l.overlay),
	}
}

// Document snapshots the tileset's definitions for saving alongside its
// image, preserving definition order.
func (t *Tileset) Document() *TilesetDocument {
	tiles := make([]TileDef, len(t.Tiles))
	copy(tiles, t.Tiles)
	return &TilesetDocument{Tiles: tiles}
}

func copyGrid(dst cellGrid, src Grid) {
	for r, row := range src {
		for c, ptr := range row {
			if ptr != nil {
				p := *ptr
				dst[r][c] = &p
			}
		}
	}
}

func snapshotGrid(src cellGrid) Grid {
	out := make(Grid, len(src))
	for r, row := range src {
		out[r] = make([]*Pointer, len(row))
		for c, ptr := range row {
			if ptr != nil {
				p := *ptr
				out[r][c] = &p
			}
		}
	}
	return out
}
