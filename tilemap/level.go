package tilemap

import "fmt"

// cellGrid is one layer's rows×cols grid of optional tile pointers.
type cellGrid [][]*Pointer

func newCellGrid(rows, cols int) cellGrid {
	g := make(cellGrid, rows)
	for r := range g {
		g[r] = make([]*Pointer, cols)
	}
	return g
}

// resize returns a grid with the new extent, preserving the top-left
// min(old, new) region and leaving new cells empty.
func (g cellGrid) resize(rows, cols int) cellGrid {
	next := newCellGrid(rows, cols)
	for r := 0; r < rows && r < len(g); r++ {
		for c := 0; c < cols && c < len(g[r]); c++ {
			next[r][c] = g[r][c]
		}
	}
	return next
}

// Level owns the three parallel tile layers of a loaded map and the registry
// their cells point into. All three layers always share one rows×cols extent.
type Level struct {
	rows, cols int

	background cellGrid
	object     cellGrid
	overlay    cellGrid

	registry *Registry
}

// NewLevel creates an all-empty level with the given extent.
func NewLevel(rows, cols int, registry *Registry) *Level {
	return &Level{
		rows:       rows,
		cols:       cols,
		background: newCellGrid(rows, cols),
		object:     newCellGrid(rows, cols),
		overlay:    newCellGrid(rows, cols),
		registry:   registry,
	}
}

func (l *Level) Rows() int           { return l.rows }
func (l *Level) Cols() int           { return l.cols }
func (l *Level) Registry() *Registry { return l.registry }

// InBounds reports whether (row, col) lies inside the level extent. Grid
// mutation entry points require callers to bounds-check first.
func (l *Level) InBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// layer returns the grid for a tag. The enum is closed at three values, so an
// unknown tag is a fatal invariant violation.
func (l *Level) layer(tag Layer) cellGrid {
	switch tag {
	case LayerBackground:
		return l.background
	case LayerObject:
		return l.object
	case LayerOverlay:
		return l.overlay
	}
	panic(fmt.Sprintf("tilemap: unknown layer %d", int(tag)))
}

// At returns the pointer stored at (row, col) on one layer, or nil for an
// empty cell. Out-of-range coordinates are a programmer error and panic.
func (l *Level) At(tag Layer, row, col int) *Pointer {
	if !l.InBounds(row, col) {
		panic(fmt.Sprintf("tilemap: cell (%d,%d) outside %dx%d level", row, col, l.rows, l.cols))
	}
	return l.layer(tag)[row][col]
}

// at is the tolerant sibling of At for neighbor scans and world-space probes,
// where falling off the grid simply means "nothing there".
func (l *Level) at(tag Layer, row, col int) *Pointer {
	if !l.InBounds(row, col) {
		return nil
	}
	return l.layer(tag)[row][col]
}

// TileDef resolves the definition stored at (row, col), or nil for an empty
// cell.
func (l *Level) TileDef(tag Layer, row, col int) *TileDef {
	ptr := l.At(tag, row, col)
	if ptr == nil {
		return nil
	}
	return l.registry.Tile(*ptr)
}

// Resize grows or shrinks all three layers to the new extent in one step.
// The top-left overlap with the old grid is preserved verbatim and new cells
// are empty. Negative or otherwise nonsensical extents are rejected by the
// editor before they reach here.
func (l *Level) Resize(rows, cols int) {
	l.background = l.background.resize(rows, cols)
	l.object = l.object.resize(rows, cols)
	l.overlay = l.overlay.resize(rows, cols)
	l.rows = rows
	l.cols = cols
}

// Place writes a resolved pointer into the cell at (row, col). The layer
// mutated is the one the pointed-to tile declares for itself, not whichever
// layer the editor happens to be viewing. A nil pointer is an explicit clear
// and empties the cell on all three layers at once; that asymmetry (clear
// wipes everything, place touches one layer) is intentional editor behavior.
//
// With propagate set, the 8 neighboring cells on each affected layer are
// re-resolved against their auto-tile rules afterwards.
func (l *Level) Place(row, col int, ptr *Pointer, propagate bool) {
	if !l.InBounds(row, col) {
		panic(fmt.Sprintf("tilemap: place at (%d,%d) outside %dx%d level", row, col, l.rows, l.cols))
	}

	if ptr == nil {
		l.background[row][col] = nil
		l.object[row][col] = nil
		l.overlay[row][col] = nil
		if propagate {
			l.ResolveNeighbors(row, col, LayerBackground)
			l.ResolveNeighbors(row, col, LayerObject)
			l.ResolveNeighbors(row, col, LayerOverlay)
		}
		return
	}

	def := l.registry.Tile(*ptr)
	p := *ptr
	l.layer(def.Layer)[row][col] = &p
	if propagate {
		l.ResolveNeighbors(row, col, def.Layer)
	}
}
