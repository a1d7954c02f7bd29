package tilemap

// AutoRule is a declarative 8-neighbor pattern attached to a tile definition.
// Each slot is tri-state: present (true), absent (false), or wildcard (nil).
// Slots follow fixed compass order NW, N, NE, E, SE, S, SW, W, matching the
// persisted metadata field order.
type AutoRule struct {
	TopLeft     *bool `json:"top_left"`
	Top         *bool `json:"top"`
	TopRight    *bool `json:"top_right"`
	Right       *bool `json:"right"`
	BottomRight *bool `json:"bottom_right"`
	Bottom      *bool `json:"bottom"`
	BottomLeft  *bool `json:"bottom_left"`
	Left        *bool `json:"left"`
}

// Signature is the observed neighbor presence around a cell, in the same
// compass order as AutoRule slots.
type Signature [8]bool

// neighborOffsets lists the 8 surrounding cells in compass order. The
// propagation ripple iterates exactly this ring, never recursing outward.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, 1},
	{1, 1}, {1, 0},
	{1, -1}, {0, -1},
}

func (r *AutoRule) slots() [8]*bool {
	return [8]*bool{
		r.TopLeft, r.Top, r.TopRight, r.Right,
		r.BottomRight, r.Bottom, r.BottomLeft, r.Left,
	}
}

// SolidRule returns a rule expecting every neighbor present, the editor's
// starting point for a freshly rule-enabled tile.
func SolidRule() *AutoRule {
	rule := &AutoRule{}
	t := func() *bool { v := true; return &v }
	rule.TopLeft, rule.Top, rule.TopRight, rule.Right = t(), t(), t(), t()
	rule.BottomRight, rule.Bottom, rule.BottomLeft, rule.Left = t(), t(), t(), t()
	return rule
}

// Score compares the rule against an observed signature. A concrete slot that
// disagrees disqualifies the rule outright; otherwise the score is the number
// of concrete slots that agree. Wildcards contribute nothing either way.
func (r *AutoRule) Score(sig Signature) (int, bool) {
	points := 0
	for i, slot := range r.slots() {
		if slot == nil {
			continue
		}
		if *slot != sig[i] {
			return 0, false
		}
		points++
	}
	return points, true
}

// SignatureAt builds the neighbor-presence signature for (row, col) on one
// layer: a neighbor counts as present when it holds a tile of the same group.
// Cells beyond the grid edge count as absent.
func (l *Level) SignatureAt(tag Layer, row, col int, group *uint8) Signature {
	var sig Signature
	for i, off := range neighborOffsets {
		ptr := l.at(tag, row+off[0], col+off[1])
		if ptr == nil {
			continue
		}
		sig[i] = groupsEqual(l.registry.Tile(*ptr).Group, group)
	}
	return sig
}

// BestMatch picks the tile variant in tilesetID that best fits the cell's
// surroundings, as seen from the subject tile's own layer and group. It scans
// same-group, rule-bearing definitions in definition order and keeps the last
// candidate whose score equals or beats the running best, so later
// definitions win ties — an ordering contract with tileset authors.
//
// Finding no candidate is a normal outcome (the caller keeps its originally
// chosen tile), not an error.
func (l *Level) BestMatch(row, col int, def *TileDef, tilesetID string) (Pointer, bool) {
	ts, ok := l.registry.Get(tilesetID)
	if !ok {
		panic("tilemap: best-match against unknown tileset " + tilesetID)
	}

	sig := l.SignatureAt(def.Layer, row, col, def.Group)

	best := 0
	found := false
	var winner Pointer
	for i := range ts.Tiles {
		candidate := &ts.Tiles[i]
		if candidate.AutoRule == nil || !groupsEqual(candidate.Group, def.Group) {
			continue
		}
		if points, ok := candidate.AutoRule.Score(sig); ok && points >= best {
			best = points
			winner = Pointer{Tileset: tilesetID, Index: i}
			found = true
		}
	}
	return winner, found
}

// ResolveNeighbors re-resolves the 8 cells surrounding (row, col) on one
// layer, replacing each stored pointer whose rules now select a different
// variant. The ripple is bounded to this single ring by construction.
func (l *Level) ResolveNeighbors(row, col int, tag Layer) {
	for _, off := range neighborOffsets {
		nr, nc := row+off[0], col+off[1]
		if !l.InBounds(nr, nc) {
			continue
		}
		ptr := l.layer(tag)[nr][nc]
		if ptr == nil {
			continue
		}
		if match, ok := l.BestMatch(nr, nc, l.registry.Tile(*ptr), ptr.Tileset); ok {
			m := match
			l.layer(tag)[nr][nc] = &m
		}
	}
}
