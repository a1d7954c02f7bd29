package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolp(v bool) *bool { return &v }

// autotileRegistry builds a tileset of grouped, rule-bearing sand tiles.
//
//	0: wildcard rule (matches anything, score 0)
//	1: concrete Left=true (score 1 when the west neighbor is sand)
//	2: concrete Left=true, Top=true (score 2 with both neighbors)
//	3: concrete Top=true (score 1, later-defined twin of a tie below)
//	4: concrete Top=true (same rule as 3; definition order breaks the tie)
//	5: ungrouped tile with a wildcard rule
func autotileRegistry() *Registry {
	sand := u8(1)
	reg := NewRegistry()
	reg.Add(&Tileset{
		ID: "sand",
		Tiles: []TileDef{
			{Layer: LayerObject, Group: sand, AutoRule: &AutoRule{}},
			{Layer: LayerObject, Group: sand, AutoRule: &AutoRule{Left: boolp(true)}},
			{Layer: LayerObject, Group: sand, AutoRule: &AutoRule{Left: boolp(true), Top: boolp(true)}},
			{Layer: LayerObject, Group: sand, AutoRule: &AutoRule{Top: boolp(true)}},
			{Layer: LayerObject, Group: sand, AutoRule: &AutoRule{Top: boolp(true)}},
			{Layer: LayerObject, AutoRule: &AutoRule{}},
		},
	})
	return reg
}

func sandLevel(t *testing.T) *Level {
	t.Helper()
	return NewLevel(10, 10, autotileRegistry())
}

func TestScoreDisqualifiesConcreteMismatch(t *testing.T) {
	rule := &AutoRule{Left: boolp(true), Top: boolp(false)}

	var sig Signature // all absent
	_, ok := rule.Score(sig)
	assert.False(t, ok, "rule demanding a present left neighbor must disqualify")

	sig[7] = true // W slot
	points, ok := rule.Score(sig)
	require.True(t, ok)
	assert.Equal(t, 2, points, "both concrete slots agree")
}

func TestSignatureGroupMatching(t *testing.T) {
	level := sandLevel(t)
	level.Place(5, 4, ptr("sand", 0), false) // west: sand group
	level.Place(4, 5, ptr("sand", 5), false) // north: no group

	sig := level.SignatureAt(LayerObject, 5, 5, u8(1))
	assert.True(t, sig[7], "west neighbor shares the group")
	assert.False(t, sig[1], "ungrouped north neighbor is not a match for group 1")

	// Absent group matches absent group.
	sig = level.SignatureAt(LayerObject, 5, 5, nil)
	assert.True(t, sig[1])
	assert.False(t, sig[7])
}

func TestBestMatchPrefersHighestScore(t *testing.T) {
	level := sandLevel(t)
	level.Place(5, 4, ptr("sand", 0), false)
	level.Place(4, 5, ptr("sand", 0), false)

	def := level.Registry().Tile(Pointer{Tileset: "sand", Index: 0})
	match, ok := level.BestMatch(5, 5, def, "sand")
	require.True(t, ok)
	assert.Equal(t, 2, match.Index, "two concrete agreements beat one")
}

func TestBestMatchTieGoesToLastDefinition(t *testing.T) {
	level := sandLevel(t)
	level.Place(4, 5, ptr("sand", 0), false) // north neighbor only

	def := level.Registry().Tile(Pointer{Tileset: "sand", Index: 0})
	match, ok := level.BestMatch(5, 5, def, "sand")
	require.True(t, ok)
	assert.Equal(t, 4, match.Index, "tiles 3 and 4 tie at score 1; the later definition wins")
}

func TestBestMatchNeverPicksDisqualified(t *testing.T) {
	level := sandLevel(t)
	// No neighbors: every concrete-slotted rule mismatches and only the
	// wildcard rule survives, regardless of potential scores.
	def := level.Registry().Tile(Pointer{Tileset: "sand", Index: 2})
	match, ok := level.BestMatch(5, 5, def, "sand")
	require.True(t, ok)
	assert.Equal(t, 0, match.Index)
}

func TestBestMatchDeterministic(t *testing.T) {
	level := sandLevel(t)
	level.Place(5, 4, ptr("sand", 0), false)
	level.Place(4, 5, ptr("sand", 0), false)

	def := level.Registry().Tile(Pointer{Tileset: "sand", Index: 0})
	first, ok := level.BestMatch(5, 5, def, "sand")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := level.BestMatch(5, 5, def, "sand")
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestBestMatchFallback(t *testing.T) {
	reg := NewRegistry()
	reg.Add(&Tileset{ID: "bare", Tiles: []TileDef{{Layer: LayerObject}}})
	level := NewLevel(3, 3, reg)

	def := reg.Tile(Pointer{Tileset: "bare", Index: 0})
	_, ok := level.BestMatch(1, 1, def, "bare")
	assert.False(t, ok, "no rule-bearing candidates is a normal no-match outcome")
}

func TestRippleTouchesOnlyFirstRing(t *testing.T) {
	level := sandLevel(t)
	// A row of wildcard sand: (5,5) through (5,7).
	level.Place(5, 5, ptr("sand", 0), false)
	level.Place(5, 6, ptr("sand", 0), false)
	level.Place(5, 7, ptr("sand", 0), false)

	// Placing west of the row re-resolves (5,5) — its west neighbor now
	// matches tile 1's rule — but must not reach (5,6) in the second ring,
	// even though re-resolving it would also change it.
	level.Place(5, 4, ptr("sand", 0), true)

	assert.Equal(t, 1, level.At(LayerObject, 5, 5).Index)
	assert.Equal(t, 0, level.At(LayerObject, 5, 6).Index, "second ring must stay untouched")
	assert.Equal(t, 0, level.At(LayerObject, 5, 7).Index)
}

func TestPlacementEndToEnd(t *testing.T) {
	level := sandLevel(t)

	// Empty surroundings: the editor resolves the selected tile first, then
	// places the result. Only the all-wildcard rule survives an all-absent
	// signature.
	selected := Pointer{Tileset: "sand", Index: 2}
	resolved := selected
	if match, ok := level.BestMatch(5, 5, level.Registry().Tile(selected), "sand"); ok {
		resolved = match
	}
	level.Place(5, 5, &resolved, true)
	require.NotNil(t, level.At(LayerObject, 5, 5))
	assert.Equal(t, 0, level.At(LayerObject, 5, 5).Index)

	// A second placement east of it ripples back and re-scores (5,5).
	resolved = Pointer{Tileset: "sand", Index: 0}
	level.Place(5, 6, &resolved, true)

	def := level.Registry().Tile(*level.At(LayerObject, 5, 5))
	require.NotNil(t, def)
	match, ok := level.BestMatch(5, 6, level.Registry().Tile(Pointer{Tileset: "sand", Index: 0}), "sand")
	require.True(t, ok)
	assert.Equal(t, 1, match.Index, "(5,6) now sees sand to its west")
}

func TestClearWithPropagationRipples(t *testing.T) {
	level := sandLevel(t)
	level.Place(5, 4, ptr("sand", 0), false)
	level.Place(5, 5, ptr("sand", 0), false)
	level.Place(5, 6, ptr("sand", 1), false)

	// Clearing (5,5) removes (5,6)'s west neighbor; the ripple downgrades it
	// back to the wildcard tile.
	level.Place(5, 5, nil, true)

	assert.Nil(t, level.At(LayerObject, 5, 5))
	assert.Equal(t, 0, level.At(LayerObject, 5, 6).Index)
}
