package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/brackenfell/tidelands/assets"
	"github.com/brackenfell/tidelands/components"
	cfg "github.com/brackenfell/tidelands/config"
	"github.com/brackenfell/tidelands/fonts"
	"github.com/brackenfell/tidelands/tilemap"
	"github.com/brackenfell/tidelands/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var (
	editorPanel    *ui.EditorPanel
	editorPanelECS *ecs.ECS
)

func panelWidth() float64 {
	return float64(cfg.C.Width) * cfg.Editor.PanelFraction
}

// panelLeft is the sliding left edge of the editor panel in screen space.
func panelLeft(editor *components.EditorData) float64 {
	return float64(cfg.C.Width) - editor.PanelOffset*panelWidth()
}

// paletteTop splits the panel: widgets above, tile palette below.
func paletteTop() float64 {
	return float64(cfg.C.Height) / 2
}

// UpdateEditor runs the in-game level editor: the panel slide, palette
// selection, tile property edits and world placement. The world keeps
// simulating underneath so edits are visible immediately.
func UpdateEditor(e *ecs.ECS) {
	editor, ok := currentEditor(e)
	if !ok {
		return
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if input.ToggleEditor {
		editor.Open = !editor.Open
		target := float32(0)
		if editor.Open {
			target = 1
		}
		editor.Slide = gween.New(float32(editor.PanelOffset), target, float32(cfg.Editor.SlideSeconds), ease.OutQuad)
		if !editor.Open {
			SaveCurrentEditorSettings(editor)
		}
	}
	if editor.Slide != nil {
		v, done := editor.Slide.Update(float32(frameTime()))
		editor.PanelOffset = float64(v)
		if done {
			editor.Slide = nil
		}
	}
	if !editor.Open {
		return
	}

	if editorPanel == nil || editorPanelECS != e {
		editorPanel = buildEditorPanel(e)
		editorPanelECS = e
	}

	// Layer visibility from the keyboard mirrors the panel buttons.
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		editor.ShowBackground = !editor.ShowBackground
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		editor.ShowObject = !editor.ShowObject
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		editor.ShowOverlay = !editor.ShowOverlay
	}
	if editor.EditingTile && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		editor.EditingTile = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		saveEditor(e)
	}

	if editor.PanelOffset >= 1 {
		refreshPanelLabels(e, editor)
		editorPanel.Update()
	}

	if input.MouseX >= panelLeft(editor) {
		handlePalette(e, editor, input)
	} else {
		handleWorldEdit(e, editor, input)
	}
}

// handlePalette maps clicks in the lower panel half to tile selection, the
// wheel to palette zoom and the move keys to palette panning. While the
// property sheet is open the clicks edit the selected tile instead.
func handlePalette(e *ecs.ECS, editor *components.EditorData, input *components.InputData) {
	if editor.EditingTile {
		handleTileSheet(e, editor, input)
		return
	}

	level, _ := currentLevel(e)
	ts, ok := level.Level.Registry().Get(editor.SelectedTileset)
	if !ok {
		return
	}

	if input.Wheel != 0 {
		editor.Zoom += input.Wheel * cfg.Editor.ScrollPerTick
		editor.Zoom = math.Max(cfg.Editor.ZoomMin, math.Min(cfg.Editor.ZoomMax, editor.Zoom))
	}
	panPalette(editor, ts, input)

	if !input.Click || input.MouseY < paletteTop() {
		return
	}

	px := input.MouseX - panelLeft(editor) + editor.PanX
	py := input.MouseY - paletteTop() + editor.PanY
	cols := paletteColumns(editor)
	col := int(px / editor.Zoom)
	if col >= cols {
		return
	}
	idx := int(py/editor.Zoom)*cols + col
	if idx < 0 || idx >= len(ts.Tiles) {
		return
	}

	if editor.SelectedTile == idx {
		// A second click on the selection opens the property sheet.
		editor.EditingTile = !editor.EditingTile
	} else {
		editor.SelectedTile = idx
		editor.EditingTile = false
	}
}

// panPalette scrolls the palette with the intent axes while the cursor is
// over the panel, clamped so the grid never leaves the view.
func panPalette(editor *components.EditorData, ts *tilemap.Tileset, input *components.InputData) {
	step := frameTime() * tilemap.TileSize * cfg.Editor.PanTilesPerSec
	editor.PanX += input.Horizontal * step
	editor.PanY += input.Vertical * step

	cols := paletteColumns(editor)
	rows := (len(ts.Tiles) + cols - 1) / cols
	maxX := float64(cols)*editor.Zoom - panelWidth()
	maxY := float64(rows)*editor.Zoom - (float64(cfg.C.Height) - paletteTop())
	editor.PanX = math.Max(0, math.Min(math.Max(0, maxX), editor.PanX))
	editor.PanY = math.Max(0, math.Min(math.Max(0, maxY), editor.PanY))
}

// handleTileSheet edits the selected tile through the magnified property
// sheet: the eight outer cells cycle the matching auto-rule slot, the center
// cell toggles individual collision sub-cells.
func handleTileSheet(e *ecs.ECS, editor *components.EditorData, input *components.InputData) {
	if !input.Click {
		return
	}
	def, ok := selectedTileDef(e)
	if !ok {
		return
	}

	cell := panelWidth() / tilemap.Sections
	cx := int((input.MouseX - panelLeft(editor)) / cell)
	cy := int((input.MouseY - paletteTop()) / cell)
	if cx < 0 || cx >= tilemap.Sections || cy < 0 || cy >= tilemap.Sections {
		return
	}

	if cx == 1 && cy == 1 {
		if def.Collision == nil {
			return
		}
		sub := cell / tilemap.Sections
		sc := int((input.MouseX - panelLeft(editor) - cell) / sub)
		sr := int((input.MouseY - paletteTop() - cell) / sub)
		if sr < 0 || sr >= tilemap.Sections || sc < 0 || sc >= tilemap.Sections {
			return
		}
		def.Collision[sr][sc] = !def.Collision[sr][sc]
		markDirty(e)
		return
	}

	if def.AutoRule == nil {
		return
	}
	if slot := ruleSlot(def.AutoRule, cx, cy); slot != nil {
		cycleSlot(slot)
		markDirty(e)
	}
}

// ruleSlot maps a sheet cell to the auto-rule slot it edits; the center cell
// belongs to the collision matrix and has no slot.
func ruleSlot(r *tilemap.AutoRule, cx, cy int) **bool {
	switch {
	case cx == 0 && cy == 0:
		return &r.TopLeft
	case cx == 1 && cy == 0:
		return &r.Top
	case cx == 2 && cy == 0:
		return &r.TopRight
	case cx == 2 && cy == 1:
		return &r.Right
	case cx == 2 && cy == 2:
		return &r.BottomRight
	case cx == 1 && cy == 2:
		return &r.Bottom
	case cx == 0 && cy == 2:
		return &r.BottomLeft
	case cx == 0 && cy == 1:
		return &r.Left
	}
	return nil
}

// cycleSlot advances one tri-state rule slot: present, absent, wildcard.
func cycleSlot(slot **bool) {
	switch {
	case *slot == nil:
		v := true
		*slot = &v
	case **slot:
		v := false
		*slot = &v
	default:
		*slot = nil
	}
}

func paletteColumns(editor *components.EditorData) int {
	cols := int(panelWidth() / editor.Zoom)
	if cols < 1 {
		cols = 1
	}
	return cols
}

// handleWorldEdit paints or clears the cell under the cursor. Holding enter
// suppresses auto-tile propagation for exact manual placement.
func handleWorldEdit(e *ecs.ECS, editor *components.EditorData, input *components.InputData) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	level, _ := currentLevel(e)

	col := int(math.Floor((input.MouseX + camera.Position.X) / tilemap.TileSize))
	row := int(math.Floor((input.MouseY + camera.Position.Y) / tilemap.TileSize))
	if !level.Level.InBounds(row, col) {
		return
	}

	switch {
	case input.MouseDown && editor.SelectedTile >= 0:
		// With auto-tiling on, the placed cell itself resolves against its
		// surroundings first; the raw selection is only the fallback when no
		// rule-bearing candidate matches.
		ptr := tilemap.Pointer{Tileset: editor.SelectedTileset, Index: editor.SelectedTile}
		if !input.Enter {
			def := level.Level.Registry().Tile(ptr)
			if match, ok := level.Level.BestMatch(row, col, def, editor.SelectedTileset); ok {
				ptr = match
			}
		}
		level.Level.Place(row, col, &ptr, !input.Enter)
		editor.Dirty = true
	case input.RightDown:
		level.Level.Place(row, col, nil, !input.Enter)
		editor.Dirty = true
	}
}

// selectedTileDef resolves the palette selection to its mutable definition.
func selectedTileDef(e *ecs.ECS) (*tilemap.TileDef, bool) {
	editor, ok := currentEditor(e)
	if !ok || editor.SelectedTile < 0 {
		return nil, false
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return nil, false
	}
	ts, ok := level.Level.Registry().Get(editor.SelectedTileset)
	if !ok || editor.SelectedTile >= len(ts.Tiles) {
		return nil, false
	}
	return &ts.Tiles[editor.SelectedTile], true
}

func buildEditorPanel(e *ecs.ECS) *ui.EditorPanel {
	panel := ui.NewEditorPanel()

	panel.OnSave = func() { saveEditor(e) }
	panel.OnCut = func() {
		editor, _ := currentEditor(e)
		level, _ := currentLevel(e)
		ts, ok := level.Level.Registry().Get(editor.SelectedTileset)
		if !ok {
			return
		}
		ts.Cut(assets.TilesetImage(ts.ID))
		editor.Dirty = true
	}
	panel.OnNextTileset = func() {
		editor, _ := currentEditor(e)
		level, _ := currentLevel(e)
		ids := level.Level.Registry().IDs()
		for i, id := range ids {
			if id == editor.SelectedTileset {
				editor.SelectedTileset = ids[(i+1)%len(ids)]
				editor.SelectedTile = -1
				editor.EditingTile = false
				return
			}
		}
		if len(ids) > 0 {
			editor.SelectedTileset = ids[0]
		}
	}
	panel.OnResizeRows = func(delta int) { resizeLevel(e, delta, 0) }
	panel.OnResizeCols = func(delta int) { resizeLevel(e, 0, delta) }
	panel.OnToggleLayer = func(index int) {
		editor, _ := currentEditor(e)
		switch index {
		case 0:
			editor.ShowBackground = !editor.ShowBackground
		case 1:
			editor.ShowObject = !editor.ShowObject
		case 2:
			editor.ShowOverlay = !editor.ShowOverlay
		}
	}
	panel.OnCycleTileLayer = func() {
		if def, ok := selectedTileDef(e); ok {
			def.Layer = (def.Layer + 1) % 3
			syncLayerCollision(def)
			markDirty(e)
		}
	}
	panel.OnAdjustGroup = func(delta int) {
		def, ok := selectedTileDef(e)
		if !ok {
			return
		}
		if def.Group == nil {
			g := uint8(0)
			def.Group = &g
		} else {
			g := *def.Group + uint8(delta)
			def.Group = &g
		}
		markDirty(e)
	}
	panel.OnClearGroup = func() {
		if def, ok := selectedTileDef(e); ok {
			def.Group = nil
			markDirty(e)
		}
	}
	panel.OnToggleCollision = func() {
		def, ok := selectedTileDef(e)
		if !ok {
			return
		}
		if def.Collision == nil {
			def.Collision = tilemap.FullCollision()
		} else {
			def.Collision = nil
		}
		markDirty(e)
	}
	panel.OnCycleRule = func() {
		def, ok := selectedTileDef(e)
		if !ok {
			return
		}
		def.AutoRule = nextRule(def.AutoRule)
		markDirty(e)
	}
	panel.OnAddTileset = func(id string) {
		if id == "" {
			return
		}
		editor, _ := currentEditor(e)
		level, _ := currentLevel(e)
		ts, err := assets.LoadTileset(id)
		if err != nil {
			editorPanel.SetStatus("load failed: " + err.Error())
			return
		}
		level.Level.Registry().Add(ts)
		editor.SelectedTileset = id
		editor.SelectedTile = -1
	}

	return panel
}

// nextRule cycles a tile's auto rule through solid, empty, wildcard, none.
func nextRule(r *tilemap.AutoRule) *tilemap.AutoRule {
	switch {
	case r == nil:
		return tilemap.SolidRule()
	case ruleIs(r, boolPtrTrue):
		f := false
		return &tilemap.AutoRule{
			TopLeft: &f, Top: &f, TopRight: &f, Right: &f,
			BottomRight: &f, Bottom: &f, BottomLeft: &f, Left: &f,
		}
	case ruleIs(r, boolPtrFalse):
		return &tilemap.AutoRule{}
	default:
		return nil
	}
}

func boolPtrTrue(b *bool) bool  { return b != nil && *b }
func boolPtrFalse(b *bool) bool { return b != nil && !*b }

func ruleIs(r *tilemap.AutoRule, pred func(*bool) bool) bool {
	for _, slot := range []*bool{
		r.TopLeft, r.Top, r.TopRight, r.Right,
		r.BottomRight, r.Bottom, r.BottomLeft, r.Left,
	} {
		if !pred(slot) {
			return false
		}
	}
	return true
}

// syncLayerCollision keeps the matrix consistent with the layer: object
// tiles carry one, background and overlay tiles never do.
func syncLayerCollision(def *tilemap.TileDef) {
	if def.Layer == tilemap.LayerObject {
		if def.Collision == nil {
			def.Collision = tilemap.FullCollision()
		}
	} else {
		def.Collision = nil
	}
}

func markDirty(e *ecs.ECS) {
	if editor, ok := currentEditor(e); ok {
		editor.Dirty = true
	}
}

func resizeLevel(e *ecs.ECS, deltaRows, deltaCols int) {
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}
	rows := level.Level.Rows() + deltaRows
	cols := level.Level.Cols() + deltaCols
	if rows < 1 || cols < 1 {
		return
	}
	level.Level.Resize(rows, cols)
	markDirty(e)
}

// saveEditor writes the level and the selected tileset back to disk and
// persists the editor settings.
func saveEditor(e *ecs.ECS) {
	editor, ok := currentEditor(e)
	if !ok {
		return
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}

	if err := assets.SaveLevel(level.Name, level.Level.Document()); err != nil {
		editorPanel.SetStatus("save failed: " + err.Error())
		return
	}
	if ts, ok := level.Level.Registry().Get(editor.SelectedTileset); ok {
		if err := assets.SaveTileset(ts.ID, ts.Document()); err != nil {
			editorPanel.SetStatus("save failed: " + err.Error())
			return
		}
	}
	SaveCurrentEditorSettings(editor)
	editor.Dirty = false
}

func refreshPanelLabels(e *ecs.ECS, editor *components.EditorData) {
	if def, ok := selectedTileDef(e); ok {
		group := "-"
		if def.Group != nil {
			group = fmt.Sprintf("%d", *def.Group)
		}
		editorPanel.SetTileInfo(fmt.Sprintf("#%d %s g:%s solid:%t rule:%t",
			editor.SelectedTile, def.Layer, group, def.Collision != nil, def.AutoRule != nil))
	} else {
		editorPanel.SetTileInfo("no tile")
	}

	status := editor.SelectedTileset
	if editor.Dirty {
		status += " *"
	}
	editorPanel.SetStatus(status)
}

// DrawEditor renders the grid overlay, the cell cursor, the sliding panel
// and the tile palette.
func DrawEditor(e *ecs.ECS, screen *ebiten.Image) {
	editor, ok := currentEditor(e)
	if !ok || (!editor.Open && editor.PanelOffset <= 0) {
		return
	}
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	level, ok := currentLevel(e)
	if !ok || level.Level == nil {
		return
	}

	if editor.Open {
		drawGrid(screen, level.Level, camera.Position.X, camera.Position.Y)
		drawCursor(e, screen, editor, camera.Position.X, camera.Position.Y)
	}

	px := float32(panelLeft(editor))
	vector.DrawFilledRect(screen, px, 0, float32(panelWidth()), float32(cfg.C.Height),
		cfg.Editor.PanelColor, false)
	if editor.EditingTile {
		drawTileSheet(e, screen, editor, float64(px))
	} else {
		drawPalette(screen, editor, level.Level, float64(px))
	}

	if editor.PanelOffset >= 1 && editorPanel != nil {
		editorPanel.Draw(screen)
	}
}

func drawGrid(screen *ebiten.Image, l *tilemap.Level, camX, camY float64) {
	row0, row1, col0, col1 := visibleCells(l, camX, camY, screen)
	for col := col0; col <= col1+1; col++ {
		x := float32(float64(col)*tilemap.TileSize - camX)
		vector.StrokeLine(screen, x, float32(-camY), x,
			float32(float64(l.Rows())*tilemap.TileSize-camY), 1, cfg.Editor.GridColor, false)
	}
	for row := row0; row <= row1+1; row++ {
		y := float32(float64(row)*tilemap.TileSize - camY)
		vector.StrokeLine(screen, float32(-camX), y,
			float32(float64(l.Cols())*tilemap.TileSize-camX), y, 1, cfg.Editor.GridColor, false)
	}
}

func drawCursor(e *ecs.ECS, screen *ebiten.Image, editor *components.EditorData, camX, camY float64) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	if input.MouseX >= panelLeft(editor) {
		return
	}

	level, _ := currentLevel(e)
	col := int(math.Floor((input.MouseX + camX) / tilemap.TileSize))
	row := int(math.Floor((input.MouseY + camY) / tilemap.TileSize))
	x := float32(float64(col)*tilemap.TileSize - camX)
	y := float32(float64(row)*tilemap.TileSize - camY)
	if !level.Level.InBounds(row, col) {
		vector.DrawFilledRect(screen, x, y,
			tilemap.TileSize, tilemap.TileSize, cfg.Editor.BlockedColor, false)
		return
	}
	vector.StrokeRect(screen, x, y,
		tilemap.TileSize, tilemap.TileSize, 1, cfg.Editor.CursorColor, false)
}

func drawPalette(screen *ebiten.Image, editor *components.EditorData, l *tilemap.Level, panelX float64) {
	ts, ok := l.Registry().Get(editor.SelectedTileset)
	if !ok {
		return
	}

	text.Draw(screen, "tiles: "+ts.ID, fonts.BoardwalkSmall.Get(),
		int(panelX)+4, int(paletteTop())-4, cfg.Editor.CursorColor)

	cols := paletteColumns(editor)
	scale := editor.Zoom / tilemap.TileSize
	for i := range ts.Tiles {
		def := &ts.Tiles[i]
		x := panelX + float64(i%cols)*editor.Zoom - editor.PanX
		y := paletteTop() + float64(i/cols)*editor.Zoom - editor.PanY
		if y+editor.Zoom <= paletteTop() || y >= float64(cfg.C.Height) {
			continue
		}

		sx, sy := int(def.X), int(def.Y)
		src := image.Rect(sx, sy, sx+tilemap.TileSize, sy+tilemap.TileSize)
		img := assets.TilesetImage(ts.ID).SubImage(src).(*ebiten.Image)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)

		if i == editor.SelectedTile {
			vector.StrokeRect(screen, float32(x), float32(y),
				float32(editor.Zoom), float32(editor.Zoom), 1, cfg.Editor.CursorColor, false)
		}
	}
}

// drawTileSheet renders the property sheet: the selected tile magnified in
// the center cell with its collision sub-cells marked, surrounded by its
// eight auto-rule slots. X is present or solid, O absent or passable, ? a
// wildcard slot.
func drawTileSheet(e *ecs.ECS, screen *ebiten.Image, editor *components.EditorData, panelX float64) {
	def, ok := selectedTileDef(e)
	if !ok {
		return
	}

	cell := panelWidth() / tilemap.Sections
	top := paletteTop()
	face := fonts.BoardwalkSmall.Get()

	sx, sy := int(def.X), int(def.Y)
	src := image.Rect(sx, sy, sx+tilemap.TileSize, sy+tilemap.TileSize)
	img := assets.TilesetImage(editor.SelectedTileset).SubImage(src).(*ebiten.Image)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(cell/tilemap.TileSize, cell/tilemap.TileSize)
	drawOp.GeoM.Translate(panelX+cell, top+cell)
	screen.DrawImage(img, drawOp)

	if def.AutoRule != nil {
		for cy := 0; cy < tilemap.Sections; cy++ {
			for cx := 0; cx < tilemap.Sections; cx++ {
				slot := ruleSlot(def.AutoRule, cx, cy)
				if slot == nil {
					continue
				}
				glyph := "?"
				switch {
				case *slot == nil:
				case **slot:
					glyph = "X"
				default:
					glyph = "O"
				}
				text.Draw(screen, glyph, face,
					int(panelX+float64(cx)*cell+cell/2)-2,
					int(top+float64(cy)*cell+cell/2)+3, color.White)
			}
		}
	}

	if def.Collision != nil {
		sub := cell / tilemap.Sections
		for r := 0; r < tilemap.Sections; r++ {
			for c := 0; c < tilemap.Sections; c++ {
				glyph := "O"
				if def.Collision[r][c] {
					glyph = "X"
				}
				text.Draw(screen, glyph, face,
					int(panelX+cell+float64(c)*sub+sub/2)-2,
					int(top+cell+float64(r)*sub+sub/2)+3, color.White)
			}
		}
	}
}
