package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/brackenfell/tidelands/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorPanel is the ebitenui widget column of the level editor: map and
// tileset actions on top, per-tile property actions below. The tile palette
// itself is drawn by the editor system; this panel only owns the buttons.
type EditorPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnSave            func()
	OnCut             func()
	OnResizeRows      func(delta int)
	OnResizeCols      func(delta int)
	OnToggleLayer     func(index int)
	OnNextTileset     func()
	OnAddTileset      func(id string)
	OnCycleTileLayer  func()
	OnAdjustGroup     func(delta int)
	OnClearGroup      func()
	OnToggleCollision func()
	OnCycleRule       func()

	statusLabel  *widget.Label
	tileLabel    *widget.Label
	tilesetInput *widget.TextInput

	normalFace text.Face
	smallFace  text.Face
}

// NewEditorPanel builds the panel; callbacks must be assigned before the
// first click can land.
func NewEditorPanel() *EditorPanel {
	ep := &EditorPanel{}
	ep.loadFonts()
	ep.buildUI()
	return ep
}

func (ep *EditorPanel) Update() {
	ep.UI.Update()
}

func (ep *EditorPanel) Draw(screen *ebiten.Image) {
	ep.UI.Draw(screen)
}

// SetStatus replaces the one-line status under the buttons.
func (ep *EditorPanel) SetStatus(s string) {
	ep.statusLabel.Label = s
}

// SetTileInfo replaces the selected-tile summary line.
func (ep *EditorPanel) SetTileInfo(s string) {
	ep.tileLabel.Label = s
}

func (ep *EditorPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	ep.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	ep.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   9,
	}
}

func (ep *EditorPanel) buildUI() {
	panelWidth := int(float64(cfg.C.Width) * cfg.Editor.PanelFraction)

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{25, 25, 35, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, cfg.C.Height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	column.AddChild(ep.button("Save", func() { ep.call(ep.OnSave) }))
	column.AddChild(ep.button("Cut Tileset", func() { ep.call(ep.OnCut) }))
	column.AddChild(ep.button("Next Tileset", func() { ep.call(ep.OnNextTileset) }))

	ep.tilesetInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 14)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ep.smallFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder("tileset id"),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(2)),
	)
	addRow := ep.row()
	addRow.AddChild(ep.tilesetInput)
	addRow.AddChild(ep.button("Add", func() {
		if ep.OnAddTileset != nil {
			ep.OnAddTileset(ep.tilesetInput.GetText())
		}
	}))
	column.AddChild(addRow)

	sizeRow := ep.row()
	sizeRow.AddChild(ep.button("R+", func() { ep.callDelta(ep.OnResizeRows, 1) }))
	sizeRow.AddChild(ep.button("R-", func() { ep.callDelta(ep.OnResizeRows, -1) }))
	sizeRow.AddChild(ep.button("C+", func() { ep.callDelta(ep.OnResizeCols, 1) }))
	sizeRow.AddChild(ep.button("C-", func() { ep.callDelta(ep.OnResizeCols, -1) }))
	column.AddChild(sizeRow)

	layerRow := ep.row()
	layerRow.AddChild(ep.button("Bg", func() { ep.callDelta(ep.OnToggleLayer, 0) }))
	layerRow.AddChild(ep.button("Obj", func() { ep.callDelta(ep.OnToggleLayer, 1) }))
	layerRow.AddChild(ep.button("Ovl", func() { ep.callDelta(ep.OnToggleLayer, 2) }))
	column.AddChild(layerRow)

	ep.tileLabel = widget.NewLabel(
		widget.LabelOpts.Text("no tile", &ep.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	column.AddChild(ep.tileLabel)

	tileRow := ep.row()
	tileRow.AddChild(ep.button("Layer", func() { ep.call(ep.OnCycleTileLayer) }))
	tileRow.AddChild(ep.button("G+", func() { ep.callDelta(ep.OnAdjustGroup, 1) }))
	tileRow.AddChild(ep.button("G-", func() { ep.callDelta(ep.OnAdjustGroup, -1) }))
	tileRow.AddChild(ep.button("G0", func() { ep.call(ep.OnClearGroup) }))
	column.AddChild(tileRow)

	ruleRow := ep.row()
	ruleRow.AddChild(ep.button("Solid", func() { ep.call(ep.OnToggleCollision) }))
	ruleRow.AddChild(ep.button("Rule", func() { ep.call(ep.OnCycleRule) }))
	column.AddChild(ruleRow)

	ep.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ep.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 210, 120, 255},
		}),
	)
	column.AddChild(ep.statusLabel)

	rootContainer.AddChild(column)

	ep.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (ep *EditorPanel) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
}

func (ep *EditorPanel) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(30, 14),
		),
		widget.ButtonOpts.Image(ep.buttonImage()),
		widget.ButtonOpts.Text(label, &ep.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(2)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (ep *EditorPanel) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (ep *EditorPanel) call(fn func()) {
	if fn != nil {
		fn()
	}
}

func (ep *EditorPanel) callDelta(fn func(int), delta int) {
	if fn != nil {
		fn(delta)
	}
}
