package components

import "github.com/yohamta/donburi"

// InputData is the frame's polled input, already mapped to virtual screen
// coordinates and intent axes.
type InputData struct {
	Horizontal   float64 // -1, 0, 1
	Vertical     float64 // -1, 0, 1
	MouseX       float64 // virtual screen space
	MouseY       float64
	Wheel        float64
	Click        bool // left button pressed this frame
	MouseDown    bool // left button held
	RightDown    bool // right button held
	Enter        bool // held: editor places without auto-tiling
	ToggleEditor bool
}

var Input = donburi.NewComponentType[InputData]()
