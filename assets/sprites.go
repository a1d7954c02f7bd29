package assets

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameSpan is a run of animation frames and how long one cycle takes.
type FrameSpan struct {
	StartFrame      int     `json:"start_frame"`
	NumberOfFrames  int     `json:"number_of_frames"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type spriteMeta struct {
	Up     FrameSpan    `json:"up"`
	Down   FrameSpan    `json:"down"`
	Side   FrameSpan    `json:"side"`
	Frames [][2]float64 `json:"frames"`
	FrameW float64      `json:"frame_w"`
	FrameH float64      `json:"frame_h"`
}

// Sprite is a directional character sheet: one frame list plus up/down/side
// spans into it. The side span is mirrored for the missing facing.
type Sprite struct {
	Sheet  *ebiten.Image
	Up     FrameSpan
	Down   FrameSpan
	Side   FrameSpan
	Frames [][2]float64
	FrameW float64
	FrameH float64
}

// LoadSprite loads a sprite sheet and its metadata by name.
func LoadSprite(name string) (*Sprite, error) {
	metaPath := fmt.Sprintf("sprites/%s.png.meta.json", name)
	data, err := readFile(metaPath)
	if err != nil {
		return nil, fmt.Errorf("load sprite meta %s: %w", metaPath, err)
	}

	var meta spriteMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decode sprite meta %s: %w", metaPath, err)
	}

	return &Sprite{
		Sheet:  MustLoadImage(fmt.Sprintf("sprites/%s.png", name)),
		Up:     meta.Up,
		Down:   meta.Down,
		Side:   meta.Side,
		Frames: meta.Frames,
		FrameW: meta.FrameW,
		FrameH: meta.FrameH,
	}, nil
}

// MustLoadSprite is LoadSprite for embedded sprites that must exist.
func MustLoadSprite(name string) *Sprite {
	sprite, err := LoadSprite(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to load sprite %s: %v", name, err))
	}
	return sprite
}
