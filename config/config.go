package config

import (
	"image/color"

	"github.com/brackenfell/tidelands/tilemap"
)

// Config holds general game configuration
type Config struct {
	Width       int
	Height      int
	WindowScale int
	Title       string
}

// PlayerConfig contains player movement and footprint configuration
type PlayerConfig struct {
	Speed  float64 // world units per second for a full intent vector
	Width  float64 // collision box width
	Height float64 // collision box height
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // exponential follow factor, per second
	SubPixelLevel   float64 // camera positions snap to 1/SubPixelLevel units
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name         string
	Speed        float64
	Width        float64
	Height       float64
	PatrolRange  float64    // world units walked to each side of the spawn
	TintColor    color.RGBA // placeholder tint until each type gets a sheet
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig
}

// EditorConfig contains level editor configuration
type EditorConfig struct {
	PanelFraction  float64 // share of the virtual screen width the panel takes
	SlideSeconds   float64 // panel slide in/out duration
	ZoomMin        float64 // minimum palette cell size, in pixels
	ZoomMax        float64 // maximum palette cell size, in pixels
	ScrollPerTick  float64 // zoom change per mouse wheel tick, in pixels
	PanTilesPerSec float64 // tileset pan speed while previewing
	GridColor      color.RGBA
	CursorColor    color.RGBA
	BlockedColor   color.RGBA
	PanelColor     color.RGBA
	FillerColor    color.RGBA // background shown for empty background cells
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowCollision bool // overlay probed collision hits
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Enemy EnemyConfig
var Editor EditorConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:       tilemap.TileSize * 24,
		Height:      tilemap.TileSize * 16,
		WindowScale: 3,
		Title:       "Tidelands",
	}

	Player = PlayerConfig{
		Speed:  60.0,
		Width:  14.0,
		Height: 12.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 2.0,
		SubPixelLevel:   3.0,
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"CopperOrb": {
				Name:        "CopperOrb",
				Speed:       24.0,
				Width:       12.0,
				Height:      10.0,
				PatrolRange: 48.0,
				TintColor:   color.RGBA{R: 205, G: 127, B: 50, A: 255},
			},
			"PurpleBlob": {
				Name:        "PurpleBlob",
				Speed:       16.0,
				Width:       14.0,
				Height:      12.0,
				PatrolRange: 32.0,
				TintColor:   color.RGBA{R: 150, G: 60, B: 180, A: 255},
			},
			"SeaGoblin": {
				Name:        "SeaGoblin",
				Speed:       36.0,
				Width:       12.0,
				Height:      14.0,
				PatrolRange: 64.0,
				TintColor:   color.RGBA{R: 40, G: 140, B: 110, A: 255},
			},
		},
	}

	Editor = EditorConfig{
		PanelFraction:  1.0 / 3.0,
		SlideSeconds:   0.25,
		ZoomMin:        16.0,
		ZoomMax:        64.0,
		ScrollPerTick:  4.0,
		PanTilesPerSec: 10.0,
		GridColor:      color.RGBA{R: 255, G: 255, B: 255, A: 40},
		CursorColor:    color.RGBA{R: 255, G: 0, B: 0, A: 130},
		BlockedColor:   color.RGBA{R: 255, G: 0, B: 0, A: 255},
		PanelColor:     color.RGBA{R: 20, G: 20, B: 30, A: 230},
		FillerColor:    color.RGBA{R: 150, G: 0, B: 150, A: 255},
	}

	Debug = DebugConfig{
		ShowCollision: false,
	}
}
