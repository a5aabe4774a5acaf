package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order
const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// MobConfig contains the defaults every spawned mob starts with
type MobConfig struct {
	Name       string  `yaml:"name"`
	Health     float64 `yaml:"health"`
	Scale      float64 `yaml:"scale"`
	Z          float64 `yaml:"z"`
	DamageStep float64 `yaml:"damageStep"` // Health removed per damage request

	// Hit box in world units, centered on the mob origin
	HitboxWidth  float64 `yaml:"hitboxWidth"`
	HitboxHeight float64 `yaml:"hitboxHeight"`

	// Damage flash
	FlashDuration float32 `yaml:"flashDuration"` // seconds
}

// AnimationConfig contains the sprite animation defaults
type AnimationConfig struct {
	FirstFrame  int           `yaml:"firstFrame"`
	LastFrame   int           `yaml:"lastFrame"`
	FramePeriod time.Duration `yaml:"framePeriod"`
}

// AtlasConfig describes the grid layout of the mob sprite sheet
type AtlasConfig struct {
	SheetPath  string `yaml:"sheetPath"`
	CellWidth  int    `yaml:"cellWidth"`
	CellHeight int    `yaml:"cellHeight"`
	Columns    int    `yaml:"columns"`
	Rows       int    `yaml:"rows"`
}

// HealthBarConfig contains the health bar overlay layout.
// Offsets are in the mob's local (unscaled) units.
type HealthBarConfig struct {
	ReferenceWidth float64    `yaml:"referenceWidth"`
	Height         float64    `yaml:"height"`
	OffsetX        float64    `yaml:"offsetX"`
	OffsetY        float64    `yaml:"offsetY"`
	FillZ          float64    `yaml:"fillZ"`
	BgColor        color.RGBA `yaml:"-"`
	FgColor        color.RGBA `yaml:"-"`
}

// NameTagConfig contains the name tag layout
type NameTagConfig struct {
	OffsetX float64    `yaml:"offsetX"`
	OffsetY float64    `yaml:"offsetY"`
	Color   color.RGBA `yaml:"-"`
}

// CameraConfig contains the main camera defaults
type CameraConfig struct {
	StartX float64 `yaml:"startX"`
	StartY float64 `yaml:"startY"`
}

// ArenaConfig bounds the collision space used for picking mobs.
// The space is centered on the world origin.
type ArenaConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	CellWidth  int `yaml:"cellWidth"`
	CellHeight int `yaml:"cellHeight"`
}

// DebugConfig contains debug options
type DebugConfig struct {
	ShowHitboxes bool   `yaml:"showHitboxes"`
	LogLevel     string `yaml:"logLevel"`
}

// UIConfig contains the diagnostics overlay configuration
type UIConfig struct {
	FontSize    float64    `yaml:"fontSize"`
	Padding     int        `yaml:"padding"`
	PanelColor  color.RGBA `yaml:"-"`
	TextColor   color.RGBA `yaml:"-"`
	HelpText    string     `yaml:"helpText"`
	ShowOverlay bool       `yaml:"showOverlay"`
	NameTagSize float64    `yaml:"nameTagSize"`
}

// Global configuration instances
var C *Config
var Mob MobConfig
var Animation AnimationConfig
var Atlas AtlasConfig
var HealthBar HealthBarConfig
var NameTag NameTagConfig
var Camera CameraConfig
var Arena ArenaConfig
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 40, G: 44, B: 52, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "mobspawn",
	}

	Mob = MobConfig{
		Name:          "Orc",
		Health:        100,
		Scale:         6,
		Z:             6,
		DamageStep:    25,
		HitboxWidth:   60,
		HitboxHeight:  80,
		FlashDuration: 0.3,
	}

	Animation = AnimationConfig{
		FirstFrame:  1,
		LastFrame:   5,
		FramePeriod: 100 * time.Millisecond,
	}

	Atlas = AtlasConfig{
		SheetPath:  "orc/orc.png",
		CellWidth:  100,
		CellHeight: 100,
		Columns:    6,
		Rows:       1,
	}

	HealthBar = HealthBarConfig{
		ReferenceWidth: 100,
		Height:         10,
		OffsetX:        0,
		OffsetY:        -13,
		FillZ:          1,
		BgColor:        Black,
		FgColor:        Red,
	}

	NameTag = NameTagConfig{
		OffsetX: 0,
		OffsetY: -16,
		Color:   White,
	}

	Camera = CameraConfig{}

	Arena = ArenaConfig{
		Width:      8192,
		Height:     8192,
		CellWidth:  64,
		CellHeight: 64,
	}

	Debug = DebugConfig{
		ShowHitboxes: false,
		LogLevel:     "info",
	}

	UI = UIConfig{
		FontSize:    14,
		Padding:     8,
		PanelColor:  BlackOverlay,
		TextColor:   White,
		HelpText:    "LMB spawn  RMB despawn all  MMB/C count  D damage  X despawn  F12 overlay",
		ShowOverlay: true,
		NameTagSize: 10,
	}
}
