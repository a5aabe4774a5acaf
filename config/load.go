package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document mirrors the YAML layout of an override file. Every section is
// pre-filled with the current values so a file only has to name what it changes.
type document struct {
	Window    Config          `yaml:"window"`
	Mob       MobConfig       `yaml:"mob"`
	Animation AnimationConfig `yaml:"animation"`
	Atlas     AtlasConfig     `yaml:"atlas"`
	HealthBar HealthBarConfig `yaml:"healthBar"`
	NameTag   NameTagConfig   `yaml:"nameTag"`
	Camera    CameraConfig    `yaml:"camera"`
	Arena     ArenaConfig     `yaml:"arena"`
	Debug     DebugConfig     `yaml:"debug"`
	UI        UIConfig        `yaml:"ui"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return nil
}

// Load overlays YAML data onto the current configuration. Nothing is applied
// when the data fails to parse or validate.
func Load(data []byte) error {
	doc := document{
		Window:    *C,
		Mob:       Mob,
		Animation: Animation,
		Atlas:     Atlas,
		HealthBar: HealthBar,
		NameTag:   NameTag,
		Camera:    Camera,
		Arena:     Arena,
		Debug:     Debug,
		UI:        UI,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	*C = doc.Window
	Mob = doc.Mob
	Animation = doc.Animation
	Atlas = doc.Atlas
	HealthBar = doc.HealthBar
	NameTag = doc.NameTag
	Camera = doc.Camera
	Arena = doc.Arena
	Debug = doc.Debug
	UI = doc.UI
	return nil
}

func (d *document) validate() error {
	var errs []error
	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", d.Window.Width, d.Window.Height))
	}
	if d.Mob.Health <= 0 {
		errs = append(errs, fmt.Errorf("mob health must be positive, got %v", d.Mob.Health))
	}
	if d.HealthBar.ReferenceWidth <= 0 {
		errs = append(errs, fmt.Errorf("health bar reference width must be positive, got %v", d.HealthBar.ReferenceWidth))
	}
	if d.Animation.FramePeriod <= 0 {
		errs = append(errs, fmt.Errorf("animation frame period must be positive, got %v", d.Animation.FramePeriod))
	}
	if d.Animation.FirstFrame < 0 || d.Animation.FirstFrame > d.Animation.LastFrame {
		errs = append(errs, fmt.Errorf("animation frames out of order: first=%d last=%d", d.Animation.FirstFrame, d.Animation.LastFrame))
	}
	if cells := d.Atlas.Columns * d.Atlas.Rows; d.Animation.LastFrame >= cells {
		errs = append(errs, fmt.Errorf("animation last frame %d outside atlas of %d cells", d.Animation.LastFrame, cells))
	}
	return errors.Join(errs...)
}
