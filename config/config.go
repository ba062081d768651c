package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/reel/asset"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/vmath"
)

// ErrInvalid marks a configuration that cannot be played
var ErrInvalid = errors.New("config: invalid")

// Config represents the optional reel.yaml player configuration
type Config struct {
	// Frame sources, at least one is required
	Frames []string     `yaml:"frames,omitempty"`
	GIF    string       `yaml:"gif,omitempty"`
	Sheet  *SheetConfig `yaml:"sheet,omitempty"`

	// FPS is the animation tick rate, RenderFPS the screen refresh rate
	FPS       float64 `yaml:"fps"`
	RenderFPS float64 `yaml:"render_fps"`

	Shape      ShapeConfig `yaml:"shape"`
	Circle     bool        `yaml:"circle,omitempty"`
	Background string      `yaml:"background"`

	OutputDir string     `yaml:"output_dir"`
	MaxFrames int        `yaml:"max_frames,omitempty"`
	Sound     bool       `yaml:"sound,omitempty"`
	MQTT      MQTTConfig `yaml:"mqtt"`
}

// SheetConfig names a sprite sheet and the run of frames to cut from it
type SheetConfig struct {
	Path        string `yaml:"path"`
	asset.Sheet `yaml:",inline"`
}

// ShapeConfig is where the animation is drawn, in target pixels
// For circles W is the diameter and H is ignored
type ShapeConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MQTTConfig configures LED strip streaming
type MQTTConfig struct {
	URL        string        `yaml:"url,omitempty"`
	Username   string        `yaml:"username,omitempty"`
	Password   string        `yaml:"password,omitempty"`
	ClientID   string        `yaml:"client_id"`
	Topic      string        `yaml:"topic"`
	QoS        byte          `yaml:"qos,omitempty"`
	Pixels     int           `yaml:"pixels,omitempty"`
	Brightness float64       `yaml:"brightness"`
	Timeout    time.Duration `yaml:"timeout"`
}

// Defaults returns the configuration used when no file is present
func Defaults() *Config {
	return &Config{
		FPS:        12,
		RenderFPS:  30,
		Shape:      ShapeConfig{W: 32, H: 32},
		Background: "black",
		OutputDir:  "frames",
		MQTT: MQTTConfig{
			ClientID:   "reel",
			Topic:      "reel/frames",
			Brightness: 1,
			Timeout:    2 * time.Second,
		},
	}
}

// Load reads path over the defaults, a missing file yields the defaults
// Unknown keys are rejected so typos do not pass silently
func Load(path string) (*Config, error) {
	cfg := Defaults()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes c as YAML
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// HasSource reports whether any frame source is configured
func (c *Config) HasSource() bool {
	return len(c.Frames) > 0 || c.GIF != "" || (c.Sheet != nil && c.Sheet.Path != "")
}

// Validate checks everything the player needs; all problems are reported together
func (c *Config) Validate() error {
	var errs []error
	if !(c.FPS > 0) {
		errs = append(errs, fmt.Errorf("%w: fps must be positive, got %v", ErrInvalid, c.FPS))
	}
	if !(c.RenderFPS > 0) {
		errs = append(errs, fmt.Errorf("%w: render_fps must be positive, got %v", ErrInvalid, c.RenderFPS))
	}
	if !c.HasSource() {
		errs = append(errs, fmt.Errorf("%w: no frames, gif or sheet configured", ErrInvalid))
	}
	if c.Shape.W <= 0 || (!c.Circle && c.Shape.H <= 0) {
		errs = append(errs, fmt.Errorf("%w: shape size must be positive, got %vx%v", ErrInvalid, c.Shape.W, c.Shape.H))
	}
	if c.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("%w: max_frames must not be negative", ErrInvalid))
	}
	if _, err := render.ParseColor(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("%w: background: %w", ErrInvalid, err))
	}
	return errors.Join(errs...)
}

// ValidateStream adds the checks needed to stream to an LED strip
func (c *Config) ValidateStream() error {
	err := c.Validate()
	var errs []error
	if c.MQTT.URL == "" {
		errs = append(errs, fmt.Errorf("%w: mqtt.url is required", ErrInvalid))
	}
	if c.MQTT.Pixels <= 0 {
		errs = append(errs, fmt.Errorf("%w: mqtt.pixels must be positive", ErrInvalid))
	}
	if c.MQTT.Topic == "" {
		errs = append(errs, fmt.Errorf("%w: mqtt.topic is required", ErrInvalid))
	}
	if c.MQTT.QoS > 2 {
		errs = append(errs, fmt.Errorf("%w: mqtt.qos must be 0, 1 or 2", ErrInvalid))
	}
	return errors.Join(append([]error{err}, errs...)...)
}

// BackgroundColor returns the parsed background colour
func (c *Config) BackgroundColor() (color.Color, error) {
	return render.ParseColor(c.Background)
}

// Rect returns the configured shape as a rectangle
func (c *Config) Rect() vmath.Rect {
	return vmath.R(c.Shape.X, c.Shape.Y, c.Shape.W, c.Shape.H)
}

// CircleShape returns the configured shape as a circle inscribed in the rectangle
func (c *Config) CircleShape() vmath.Circle {
	r := c.Shape.W / 2
	return vmath.Circle{X: c.Shape.X + r, Y: c.Shape.Y + r, R: r}
}

// TickInterval converts FPS to a tick interval
func (c *Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

// RenderInterval converts RenderFPS to a render interval
func (c *Config) RenderInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.RenderFPS)
}
