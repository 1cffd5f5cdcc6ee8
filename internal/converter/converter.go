// Package converter turns a raw input string into a displayable color result.
//
// Conversion is total: invalid input yields a fallback result built from the
// configured default color instead of an error.
package converter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MeKo-Tech/colorconv/internal/color"
)

const (
	// DefaultColor is the background shown when the input is not a color.
	DefaultColor = "#ffd454"
	// DefaultThemeThreshold is the brightness at or above which the light theme is used.
	DefaultThemeThreshold = 0.5

	darkText  = "#000000"
	lightText = "#ffffff"
)

// Theme is the page theme implied by a background's brightness.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Result is the outcome of a single conversion.
type Result struct {
	Valid bool       `json:"valid" yaml:"valid"`
	Kind  color.Kind `json:"kind" yaml:"kind"`
	Input string     `json:"input" yaml:"input"`
	Hex   color.Hex  `json:"hex,omitempty" yaml:"hex,omitempty"`
	RGB   *color.RGB `json:"rgb,omitempty" yaml:"rgb,omitempty"`
	// Color is the representation opposite to the input: rgb() for hex input
	// and hex for rgb() input. Empty for the fallback.
	Color      string  `json:"color" yaml:"color"`
	Background string  `json:"background" yaml:"background"`
	Brightness float64 `json:"brightness" yaml:"brightness"`
	Theme      Theme   `json:"theme" yaml:"theme"`
	TextColor  string  `json:"text_color" yaml:"text_color"`
}

// Config configures a Converter.
type Config struct {
	DefaultColor string
	// ThemeThreshold is nil for DefaultThemeThreshold. Zero is a valid
	// threshold that puts every color on the light theme.
	ThemeThreshold *float64
}

// Threshold returns a ThemeThreshold value for Config.
func Threshold(v float64) *float64 {
	return &v
}

// Converter converts user input into Results.
type Converter struct {
	logger       *slog.Logger
	defaultColor color.Hex
	threshold    float64
	fallback  Result
}

// New creates a Converter. Unset config fields take their defaults.
func New(cfg Config, logger *slog.Logger) (*Converter, error) {
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = DefaultColor
	}
	threshold := DefaultThemeThreshold
	if cfg.ThemeThreshold != nil {
		threshold = *cfg.ThemeThreshold
	}
	if !(threshold >= 0 && threshold <= 1) {
		return nil, fmt.Errorf("theme threshold must be within [0,1], got %v", threshold)
	}

	def, err := color.Parse(cfg.DefaultColor)
	if err != nil {
		return nil, fmt.Errorf("invalid default color: %w", err)
	}

	hex := def.Hex()
	c := &Converter{
		logger:       logger,
		defaultColor: hex,
		threshold:    threshold,
	}

	brightness := color.Brightness(def.RGB())
	theme, text := c.theme(brightness)
	c.fallback = Result{
		Kind:       color.KindNone,
		Background: string(hex),
		Brightness: brightness,
		Theme:      theme,
		TextColor:  text,
	}
	return c, nil
}

// Convert parses input and derives the other representation, the background
// and the theme. It never fails; invalid input yields Fallback.
func (c *Converter) Convert(input string) Result {
	input = strings.TrimSpace(input)
	p, err := color.Parse(input)
	if err != nil {
		c.log().Debug("Falling back to default color", "input", input, "error", err)
		res := c.fallback
		res.Input = input
		return res
	}

	rgb := p.RGB()
	hex := p.Hex()
	brightness := color.Brightness(rgb)
	theme, text := c.theme(brightness)

	res := Result{
		Valid:      true,
		Kind:       p.Kind,
		Input:      input,
		Hex:        hex,
		RGB:        &rgb,
		Background: string(hex),
		Brightness: brightness,
		Theme:      theme,
		TextColor:  text,
	}
	switch p.Kind {
	case color.KindHex:
		res.Color = rgb.String()
	case color.KindRGB:
		res.Color = string(hex)
	}
	return res
}

// Config returns the resolved configuration, with the default color in
// canonical hex and the threshold always set.
func (c *Converter) Config() Config {
	return Config{DefaultColor: string(c.defaultColor), ThemeThreshold: Threshold(c.threshold)}
}

// Fallback returns the result used for invalid input.
func (c *Converter) Fallback() Result {
	return c.fallback
}

func (c *Converter) theme(brightness float64) (Theme, string) {
	if brightness >= c.threshold {
		return ThemeLight, darkText
	}
	return ThemeDark, lightText
}

func (c *Converter) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}

var defaultConverter = mustNew(Config{}, nil)

func mustNew(cfg Config, logger *slog.Logger) *Converter {
	c, err := New(cfg, logger)
	if err != nil {
		panic(err)
	}
	return c
}

// Convert converts input with the default configuration.
func Convert(input string) Result {
	return defaultConverter.Convert(input)
}
