package terrain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// A ColorScheme tells a renderer how to paint terrain. Colors are CSS hex
// or named colors; the core does not interpret them. Schemes are plain
// values passed to whoever needs them, never process-wide state.
type ColorScheme struct {
	Base      string `json:"base" yaml:"base"`
	Contour   string `json:"contour" yaml:"contour"`
	Highlight string `json:"highlight" yaml:"highlight"`
	Grid      string `json:"grid" yaml:"grid"`
	Text      string `json:"text" yaml:"text"`
	Glow      string `json:"glow" yaml:"glow"`
	Colormap  string `json:"colormap" yaml:"colormap"`
	Dark      bool   `json:"dark" yaml:"dark"`
}

// PresetScheme returns a built-in color scheme by name.
func PresetScheme(name string) (ColorScheme, bool) {
	switch name {
	case "sci-fi":
		return ColorScheme{
			Base:      "#0F1A2F",
			Contour:   "cyan",
			Highlight: "white",
			Grid:      "#1A3A5A",
			Text:      "#FF7F00",
			Glow:      "#00FFFF",
			Colormap:  "plasma",
			Dark:      true,
		}, true
	case "print":
		return ColorScheme{
			Base:      "#FAF0E6",
			Contour:   "#8B4513",
			Highlight: "#A52A2A",
			Grid:      "#87CEEB",
			Text:      "#2F4F4F",
			Glow:      "#FFD700",
			Colormap:  "YlOrBr",
			Dark:      false,
		}, true
	default:
		return ColorScheme{}, false
	}
}

// ParseScheme unmarshals a YAML color scheme. Fields left unset fall back
// to the given base scheme, so a custom scheme only needs to override the
// colors it changes.
func ParseScheme(data []byte, base ColorScheme) (ColorScheme, error) {
	scheme := base
	if err := yaml.Unmarshal(data, &scheme); err != nil {
		return ColorScheme{}, fmt.Errorf("parse color scheme: %w", err)
	}
	return scheme, nil
}
