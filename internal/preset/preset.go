// Package preset defines the fixed MP3 encoding presets and the interactive
// selector that picks one.
package preset

import "strings"

// Preset is an immutable MP3 encoding quality configuration. QualityFlag and
// QualityValue are passed straight through to the transcoder.
type Preset struct {
	Name         string
	QualityFlag  string
	QualityValue string
}

// Label returns the human-readable description shown in menus.
func (p Preset) Label() string {
	switch p.Name {
	case "MP3-v0":
		return "V0 (Variable Bitrate - Highest Quality)"
	case "MP3-v2":
		return "V2 (Variable Bitrate - High Quality, Smaller Size)"
	case "MP3-320kbps-CBR":
		return "320kbps CBR (Constant Bitrate - Maximum Quality, Larger Size)"
	default:
		return p.Name
	}
}

var presets = []Preset{
	{Name: "MP3-v0", QualityFlag: "-q:a", QualityValue: "0"},
	{Name: "MP3-v2", QualityFlag: "-q:a", QualityValue: "2"},
	{Name: "MP3-320kbps-CBR", QualityFlag: "-b:a", QualityValue: "320k"},
}

// All returns the three canonical presets in menu order.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Default returns the preset used when nothing has been configured.
func Default() Preset {
	return presets[0]
}

// ByName resolves a preset case-insensitively by its canonical name.
func ByName(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}
