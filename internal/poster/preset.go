package poster

// Preset is a named fixed pixel target for a generated poster.
type Preset string

const (
	PresetStory    Preset = "story"
	PresetSquare   Preset = "square"
	PresetPortrait Preset = "portrait"
)

var presetSizes = map[Preset][2]int{
	PresetStory:    {1080, 1920},
	PresetSquare:   {1080, 1080},
	PresetPortrait: {1080, 1350},
}

// Dimensions returns the pixel size for the preset. Unknown presets fall
// back to story, the most common share target.
func (p Preset) Dimensions() (int, int) {
	if s, ok := presetSizes[p]; ok {
		return s[0], s[1]
	}
	s := presetSizes[PresetStory]
	return s[0], s[1]
}

// Known reports whether p names a real preset.
func (p Preset) Known() bool {
	_, ok := presetSizes[p]
	return ok
}
