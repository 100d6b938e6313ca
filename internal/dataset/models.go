package dataset

import (
	"fmt"
	"strings"
)

// Emoji is one read-only entry of the emoji dataset.
type Emoji struct {
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases"`
	Tags          []string `json:"tags"`
	Raw           string   `json:"emoji"`          // literal glyph
	ImageFilename string   `json:"image_filename"` // relative to <images_root>/emoji
}

// Code returns the ":name:" shorthand.
func (e Emoji) Code() string {
	return ":" + e.Name + ":"
}

// imageFilenameFor derives the gemoji-style file name from the glyph's code points.
func imageFilenameFor(raw string) string {
	var parts []string
	for _, r := range raw {
		if r == 0xfe0f {
			continue
		}
		parts = append(parts, fmt.Sprintf("%x", r))
	}
	if len(parts) == 0 {
		for _, r := range raw {
			parts = append(parts, fmt.Sprintf("%x", r))
		}
	}
	return "unicode/" + strings.Join(parts, "-") + ".png"
}
