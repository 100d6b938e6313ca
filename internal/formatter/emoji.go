package formatter

import (
	"path/filepath"
	"strings"

	"github.com/haytac/emoji-filter/internal/dataset"
)

// Subtitle joins aliases then tags with ", ", dropping every element equal to the name.
// Other duplicates are kept as they are.
func Subtitle(e dataset.Emoji) string {
	etc := make([]string, 0, len(e.Aliases)+len(e.Tags))
	for _, s := range e.Aliases {
		if s != e.Name {
			etc = append(etc, s)
		}
	}
	for _, s := range e.Tags {
		if s != e.Name {
			etc = append(etc, s)
		}
	}
	return strings.Join(etc, ", ")
}

// IconPath resolves the record's image under <imagesRoot>/emoji.
func IconPath(imagesRoot string, e dataset.Emoji) string {
	return filepath.Join(imagesRoot, "emoji", e.ImageFilename)
}

// CopyDescription is the subtitle shown for the copy-code action.
func CopyDescription(e dataset.Emoji) string {
	return "Copy " + e.Code() + " to pasteboard"
}
