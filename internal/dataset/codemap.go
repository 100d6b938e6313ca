package dataset

import (
	"sort"
	"strings"

	"github.com/kyokomi/emoji/v2"
	"github.com/rs/zerolog/log"
)

// CodeMapRepository exposes the shortcode table bundled with kyokomi/emoji.
type CodeMapRepository struct {
	imagesRoot string
	records    []Emoji
}

// NewCodeMapRepository builds one record per distinct glyph in emoji.CodeMap().
func NewCodeMapRepository(imagesRoot string) *CodeMapRepository {
	byGlyph := make(map[string][]string)
	for shortCode, glyph := range emoji.CodeMap() {
		alias := strings.Trim(shortCode, ":")
		if alias == "" || glyph == "" {
			continue
		}
		byGlyph[glyph] = append(byGlyph[glyph], alias)
	}

	records := make([]Emoji, 0, len(byGlyph))
	for glyph, aliases := range byGlyph {
		sort.Slice(aliases, func(i, j int) bool {
			if len(aliases[i]) != len(aliases[j]) {
				return len(aliases[i]) < len(aliases[j])
			}
			return aliases[i] < aliases[j]
		})
		records = append(records, Emoji{
			Name:          aliases[0],
			Aliases:       aliases,
			Raw:           glyph,
			ImageFilename: imageFilenameFor(glyph),
		})
	}
	// Map iteration is random; name order keeps output stable between runs.
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })

	log.Debug().Int("records", len(records)).Msg("Loaded emoji code map")
	return &CodeMapRepository{imagesRoot: imagesRoot, records: records}
}

// All returns every record in dataset order.
func (r *CodeMapRepository) All() []Emoji { return r.records }

// ImagesRoot returns the directory holding the "emoji" image folder.
func (r *CodeMapRepository) ImagesRoot() string { return r.imagesRoot }
