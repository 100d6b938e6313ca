package formatter

import (
	"fmt"

	"github.com/haytac/emoji-filter/internal/alfred"
	"github.com/haytac/emoji-filter/internal/dataset"
	"github.com/rs/zerolog/log"
)

const defaultModifier = "ctrl"

// ItemFormatter turns matching records into launcher items.
type ItemFormatter struct {
	imagesRoot string
	format     alfred.Format
	modifier   string
}

// NewItemFormatter creates an ItemFormatter. An empty modifier means "ctrl".
func NewItemFormatter(imagesRoot string, format alfred.Format, modifier string) *ItemFormatter {
	if modifier == "" {
		modifier = defaultModifier
	}
	return &ItemFormatter{imagesRoot: imagesRoot, format: format, modifier: modifier}
}

// FormatItem produces exactly one item for e.
func (f *ItemFormatter) FormatItem(e dataset.Emoji) (alfred.Item, error) {
	subtitle := Subtitle(e)

	arg, err := alfred.Payload{Unicode: e.Raw, Code: e.Code()}.Encode()
	if err != nil {
		return alfred.Item{}, err
	}

	item := alfred.Item{
		Title:    e.Name,
		Subtitle: subtitle,
		Arg:      arg,
		Icon:     &alfred.Icon{Path: IconPath(f.imagesRoot, e)},
	}

	switch f.format {
	case alfred.FormatStructured:
		item.UID = e.Name
		item.Mods = map[string]alfred.Mod{
			f.modifier: {Arg: e.Code(), Subtitle: CopyDescription(e)},
		}
	case alfred.FormatLegacy:
		item.Mods = map[string]alfred.Mod{
			f.modifier: {Subtitle: subtitle},
		}
	default:
		return alfred.Item{}, fmt.Errorf("unsupported output format %s", f.format)
	}

	log.Debug().Str("name", e.Name).Str("format", f.format.String()).Msg("Formatted item")
	return item, nil
}
