package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// gemojiEntry mirrors one element of gemoji's db/emoji.json.
type gemojiEntry struct {
	Emoji         string   `json:"emoji"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Aliases       []string `json:"aliases"`
	Tags          []string `json:"tags"`
	ImageFilename string   `json:"image_filename,omitempty"`
}

// FileRepository serves records read from a gemoji-format JSON file.
type FileRepository struct {
	imagesRoot string
	records    []Emoji
}

// LoadFile reads path and keeps the file's record order.
func LoadFile(path, imagesRoot string) (*FileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading emoji dataset %s: %w", path, err)
	}

	var entries []gemojiEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing emoji dataset %s: %w", path, err)
	}

	records := make([]Emoji, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		if len(entry.Aliases) == 0 {
			log.Debug().Int("index", i).Str("emoji", entry.Emoji).Msg("Skipping dataset entry without aliases")
			continue
		}
		name := entry.Aliases[0]
		if _, dup := seen[name]; dup {
			log.Warn().Str("name", name).Msg("Duplicate emoji name in dataset, keeping the first")
			continue
		}
		seen[name] = struct{}{}

		imageFilename := entry.ImageFilename
		if imageFilename == "" {
			imageFilename = imageFilenameFor(entry.Emoji)
		}
		records = append(records, Emoji{
			Name:          name,
			Aliases:       entry.Aliases,
			Tags:          entry.Tags,
			Raw:           entry.Emoji,
			ImageFilename: imageFilename,
		})
	}

	log.Debug().Str("path", path).Int("records", len(records)).Msg("Loaded emoji dataset file")
	return &FileRepository{imagesRoot: imagesRoot, records: records}, nil
}

// All returns every record in file order.
func (r *FileRepository) All() []Emoji { return r.records }

// ImagesRoot returns the directory holding the "emoji" image folder.
func (r *FileRepository) ImagesRoot() string { return r.imagesRoot }

// Fixture is an in-memory repository, mostly for tests.
type Fixture struct {
	Root    string
	Records []Emoji
}

// All returns the fixture records as given.
func (f Fixture) All() []Emoji { return f.Records }

// ImagesRoot returns f.Root.
func (f Fixture) ImagesRoot() string { return f.Root }
