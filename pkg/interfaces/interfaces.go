package interfaces

import (
	"github.com/haytac/emoji-filter/internal/dataset"
)

// EmojiRepository is the read-only emoji dataset.
type EmojiRepository interface {
	// All returns every record in the dataset's own order.
	All() []dataset.Emoji
	// ImagesRoot is the directory that holds the "emoji" image folder.
	ImagesRoot() string
}

// Matcher decides whether a record belongs in the result list.
type Matcher interface {
	Match(e dataset.Emoji) bool
}
