package app

import (
	"context"
	"io"

	"github.com/haytac/emoji-filter/internal/alfred"
	"github.com/haytac/emoji-filter/internal/dataset"
	"github.com/haytac/emoji-filter/internal/formatter"
	"github.com/haytac/emoji-filter/internal/matcher"
	"github.com/haytac/emoji-filter/pkg/interfaces"
	"github.com/rs/zerolog/log"
)

// Options configures a single filter pass.
type Options struct {
	IgnoreCase bool
	Format     alfred.Format
	Modifier   string
}

// Result summarizes a filter pass.
type Result struct {
	Scanned int
	Matched int
}

// Filter keeps the records accepted by m, in their original order.
func Filter(records []dataset.Emoji, m interfaces.Matcher) []dataset.Emoji {
	var out []dataset.Emoji
	for _, e := range records {
		if m.Match(e) {
			out = append(out, e)
		}
	}
	return out
}

// Run compiles query, filters repo, and writes the items to w.
// An invalid query returns *matcher.InvalidPatternError before anything is written.
func Run(ctx context.Context, query string, repo interfaces.EmojiRepository, opts Options, w io.Writer) (Result, error) {
	m, err := matcher.New(query, matcher.Config{IgnoreCase: opts.IgnoreCase})
	if err != nil {
		return Result{}, err
	}

	records := repo.All()
	matched := Filter(records, m)
	res := Result{Scanned: len(records), Matched: len(matched)}

	f := formatter.NewItemFormatter(repo.ImagesRoot(), opts.Format, opts.Modifier)
	items := make([]alfred.Item, 0, len(matched))
	for _, e := range matched {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		item, err := f.FormatItem(e)
		if err != nil {
			return res, err
		}
		items = append(items, item)
	}

	log.Debug().Str("query", query).Int("scanned", res.Scanned).Int("matched", res.Matched).Msg("Filtered emoji")
	return res, alfred.NewItems(items...).Write(w)
}
