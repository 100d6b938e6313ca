package app

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/haytac/emoji-filter/internal/alfred"
	"github.com/haytac/emoji-filter/internal/config"
	"github.com/haytac/emoji-filter/internal/dataset"
	"github.com/haytac/emoji-filter/internal/logging"
	"github.com/haytac/emoji-filter/internal/matcher"
	"github.com/haytac/emoji-filter/internal/metrics"
	"github.com/haytac/emoji-filter/pkg/interfaces"
)

// Application holds all dependencies for one invocation.
type Application struct {
	Config  *config.AppConfig
	Repo    interfaces.EmojiRepository
	Metrics *metrics.Recorder
	Options Options
}

// NewApplication validates cfg and opens the configured dataset.
func NewApplication(cfg *config.AppConfig) (*Application, error) {
	format, err := alfred.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	repo, err := OpenRepository(cfg)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:  cfg,
		Repo:    repo,
		Metrics: metrics.NewRecorder(),
		Options: Options{
			IgnoreCase: cfg.IgnoreCase,
			Format:     format,
			Modifier:   cfg.Output.Modifier,
		},
	}, nil
}

// OpenRepository picks the gemoji file when one is configured, else the built-in code map.
func OpenRepository(cfg *config.AppConfig) (interfaces.EmojiRepository, error) {
	if cfg.Dataset.File != "" {
		repo, err := dataset.LoadFile(cfg.Dataset.File, cfg.ImagesRoot)
		if err != nil {
			return nil, fmt.Errorf("loading dataset: %w", err)
		}
		return repo, nil
	}
	return dataset.NewCodeMapRepository(cfg.ImagesRoot), nil
}

// Run filters the dataset with query and writes the items to w.
// Items reach w before metrics are pushed, and the push is bounded by Config.Metrics.Timeout.
func (a *Application) Run(ctx context.Context, query string, w io.Writer) error {
	l := logging.ContextualLogger(map[string]interface{}{"query": query})

	// Buffer so a failure never leaves a partial list on w.
	var out bytes.Buffer
	res, err := Run(ctx, query, a.Repo, a.Options, &out)
	if err == nil {
		_, err = w.Write(out.Bytes())
	}
	a.Metrics.RecordsScanned.Add(float64(res.Scanned))

	status := "ok"
	switch {
	case matcher.IsInvalidPattern(err):
		status = "invalid_pattern"
	case err != nil:
		status = "error"
	default:
		a.Metrics.RecordsMatched.Add(float64(res.Matched))
	}
	a.Metrics.Queries.WithLabelValues(status).Inc()

	timeout := a.Config.Metrics.Timeout
	if timeout <= 0 {
		timeout = metrics.DefaultPushTimeout
	}
	pushCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if pushErr := a.Metrics.Push(pushCtx, a.Config.Metrics.PushgatewayURL, a.Config.Metrics.Job); pushErr != nil {
		l.Warn().Err(pushErr).Msg("Failed to push metrics")
	}

	if err != nil {
		// Execute reports the error on stderr.
		l.Debug().Err(err).Str("status", status).Msg("Filter failed")
		return err
	}
	l.Info().Int("matched", res.Matched).Msg("Filter complete")
	return nil
}
