package cli

import (
	"fmt"
	"os"

	"github.com/haytac/emoji-filter/internal/config"
	"github.com/haytac/emoji-filter/internal/logging"
	"github.com/haytac/emoji-filter/internal/matcher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// ConfigEnvVar names the environment variable holding an explicit config file path.
// The launcher passes configuration through the environment; the command takes no flags.
const ConfigEnvVar = config.EnvPrefix + "_CONFIG"

// AppCfg is populated in PersistentPreRunE.
var AppCfg *config.AppConfig

// RootCmd is the emoji-filter command.
var RootCmd = NewRootCmd()

// NewRootCmd builds the root command. Tests build their own instance.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "emoji-filter <regex>",
		Short: "Filter emoji by alias or tag and print launcher items as JSON.",
		Long: `emoji-filter matches a regular expression against every emoji's aliases and tags
and prints the matches as script filter items on stdout. The argument is taken
verbatim, so queries such as "-1" or "--" are patterns, not flags.

The built-in shortcode table has aliases only; set dataset.file to a gemoji
emoji.json to search by tag as well.

Configuration is read from config.yaml (., $HOME/.emoji-filter, /etc/emoji-filter),
from the file named by ` + ConfigEnvVar + `, and from EMOJI_FILTER_* variables.`,
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loadedCfg, err := config.LoadConfig(os.Getenv(ConfigEnvVar))
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			AppCfg = loadedCfg

			logging.Setup(AppCfg.Log)
			return nil
		},
		RunE: runFilter,
	}
}

// Execute runs RootCmd and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if matcher.IsInvalidPattern(err) {
			os.Exit(2)
		}
		log.Debug().Err(err).Msg("CLI execution failed")
		os.Exit(1)
	}
}
