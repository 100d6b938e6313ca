package cli

import (
	"fmt"

	"github.com/haytac/emoji-filter/internal/app"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// runFilter is the root command's RunE: one query in, one item list out.
func runFilter(cmd *cobra.Command, args []string) error {
	if AppCfg == nil {
		log.Error().Msg("Configuration (AppCfg) not loaded. PersistentPreRunE might not have run or failed.")
		return fmt.Errorf("critical: AppCfg not loaded")
	}

	application, err := app.NewApplication(AppCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return application.Run(cmd.Context(), args[0], cmd.OutOrStdout())
}
