package cmd

import (
	"fmt"

	"github.com/benmax/navstack/internal/logging"
	"github.com/benmax/navstack/internal/tui"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the interactive navigation demo",
	Long: `Launch the TUI demo. Push and pop views, block transitions, request
a deferred root replacement, and capture gesture snapshots while the status
bar shows the derived transition state after every mutation.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	logger.Info("starting navigation demo",
		"replace_root_delay", cfg.Nav.ReplaceRootDelay().String(),
		"max_depth", cfg.Nav.MaxDepth)

	app := tui.New(cfg, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}
