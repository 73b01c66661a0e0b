package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/benmax/navstack/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View navstack configuration",
	Long: `View navstack configuration.

Without arguments, displays the effective configuration after defaults,
config file, and NAVSTACK_* environment variables are merged.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Println("Navigation:")
	fmt.Printf("  nav.replace_root_delay_ms: %d\n", cfg.Nav.ReplaceRootDelayMs)
	fmt.Printf("  nav.max_depth:             %d (0 = unlimited)\n", cfg.Nav.MaxDepth)
	fmt.Printf("  nav.default_animation:     %s\n", cfg.Nav.DefaultAnimation)
	fmt.Printf("  nav.default_gesture:       %s\n", cfg.Nav.DefaultGesture)
	fmt.Printf("  nav.reject_duplicate_top:  %t\n", cfg.Nav.RejectDuplicateTop)
	fmt.Println()
	fmt.Println("TUI:")
	fmt.Printf("  tui.show_status_bar:     %t\n", cfg.TUI.ShowStatusBar)
	fmt.Printf("  tui.max_visible_entries: %d (0 = unlimited)\n", cfg.TUI.MaxVisibleEntries)
	fmt.Println()
	fmt.Println("Logging:")
	fmt.Printf("  logging.level: %s\n", cfg.Logging.Level)
	fmt.Printf("  logging.dir:   %s\n", cfg.Logging.Dir)

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("\nConfig file: %s\n", used)
	} else {
		fmt.Println("\nNo config file loaded (using defaults)")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Println(used)
		return nil
	}
	fmt.Println(filepath.Join(config.ConfigDir(), "config.yaml"))
	return nil
}
