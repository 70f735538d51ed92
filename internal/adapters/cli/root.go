package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "railplan",
		Short: "Railplan CLI - Plan train production across levels",
		Long: `Railplan CLI manages a leveled production plan: what each train
gathers, what each factory produces and which orders get fed, level by level.

Examples:
  railplan plan show
  railplan plan inventory --level 3
  railplan job create --resource steel --amount 80 --level 4
  railplan step rewind --step 7c0b8f2a
  railplan level remove --level 2
  railplan order deliver --order bridge --resource coal --amount 30`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/railplan)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewPlanCommand())
	rootCmd.AddCommand(NewLevelCommand())
	rootCmd.AddCommand(NewStepCommand())
	rootCmd.AddCommand(NewJobCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewOrderCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
