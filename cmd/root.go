package cmd

import (
	"fmt"
	"os"

	"github.com/quicklayout/movequickly/internal/app"
	"github.com/quicklayout/movequickly/version"
	"github.com/spf13/cobra"
)

var optionsFile string

var rootCmd = &cobra.Command{
	Use:   "movequickly",
	Short: "Fast selection and move tool for IC layouts",
	Long: `Move Quickly is an interactive selection and move tool for IC and
photonic layouts. Click or drag-select instances and shapes, then move
them with the pointer or with typed coordinates, with grid snapping and
angle constraints applied.`,
	Version: version.String(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(optionsFile)
	},
}

func init() {
	rootCmd.Flags().StringVar(&optionsFile, "options", "",
		"path to an editor options file (TOML), reloaded on change")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
