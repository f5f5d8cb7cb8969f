package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cmmoran/javagen/pkg/generate"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	options := &generate.Options{}

	// generateCmd represents the javagen generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate java sources",
		Long:  "Generate Java source files from a YAML manifest",
		RunE: func(c *cobra.Command, args []string) error {
			return generate.Run(options)
		},
	}
	generateCmd.PersistentFlags().StringVarP(&options.Manifest, "manifest", "m", "javagen.yaml", "manifest describing the types to generate")
	generateCmd.PersistentFlags().StringVarP(&options.OutDir, "output-directory", "o", "src", "root directory for generated sources")
	generateCmd.PersistentFlags().BoolVar(&options.DryRun, "dry-run", false, "render generated sources to stdout instead of writing files")

	return generateCmd
}
