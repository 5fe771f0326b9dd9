// Package main provides the CLI entry point for karuta-convert.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/karuta-go/pkg/karuta"
	"github.com/ukaji3/karuta-go/pkg/karuta/output"
	"go.uber.org/zap"
)

type loggerFactory func(verbose bool) (*zap.Logger, error)

type flags struct {
	inputPath  string
	outputPath string
	sheet      string
	cardRange  string
	preview    int
	verbose    bool
}

func main() {
	if err := newRootCmd(newLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(newLogger loggerFactory) *cobra.Command {
	var fl flags

	rootCmd := &cobra.Command{
		Use:   "karuta-convert",
		Short: "Convert a karuta card spreadsheet to JSON",
		Long: `karuta-convert reads the card rows of an Excel workbook
(level, initial, content) and writes them as a JSON card deck.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(fl.verbose)
			if err != nil {
				return reportFailure(cmd, fmt.Errorf("failed to create logger: %w", err))
			}
			defer logger.Sync()

			if err := run(cmd, fl, logger); err != nil {
				return reportFailure(cmd, err)
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&fl.inputPath, "input", "i", karuta.DefaultInputPath, "Input workbook path")
	rootCmd.Flags().StringVarP(&fl.outputPath, "output", "o", karuta.DefaultOutputPath, "Output JSON path")
	rootCmd.Flags().StringVar(&fl.sheet, "sheet", "", "Sheet to read (default: active sheet)")
	rootCmd.Flags().StringVar(&fl.cardRange, "range", karuta.DefaultOptions().Range, "Card range (level, initial, content columns)")
	rootCmd.Flags().IntVar(&fl.preview, "preview", karuta.DefaultPreview, "Number of cards to preview after conversion")
	rootCmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

// reportFailure prints the failure line; errors are silenced on the root command.
func reportFailure(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.OutOrStdout(), "\n✗ conversion failed: %v\n", err)
	return err
}

func run(cmd *cobra.Command, fl flags, logger *zap.Logger) error {
	opts := karuta.Options{
		Sheet:  fl.sheet,
		Range:  fl.cardRange,
		Logger: logger,
	}

	result, err := karuta.Convert(fl.inputPath, fl.outputPath, opts)
	if err != nil {
		logger.Error("Conversion failed", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	if fl.preview > 0 {
		fmt.Fprintf(out, "\n=== Preview (first %d cards) ===\n", fl.preview)
		if err := output.WritePreview(out, result.Cards, fl.preview); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "\n✓ converted %d cards to %s\n", len(result.Cards), result.OutputPath)
	return nil
}
