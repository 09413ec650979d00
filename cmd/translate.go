package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cs2-localizer/feature/translate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrRunFailed is returned when at least one category failed.
var ErrRunFailed = errors.New("translation finished with failures")

var (
	refreshFlag bool
	inputFlag   string
	outputFlag  string
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [category...]",
	Short: "Translate export files into Chinese",
	Long: `Translates every category (agents, keychains, music_kits, skins, stickers) found in the
input directory, or only the categories given as arguments. Translated files are written to the
output directory with the same names.`,
	Example: `  cs2-localizer translate
  cs2-localizer translate skins stickers --refresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := translate.SelectCategories(args)
		if err != nil {
			return err
		}

		a, err := bootstrap(bootstrapOptions{
			refresh:   refreshFlag,
			runLog:    true,
			inputDir:  inputFlag,
			outputDir: outputFlag,
		})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		printBanner(a.cfg.App.InputDir, a.cfg.App.OutputDir, cats)

		summary := a.service().Run(cmd.Context(), cats)
		printSummary(summary)

		a.logger.Info("Translation finished",
			zap.String("run_id", summary.RunID),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("total", summary.Total),
			zap.Duration("elapsed", summary.Elapsed),
		)

		if !summary.Success() {
			return fmt.Errorf("%w: %d/%d categories succeeded", ErrRunFailed, summary.Succeeded, summary.Total)
		}
		return nil
	},
}

func printBanner(inputDir, outputDir string, cats []translate.Category) {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}

	fmt.Println("==============================================")
	fmt.Println(" CS2 item localizer (EN -> zh-CN)")
	fmt.Println("==============================================")
	fmt.Printf("Input:      %s\n", inputDir)
	fmt.Printf("Output:     %s\n", outputDir)
	fmt.Printf("Categories: %s\n\n", strings.Join(names, ", "))
}

func printSummary(summary translate.Summary) {
	fmt.Println("\n=== Translation Summary ===")
	for _, r := range summary.Reports {
		status := "OK"
		if !r.Success() {
			status = "FAILED"
		}
		fmt.Printf("%-16s %-7s %d/%d translated (%s)\n", r.Label, status, r.Translated(), r.Total(), r.Duration.Round(time.Millisecond))

		for _, f := range r.Files {
			switch {
			case f.Skipped:
				fmt.Printf("  - %s: not found\n", f.Input)
			case f.Err != nil:
				fmt.Printf("  - %s: %v\n", f.Input, f.Err)
			default:
				fmt.Printf("  - %s -> %s (%d/%d)\n", f.Input, f.Output, f.Stats.Translated, f.Stats.Total)
			}
		}
		switch {
		case r.Err == nil:
		case translate.IsInputError(r.Err):
			fmt.Printf("  ! %v (check the input directory)\n", r.Err)
		case errors.Is(r.Err, translate.ErrDatasetUnavailable):
			fmt.Printf("  ! %v (check network access or run with --refresh later)\n", r.Err)
		default:
			fmt.Printf("  ! %v\n", r.Err)
		}
	}

	fmt.Printf("\nSucceeded: %d/%d\n", summary.Succeeded, summary.Total)
	fmt.Printf("Elapsed:   %s\n", summary.Elapsed.Round(time.Millisecond))
	fmt.Printf("Run ID:    %s\n", summary.RunID)
}

func init() {
	RootCmd.AddCommand(translateCmd)

	translateCmd.Flags().BoolVar(&refreshFlag, "refresh", false, "Download reference datasets even when cached")
	translateCmd.Flags().StringVar(&inputFlag, "input", "", "Input directory (overrides APP_INPUT_DIR)")
	translateCmd.Flags().StringVar(&outputFlag, "output", "", "Output directory (overrides APP_OUTPUT_DIR)")
}
