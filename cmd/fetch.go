package cmd

import (
	"fmt"
	"time"

	"cs2-localizer/core/dataset"
	"cs2-localizer/feature/translate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fetchConcurrency int

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch [category...]",
	Short: "Download reference datasets into the cache",
	Long:  `Downloads the zh-CN reference datasets of every category (or the given ones) in parallel and refreshes the cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := translate.SelectCategories(args)
		if err != nil {
			return err
		}

		a, err := bootstrap(bootstrapOptions{refresh: true})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		start := time.Now()
		results := dataset.WarmAll(cmd.Context(), a.loader, translate.Datasets(cats), fetchConcurrency)

		var failed int
		fmt.Println("\n=== Dataset Cache ===")
		for _, r := range results {
			if r.Err != nil {
				failed++
				a.logger.Error("Dataset download failed", zap.String("dataset", r.Dataset), zap.Error(r.Err))
				fmt.Printf("%-18s FAILED  %v\n", r.Dataset, r.Err)
				continue
			}
			fmt.Printf("%-18s OK      %d records (%s)\n", r.Dataset, r.Records, r.Duration.Round(time.Millisecond))
		}
		fmt.Printf("Elapsed: %s\n", time.Since(start).Round(time.Millisecond))

		if failed > 0 {
			return fmt.Errorf("%d of %d dataset downloads failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().IntVar(&fetchConcurrency, "concurrency", 5, "Maximum parallel downloads")
}
