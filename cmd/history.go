package cmd

import (
	"fmt"
	"time"

	"cs2-localizer/feature/translate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	historyLimit    int
	historyCategory string
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent translation runs",
	Long:  `Lists recorded translation runs. Requires DATABASE_ENABLED=true.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category := ""
		if historyCategory != "" {
			cat, err := translate.FindCategory(historyCategory)
			if err != nil {
				return err
			}
			category = cat.Name
		}

		a, err := bootstrap(bootstrapOptions{})
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		if missing, err := a.history.MissingColumns(); err == nil && len(missing) > 0 {
			a.logger.Warn("History table is missing columns", zap.Strings("columns", missing))
		}

		runs, err := a.history.Recent(cmd.Context(), category, historyLimit)
		if err != nil {
			return err
		}

		if len(runs) == 0 {
			fmt.Println("No runs recorded.")
			return nil
		}

		fmt.Printf("%-20s %-12s %-16s %-6s %-12s %s\n", "TIME", "CATEGORY", "FILE", "SOURCE", "TRANSLATED", "RESULT")
		for _, r := range runs {
			result := "ok"
			if !r.Success {
				result = "failed: " + r.Error
			}
			fmt.Printf("%-20s %-12s %-16s %-6s %-12s %s\n",
				r.CreatedAt.Local().Format(time.DateTime),
				r.Category,
				r.InputFile,
				r.Source,
				fmt.Sprintf("%d/%d", r.Translated, r.Total),
				result,
			)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().StringVar(&historyCategory, "category", "", "Only show runs of this category")
}
