package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/quizbank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count questions matching filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		var f quizbank.Filter
		f.Topics, _ = cmd.Flags().GetStringSlice("topic")
		f.Chapters, _ = cmd.Flags().GetStringSlice("chapter")
		f.Difficulties, _ = cmd.Flags().GetStringSlice("difficulty")
		f.Types, _ = cmd.Flags().GetStringSlice("type")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintf(output(cmd), "%d of %d questions match\n", f.Count(bank), len(bank))
		return nil
	},
}

func init() {
	bankCountCmd.Flags().StringSlice("topic", nil, "Topic IDs")
	bankCountCmd.Flags().StringSlice("chapter", nil, "Chapter IDs")
	bankCountCmd.Flags().StringSlice("difficulty", nil, "Difficulties")
	bankCountCmd.Flags().StringSlice("type", nil, "Question types")

	bankCmd.AddCommand(bankCountCmd)
}
