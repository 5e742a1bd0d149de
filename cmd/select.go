package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/quizbank"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Pick the next question set for a topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		bank, err := loadBank(e.cfg)
		if err != nil {
			return err
		}

		set := e.svc.SelectQuestions(cmd.Context(), quizbank.PoolForTopic(bank, topic), topic, e.cfg.SetSize)
		if len(set) == 0 {
			fmt.Fprintf(e.out, "No questions available for topic %q.\n", topic)
			return nil
		}

		fmt.Fprintf(e.out, "%-4s  %-24s  %-12s  %s\n", "#", "ID", "Difficulty", "Stem")
		fmt.Fprintln(e.out, strings.Repeat("─", 80))
		for i, q := range set {
			fmt.Fprintf(e.out, "%-4d  %-24s  %-12s  %s\n", i+1, q.ID, q.Difficulty, truncate(q.Stem, 36))
		}
		fmt.Fprintf(e.out, "\n%d questions\n", len(set))
		return nil
	},
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func init() {
	selectCmd.Flags().StringP("topic", "t", "", "Topic ID (required)")
	selectCmd.Flags().IntP("size", "n", 0, "Questions per set (default from config, 10)")
	_ = selectCmd.MarkFlagRequired("topic")
}
