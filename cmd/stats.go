package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/mastery"
	"github.com/abhisek/quizmastery/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		s := e.svc.GetOverallStats(cmd.Context())
		if s.TopicsPracticed == 0 {
			fmt.Fprintln(e.out, "No practice recorded yet.")
			return nil
		}

		last := "never"
		if s.LastPracticedDate != nil {
			last = s.LastPracticedDate.String()
		}

		fmt.Fprintln(e.out, theme.Title.Render("Overall"))
		fmt.Fprintf(e.out, "%-20s %d\n", "Topics practiced", s.TopicsPracticed)
		fmt.Fprintf(e.out, "%-20s %d\n", "Topics mastered", s.TopicsMastered)
		fmt.Fprintf(e.out, "%-20s %d\n", "Chapters started", s.ChaptersInProgress)
		fmt.Fprintf(e.out, "%-20s %d/%d (%d%%)\n", "Questions", s.TotalCorrect, s.TotalQuestionsAnswered, s.Accuracy)
		fmt.Fprintf(e.out, "%-20s %d\n", "Sets completed", s.TotalSetsCompleted)
		fmt.Fprintf(e.out, "%-20s %.1f\n", "Average level", s.AverageLevel)
		fmt.Fprintf(e.out, "%-20s %d day(s), last %s\n", "Streak", s.Streak, last)

		printRanks(e, "Weakest", s.Weakest)
		printRanks(e, "Strongest", s.Strongest)
		return nil
	},
}

func printRanks(e *env, title string, ranks []mastery.TopicRank) {
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, theme.Title.Render(title))
	fmt.Fprintln(e.out, strings.Repeat("─", 60))
	for _, r := range ranks {
		fmt.Fprintf(e.out, "%-32s  %5d pts  %s\n", truncate(r.Label, 32), r.Points, theme.LevelBadge(r.Level))
	}
}
