package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		topic, _ := cmd.Flags().GetString("topic")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		events, err := e.svc.RecentSets(cmd.Context(), store.QueryOpts{Limit: limit, TopicID: topic})
		if err != nil {
			return fmt.Errorf("query sets: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(e.out, "No sets recorded.")
			return nil
		}

		fmt.Fprintf(e.out, "%-5s  %-16s  %-20s  %-7s  %-4s  %-7s  %s\n",
			"ID", "Recorded", "Topic", "Score", "Pts", "Level", "Streak")
		fmt.Fprintln(e.out, strings.Repeat("─", 80))
		for _, ev := range events {
			level := fmt.Sprintf("%d", ev.NewLevel)
			if ev.NewLevel > ev.OldLevel {
				level = fmt.Sprintf("%d→%d", ev.OldLevel, ev.NewLevel)
			}
			fmt.Fprintf(e.out, "%-5d  %-16s  %-20s  %-7s  %-4d  %-7s  %d\n",
				ev.ID,
				ev.RecordedAt.In(e.clock.Location()).Format("2006-01-02 15:04"),
				truncate(ev.TopicID, 20),
				fmt.Sprintf("%d/%d", ev.Correct, ev.Total),
				ev.PointsEarned,
				level,
				ev.Streak,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of sets to show")
	historyCmd.Flags().StringP("topic", "t", "", "Only show sets for this topic")
}
