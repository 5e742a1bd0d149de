package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/ui/components"
	"github.com/abhisek/quizmastery/internal/ui/theme"
)

var topicCmd = &cobra.Command{
	Use:   "topic <id>",
	Short: "Show mastery for one topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		m := e.svc.GetTopicMastery(cmd.Context(), args[0])
		last := "never"
		if m.LastPracticed != nil {
			last = m.LastPracticed.String()
		}

		fmt.Fprintln(e.out, theme.Title.Render(e.svc.Registry().TopicLabel(m.TopicID)))
		fmt.Fprintf(e.out, "%-16s %s\n", "Level", theme.LevelBadge(m.Level))
		fmt.Fprintf(e.out, "%-16s %s\n", "Progress", components.NewLevelBar(m.Points, 24).View())
		fmt.Fprintf(e.out, "%-16s %d\n", "Points", m.Points)
		fmt.Fprintf(e.out, "%-16s %d/%d (%d%%)\n", "Answered", m.TotalCorrect, m.TotalQuestionsAnswered, m.Accuracy)
		fmt.Fprintf(e.out, "%-16s %d\n", "Sets", m.SetsCompleted)
		fmt.Fprintf(e.out, "%-16s %s\n", "Last practiced", last)
		return nil
	},
}
