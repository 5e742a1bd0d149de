package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/mastery"
	"github.com/abhisek/quizmastery/internal/ui/theme"
)

var recordCmd = &cobra.Command{
	Use:   "record ID=1 ID=0 ...",
	Short: "Record the results of a completed set",
	Long: "Record one answered set for a topic. Each argument is a question ID\n" +
		"followed by =1/=0 or :correct/:incorrect.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		results, err := parseResults(args)
		if err != nil {
			return err
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		out, err := e.svc.RecordSetResult(cmd.Context(), topic, results)
		printOutcome(e, out)
		if errors.Is(err, mastery.ErrNotSaved) {
			return fmt.Errorf("scored but not saved: %w", err)
		}
		return err
	},
}

// parseResults turns "ID=1", "ID=0", "ID:correct" style arguments into results.
func parseResults(args []string) ([]mastery.AnswerResult, error) {
	results := make([]mastery.AnswerResult, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndexAny(arg, "=:")
		if i <= 0 || i == len(arg)-1 {
			return nil, fmt.Errorf("invalid result %q: want ID=1 or ID=0", arg)
		}
		id, val := arg[:i], strings.ToLower(arg[i+1:])

		var correct bool
		switch val {
		case "1", "y", "true", "correct":
			correct = true
		case "0", "n", "false", "incorrect":
		default:
			return nil, fmt.Errorf("invalid result %q: unknown outcome %q", arg, val)
		}
		results = append(results, mastery.AnswerResult{QuestionID: id, Correct: correct})
	}
	return results, nil
}

func printOutcome(e *env, out mastery.SetOutcome) {
	fmt.Fprintf(e.out, "%s  %d/%d correct (%d%%)\n",
		theme.Title.Render(out.TopicID), out.CorrectCount, out.TotalCount, out.Accuracy)
	fmt.Fprintf(e.out, "Points:  +%d  (total %d)\n", out.PointsEarned, out.NewPoints)

	level := theme.LevelBadge(out.NewLevel)
	if out.LeveledUp {
		level += "  " + theme.Correct.Render("level up!")
	}
	fmt.Fprintf(e.out, "Level:   %s\n", level)
	if out.PointsToNext > 0 {
		fmt.Fprintf(e.out, "Next:    %d points to go\n", out.PointsToNext)
	}
	fmt.Fprintf(e.out, "Streak:  %d day(s)\n", out.Streak)

	if ch := out.Chapter; ch != nil {
		fmt.Fprintf(e.out, "Chapter: %s  %s  (%d pts, +%d)\n",
			ch.ChapterLabel, theme.LevelBadge(ch.NewChapterLevel), ch.ChapterPoints, ch.EffectiveChapterGain)
		if ch.TopicAtCap {
			fmt.Fprintln(e.out, theme.Hint.Render("This topic has reached its chapter cap; practice another topic to raise the chapter."))
		}
	}
	if !out.Saved {
		fmt.Fprintln(e.out, theme.Incorrect.Render("Warning: progress could not be saved."))
	}
}

func init() {
	recordCmd.Flags().StringP("topic", "t", "", "Topic ID (required)")
	_ = recordCmd.MarkFlagRequired("topic")
}
