package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizmastery/internal/ui/theme"
)

var chapterCmd = &cobra.Command{
	Use:   "chapter [topic-id...]",
	Short: "Show chapter mastery for a list of topics or a registry chapter",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetString("id")

		switch {
		case id != "" && len(args) > 0:
			return fmt.Errorf("use --id or topic IDs, not both")
		case id == "" && len(args) == 0:
			return fmt.Errorf("give topic IDs or --id")
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if id == "" {
			m := e.svc.GetChapterMastery(cmd.Context(), args)
			fmt.Fprintf(e.out, "%d topics  average level %.1f  %s\n",
				m.TopicCount, m.AverageLevel, theme.LevelStyle(int(m.AverageLevel)).Render(m.LevelName))
			return nil
		}

		if _, ok := e.svc.Registry().Chapter(id); !ok {
			return fmt.Errorf("unknown chapter %q (is --registry set?)", id)
		}
		p := e.svc.GetChapterProgress(cmd.Context(), id)

		fmt.Fprintf(e.out, "%s  %s  %d pts\n", theme.Title.Render(p.Label), theme.LevelBadge(p.Level), p.Points)
		fmt.Fprintf(e.out, "%d of %d topics have questions, %d pts cap per topic\n\n",
			p.AvailableCount, p.TotalCount, p.TopicCap)

		fmt.Fprintf(e.out, "%-24s  %-32s  %6s  %6s\n", "Topic", "Label", "Raw", "Capped")
		fmt.Fprintln(e.out, strings.Repeat("─", 74))
		for _, t := range p.Topics {
			mark := ""
			if t.AtCap {
				mark = " ✓"
			}
			fmt.Fprintf(e.out, "%-24s  %-32s  %6d  %6d%s\n",
				t.TopicID, truncate(t.Label, 32), t.RawPoints, t.CappedPoints, mark)
		}
		return nil
	},
}

func init() {
	chapterCmd.Flags().String("id", "", "Registry chapter ID")
}
