package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizmastery/internal/mastery"
)

func TestParseResults(t *testing.T) {
	got, err := parseResults([]string{"q1=1", "q2=0", "q3:correct", "q4:INCORRECT", "ns:q5=true", "q6=n"})
	require.NoError(t, err)
	assert.Equal(t, []mastery.AnswerResult{
		{QuestionID: "q1", Correct: true},
		{QuestionID: "q2", Correct: false},
		{QuestionID: "q3", Correct: true},
		{QuestionID: "q4", Correct: false},
		{QuestionID: "ns:q5", Correct: true},
		{QuestionID: "q6", Correct: false},
	}, got)
}

func TestParseResults_Invalid(t *testing.T) {
	for _, arg := range []string{"q1", "=1", "q1=", "q1=maybe"} {
		if _, err := parseResults([]string{arg}); err == nil {
			t.Errorf("parseResults(%q) succeeded, want error", arg)
		}
	}
}

func TestParseResults_Empty(t *testing.T) {
	got, err := parseResults(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

const testBank = `{"questions": [
	{"id": "cad-1", "topic": "cad", "category": "cardio", "difficulty": "easy", "stem": "First"},
	{"id": "cad-2", "topic": "cad", "category": "cardio", "difficulty": "easy", "stem": "Second"},
	{"id": "cad-3", "topic": "cad", "category": "cardio", "difficulty": "hard", "stem": "Third"},
	{"id": "cad-4", "topic": "cad", "category": "cardio", "difficulty": "hard", "stem": "Fourth"},
	{"id": "mi-1", "topic": "mi", "category": "cardio", "difficulty": "easy", "stem": "Fifth"}
]}`

// resetFlags restores every flag in the command tree to its default so runs
// of the shared rootCmd do not see each other's values.
func resetFlags(t *testing.T, c *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Chdir(dir)

	db := filepath.Join(dir, "qm.db")
	bank := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(bank, []byte(testBank), 0o644))

	set := []string{"record", "--db", db, "--topic", "cad"}
	for i := range 10 {
		v := "1"
		if i == 9 {
			v = "0"
		}
		set = append(set, "q"+string(rune('a'+i))+"="+v)
	}

	out, err := execute(t, set...)
	require.NoError(t, err)
	assert.Contains(t, out, "9/10 correct (90%)")
	assert.Contains(t, out, "+3  (total 3)")
	assert.Contains(t, out, "Lv 1 Beginner")
	assert.Contains(t, out, "level up!")
	assert.Contains(t, out, "Streak:  1 day(s)")

	out, err = execute(t, set...)
	require.NoError(t, err)
	assert.Contains(t, out, "Lv 2 Familiar")

	out, err = execute(t, "topic", "--db", db, "cad")
	require.NoError(t, err)
	assert.Contains(t, out, "Points           6")
	assert.Contains(t, out, "18/20 (90%)")

	out, err = execute(t, "select", "--db", db, "--bank", bank, "--topic", "cad", "--size", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "3 questions")
	assert.NotContains(t, out, "mi-1")

	out, err = execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Topics practiced     1")

	out, err = execute(t, "history", "--db", db, "--topic", "cad")
	require.NoError(t, err)
	assert.Contains(t, out, "9/10")
	assert.Contains(t, out, "1→2")

	out, err = execute(t, "chapter", "--db", db, "cad", "mi")
	require.NoError(t, err)
	assert.Contains(t, out, "2 topics  average level 1.0")

	out, err = execute(t, "bank", "count", "--bank", bank, "--difficulty", "easy")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 5 questions match")

	_, err = execute(t, "reset", "--db", db)
	assert.Error(t, err)

	out, err = execute(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All progress deleted.")

	// --yes does not carry over to the next run.
	_, err = execute(t, "reset", "--db", db)
	assert.Error(t, err)

	out, err = execute(t, "topic", "--db", db, "cad")
	require.NoError(t, err)
	assert.Contains(t, out, "Points           0")

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "quizmastery")
}
