package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/quiz"
	"github.com/abhisek/crumble/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the quiz and get a recommended breakup method",
	Long: `Answer the ten questions and get a recommendation: call, text or emoji.

Answers come from a JSON file (--answers answers.json, e.g. {"1":"long","4":"face"})
or from repeated -a id=value flags. Run without answers to list the questions.
Unanswered questions are allowed; they just carry no weight.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("answers", "", "JSON file mapping question id to answer value")
	quizCmd.Flags().StringArrayP("answer", "a", nil, "Answer as id=value (repeatable)")
	quizCmd.MarkFlagsMutuallyExclusive("answers", "answer")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("answers")
	pairs, _ := cmd.Flags().GetStringArray("answer")

	var (
		answers quiz.AnswerSet
		err     error
	)
	switch {
	case file != "":
		raw, readErr := os.ReadFile(file)
		if readErr != nil {
			return fmt.Errorf("read answers: %w", readErr)
		}
		answers, err = quiz.ParseAnswers(raw)
	case len(pairs) > 0:
		answers, err = quiz.ParsePairs(pairs)
	default:
		printQuestions(cmd)
		return nil
	}
	if err != nil {
		return err
	}

	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	out, err := svc.SubmitQuiz(cmd.Context(), answers)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, renderResult(out.Result))
	if !answers.Complete() {
		fmt.Fprintln(w, theme.Hint.Render("Some questions were left blank."))
	}
	if out.Award != nil {
		printAward(w, *out.Award)
	} else {
		fmt.Fprintln(w, theme.Failure.Render("Your answers were saved, but the points could not be recorded."))
	}
	fmt.Fprintln(w, theme.Hint.Render(fmt.Sprintf("Next: crumble template %s", out.Result.Method)))
	return nil
}

func printQuestions(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	for _, q := range quiz.Bank() {
		fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("%d. %s", q.ID, q.Prompt)))
		for _, o := range q.Options {
			fmt.Fprintf(w, "   %-12s %s\n", o.Value, o.Label)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Hint.Render("Answer with: crumble quiz -a 1=long -a 2=direct ..."))
}
