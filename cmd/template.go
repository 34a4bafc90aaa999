package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/crumble/internal/quiz"
	"github.com/abhisek/crumble/internal/templates"
	"github.com/abhisek/crumble/internal/ui/theme"
)

var templateCmd = &cobra.Command{
	Use:   "template <call|text|emoji>",
	Short: "Show breakup message templates for a method",
	Long: `Without --tone, lists the four templates for the method.
With --tone, prints that template (filling in --name) and earns points.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, ok := quiz.ParseMethod(args[0])
		if !ok {
			return fmt.Errorf("unknown method %q (want call, text or emoji)", args[0])
		}
		tone, _ := cmd.Flags().GetString("tone")
		name, _ := cmd.Flags().GetString("name")
		w := cmd.OutOrStdout()

		if tone == "" {
			for _, t := range templates.ForMethod(method) {
				fmt.Fprintln(w, theme.Title.Render(t.Title)+theme.Hint.Render("  --tone "+string(t.Tone)))
				fmt.Fprintln(w, theme.Card.Render(t.Fill(name)))
			}
			return nil
		}

		svc, closeStore, err := openService(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		out, err := svc.UseTemplate(cmd.Context(), method, templates.Tone(tone), name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, theme.Title.Render(out.Template.Title))
		fmt.Fprintln(w, theme.Highlight.Render(out.Message))
		printAward(w, out.Award)
		return nil
	},
}

func init() {
	templateCmd.Flags().String("tone", "", "Template tone: classic, gentle, blunt or humorous")
	templateCmd.Flags().String("name", "", "Recipient name for the [Name] placeholder")
}
