package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/KannamTejaswi311/NutriTrack/internal/dto"
	"github.com/KannamTejaswi311/NutriTrack/internal/model"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "questions",
		Aliases: []string{"q"},
		Short:   "Ask health workers and read their answers",
	}

	cmd.AddCommand(
		newQuestionsListCmd(opts),
		newQuestionsAskCmd(opts),
		newQuestionsAnswerCmd(opts),
	)

	return cmd
}

func newQuestionsListCmd(opts *rootOptions) *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List questions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			questions, err := opts.client().ListQuestions(cmd.Context(), limit, offset)
			if err != nil {
				return fmt.Errorf("error listing questions: %v", err)
			}

			renderQuestions(cmd.OutOrStdout(), questions)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")

	return cmd
}

func newQuestionsAskCmd(opts *rootOptions) *cobra.Command {
	var input dto.AskQuestionRequest

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Question = args[0]

			question, err := opts.client().AskQuestion(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("error asking question: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Asked question %s\n", color.New(color.Bold).Sprint(question.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.AskedBy, "by", "", "your name (default Anonymous)")

	return cmd
}

func newQuestionsAnswerCmd(opts *rootOptions) *cobra.Command {
	var input dto.AnswerQuestionRequest

	cmd := &cobra.Command{
		Use:   "answer <id> <answer>",
		Short: "Post a verified answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Answer = args[1]

			question, err := opts.client().AnswerQuestion(cmd.Context(), args[0], input)
			if err != nil {
				return fmt.Errorf("error answering question: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s now has %d answers\n", question.ID, len(question.Answers))
			return nil
		},
	}

	cmd.Flags().StringVar(&input.AnsweredBy, "by", "", "your name")
	cmd.Flags().StringVar(&input.Role, "role", "", "your role, e.g. asha or doctor")

	return cmd
}

func renderQuestions(w io.Writer, questions []model.Question) {
	if len(questions) == 0 {
		fmt.Fprintln(w, "🤷‍♂️ No questions")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Question", "Asked By", "Answers", "Latest Answer"})

	for _, question := range questions {
		latest := ""
		if n := len(question.Answers); n > 0 {
			answer := question.Answers[n-1]
			latest = fmt.Sprintf("%s (%s %s)", answer.Answer, answer.AnsweredBy, color.New(color.FgHiGreen).Sprint("✓"))
		}

		table.Append([]string{
			question.ID,
			question.Question,
			question.AskedBy,
			strconv.Itoa(len(question.Answers)),
			latest,
		})
	}

	table.Render()
}
