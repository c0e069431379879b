package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jaemin/readcoach/internal/llm"
	"github.com/jaemin/readcoach/internal/problembank"
	"github.com/jaemin/readcoach/internal/problemgen"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/spf13/cobra"
)

var problemCmd = &cobra.Command{
	Use:   "problem",
	Short: "Manage the reading problem bank",
}

// openBank opens the store and wraps it in the bank service. The caller
// must Close the returned store.
func openBank(cmd *cobra.Command) (*store.Store, *problembank.Service, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return st, problembank.NewService(st.ProblemRepo()), nil
}

var problemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List problems in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, bank, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		problems, err := bank.List(context.Background())
		if err != nil {
			return fmt.Errorf("list problems: %w", err)
		}

		if len(problems) == 0 {
			fmt.Println("The problem bank is empty.")
			return nil
		}

		fmt.Printf("%-36s  %-32s  %-5s  %-9s  %s\n",
			"ID", "Title", "Grade", "Source", "Created")
		fmt.Println(strings.Repeat("─", 100))
		for _, p := range problems {
			title := p.Title
			if len(title) > 32 {
				title = title[:32]
			}
			grade := "-"
			if p.GradeLevel > 0 {
				grade = fmt.Sprintf("%d", p.GradeLevel)
			}
			fmt.Printf("%-36s  %-32s  %-5s  %-9s  %s\n",
				p.ID, title, grade, p.Source,
				p.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var problemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a problem to the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		question, _ := cmd.Flags().GetString("question")
		grade, _ := cmd.Flags().GetInt("grade")
		passage, _ := cmd.Flags().GetString("passage")
		passageFile, _ := cmd.Flags().GetString("passage-file")

		if passage == "" && passageFile == "" {
			return fmt.Errorf("one of --passage or --passage-file is required")
		}
		if passageFile != "" {
			raw, err := os.ReadFile(passageFile)
			if err != nil {
				return fmt.Errorf("read passage file: %w", err)
			}
			passage = strings.TrimSpace(string(raw))
		}

		st, bank, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		prob := &store.Problem{
			Title:      title,
			Passage:    passage,
			Question:   question,
			GradeLevel: grade,
		}
		if err := bank.Add(context.Background(), prob); err != nil {
			return fmt.Errorf("add problem: %w", err)
		}

		fmt.Printf("Added %q (%s)\n", prob.Title, prob.ID)
		return nil
	},
}

var problemImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import problems from a JSON file",
	Long: `Import problems from a JSON file of the form:

  {"problems": [{"title": "...", "passage": "...", "question": "...", "grade_level": 4}]}

The whole file is validated before anything is written; one bad entry
rejects the entire import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, bank, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := problembank.ImportFile(context.Background(), bank, args[0])
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}

		fmt.Printf("Imported %d problem(s).\n", n)
		return nil
	},
}

var problemDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a problem from the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, bank, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		prob, err := bank.Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get problem: %w", err)
		}
		if prob == nil {
			return fmt.Errorf("problem %q not found", args[0])
		}

		if err := bank.Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("delete problem: %w", err)
		}

		fmt.Printf("Deleted %q\n", prob.Title)
		return nil
	},
}

var problemGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate problems with the LLM and add them to the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		grade, _ := cmd.Flags().GetInt("grade")
		count, _ := cmd.Flags().GetInt("count")

		st, bank, err := openBank(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		generator := problemgen.New(provider, problemgen.DefaultConfig())

		titles, err := bank.Titles(ctx)
		if err != nil {
			return fmt.Errorf("list titles: %w", err)
		}

		added := 0
		for i := 0; i < count; i++ {
			var gen *problemgen.Problem
			for attempt := 0; attempt < 3; attempt++ {
				gen, err = generator.Generate(ctx, problemgen.GenerateInput{
					Topic:       topic,
					GradeLevel:  grade,
					PriorTitles: titles,
				})
				if err == nil {
					break
				}
				var valErr *problemgen.ValidationError
				if errors.As(err, &valErr) && !valErr.Retryable {
					break
				}
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "[%d/%d] generation failed: %v\n", i+1, count, err)
				continue
			}

			prob := &store.Problem{
				Title:      gen.Title,
				Passage:    gen.Passage,
				Question:   gen.Question,
				GradeLevel: gen.GradeLevel,
				Source:     "generated",
			}
			if err := bank.Add(ctx, prob); err != nil {
				fmt.Fprintf(os.Stderr, "[%d/%d] save failed: %v\n", i+1, count, err)
				continue
			}
			titles = append(titles, gen.Title)
			added++
			fmt.Printf("[%d/%d] %s (grade %d)\n", i+1, count, gen.Title, gen.GradeLevel)
		}

		fmt.Printf("Added %d problem(s) to the bank.\n", added)
		return nil
	},
}

func init() {
	problemAddCmd.Flags().String("title", "", "Short display title (required)")
	problemAddCmd.Flags().String("passage", "", "Passage text inline")
	problemAddCmd.Flags().String("passage-file", "", "Read the passage from a file")
	problemAddCmd.Flags().String("question", "", "Comprehension question (required)")
	problemAddCmd.Flags().Int("grade", 0, "Target grade level (1-9, 0 = unspecified)")
	_ = problemAddCmd.MarkFlagRequired("title")
	_ = problemAddCmd.MarkFlagRequired("question")

	problemCmd.AddCommand(problemListCmd)
	problemCmd.AddCommand(problemAddCmd)
	problemCmd.AddCommand(problemImportCmd)
	problemCmd.AddCommand(problemDeleteCmd)

	problemGenCmd.Flags().String("topic", "", "Subject area (empty = model's choice)")
	problemGenCmd.Flags().Int("grade", 0, "Target grade level (1-9, 0 = model's choice)")
	problemGenCmd.Flags().Int("count", 1, "Number of problems to generate")
	problemCmd.AddCommand(problemGenCmd)
}
