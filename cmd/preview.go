package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaemin/readcoach/internal/llm"
	"github.com/jaemin/readcoach/internal/problemgen"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated reading problems (no database)",
	Long: `Generate reading problems for a topic and print them to stdout.

This is a stateless developer tool — nothing is written to the bank and
no events are recorded. Useful for evaluating passage quality and
tuning prompts.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topic", "", "Subject area, e.g. \"honeybees\" (empty = model's choice)")
	previewCmd.Flags().Int("grade", 0, "Target grade level (1-9, 0 = model's choice)")
	previewCmd.Flags().Int("count", 3, "Number of problems to generate")
}

func runPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	grade, _ := cmd.Flags().GetInt("grade")
	count, _ := cmd.Flags().GetInt("count")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	generator := problemgen.New(provider, problemgen.DefaultConfig())

	var priorTitles []string
	sep := strings.Repeat("─", 72)

	for i := 0; i < count; i++ {
		prob, err := generator.Generate(ctx, problemgen.GenerateInput{
			Topic:       topic,
			GradeLevel:  grade,
			PriorTitles: priorTitles,
		})
		if err != nil {
			fmt.Printf("%s\n[%d/%d] generation failed: %v\n", sep, i+1, count, err)
			continue
		}
		priorTitles = append(priorTitles, prob.Title)

		fmt.Println(sep)
		fmt.Printf("[%d/%d] %s  (grade %d, difficulty %d)\n\n",
			i+1, count, prob.Title, prob.GradeLevel, prob.Difficulty)
		fmt.Println(prob.Passage)
		fmt.Printf("\nQ: %s\n", prob.Question)
	}
	fmt.Println(sep)

	return nil
}
