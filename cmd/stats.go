package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaemin/readcoach/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tutoring session statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sessions, err := s.EventRepo().ListSessions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		var finished, completed, totalTurns, totalSecs int
		stageTotals := make(map[string]int)
		for _, rec := range sessions {
			if rec.Action != "end" {
				continue
			}
			finished++
			totalTurns += rec.TurnsTaken
			totalSecs += rec.DurationSecs
			if rec.Completed {
				completed++
			}
			for stage, n := range rec.StageCounts {
				stageTotals[stage] += n
			}
		}

		if finished == 0 {
			fmt.Println("No finished sessions yet.")
			return nil
		}

		fmt.Println("Session Stats")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Sessions finished:   %d\n", finished)
		fmt.Printf("Goals reached:       %d (%.0f%%)\n",
			completed, float64(completed)/float64(finished)*100)
		fmt.Printf("Turns taken:         %d\n", totalTurns)
		fmt.Printf("Time in sessions:    %dm %ds\n", totalSecs/60, totalSecs%60)

		if len(stageTotals) > 0 {
			fmt.Println()
			fmt.Println("Recommended Stages")
			fmt.Println(strings.Repeat("─", 48))
			for _, stage := range []string{"survey", "question", "read", "recite", "review"} {
				if n := stageTotals[stage]; n > 0 {
					fmt.Printf("%-10s %d\n", stage, n)
				}
			}
		}

		return nil
	},
}
