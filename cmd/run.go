package cmd

import (
	"fmt"
	"os"

	"github.com/jaemin/readcoach/internal/app"
	"github.com/jaemin/readcoach/internal/llm"
	"github.com/jaemin/readcoach/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{Store: st}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Tutoring will be unavailable; the problem bank and history still work.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
