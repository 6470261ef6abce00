package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/wilofice/voiceflow/internal/config"
	"github.com/wilofice/voiceflow/internal/logger"
	"github.com/wilofice/voiceflow/internal/tree"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	if err := tree.New(log).Render(ctx, cfg.Tree.Root, cfg.Tree.Output); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
		return
	}

	fmt.Printf("%s Directory structure has been saved to '%s'\n", color.GreenString("✓"), cfg.Tree.Output)
}
