package processor

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// Process runs one extract-and-write cycle: read the transcript, strip
// annotations, overwrite the output file, and echo the result to the console.
func (p *implProcessor) Process(ctx context.Context, transcriptPath string) error {
	startTime := time.Now()

	cleaned := p.extractor.ExtractText(ctx, transcriptPath)

	// Truncate-and-write, no atomic rename. A concurrent reader may observe
	// a partially written file.
	if err := os.WriteFile(p.cfg.Transcript.Output, []byte(cleaned), 0644); err != nil {
		return fmt.Errorf("write cleaned transcript: %w", err)
	}

	fmt.Fprintln(p.console, color.CyanString("--- Cleaned Transcript ---"))
	fmt.Fprintln(p.console, cleaned)
	fmt.Fprintf(p.console, "\n%s\n", color.GreenString("Watching for file changes... (Press Ctrl+C to stop)"))

	p.logger.Info(ctx, "Cleaned transcript written to %s (%d bytes, %s)",
		p.cfg.Transcript.Output, len(cleaned), time.Since(startTime))

	return nil
}
