package transcript

import (
	"context"
	"os"
	"regexp"
	"strings"
	"time"
)

// Matches speaker turn headers such as "Speaker 1 0:00:10 - 0:00:18".
var reSpeakerLine = regexp.MustCompile(`^Speaker\s+\d+\s+[\d:]{5,}\s+-\s+[\d:]{5,}\s*$`)

// ExtractText reads a transcript file and returns its cleaned text. Speaker
// and timestamp header lines, blank lines, and "//" comment lines are
// dropped; the remaining lines are trimmed and joined with single spaces.
//
// A missing file yields the literal string "Error: File not found at <path>"
// rather than an error value; callers treat the result as content either way.
func (e *implExtractor) ExtractText(ctx context.Context, path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		e.logger.Warn(ctx, "Transcript file missing: %s", path)
		return "Error: File not found at " + path
	}

	// Give a concurrent writer a moment to finish flushing
	time.Sleep(e.settleDelay)

	data, err := os.ReadFile(path)
	if err != nil {
		e.logger.Error(ctx, "Failed to read transcript %s: %v", path, err)
		return "Error: " + err.Error()
	}

	lines := strings.Split(string(data), "\n")
	textLines := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSpeakerLine.MatchString(trimmed) || strings.HasPrefix(trimmed, "//") {
			continue
		}
		textLines = append(textLines, trimmed)
	}

	return strings.Join(textLines, " ")
}
