package transcript

import "context"

// Extractor defines the interface for transcript text extraction
type Extractor interface {
	ExtractText(ctx context.Context, path string) string
}
