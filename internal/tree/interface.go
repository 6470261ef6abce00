package tree

import "context"

// Renderer defines the interface for directory tree rendering
type Renderer interface {
	Render(ctx context.Context, rootDir, outputPath string) error
}
