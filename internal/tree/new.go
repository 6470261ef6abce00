package tree

import "github.com/wilofice/voiceflow/internal/logger"

type implRenderer struct {
	logger logger.Logger
}

// New creates a new Renderer instance
func New(log logger.Logger) Renderer {
	return &implRenderer{logger: log}
}
