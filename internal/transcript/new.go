package transcript

import (
	"time"

	"github.com/wilofice/voiceflow/internal/logger"
)

type implExtractor struct {
	logger      logger.Logger
	settleDelay time.Duration
}

// New creates a new Extractor instance
func New(log logger.Logger) Extractor {
	return &implExtractor{
		logger:      log,
		settleDelay: 100 * time.Millisecond,
	}
}
