package processor

import (
	"io"

	"github.com/wilofice/voiceflow/internal/config"
	"github.com/wilofice/voiceflow/internal/logger"
	"github.com/wilofice/voiceflow/internal/transcript"
)

type implProcessor struct {
	cfg       *config.Config
	extractor transcript.Extractor
	logger    logger.Logger
	console   io.Writer
}

// New creates a new Processor instance. The cleaned text and the watching
// status line are written to out; diagnostics go to the logger.
func New(cfg *config.Config, ext transcript.Extractor, log logger.Logger, out io.Writer) Processor {
	return &implProcessor{
		cfg:       cfg,
		extractor: ext,
		logger:    log,
		console:   out,
	}
}
