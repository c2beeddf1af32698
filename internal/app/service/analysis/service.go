package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/logctx"
	"github.com/Mehulsingh1010/Serenity-AI-sub000/pkg/types"
)

// TextGenerator is the single call the pipeline needs from the AI provider.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Analyzer derives a structured analysis record from raw entry content.
type Analyzer interface {
	Analyze(ctx context.Context, content string) (*types.AnalysisResult, error)
}

type Service struct {
	gen TextGenerator
	log *zap.SugaredLogger
}

func NewService(gen TextGenerator, log *zap.SugaredLogger) Analyzer {
	return &Service{gen: gen, log: log}
}

// Analyze runs the fixed prompt against the model, strips fence markup,
// parses and validates the JSON. Synchronous, at-most-once: no retry, no
// queuing; any provider failure aborts the submission.
func (s *Service) Analyze(ctx context.Context, content string) (*types.AnalysisResult, error) {
	raw, err := s.gen.GenerateText(ctx, buildPrompt(content))
	if err != nil {
		logctx.FromCtx(ctx, s.log).Errorf("analysis provider call failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	res, err := parseResult(raw)
	if err != nil {
		// Raw output is logged for diagnosis only; it is never returned to
		// the caller and nothing is persisted.
		logctx.FromCtx(ctx, s.log).Errorw("analysis output rejected", "err", err, "raw", raw)
		return nil, err
	}
	return res, nil
}
