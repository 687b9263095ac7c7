package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/naka-gawa/devfolio/internal/gateway"
	"github.com/rs/zerolog"
)

// ErrNoCode is returned when an analysis request carries no code.
var ErrNoCode = errors.New("no code provided")

// AnalysisOutput is reported alongside every explanation; code is never executed.
const AnalysisOutput = "Execution disabled (analysis only)"

// AnalyzeRequest is the body accepted by the code analyzer.
type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

// AnalyzeResult is the analyzer's answer.
type AnalyzeResult struct {
	Explanation string `json:"explanation"`
	Output      string `json:"output"`
}

// Analyzer explains code snippets. Without an explainer it falls back to a
// local summary of the snippet.
type Analyzer struct {
	explainer gateway.Explainer
	logger    zerolog.Logger
}

// NewAnalyzer creates an Analyzer. A nil explainer selects the local summary.
func NewAnalyzer(explainer gateway.Explainer, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		explainer: explainer,
		logger:    logger,
	}
}

// Analyze explains req.Code. Upstream failures are returned to the caller.
func (a *Analyzer) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResult, error) {
	if req.Code == "" {
		return AnalyzeResult{}, ErrNoCode
	}

	if a.explainer == nil {
		return AnalyzeResult{
			Explanation: summarizeCode(req.Language, req.Code),
			Output:      AnalysisOutput,
		}, nil
	}

	explanation, err := a.explainer.Explain(ctx, req.Language, req.Code)
	if err != nil {
		return AnalyzeResult{}, fmt.Errorf("failed to explain code: %w", err)
	}
	return AnalyzeResult{
		Explanation: explanation,
		Output:      AnalysisOutput,
	}, nil
}

func summarizeCode(language, code string) string {
	if language == "" {
		language = "unknown"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "This looks like %s code.\n\n", language)
	fmt.Fprintf(&b, "• Length: %d characters\n", utf8.RuneCountInString(code))
	fmt.Fprintf(&b, "• Lines: %d\n\n", strings.Count(code, "\n")+1)
	b.WriteString("AI explanations are disabled; configure a generative-language API key to enable them.\n")
	return b.String()
}
