package services

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"colorboard/application/ports"
	"colorboard/pkg/colors"
	pkgerrors "colorboard/pkg/errors"
)

const (
	// MinPromptLength rejects prompts too short to mean anything.
	MinPromptLength = 3
	// MaxPromptLength caps the prompt forwarded upstream.
	MaxPromptLength = 2000
	// PaletteSize is the number of colors a generated palette carries.
	PaletteSize = 5
)

const paletteSystemPrompt = `You are a color palette designer. Given a theme or mood, respond with a JSON object of the form {"colors": ["#rrggbb", ...], "explanation": "..."} containing exactly five hex colors that evoke the theme. Respond with JSON only, no prose.`

// PaletteResult is the parsed palette response.
type PaletteResult struct {
	Colors      []string `json:"colors"`
	Explanation string   `json:"explanation"`
}

// PaletteService proxies palette prompts to the completion API and
// validates what comes back. Upstream output is untrusted: anything that
// is not a well-formed palette maps to an upstream error, never to a
// panic or a half-parsed result.
type PaletteService struct {
	completer ports.Completer
	logger    *zap.Logger
}

// NewPaletteService creates a palette service
func NewPaletteService(completer ports.Completer, logger *zap.Logger) *PaletteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaletteService{completer: completer, logger: logger}
}

// Generate produces a palette for the prompt.
func (s *PaletteService) Generate(ctx context.Context, prompt string) (*PaletteResult, error) {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) < MinPromptLength {
		return nil, pkgerrors.NewValidationError("prompt must be at least 3 characters")
	}
	if len(prompt) > MaxPromptLength {
		return nil, pkgerrors.NewTooLargeError("prompt", MaxPromptLength)
	}

	// Without a model the service still answers, with a locally
	// generated palette.
	if s.completer == nil {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		return &PaletteResult{
			Colors:      colors.RandomPalette(r, PaletteSize),
			Explanation: "Randomly generated palette; configure a model for themed colors.",
		}, nil
	}

	raw, err := s.completer.Complete(ctx, paletteSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var result PaletteResult
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &result); err != nil {
		s.logger.Warn("palette response was not valid JSON", zap.Error(err))
		return nil, pkgerrors.NewUpstreamError("model returned malformed palette", err)
	}

	normalized, err := colors.NormalizePalette(result.Colors)
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("model returned invalid colors", err)
	}
	result.Colors = normalized
	return &result, nil
}

// StripCodeFences removes a surrounding markdown code fence, which models
// add even when told not to.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 && !strings.HasPrefix(s, "{") {
		// Drop the language tag line ("json").
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
