package services

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"colorboard/application/ports"
	"colorboard/pkg/colors"
	pkgerrors "colorboard/pkg/errors"
)

// MaxImageBytes caps the base64 data URL accepted for analysis. Roughly a
// 3 MB source image once base64 overhead is counted.
const MaxImageBytes = 4 * 1024 * 1024

const seasonSystemPrompt = `You are a seasonal color analyst. Given a portrait photo, respond with a JSON object of the form {"season": "spring|summer|autumn|winter", "description": "...", "face_breakdown": {"skin_color": "#rrggbb", "eye_color": "#rrggbb", "hair_color": "#rrggbb"}, "seasonal_palette": ["#rrggbb", ...exactly 8 colors...], "makeup_suggestions": {"lipstick": ["..."], "blush": ["..."], "eyeshadow": ["..."]}}. Respond with JSON only, no prose.`

// seasonalPaletteSize is the number of colors an analysis must carry.
const seasonalPaletteSize = 8

// FaceBreakdown carries the detected feature colors.
type FaceBreakdown struct {
	SkinColor string `json:"skin_color"`
	EyeColor  string `json:"eye_color"`
	HairColor string `json:"hair_color"`
}

// MakeupSuggestions carries textual product suggestions, a few per
// category.
type MakeupSuggestions struct {
	Lipstick  []string `json:"lipstick"`
	Blush     []string `json:"blush"`
	Eyeshadow []string `json:"eyeshadow"`
}

// SeasonResult is the parsed seasonal analysis.
type SeasonResult struct {
	Season            string            `json:"season"`
	Description       string            `json:"description"`
	FaceBreakdown     FaceBreakdown     `json:"face_breakdown"`
	SeasonalPalette   []string          `json:"seasonal_palette"`
	MakeupSuggestions MakeupSuggestions `json:"makeup_suggestions"`
}

var validSeasons = map[string]bool{
	"spring": true,
	"summer": true,
	"autumn": true,
	"winter": true,
}

// SeasonService proxies portrait photos to the completion API for
// seasonal color analysis.
type SeasonService struct {
	completer ports.Completer
	logger    *zap.Logger
}

// NewSeasonService creates a season analysis service
func NewSeasonService(completer ports.Completer, logger *zap.Logger) *SeasonService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeasonService{completer: completer, logger: logger}
}

// Analyze runs a seasonal color analysis on the image, passed as a data
// URL.
func (s *SeasonService) Analyze(ctx context.Context, imageDataURL string) (*SeasonResult, error) {
	imageDataURL = strings.TrimSpace(imageDataURL)
	if imageDataURL == "" {
		return nil, pkgerrors.NewValidationError("image is required")
	}
	if !strings.HasPrefix(imageDataURL, "data:image/") {
		return nil, pkgerrors.NewValidationError("image must be a data URL")
	}
	if len(imageDataURL) > MaxImageBytes {
		return nil, pkgerrors.NewTooLargeError("image", MaxImageBytes)
	}

	raw, err := s.completer.Complete(ctx, seasonSystemPrompt, imageDataURL)
	if err != nil {
		return nil, err
	}

	var result SeasonResult
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &result); err != nil {
		s.logger.Warn("season response was not valid JSON", zap.Error(err))
		return nil, pkgerrors.NewUpstreamError("model returned malformed analysis", err)
	}

	result.Season = strings.ToLower(strings.TrimSpace(result.Season))
	if !validSeasons[result.Season] {
		return nil, pkgerrors.NewUpstreamError("model returned unknown season: "+result.Season, nil)
	}
	palette, err := colors.NormalizePalette(result.SeasonalPalette)
	if err != nil {
		return nil, pkgerrors.NewUpstreamError("model returned invalid palette colors", err)
	}
	if len(palette) != seasonalPaletteSize {
		return nil, pkgerrors.NewUpstreamError("model returned a seasonal palette of the wrong size", nil)
	}
	result.SeasonalPalette = palette
	return &result, nil
}
