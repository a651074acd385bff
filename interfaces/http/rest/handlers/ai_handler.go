package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"colorboard/application/services"
	"colorboard/pkg/common"
)

// maxPromptBodyBytes caps the palette request body
const maxPromptBodyBytes = 16 << 10

// maxImageBodyBytes caps the season request body; the data URL itself is
// checked again inside the service.
const maxImageBodyBytes = 6 << 20

// AIHandler handles completion proxy HTTP requests
type AIHandler struct {
	palette *services.PaletteService
	season  *services.SeasonService
	logger  *zap.Logger
}

// NewAIHandler creates a new AI proxy handler
func NewAIHandler(palette *services.PaletteService, season *services.SeasonService, logger *zap.Logger) *AIHandler {
	return &AIHandler{palette: palette, season: season, logger: logger}
}

// GeneratePaletteRequest is the body for POST /api/v1/ai/generate-palette
type GeneratePaletteRequest struct {
	Prompt string `json:"prompt"`
}

// GeneratePalette handles POST /api/v1/ai/generate-palette
func (h *AIHandler) GeneratePalette(w http.ResponseWriter, r *http.Request) {
	var req GeneratePaletteRequest
	if err := common.ParseJSONBody(w, r, &req, maxPromptBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.palette.Generate(r.Context(), req.Prompt)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// AnalyzeSeasonRequest is the body for POST /api/v1/ai/analyze-season
type AnalyzeSeasonRequest struct {
	Image string `json:"image"`
}

// AnalyzeSeason handles POST /api/v1/ai/analyze-season
func (h *AIHandler) AnalyzeSeason(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeSeasonRequest
	if err := common.ParseJSONBody(w, r, &req, maxImageBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}

	result, err := h.season.Analyze(r.Context(), req.Image)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
