package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"colorboard/application/ports"
	"colorboard/pkg/common"
	pkgerrors "colorboard/pkg/errors"
)

// maxUploadBytes caps uploaded image files
const maxUploadBytes = 4 << 20

var allowedUploadTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// AssetHandler handles uploads and image search
type AssetHandler struct {
	searcher ports.ImageSearcher
	logger   *zap.Logger
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(searcher ports.ImageSearcher, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{searcher: searcher, logger: logger}
}

// Upload handles POST /api/v1/uploads. The file comes back as a data URL
// the client drops straight into an image item's src; the board core
// treats it as an opaque string.
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		if _, ok := err.(*http.MaxBytesError); ok {
			common.RespondAppError(w, pkgerrors.NewTooLargeError("upload", maxUploadBytes))
			return
		}
		common.RespondAppError(w, pkgerrors.NewValidationError("expected multipart form data"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError("missing file field"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		common.RespondAppError(w, pkgerrors.NewUnsupportedMediaError("png, jpeg, gif or webp image"))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewInternalError("failed to read upload").WithCause(err))
		return
	}

	dataURL := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	common.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"src":  dataURL,
		"name": header.Filename,
		"size": len(data),
	})
}

// SearchImages handles GET /api/v1/images/search
func (h *AssetHandler) SearchImages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		common.RespondAppError(w, pkgerrors.NewValidationError("query parameter q is required"))
		return
	}

	count := 8
	if raw := r.URL.Query().Get("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 30 {
			count = n
		}
	}

	results, err := h.searcher.Search(r.Context(), query, count)
	if err != nil {
		common.RespondAppError(w, pkgerrors.NewUpstreamError("image search failed", err))
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}
