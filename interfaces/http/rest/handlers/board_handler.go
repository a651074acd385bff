package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"colorboard/application/commands"
	"colorboard/application/commands/bus"
	"colorboard/application/queries"
	querybus "colorboard/application/queries/bus"
	"colorboard/application/services"
	"colorboard/pkg/common"
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/utils"
)

// maxBodyBytes caps ordinary JSON request bodies
const maxBodyBytes = 1 << 20

// BoardHandler handles board-level HTTP requests
type BoardHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	sessions   *services.SessionService
	logger     *zap.Logger
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	sessions *services.SessionService,
	logger *zap.Logger,
) *BoardHandler {
	return &BoardHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		sessions:   sessions,
		logger:     logger,
	}
}

// GetBoard handles GET /api/v1/board
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.GetBoardQuery{
		ClientID: common.ExtractClientID(r),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// RenameBoardRequest is the body for PUT /api/v1/board
type RenameBoardRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

// RenameBoard handles PUT /api/v1/board
func (h *BoardHandler) RenameBoard(w http.ResponseWriter, r *http.Request) {
	var req RenameBoardRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	err := h.commandBus.Send(r.Context(), commands.RenameBoardCommand{
		ClientID: common.ExtractClientID(r),
		Name:     req.Name,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"name": req.Name})
}

// Undo handles POST /api/v1/board/undo
func (h *BoardHandler) Undo(w http.ResponseWriter, r *http.Request) {
	h.sendAndRespondBoard(w, r, commands.UndoCommand{ClientID: common.ExtractClientID(r)})
}

// Redo handles POST /api/v1/board/redo
func (h *BoardHandler) Redo(w http.ResponseWriter, r *http.Request) {
	h.sendAndRespondBoard(w, r, commands.RedoCommand{ClientID: common.ExtractClientID(r)})
}

// Reset handles POST /api/v1/board/reset
func (h *BoardHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.sendAndRespondBoard(w, r, commands.ResetBoardCommand{ClientID: common.ExtractClientID(r)})
}

// Export handles GET /api/v1/board/export.png
func (h *BoardHandler) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ExportBoardQuery{
		ClientID: common.ExtractClientID(r),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	export, ok := result.(*queries.ExportBoardResult)
	if !ok {
		common.RespondAppError(w, pkgerrors.NewInternalError("unexpected export result"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="board.png"`)
	w.WriteHeader(http.StatusOK)
	w.Write(export.PNG)
}

// SelectionRequest is the body for POST /api/v1/board/selection
type SelectionRequest struct {
	Mode string   `json:"mode" validate:"required,oneof=replace toggle clear"`
	IDs  []string `json:"ids"`
}

// UpdateSelection handles POST /api/v1/board/selection
func (h *BoardHandler) UpdateSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, pkgerrors.NewValidationError(err.Error()))
		return
	}

	selection, err := h.sessions.UpdateSelection(r.Context(),
		common.ExtractClientID(r), services.SelectionMode(req.Mode), req.IDs)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{"selection": selection})
}

// sendAndRespondBoard dispatches a command and responds with the
// resulting board state, the shape every mutation endpoint shares.
func (h *BoardHandler) sendAndRespondBoard(w http.ResponseWriter, r *http.Request, cmd bus.Command) {
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	result, err := h.queryBus.Ask(r.Context(), queries.GetBoardQuery{
		ClientID: common.ExtractClientID(r),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
