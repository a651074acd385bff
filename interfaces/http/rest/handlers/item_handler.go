package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"colorboard/application/commands"
	"colorboard/application/commands/bus"
	"colorboard/application/queries"
	querybus "colorboard/application/queries/bus"
	"colorboard/pkg/common"
)

// ItemHandler handles item-level HTTP requests
type ItemHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
) *ItemHandler {
	return &ItemHandler{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
	}
}

// CreateItem handles POST /api/v1/board/items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.CreateItemCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)

	var createdID string
	cmd.CreatedID = &createdID
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, map[string]string{"id": createdID})
}

// UpdateItem handles PATCH /api/v1/board/items/{itemID}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.UpdateItemCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	cmd.ItemID = chi.URLParam(r, "itemID")
	h.sendAndRespondBoard(w, r, cmd)
}

// MoveItem handles POST /api/v1/board/items/{itemID}/move
func (h *ItemHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.MoveItemCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	cmd.ItemID = chi.URLParam(r, "itemID")
	h.sendAndRespondBoard(w, r, cmd)
}

// ResizeItem handles POST /api/v1/board/items/{itemID}/resize
func (h *ItemHandler) ResizeItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.ResizeItemCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	cmd.ItemID = chi.URLParam(r, "itemID")
	h.sendAndRespondBoard(w, r, cmd)
}

// RotateItem handles POST /api/v1/board/items/{itemID}/rotate
func (h *ItemHandler) RotateItem(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RotateItemCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	cmd.ItemID = chi.URLParam(r, "itemID")
	h.sendAndRespondBoard(w, r, cmd)
}

// BringToFront handles POST /api/v1/board/items/{itemID}/front
func (h *ItemHandler) BringToFront(w http.ResponseWriter, r *http.Request) {
	h.sendAndRespondBoard(w, r, commands.BringToFrontCommand{
		ClientID: common.ExtractClientID(r),
		ItemID:   chi.URLParam(r, "itemID"),
	})
}

// DeleteItem handles DELETE /api/v1/board/items/{itemID}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	h.sendAndRespondBoard(w, r, commands.DeleteItemCommand{
		ClientID: common.ExtractClientID(r),
		ItemID:   chi.URLParam(r, "itemID"),
	})
}

// AlignItems handles POST /api/v1/board/items/align
func (h *ItemHandler) AlignItems(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AlignItemsCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	h.sendAndRespondBoard(w, r, cmd)
}

// GroupItems handles POST /api/v1/board/items/group
func (h *ItemHandler) GroupItems(w http.ResponseWriter, r *http.Request) {
	var cmd commands.GroupItemsCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)

	var groupID string
	cmd.CreatedGroupID = &groupID
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"groupId": groupID})
}

// UngroupItems handles POST /api/v1/board/items/ungroup
func (h *ItemHandler) UngroupItems(w http.ResponseWriter, r *http.Request) {
	var cmd commands.UngroupItemsCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	h.sendAndRespondBoard(w, r, cmd)
}

// MoveGroup handles POST /api/v1/board/groups/{groupID}/move
func (h *ItemHandler) MoveGroup(w http.ResponseWriter, r *http.Request) {
	var cmd commands.MoveGroupCommand
	if err := common.ParseJSONBody(w, r, &cmd, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	cmd.ClientID = common.ExtractClientID(r)
	cmd.GroupID = chi.URLParam(r, "groupID")
	h.sendAndRespondBoard(w, r, cmd)
}

// sendAndRespondBoard dispatches a command and responds with the
// resulting board state.
func (h *ItemHandler) sendAndRespondBoard(w http.ResponseWriter, r *http.Request, cmd bus.Command) {
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
