package handlers

import (
	"context"
	"fmt"

	"colorboard/application/ports"
	"colorboard/application/queries"
	"colorboard/application/queries/bus"
	"colorboard/application/services"
)

// GetBoardHandler serves the current board plus selection
type GetBoardHandler struct {
	sessions *services.SessionService
}

// NewGetBoardHandler creates a new handler instance
func NewGetBoardHandler(sessions *services.SessionService) *GetBoardHandler {
	return &GetBoardHandler{sessions: sessions}
}

// Handle executes the get board query
func (h *GetBoardHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.GetBoardQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	snapshot, err := h.sessions.Snapshot(ctx, query.ClientID)
	if err != nil {
		return nil, err
	}
	selection, err := h.sessions.Selection(ctx, query.ClientID)
	if err != nil {
		return nil, err
	}
	return &queries.GetBoardResult{Board: snapshot, Selection: selection}, nil
}

// ExportBoardHandler renders the current board to PNG
type ExportBoardHandler struct {
	sessions *services.SessionService
	renderer ports.BoardRenderer
}

// NewExportBoardHandler creates a new handler instance
func NewExportBoardHandler(sessions *services.SessionService, renderer ports.BoardRenderer) *ExportBoardHandler {
	return &ExportBoardHandler{sessions: sessions, renderer: renderer}
}

// Handle executes the export board query
func (h *ExportBoardHandler) Handle(ctx context.Context, q bus.Query) (interface{}, error) {
	query, ok := q.(queries.ExportBoardQuery)
	if !ok {
		return nil, fmt.Errorf("unexpected query type %T", q)
	}

	snapshot, err := h.sessions.Snapshot(ctx, query.ClientID)
	if err != nil {
		return nil, err
	}
	png, err := h.renderer.RenderPNG(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	return &queries.ExportBoardResult{PNG: png}, nil
}
