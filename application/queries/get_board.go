package queries

import (
	"colorboard/domain/core/aggregates"
	pkgerrors "colorboard/pkg/errors"
)

// GetBoardQuery asks for a client's current board state.
type GetBoardQuery struct {
	ClientID string
}

// Validate validates the GetBoardQuery
func (q GetBoardQuery) Validate() error {
	if q.ClientID == "" {
		return pkgerrors.NewValidationError("client ID is required")
	}
	return nil
}

// GetBoardResult is the board snapshot plus the live selection.
type GetBoardResult struct {
	Board     aggregates.Snapshot `json:"board"`
	Selection []string            `json:"selection"`
}

// ExportBoardQuery asks for a PNG rendering of the client's board.
type ExportBoardQuery struct {
	ClientID string
}

// Validate validates the ExportBoardQuery
func (q ExportBoardQuery) Validate() error {
	if q.ClientID == "" {
		return pkgerrors.NewValidationError("client ID is required")
	}
	return nil
}

// ExportBoardResult carries the rendered image.
type ExportBoardResult struct {
	PNG []byte
}
