package services

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"colorboard/application/ports"
	"colorboard/domain/config"
	"colorboard/domain/core/aggregates"
	"colorboard/domain/core/entities"
	"colorboard/domain/core/valueobjects"
)

// boardSession is the live editor state for one client: the board
// aggregate, its undo/redo history, and the current selection. All access
// goes through the session's mutex; a client is a single editor, so
// contention is incidental, not structural.
type boardSession struct {
	mu        sync.Mutex
	board     *aggregates.MoodBoard
	undo      []*aggregates.MoodBoard
	redo      []*aggregates.MoodBoard
	selection *entities.Selection
}

// SessionService owns the per-client board sessions. Boards load lazily
// from the store (falling back to the starter board), mutate in memory,
// and write through to the store after every change. The write-through is
// best-effort: a failed save is logged, never surfaced, so the editor
// keeps working when the store is down.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*boardSession

	store     ports.BoardStore
	publisher ports.EventPublisher
	cfg       *config.DomainConfig
	logger    *zap.Logger
}

// NewSessionService creates a session service
func NewSessionService(
	store ports.BoardStore,
	publisher ports.EventPublisher,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *SessionService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		sessions:  make(map[string]*boardSession),
		store:     store,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
	}
}

// session returns the client's live session, loading the board from the
// store on first touch. A missing snapshot seeds the starter board; a
// corrupt one is logged and replaced by the starter board rather than
// wedging the client forever.
func (s *SessionService) session(ctx context.Context, clientID string) (*boardSession, error) {
	s.mu.Lock()
	sess, ok := s.sessions[clientID]
	if !ok {
		sess = &boardSession{selection: entities.NewSelection()}
		s.sessions[clientID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()
	if sess.board != nil {
		return sess, nil
	}

	snapshot, err := s.store.Load(ctx, clientID)
	if err != nil {
		sess.mu.Unlock()
		return nil, err
	}
	if snapshot == nil {
		sess.board = aggregates.NewStarterBoard(s.cfg)
		return sess, nil
	}

	board, err := aggregates.ReconstructBoard(*snapshot, s.cfg)
	if err != nil {
		s.logger.Warn("stored board snapshot is invalid, starting fresh",
			zap.String("clientID", clientID),
			zap.Error(err),
		)
		board = aggregates.NewStarterBoard(s.cfg)
	}
	sess.board = board
	return sess, nil
}

// Mutate runs one board mutation for the client. The pre-mutation state
// is pushed onto the undo stack and the redo stack is cleared; afterwards
// the new state is saved and the raised domain events published, both
// best-effort.
func (s *SessionService) Mutate(ctx context.Context, clientID string, fn func(*aggregates.MoodBoard) error) error {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	before := sess.board.Clone()
	if err := fn(sess.board); err != nil {
		return err
	}

	sess.undo = append(sess.undo, before)
	if len(sess.undo) > s.cfg.HistoryDepth {
		sess.undo = sess.undo[1:]
	}
	sess.redo = nil

	s.pruneSelection(sess)
	s.persist(ctx, clientID, sess.board)
	return nil
}

// Undo reverts the last mutation. Empty history is a no-op.
func (s *SessionService) Undo(ctx context.Context, clientID string) error {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	if len(sess.undo) == 0 {
		return nil
	}
	sess.redo = append(sess.redo, sess.board)
	sess.board = sess.undo[len(sess.undo)-1]
	sess.undo = sess.undo[:len(sess.undo)-1]
	s.pruneSelection(sess)
	s.persist(ctx, clientID, sess.board)
	return nil
}

// Redo re-applies the last undone mutation. Empty redo stack is a no-op.
func (s *SessionService) Redo(ctx context.Context, clientID string) error {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	if len(sess.redo) == 0 {
		return nil
	}
	sess.undo = append(sess.undo, sess.board)
	sess.board = sess.redo[len(sess.redo)-1]
	sess.redo = sess.redo[:len(sess.redo)-1]
	s.pruneSelection(sess)
	s.persist(ctx, clientID, sess.board)
	return nil
}

// Reset discards the client's board and history and reseeds the starter
// layout.
func (s *SessionService) Reset(ctx context.Context, clientID string) error {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	sess.board = aggregates.NewStarterBoard(s.cfg)
	sess.undo = nil
	sess.redo = nil
	sess.selection.Clear()
	s.persist(ctx, clientID, sess.board)
	return nil
}

// Snapshot returns the client's current board in serialized form.
func (s *SessionService) Snapshot(ctx context.Context, clientID string) (aggregates.Snapshot, error) {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return aggregates.Snapshot{}, err
	}
	defer sess.mu.Unlock()
	return sess.board.Snapshot(), nil
}

// SelectionMode names a selection gesture.
type SelectionMode string

const (
	SelectReplace SelectionMode = "replace"
	SelectToggle  SelectionMode = "toggle"
	SelectClear   SelectionMode = "clear"
)

// UpdateSelection applies a selection gesture and returns the resulting
// selected ids. Ids that do not resolve to live items are dropped.
func (s *SessionService) UpdateSelection(ctx context.Context, clientID string, mode SelectionMode, ids []string) ([]string, error) {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	switch mode {
	case SelectClear:
		sess.selection.Clear()
	case SelectReplace:
		sess.selection.Clear()
		for _, raw := range ids {
			if id, ok := s.resolve(sess, raw); ok {
				sess.selection.Toggle(id)
			}
		}
	case SelectToggle:
		for _, raw := range ids {
			if id, ok := s.resolve(sess, raw); ok {
				sess.selection.Toggle(id)
			}
		}
	}
	return s.selectionIDs(sess), nil
}

// Selection returns the client's currently selected item ids.
func (s *SessionService) Selection(ctx context.Context, clientID string) ([]string, error) {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()
	return s.selectionIDs(sess), nil
}

// SelectOnly makes the item the sole selection. A freshly created item
// goes through here.
func (s *SessionService) SelectOnly(ctx context.Context, clientID, itemID string) error {
	sess, err := s.session(ctx, clientID)
	if err != nil {
		return err
	}
	defer sess.mu.Unlock()

	if id, ok := s.resolve(sess, itemID); ok {
		sess.selection.Replace(id)
	}
	return nil
}

// persist writes the snapshot through to the store and publishes the
// board's uncommitted events. Both are best-effort.
func (s *SessionService) persist(ctx context.Context, clientID string, board *aggregates.MoodBoard) {
	if err := s.store.Save(ctx, clientID, board.Snapshot()); err != nil {
		s.logger.Warn("board save failed",
			zap.String("clientID", clientID),
			zap.Error(err),
		)
	}

	raised := board.GetUncommittedEvents()
	if len(raised) > 0 && s.publisher != nil {
		if err := s.publisher.Publish(ctx, raised); err != nil {
			s.logger.Warn("event publish failed", zap.Error(err))
		}
	}
	board.MarkEventsAsCommitted()
}

// pruneSelection drops selected ids that no longer exist after an
// undo/redo swap.
func (s *SessionService) pruneSelection(sess *boardSession) {
	for _, id := range sess.selection.IDs() {
		if sess.board.Item(id) == nil {
			sess.selection.Remove(id)
		}
	}
}

func (s *SessionService) resolve(sess *boardSession, raw string) (valueobjects.ItemID, bool) {
	id, err := valueobjects.NewItemIDFromString(raw)
	if err != nil {
		return valueobjects.ItemID{}, false
	}
	if sess.board.Item(id) == nil {
		return valueobjects.ItemID{}, false
	}
	return id, true
}

func (s *SessionService) selectionIDs(sess *boardSession) []string {
	ids := sess.selection.IDs()
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	sort.Strings(out)
	return out
}
