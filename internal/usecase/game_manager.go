package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/pkg"
)

// GameView is a consistent copy of a game taken under its lock.
type GameView struct {
	ID          string
	Board       entity.Board
	Status      entity.Status
	Win         entity.WinResult
	CurrentMove int
	Moves       []entity.Move
}

type session struct {
	mu   sync.Mutex
	game *entity.Game
}

// GameManager owns the running games. Every mutation of a game goes through
// its session lock, so play and travel never interleave.
type GameManager struct {
	logger *slog.Logger

	mu    sync.RWMutex
	games map[string]*session
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		games:  make(map[string]*session),
	}
}

func (that *GameManager) NewGame() *GameView {
	game := entity.NewGame(pkg.GenerateGameID())

	that.mu.Lock()
	that.games[game.ID] = &session{game: game}
	that.mu.Unlock()

	that.logger.Info("game created", "gameID", game.ID)

	return newView(game)
}

func (that *GameManager) GetGame(id string) (*GameView, error) {
	sess, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return newView(sess.game), nil
}

// MakeTurn - plays cell in the game. played is false when the move was illegal and ignored.
func (that *GameManager) MakeTurn(id string, cell int) (*GameView, bool, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id, "cell", cell)

	sess, err := that.getSession(id)
	if err != nil {
		return nil, false, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	played, err := sess.game.Play(cell)
	if err != nil {
		log.Warn("rejected turn", "error", err)
		return nil, false, fmt.Errorf("failed to make turn: %w", err)
	}

	if !played {
		log.Debug("illegal move ignored")
		return newView(sess.game), false, nil
	}

	view := newView(sess.game)
	log.Info("turn made", "move", view.CurrentMove, "outcome", view.Status.Outcome)

	return view, true, nil
}

func (that *GameManager) TravelTo(id string, move int) (*GameView, error) {
	log := that.logger.With("method", "TravelTo", "gameID", id, "move", move)

	sess, err := that.getSession(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err = sess.game.Travel(move); err != nil {
		if errors.Is(err, apperror.ErrMoveOutOfRange) {
			log.Warn("travel out of range", "historyLen", sess.game.HistoryLen())
		}

		return nil, fmt.Errorf("failed to travel: %w", err)
	}

	log.Info("travelled", "historyLen", sess.game.HistoryLen())

	return newView(sess.game), nil
}

func (that *GameManager) EndGame(id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[id]; !ok {
		return fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	delete(that.games, id)
	that.logger.Info("game deleted", "gameID", id)

	return nil
}

func (that *GameManager) getSession(id string) (*session, error) {
	that.mu.RLock()
	sess, ok := that.games[id]
	that.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrGameNotFound, id)
	}

	return sess, nil
}

func newView(game *entity.Game) *GameView {
	board := game.CurrentBoard()

	return &GameView{
		ID:          game.ID,
		Board:       board,
		Status:      game.Status(),
		Win:         entity.DetectWin(board),
		CurrentMove: game.CurrentMove(),
		Moves:       game.Moves(),
	}
}
