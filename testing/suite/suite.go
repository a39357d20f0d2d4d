package suite

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/config"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/render"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Config   config.Game
	Manager  *usecase.GameManager
	Renderer *render.Renderer
}

// New builds a fresh game manager and renderer with default settings.
// The returned context is canceled when the test finishes.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	conf := config.Game{
		MarkX:         "X",
		MarkO:         "O",
		MovesReversed: true,
		DrawMessage:   "Draw!",
	}

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Config:   conf,
		Manager:  usecase.NewGameManager(logger),
		Renderer: render.New(conf),
	}
}
