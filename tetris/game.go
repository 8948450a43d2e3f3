package tetris

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

// FrameRate is the number of frames the game loop runs per second.
const FrameRate = 60

type Ticker interface {
	C() <-chan time.Time
	Reset(time.Duration)
	Stop()
}

type wrappedTicker struct {
	ticker *time.Ticker
}

func newWrappedTicker(d time.Duration) *wrappedTicker {
	return &wrappedTicker{ticker: time.NewTicker(d)}
}

func (t *wrappedTicker) C() <-chan time.Time   { return t.ticker.C }
func (t *wrappedTicker) Stop()                 { t.ticker.Stop() }
func (t *wrappedTicker) Reset(d time.Duration) { t.ticker.Reset(d) }

// InputSource delivers the actions received since the previous call.
// Poll must not block.
type InputSource interface {
	Poll() []Action
}

// Renderer draws a frame.
type Renderer interface {
	Render(*Snapshot)
}

// Game runs a Tetris on a fixed frame clock.
type Game struct {
	tetris *Tetris
	ticker Ticker
	logger *slog.Logger
	id     string
}

func NewGame(l *slog.Logger, r Randomizer) *Game {
	return NewConfigurableGame(newWrappedTicker(time.Second/FrameRate), l, r)
}

func NewConfigurableGame(ticker Ticker, l *slog.Logger, r Randomizer) *Game {
	return &Game{
		tetris: New(r),
		ticker: ticker,
		logger: l,
		id:     uuid.NewString(),
	}
}

// Read returns a Snapshot of the running game.
func (g *Game) Read() *Snapshot {
	return g.tetris.Read()
}

// Run is the frame loop. Every tick it polls in for actions, advances the
// game and hands the new frame to out. It returns nil once a Quit action is
// received, or the context error when ctx is done.
func (g *Game) Run(ctx context.Context, in InputSource, out Renderer) error {
	g.ticker.Reset(time.Second / FrameRate)
	defer g.ticker.Stop()
	g.logger.Info("game started", slog.String("game", g.id))
	out.Render(g.tetris.Read())

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-g.ticker.C():
			var elapsed time.Duration
			if !last.IsZero() {
				elapsed = now.Sub(last)
			}
			last = now

			actions := in.Poll()
			if slices.Contains(actions, Quit) {
				g.logger.Info("quit", slog.String("game", g.id), slog.Int("lines", g.tetris.LinesClear))
				return nil
			}
			g.tick(elapsed, actions)
			out.Render(g.tetris.Read())
		}
	}
}

func (g *Game) tick(elapsed time.Duration, actions []Action) {
	prevState := g.tetris.State
	prevLines := g.tetris.LinesClear
	prevInterval := g.tetris.Interval()

	g.tetris.Tick(elapsed, actions)

	if slices.Contains(actions, Reset) {
		old := g.id
		g.id = uuid.NewString()
		g.logger.Info("game reset", slog.String("previous", old), slog.String("game", g.id))
		return
	}
	if i := g.tetris.Interval(); i != prevInterval {
		g.logger.Debug("speed changed", slog.String("game", g.id), slog.Duration("interval", i))
	}
	if g.tetris.State == prevState {
		return
	}
	switch g.tetris.State {
	case LockDelay:
		g.logger.Debug("tetromino locked", slog.String("game", g.id), slog.String("shape", g.tetris.Tetromino.Shape.String()))
	case Running:
		if n := g.tetris.LinesClear - prevLines; n > 0 {
			g.logger.Debug("lines cleared", slog.String("game", g.id), slog.Int("count", n))
		}
	case GameOver:
		g.logger.Info("game over", slog.String("game", g.id), slog.Int("lines", g.tetris.LinesClear))
	}
}
