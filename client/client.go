// Package client plays a game of tetris in the terminal.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"termtris/tetris"

	"github.com/eiannone/keyboard"
)

const kbBuffer = 20

type tetrisGame interface {
	Run(context.Context, tetris.InputSource, tetris.Renderer) error
}

type Client struct {
	tetris tetrisGame
	keys   tetris.InputSource
	render tetris.Renderer
	writer io.Writer
	logger *slog.Logger
	close  func() error
}

type Options struct {
	Writer  io.Writer
	Name    string
	NoGhost bool
	Seed    uint64
}

func New(l *slog.Logger, o *Options) (*Client, error) {
	var w io.Writer = os.Stdout
	if o.Writer != nil {
		w = o.Writer
	}
	r, err := newRender(w, l, o.Name, o.NoGhost)
	if err != nil {
		return nil, fmt.Errorf("failed to load renderer: %w", err)
	}
	kb, err := keyboard.GetKeys(kbBuffer)
	if err != nil {
		return nil, fmt.Errorf("failed to open keyboard: %w", err)
	}
	return &Client{
		tetris: tetris.NewGame(l, rand.New(rand.NewPCG(o.Seed, o.Seed))),
		keys:   &keys{events: kb, logger: l},
		render: r,
		writer: w,
		logger: l,
		close:  keyboard.Close,
	}, nil
}

// Start plays until the player quits or ctx is done. The terminal is
// restored before it returns.
func (c *Client) Start(ctx context.Context) error {
	fmt.Fprint(c.writer, hideCursor)
	defer func() {
		fmt.Fprint(c.writer, showCursor)
		if err := c.close(); err != nil {
			c.logger.Error("unable to close the keyboard", slog.String("error", err.Error()))
		}
	}()

	err := c.tetris.Run(ctx, c.keys, c.render)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}
