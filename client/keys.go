package client

import (
	"log/slog"
	"termtris/tetris"

	"github.com/eiannone/keyboard"
)

// keys is the keyboard input source of the game. Events are buffered by the
// keyboard library and drained once per frame.
type keys struct {
	events <-chan keyboard.KeyEvent
	logger *slog.Logger
}

// Poll returns the actions typed since the previous call without blocking.
// A closed keyboard or a keyboard error ends the game.
func (k *keys) Poll() []tetris.Action {
	var actions []tetris.Action
	for {
		select {
		case event, ok := <-k.events:
			if !ok {
				k.logger.Error("Keyboard events channel closed unexpectedly")
				return append(actions, tetris.Quit)
			}
			if event.Err != nil {
				k.logger.Error("keysEvents error", slog.String("error", event.Err.Error()))
				return append(actions, tetris.Quit)
			}
			if a, ok := toAction(event); ok {
				actions = append(actions, a)
			}
		default:
			return actions
		}
	}
}

func toAction(event keyboard.KeyEvent) (tetris.Action, bool) {
	switch {
	case event.Key == keyboard.KeyArrowLeft || event.Rune == 'a':
		return tetris.MoveLeft, true
	case event.Key == keyboard.KeyArrowRight || event.Rune == 'd':
		return tetris.MoveRight, true
	case event.Key == keyboard.KeyArrowDown:
		return tetris.MoveDown, true
	case event.Key == keyboard.KeyArrowUp || event.Rune == 'w':
		return tetris.Rotate, true
	case event.Rune == '+' || event.Rune == '=':
		return tetris.SpeedUp, true
	case event.Rune == '-':
		return tetris.SpeedDown, true
	case event.Rune == 's':
		return tetris.Reset, true
	case event.Rune == 'q' || event.Key == keyboard.KeyEsc || event.Key == keyboard.KeyCtrlC:
		return tetris.Quit, true
	}
	return "", false
}
