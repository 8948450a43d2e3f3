package client

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"termtris/tetris"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
)

func TestToAction(t *testing.T) {
	tests := []struct {
		key    keyboard.KeyEvent
		action tetris.Action
	}{
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, action: tetris.MoveLeft},
		{key: keyboard.KeyEvent{Rune: 'a'}, action: tetris.MoveLeft},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, action: tetris.MoveRight},
		{key: keyboard.KeyEvent{Rune: 'd'}, action: tetris.MoveRight},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowDown}, action: tetris.MoveDown},
		{key: keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, action: tetris.Rotate},
		{key: keyboard.KeyEvent{Rune: 'w'}, action: tetris.Rotate},
		{key: keyboard.KeyEvent{Rune: '+'}, action: tetris.SpeedUp},
		{key: keyboard.KeyEvent{Rune: '='}, action: tetris.SpeedUp},
		{key: keyboard.KeyEvent{Rune: '-'}, action: tetris.SpeedDown},
		{key: keyboard.KeyEvent{Rune: 's'}, action: tetris.Reset},
		{key: keyboard.KeyEvent{Rune: 'q'}, action: tetris.Quit},
		{key: keyboard.KeyEvent{Key: keyboard.KeyEsc}, action: tetris.Quit},
		{key: keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, action: tetris.Quit},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("key %v", tt.key), func(t *testing.T) {
			a, ok := toAction(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.action, a)
		})
	}

	t.Run("unmapped keys are dropped", func(t *testing.T) {
		for _, k := range []keyboard.KeyEvent{{Rune: 'x'}, {Key: keyboard.KeySpace}, {Rune: 'e'}} {
			_, ok := toAction(k)
			assert.False(t, ok, "key %v", k)
		}
	})
}

func TestPoll(t *testing.T) {
	t.Run("drains the buffered events", func(t *testing.T) {
		ch := make(chan keyboard.KeyEvent, kbBuffer)
		k := &keys{events: ch, logger: slog.New(slog.DiscardHandler)}
		ch <- keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}
		ch <- keyboard.KeyEvent{Rune: 'x'}
		ch <- keyboard.KeyEvent{Key: keyboard.KeyArrowUp}
		ch <- keyboard.KeyEvent{Rune: '+'}

		assert.Equal(t, []tetris.Action{tetris.MoveLeft, tetris.Rotate, tetris.SpeedUp}, k.Poll())
		assert.Empty(t, k.Poll())
	})

	t.Run("closed keyboard quits", func(t *testing.T) {
		ch := make(chan keyboard.KeyEvent, kbBuffer)
		k := &keys{events: ch, logger: slog.New(slog.DiscardHandler)}
		ch <- keyboard.KeyEvent{Key: keyboard.KeyArrowDown}
		close(ch)

		assert.Equal(t, []tetris.Action{tetris.MoveDown, tetris.Quit}, k.Poll())
	})

	t.Run("keyboard error quits", func(t *testing.T) {
		ch := make(chan keyboard.KeyEvent, kbBuffer)
		k := &keys{events: ch, logger: slog.New(slog.DiscardHandler)}
		ch <- keyboard.KeyEvent{Err: errors.New("read failed")}
		ch <- keyboard.KeyEvent{Key: keyboard.KeyArrowDown}

		assert.Equal(t, []tetris.Action{tetris.Quit}, k.Poll())
	})
}
