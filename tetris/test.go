package tetris

import (
	"math/rand/v2"
	"sync"
	"time"
)

// MockTicker is a manual implementation of the Ticker interface.
type MockTicker struct {
	ch          chan time.Time
	stop, reset bool
	mu          sync.Mutex
}

func NewMockTicker() *MockTicker          { return &MockTicker{ch: make(chan time.Time)} }
func (m *MockTicker) C() <-chan time.Time { return m.ch }
func (m *MockTicker) Tick(t time.Time)    { m.ch <- t }
func (m *MockTicker) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stop = true
}
func (m *MockTicker) Reset(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset = true
}
func (m *MockTicker) IsReset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset
}
func (m *MockTicker) IsStop() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stop
}

// NewTestRand returns a seeded Randomizer so spawn sequences repeat.
func NewTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// NewTestTetris creates a running game whose current and next Tetromino are
// shape, spawned Red on an empty stack.
func NewTestTetris(shape Shape) *Tetris {
	t := New(NewTestRand())
	t.Tetromino = newTetromino(shape, Red, Width)
	t.NextTetromino = newTetromino(shape, Red, Width)
	return t
}
