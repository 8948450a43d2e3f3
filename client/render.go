package client

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"termtris/tetris"
	"text/template"

	"github.com/charmbracelet/lipgloss"
)

const (
	// ASCII colors.
	Red     = "31"
	Green   = "32"
	Yellow  = "33"
	Blue    = "34"
	Magenta = "35"
	Cyan    = "36"
	Purple  = "38;5;91"

	resetPos   = "\033[H"                  // Reset cursor position to 0,0
	hideCursor = "\033[2J\033[?25l"        // also clear screen
	showCursor = "\033[24;0H\r\n\033[?25h" // below the field
	clearLine  = "\033[K"                  // Clear to the end of the line

	emptyCell = "  "
	ghostCell = "[]"

	maxNameLen = 16
)

//go:embed "layout.tmpl"
var layout string

var colorMap = map[tetris.Color]string{
	tetris.Red:     Red,
	tetris.Green:   Green,
	tetris.Yellow:  Yellow,
	tetris.Blue:    Blue,
	tetris.Magenta: Magenta,
	tetris.Cyan:    Cyan,
	tetris.Purple:  Purple,
}

var gameOverStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("196")).
	Foreground(lipgloss.Color("15")).
	Bold(true).
	Align(lipgloss.Center).
	Width(14)

type templateData struct {
	Game    *tetris.Snapshot
	Name    string
	NoGhost bool
}

// render draws snapshots of the game to the terminal.
type render struct {
	writer   io.Writer
	logger   *slog.Logger
	template *template.Template
	*templateData
}

func newRender(w io.Writer, l *slog.Logger, name string, noGhost bool) (*render, error) {
	tmp, err := loadTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}
	return &render{
		writer:   w,
		logger:   l,
		template: tmp,
		templateData: &templateData{
			Name:    name,
			NoGhost: noGhost,
		},
	}, nil
}

func (r *render) Render(s *tetris.Snapshot) {
	r.Game = s
	fmt.Fprint(r.writer, resetPos)
	if err := r.template.Execute(r.writer, r.templateData); err != nil {
		r.logger.Error("unable to execute template in Render()", slog.String("error", err.Error()))
	}
	if s != nil && s.GameOver {
		r.gameOver()
	}
}

// gameOver draws a box over the middle of the field.
func (r *render) gameOver() {
	box := gameOverStyle.Render("GAME OVER\n\ns to restart\nq to quit")
	for i, line := range strings.Split(box, "\n") {
		fmt.Fprintf(r.writer, "\033[%d;%dH%s", 10+i, 6, line)
	}
}

func loadTemplate() (*template.Template, error) {
	funcMap := template.FuncMap{
		"stack": stack,
		"panel": panel,
	}

	// we use the console raw so new lines don't automatically transform into carriage return
	// to fix that we add a carriage return to every new line in the layout.
	l := strings.ReplaceAll(layout, "\n", "\r\n")
	l = strings.ReplaceAll(l, "TERMTRIS", "\033[1mTERMTRIS\033[0m")
	return template.New("layout").Funcs(funcMap).Parse(l)
}

func cell(c tetris.Color) string {
	code, ok := colorMap[c]
	if !ok {
		return emptyCell
	}
	return fmt.Sprintf("\x1b[7m\x1b[%sm[]\x1b[0m", code)
}

func blankField() [][]string {
	rendered := make([][]string, tetris.Height)
	for y := range rendered {
		rendered[y] = make([]string, tetris.Width)
		for x := range rendered[y] {
			rendered[y][x] = emptyCell
		}
	}
	return rendered
}

// stack renders the field row by row: locked cells, the ghost and the
// falling tetromino on top.
func stack(td *templateData) [][]string {
	if td == nil || td.Game == nil {
		return blankField()
	}
	g := td.Game
	rendered := make([][]string, len(g.Stack))
	for y, row := range g.Stack {
		rendered[y] = make([]string, len(row))
		for x, c := range row {
			rendered[y][x] = cell(c)
		}
	}

	if g.Tetromino == nil {
		return rendered
	}
	cells := g.Tetromino.Cells()
	if !td.NoGhost {
		for _, p := range cells {
			if y := p.Y + g.GhostY - g.Tetromino.Y; y >= 0 {
				rendered[y][p.X] = ghostCell
			}
		}
	}
	for _, p := range cells {
		// cells still above the field are not drawn.
		if p.Y >= 0 {
			rendered[p.Y][p.X] = cell(g.Tetromino.Color)
		}
	}
	return rendered
}

// nextPiece renders the preview of the next tetromino in a 4x4 box. The I
// tetromino is shown standing up.
func nextPiece(td *templateData) []string {
	rendered := make([]string, 4)
	var grid [4][4]string
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = emptyCell
		}
	}
	if td != nil && td.Game != nil && td.Game.NextTetromino != nil {
		n := td.Game.NextTetromino
		var r int
		if n.Shape == tetris.I {
			r = 1
		}
		for _, p := range n.Shape.Rotation(r) {
			grid[p.Y][p.X] = cell(n.Color)
		}
	}
	for i, row := range grid {
		rendered[i] = strings.Join(row[:], "")
	}
	return rendered
}

func speed(td *templateData) string {
	if td == nil || td.Game == nil {
		return "Speed:"
	}
	return fmt.Sprintf("Speed: %ss", strconv.FormatFloat(td.Game.Interval.Seconds(), 'f', -1, 64))
}

func name(td *templateData) string {
	if td == nil {
		return ""
	}
	n := []rune(td.Name)
	if len(n) > maxNameLen {
		n = n[:maxNameLen]
	}
	return string(n)
}

// panel returns the side panel, one line per field row.
func panel(td *templateData) []string {
	var lines int
	if td != nil && td.Game != nil {
		lines = td.Game.LinesClear
	}
	p := []string{
		"",
		"\033[1m" + name(td) + "\033[0m",
		"",
		fmt.Sprintf("Lines: %d", lines),
		speed(td),
		"",
		"Next:",
	}
	p = append(p, nextPiece(td)...)
	p = append(p,
		"",
		"←/a →/d  move",
		"↓        down",
		"↑/w      rotate",
		"+/-      speed",
		"s        reset",
		"q        quit",
	)
	for len(p) < tetris.Height {
		p = append(p, "")
	}
	for i := range p {
		p[i] += clearLine
	}
	return p
}
