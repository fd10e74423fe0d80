package internal

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DrawOp places Text at column X of row Y.
type DrawOp struct {
	X, Y     int
	Text     string
	Inverted bool
}

// Frame is the list of draw instructions for one screen.
type Frame struct {
	Width, Height int
	Ops           []DrawOp
}

func (f *Frame) Draw(x, y int, text string, inverted bool) {
	f.Ops = append(f.Ops, DrawOp{X: x, Y: y, Text: text, Inverted: inverted})
}

// Text returns the unstyled text drawn on row y, with trailing spaces removed.
func (f *Frame) Text(y int) string {
	g := f.grid()
	if y < 0 || y >= len(g) {
		return ""
	}
	var b strings.Builder
	for _, c := range g[y] {
		b.WriteString(c.text)
	}
	return strings.TrimRight(b.String(), " ")
}

var invertedStyle = lipgloss.NewStyle().Reverse(true)

// String composites the ops onto the screen. Later ops overwrite earlier ones
// and anything outside Width x Height is dropped.
func (f *Frame) String() string {
	g := f.grid()
	rows := make([]string, len(g))
	for y, row := range g {
		var b, run strings.Builder
		inverted := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if inverted {
				b.WriteString(invertedStyle.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.inverted != inverted {
				flush()
				inverted = c.inverted
			}
			run.WriteString(c.text)
		}
		flush()
		rows[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}

// cell is one terminal column. The second column of a wide rune has empty
// text so the row still renders to the right width.
type cell struct {
	text     string
	inverted bool
}

func (f *Frame) grid() [][]cell {
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	g := make([][]cell, f.Height)
	for y := range g {
		g[y] = make([]cell, f.Width)
		for x := range g[y] {
			g[y][x] = cell{text: " "}
		}
	}

	for _, op := range f.Ops {
		if op.Y < 0 || op.Y >= f.Height {
			continue
		}
		row := g[op.Y]
		x := op.X
		for _, r := range op.Text {
			r = printableRune(r)
			w := runewidth.RuneWidth(r)
			if w == 0 {
				// Combining marks join the previous cell.
				prev := x - 1
				if prev > 0 && prev < f.Width && row[prev].text == "" {
					prev--
				}
				if prev >= 0 && prev < f.Width {
					row[prev].text += string(r)
				}
				continue
			}
			if x < 0 || x+w > f.Width {
				x += w
				continue
			}
			clearWide(row, x)
			row[x] = cell{text: string(r), inverted: op.Inverted}
			if w == 2 {
				clearWide(row, x+1)
				row[x+1] = cell{text: "", inverted: op.Inverted}
			}
			x += w
		}
	}
	return g
}

// printable replaces control characters such as tab or ESC with '?'.
func printable(s string) string {
	return strings.Map(printableRune, s)
}

func printableRune(r rune) rune {
	if unicode.IsControl(r) {
		return '?'
	}
	return r
}

// clearWide blanks the other half of a wide rune about to be overwritten at x.
func clearWide(row []cell, x int) {
	if row[x].text == "" && x > 0 {
		row[x-1] = cell{text: " ", inverted: row[x-1].inverted}
	}
	if x+1 < len(row) && row[x+1].text == "" {
		row[x+1] = cell{text: " ", inverted: row[x+1].inverted}
	}
}
