package internal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// RenderOptions holds the display settings that do not live in the session.
type RenderOptions struct {
	TodoBullet string
	DoneBullet string
	Keys       KeyMap
}

func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		TodoBullet: "-",
		DoneBullet: "x",
		Keys:       DefaultKeyMap,
	}
}

// Render draws the session onto a width x height screen. It only reads the
// session; the caller is expected to have run the clamp pass.
func Render(s *Session, width, height int, opts RenderOptions) Frame {
	f := Frame{Width: width, Height: height}

	if s.Mode.Kind == ModeHelp {
		renderHelp(&f, opts.Keys.HelpSections())
	} else {
		mid := width / 2
		active := s.Lists.Active

		f.Draw(0, 0, "TODO", active == TabTodos)
		f.Draw(mid, 0, "DONE", active == TabDones)

		renderPane(&f, pane{
			items:      s.Lists.Items(TabTodos),
			bullet:     opts.TodoBullet,
			x:          0,
			width:      mid - 1,
			active:     active == TabTodos,
			cursor:     s.Lists.Cursor(TabTodos),
			showNumber: s.ShowNumber,
		})
		renderPane(&f, pane{
			items:      s.Lists.Items(TabDones),
			bullet:     opts.DoneBullet,
			x:          mid,
			width:      width - mid,
			active:     active == TabDones,
			cursor:     s.Lists.Cursor(TabDones),
			showNumber: s.ShowNumber,
		})
	}

	f.Draw(0, height-1, s.Mode.Name(), true)
	return f
}

type pane struct {
	items      []string
	bullet     string
	x, width   int
	active     bool
	cursor     int
	showNumber bool
}

func renderPane(f *Frame, p pane) {
	numWidth := len(strconv.Itoa(len(p.items)))

	y := 1
	for idx, item := range p.items {
		label := p.bullet
		if p.showNumber {
			label = fmt.Sprintf("%*d.", numWidth, idx+1)
		}
		indent := runewidth.StringWidth(label) + 1
		highlight := p.active && idx == p.cursor

		first, rest := Wrap(label+" "+printable(item), p.width, indent)
		f.Draw(p.x, y, first, highlight)
		y++

		padding := strings.Repeat(" ", indent)
		for _, line := range rest {
			f.Draw(p.x, y, padding+line, highlight)
			y++
		}
	}
}
