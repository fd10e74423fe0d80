package internal

import "math"

// Tab selects one of the two lists.
type Tab int

const (
	TabTodos Tab = iota
	TabDones
)

// Toggle returns the other tab.
func (t Tab) Toggle() Tab {
	if t == TabTodos {
		return TabDones
	}
	return TabTodos
}

func (t Tab) String() string {
	if t == TabDones {
		return "dones"
	}
	return "todos"
}

// Direction is used by cursor moves, item moves and inserts.
type Direction int

const (
	Up Direction = iota
	Down
)

// cursorEnd is resolved to the last index by the next clamp pass.
const cursorEnd = math.MaxInt

// Lists holds the todo and done items and one cursor per list.
// Both lists are addressed by Tab; the active tab receives all edits.
//
// Cursor indices are only guaranteed valid after Clamp. Mutations may leave
// the active cursor one past the end (or at the GotoEnd sentinel) until the
// next frame runs the clamp pass.
type Lists struct {
	items  [2][]string
	cursor [2]int
	Active Tab
}

func NewLists(todos, dones []string) *Lists {
	if todos == nil {
		todos = []string{}
	}
	if dones == nil {
		dones = []string{}
	}
	return &Lists{items: [2][]string{todos, dones}}
}

// Items returns the items of the given list. The slice must not be modified.
func (l *Lists) Items(tab Tab) []string {
	return l.items[tab]
}

func (l *Lists) Cursor(tab Tab) int {
	return l.cursor[tab]
}

func (l *Lists) Todos() []string { return l.items[TabTodos] }
func (l *Lists) Dones() []string { return l.items[TabDones] }

// Current returns the item under the active cursor.
func (l *Lists) Current() (string, bool) {
	items := l.items[l.Active]
	idx := l.cursor[l.Active]
	if idx < 0 || idx >= len(items) {
		return "", false
	}
	return items[idx], true
}

// SetCurrent replaces the item under the active cursor. It reports false when
// the cursor does not point at an item.
func (l *Lists) SetCurrent(s string) bool {
	items := l.items[l.Active]
	idx := l.cursor[l.Active]
	if idx < 0 || idx >= len(items) {
		return false
	}
	items[idx] = s
	return true
}

func (l *Lists) MoveCursor(dir Direction) {
	idx := &l.cursor[l.Active]
	switch dir {
	case Down:
		if *idx < cursorEnd {
			*idx++
		}
	case Up:
		if *idx > 0 {
			*idx--
		}
	}
}

func (l *Lists) GotoBegin() {
	l.cursor[l.Active] = 0
}

func (l *Lists) GotoEnd() {
	l.cursor[l.Active] = cursorEnd
}

// MoveItem swaps the item under the cursor with its neighbour and keeps the
// cursor on it. Moves past either end are ignored.
func (l *Lists) MoveItem(dir Direction) {
	items := l.items[l.Active]
	idx := l.cursor[l.Active]
	if len(items) == 0 || idx >= len(items) {
		return
	}

	target := idx + 1
	if dir == Up {
		target = idx - 1
	}
	if target < 0 || target >= len(items) {
		return
	}

	items[idx], items[target] = items[target], items[idx]
	l.cursor[l.Active] = target
}

// Insert adds an empty item above or below the cursor and moves the cursor
// onto it. It returns the index of the new item.
func (l *Lists) Insert(dir Direction) int {
	pos := l.cursor[l.Active]
	if dir == Down && pos < cursorEnd {
		pos++
	}
	return l.InsertAt(pos)
}

// InsertAt adds an empty item at pos, clamped into [0, len].
func (l *Lists) InsertAt(pos int) int {
	items := l.items[l.Active]
	pos = max(0, min(pos, len(items)))

	items = append(items, "")
	copy(items[pos+1:], items[pos:])
	items[pos] = ""

	l.items[l.Active] = items
	l.cursor[l.Active] = pos
	return pos
}

// Delete removes the item under the cursor. The cursor is left as is.
func (l *Lists) Delete() {
	items := l.items[l.Active]
	idx := l.cursor[l.Active]
	if len(items) == 0 || idx >= len(items) {
		return
	}
	l.items[l.Active] = append(items[:idx], items[idx+1:]...)
}

// Transfer moves the item under the cursor to the end of the other list.
// The destination cursor does not move.
func (l *Lists) Transfer() {
	from := l.Active
	to := from.Toggle()

	items := l.items[from]
	idx := l.cursor[from]
	if len(items) == 0 || idx >= len(items) {
		return
	}

	value := items[idx]
	l.items[from] = append(items[:idx], items[idx+1:]...)
	l.items[to] = append(l.items[to], value)
}

// Clamp forces both cursors into [0, len-1], or 0 for an empty list.
func (l *Lists) Clamp() {
	for tab := range l.items {
		last := max(len(l.items[tab])-1, 0)
		l.cursor[tab] = max(0, min(l.cursor[tab], last))
	}
}
