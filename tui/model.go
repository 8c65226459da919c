// Package tui renders climenu menus as a full-screen bubbletea view
// with cursor navigation. Rows carry the same numbering as the line
// renderer, and digit keys select directly, with 0 still meaning exit.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/climenu"
)

// Model is the bubbletea model for one menu. Create it with New, run it
// in a tea.Program, then read Selection and Cancelled off the final
// model.
type Model struct {
	// Cancelled reports that the session ended without a selection.
	Cancelled bool

	// Style and Keymap may be replaced before the program starts.
	Style  *Style
	Keymap *Keymap

	menu   *climenu.Menu
	items  []climenu.Item
	cursor int
	choice int
	chosen bool
	help   help.Model
}

func New(m *climenu.Menu) Model {
	return Model{
		Style:  DefaultStyle(),
		Keymap: DefaultKeymap(),
		menu:   m,
		items:  m.Items(),
		help:   help.New(),
	}
}

// Selection returns the chosen 1-based selection, or 0 when the session
// ended via the exit row, the 0 shortcut, or cancellation.
func (m Model) Selection() int {
	if !m.chosen {
		return 0
	}
	return m.choice
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keymap.Up):
		m.cursor--
		if m.cursor < 0 {
			m.cursor = m.rowCount() - 1
		}
	case key.Matches(keyMsg, m.Keymap.Down):
		m.cursor++
		if m.cursor >= m.rowCount() {
			m.cursor = 0
		}
	case key.Matches(keyMsg, m.Keymap.Select):
		m.choice = m.selectionAt(m.cursor)
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.Keymap.Quit):
		m.Cancelled = true
		return m, tea.Quit
	default:
		// Digit keys select directly; 0 always exits.
		if n, err := strconv.Atoi(keyMsg.String()); err == nil {
			if n == 0 || (n >= 1 && n <= len(m.items)) {
				m.choice = n
				m.chosen = true
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.chosen || m.Cancelled {
		return ""
	}

	var b strings.Builder
	width := len(strconv.Itoa(len(m.items)))

	if m.menu.Title != "" {
		b.WriteString(m.Style.Title.Render(m.menu.Title) + "\n")
	}
	for i, item := range m.items {
		b.WriteString(m.row(i, fmt.Sprintf("%*d: %s", width, i+1, item.Display())) + "\n")
	}
	if m.menu.ShowExit {
		b.WriteString(m.row(len(m.items), fmt.Sprintf("%*d: %s", width, 0, m.menu.ExitText)) + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(m.Keymap.Bindings()))
	return b.String()
}

func (m Model) row(i int, text string) string {
	const (
		padding = "  "
		pointer = "> "
	)
	if i == m.cursor {
		return m.Style.Cursor.Render(pointer) + m.Style.Selected.Render(text)
	}
	return m.Style.Item.Render(padding + text)
}

// rowCount includes the exit row when the menu shows one.
func (m Model) rowCount() int {
	if m.menu.ShowExit {
		return len(m.items) + 1
	}
	return len(m.items)
}

// selectionAt maps a cursor row to the menu's 1-based selection
// convention, with the exit row mapping to 0.
func (m Model) selectionAt(row int) int {
	if m.menu.ShowExit && row == len(m.items) {
		return 0
	}
	return row + 1
}

// Choose runs the menu in its own program and returns the chosen item's
// value. The bool reports whether a selection was made; exiting or
// cancelling returns (nil, false, nil).
func Choose(m *climenu.Menu) (any, bool, error) {
	if m.Len() == 0 {
		return nil, false, climenu.ErrEmptyMenu
	}
	final, err := tea.NewProgram(New(m)).Run()
	if err != nil {
		return nil, false, err
	}
	model := final.(Model)
	selection := model.Selection()
	if selection == 0 {
		return nil, false, nil
	}
	item, err := m.Resolve(selection)
	if err != nil {
		return nil, false, err
	}
	value, _ := item.Value()
	return value, true, nil
}

// Run shows the menu repeatedly, invoking the chosen item's action after
// each selection, until the session ends via exit or cancellation.
func Run(m *climenu.Menu) error {
	if m.Len() == 0 {
		return climenu.ErrEmptyMenu
	}
	for {
		final, err := tea.NewProgram(New(m)).Run()
		if err != nil {
			return err
		}
		model := final.(Model)
		selection := model.Selection()
		if selection == 0 {
			return nil
		}
		item, err := m.Resolve(selection)
		if err != nil {
			return err
		}
		if action, ok := item.Action(); ok {
			action()
		}
	}
}
