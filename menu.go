// Package climenu renders numbered console menus and resolves numeric
// selections to callbacks or values. A menu numbers its items from 1,
// reserves 0 as the exit sentinel, and re-prompts on out-of-range input.
package climenu

import "fmt"

// Default texts used by New. They can be overridden per menu.
const (
	DefaultExitText          = "Exit"
	DefaultInvalidOptionText = "Invalid option"
	DefaultSelectionText     = "Please select an option [0-%d]: "
)

// Menu is an ordered collection of items with the texts used to render
// and drive a selection session. The exported fields may be changed
// freely between renders.
type Menu struct {
	// Title is printed above the items. Empty means no title line.
	Title string

	// ExitText labels the 0 entry when ShowExit is set.
	ExitText string

	// InvalidOptionText is printed when a selection matches no item.
	InvalidOptionText string

	// SelectionText is the prompt format; %d receives the item count.
	SelectionText string

	// ShowExit controls whether the 0 entry is rendered. Entering 0
	// exits the selection loop regardless.
	ShowExit bool

	items []Item
}

// New creates an empty menu with the default texts and a visible exit
// entry.
func New(title string) *Menu {
	return &Menu{
		Title:             title,
		ExitText:          DefaultExitText,
		InvalidOptionText: DefaultInvalidOptionText,
		SelectionText:     DefaultSelectionText,
		ShowExit:          true,
	}
}

// AddItem appends an item to the menu.
func (m *Menu) AddItem(it Item) {
	m.items = append(m.items, it)
}

// AddItems appends items in the given order.
func (m *Menu) AddItems(items ...Item) {
	for _, it := range items {
		m.AddItem(it)
	}
}

// Len returns the number of items in the menu.
func (m *Menu) Len() int {
	return len(m.items)
}

// Items returns the menu's items in display order. The slice is a copy;
// the menu keeps exclusive ownership of its own sequence.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Resolve maps a 1-based selection to its item. Selections below 1 or
// above Len fail with ErrOutOfRange; 0 is never resolved because the
// selection loops intercept it as the exit sentinel first.
func (m *Menu) Resolve(selection int) (Item, error) {
	if selection < 1 || selection > len(m.items) {
		return Item{}, fmt.Errorf("%w: %d", ErrOutOfRange, selection)
	}
	return m.items[selection-1], nil
}
