package climenu

import (
	"fmt"
	"strconv"
)

// Render writes the menu to c: a blank separator line, the title if any,
// one numbered line per item, and the 0 exit entry when ShowExit is set.
// Indexes are right-aligned to the digit width of the item count.
// Rendering an empty menu fails with ErrEmptyMenu before anything is
// written.
func (m *Menu) Render(c Console) error {
	if len(m.items) == 0 {
		return ErrEmptyMenu
	}
	width := m.indexWidth()

	c.WriteLine("")
	if m.Title != "" {
		c.WriteLine(m.Title)
	}
	for i, it := range m.items {
		c.WriteLine(fmt.Sprintf("%*d: %s", width, i+1, it.Display()))
	}
	if m.ShowExit {
		c.WriteLine(fmt.Sprintf("%*d: %s", width, 0, m.ExitText))
	}
	return nil
}

// indexWidth is the digit width of the largest index, so 1-9 items align
// to one column and 10-99 to two.
func (m *Menu) indexWidth() int {
	return len(strconv.Itoa(len(m.items)))
}
