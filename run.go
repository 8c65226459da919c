package climenu

import (
	"fmt"
	"strconv"
	"strings"
)

// Run drives the action-selection loop: render the menu, prompt for a
// number, invoke the chosen item's callback, repeat. Entering 0 stops
// the loop cleanly. Out-of-range selections print InvalidOptionText and
// re-prompt. Non-numeric input and end of input end the session with an
// error. A nil console means stdio.
func (m *Menu) Run(c Console) error {
	if c == nil {
		c = Stdio()
	}
	for {
		if err := m.Render(c); err != nil {
			return err
		}
		selection, err := m.promptSelection(c)
		if err != nil {
			return err
		}
		if selection == 0 {
			return nil
		}
		item, err := m.Resolve(selection)
		if err != nil {
			c.WriteLine(m.InvalidOptionText)
			continue
		}
		if action, ok := item.Action(); ok {
			action()
		}
	}
}

// Choose drives the value-selection loop: render the menu, prompt for a
// number, and return the chosen item's value. The bool reports whether a
// selection was made; entering 0 returns (nil, false, nil), so a stored
// nil value is still distinguishable from no selection. Out-of-range
// selections print InvalidOptionText and re-prompt. A nil console means
// stdio.
func (m *Menu) Choose(c Console) (any, bool, error) {
	if c == nil {
		c = Stdio()
	}
	for {
		if err := m.Render(c); err != nil {
			return nil, false, err
		}
		selection, err := m.promptSelection(c)
		if err != nil {
			return nil, false, err
		}
		if selection == 0 {
			return nil, false, nil
		}
		item, err := m.Resolve(selection)
		if err != nil {
			c.WriteLine(m.InvalidOptionText)
			continue
		}
		value, _ := item.Value()
		return value, true, nil
	}
}

// promptSelection asks for one selection and parses it. The entered text
// is trimmed before parsing, matching how the reader trims full lines.
func (m *Menu) promptSelection(c Console) (int, error) {
	answer, err := c.Prompt(fmt.Sprintf(m.SelectionText, m.Len()))
	if err != nil {
		return 0, fmt.Errorf("read selection: %w", err)
	}
	selection, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, answer)
	}
	return selection, nil
}
