package climenu

// ActionEntry pairs a display text with a callback for RunActionMenu.
type ActionEntry struct {
	Display string
	Action  func()
}

// ValueEntry pairs a display text with a payload for RunValueMenu.
type ValueEntry struct {
	Display string
	Value   any
}

// RunActionMenu builds a menu from entries, in order, and runs the
// action loop to completion. It is for call sites that do not need to
// keep the menu around.
func RunActionMenu(c Console, title string, entries []ActionEntry) error {
	m := New(title)
	for _, e := range entries {
		item, err := NewActionItem(e.Display, e.Action)
		if err != nil {
			return err
		}
		m.AddItem(item)
	}
	return m.Run(c)
}

// RunValueMenu builds a menu from entries, in order, and runs the value
// loop. The exit entry is not rendered, matching option-style menus,
// though entering 0 still returns with no selection.
func RunValueMenu(c Console, title string, entries []ValueEntry) (any, bool, error) {
	m := New(title)
	m.ShowExit = false
	for _, e := range entries {
		item, err := NewValueItem(e.Display, e.Value)
		if err != nil {
			return nil, false, err
		}
		m.AddItem(item)
	}
	return m.Choose(c)
}
