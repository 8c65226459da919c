package climenu

type itemKind int

const (
	actionKind itemKind = iota + 1
	valueKind
)

// Item is one selectable menu entry. It is either an action item, carrying
// a callback invoked when selected, or a value item, carrying an opaque
// payload returned when selected. Items are immutable once constructed.
type Item struct {
	display string
	kind    itemKind
	action  func()
	value   any
}

// NewActionItem creates an item that invokes action when selected.
func NewActionItem(display string, action func()) (Item, error) {
	if display == "" {
		return Item{}, ErrEmptyDisplay
	}
	if action == nil {
		return Item{}, ErrNilAction
	}
	return Item{display: display, kind: actionKind, action: action}, nil
}

// NewValueItem creates an item that yields value when selected. A nil
// value is legal; Choose reports it as a real selection.
func NewValueItem(display string, value any) (Item, error) {
	if display == "" {
		return Item{}, ErrEmptyDisplay
	}
	return Item{display: display, kind: valueKind, value: value}, nil
}

// Display returns the item's display text.
func (it Item) Display() string {
	return it.display
}

// Action returns the item's callback. The second return value is false
// when the item is not an action item.
func (it Item) Action() (func(), bool) {
	if it.kind != actionKind {
		return nil, false
	}
	return it.action, true
}

// Value returns the item's payload. The second return value is false
// when the item is not a value item.
func (it Item) Value() (any, bool) {
	if it.kind != valueKind {
		return nil, false
	}
	return it.value, true
}
