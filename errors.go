package climenu

import "errors"

// Exported error variables allow callers to use errors.Is() for error checking.
var (
	// ErrEmptyDisplay is returned when an item is constructed without display text.
	ErrEmptyDisplay = errors.New("menu item display text is empty")

	// ErrNilAction is returned when an action item is constructed without a callback.
	ErrNilAction = errors.New("menu item action is nil")

	// ErrEmptyMenu is returned when a menu with no items is rendered or run.
	ErrEmptyMenu = errors.New("menu has no items")

	// ErrOutOfRange is returned when a selection does not match any menu item.
	ErrOutOfRange = errors.New("selection out of range")

	// ErrInvalidInput is returned when the entered selection is not a number.
	ErrInvalidInput = errors.New("selection is not a number")
)
