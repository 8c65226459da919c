package climenu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"
)

// scriptConsole feeds canned answers to the selection loops and records
// everything written. Exhausting the script behaves like end of input.
type scriptConsole struct {
	answers []string
	prompts []string
	out     bytes.Buffer
}

func newScriptConsole(answers ...string) *scriptConsole {
	return &scriptConsole{answers: answers}
}

func (c *scriptConsole) Prompt(label string) (string, error) {
	c.prompts = append(c.prompts, label)
	if len(c.answers) == 0 {
		return "", io.EOF
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *scriptConsole) WriteLine(text string) {
	c.out.WriteString(text + "\n")
}

func valueMenu(t *testing.T, title string, displays ...string) *Menu {
	t.Helper()
	m := New(title)
	for _, display := range displays {
		item, err := NewValueItem(display, display)
		if err != nil {
			t.Fatalf("NewValueItem(%q) error: %v", display, err)
		}
		m.AddItem(item)
	}
	return m
}

func TestNewDefaults(t *testing.T) {
	m := New("Main Menu")
	if m.Title != "Main Menu" {
		t.Errorf("unexpected title: %q", m.Title)
	}
	if m.ExitText != DefaultExitText {
		t.Errorf("unexpected exit text: %q", m.ExitText)
	}
	if m.InvalidOptionText != DefaultInvalidOptionText {
		t.Errorf("unexpected invalid option text: %q", m.InvalidOptionText)
	}
	if m.SelectionText != DefaultSelectionText {
		t.Errorf("unexpected selection text: %q", m.SelectionText)
	}
	if !m.ShowExit {
		t.Error("new menus must show the exit entry")
	}
	if m.Len() != 0 {
		t.Errorf("new menus must be empty, got %d items", m.Len())
	}
}

func TestAddItemsPreservesOrderAndCount(t *testing.T) {
	displays := []string{"First", "Second", "Third", "Fourth"}

	m := New("")
	items := make([]Item, 0, len(displays))
	for _, display := range displays {
		item, err := NewValueItem(display, display)
		if err != nil {
			t.Fatalf("NewValueItem error: %v", err)
		}
		items = append(items, item)
	}
	m.AddItems(items...)

	if m.Len() != len(displays) {
		t.Fatalf("expected %d items, got %d", len(displays), m.Len())
	}
	for i, display := range displays {
		item, err := m.Resolve(i + 1)
		if err != nil {
			t.Fatalf("Resolve(%d) error: %v", i+1, err)
		}
		if item.Display() != display {
			t.Errorf("Resolve(%d) = %q, want %q", i+1, item.Display(), display)
		}
	}
}

func TestResolveOutOfRange(t *testing.T) {
	m := valueMenu(t, "", "A", "B")

	for _, selection := range []int{0, -1, 3, 100} {
		t.Run(fmt.Sprintf("selection %d", selection), func(t *testing.T) {
			if _, err := m.Resolve(selection); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("Resolve(%d): expected ErrOutOfRange, got %v", selection, err)
			}
		})
	}
}
