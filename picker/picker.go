// Package picker renders climenu menus as arrow-key selection lists. It
// is an alternative to the numbered line prompts of the core package for
// terminals where cursor interaction is available.
package picker

import (
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/example/climenu"
)

const (
	// defaultListSize is the number of rows visible at once.
	defaultListSize = 10

	// defaultLabel is used when the menu has no title.
	defaultLabel = "Select an option"
)

// Picker runs promptui selections over a menu.
type Picker struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
	size   int
}

// New creates a Picker attached to os.Stdin and os.Stdout.
func New() *Picker {
	return &Picker{stdin: os.Stdin, stdout: os.Stdout, size: defaultListSize}
}

// NewWithIO creates a Picker with custom streams. A nil stream keeps the
// stdio default.
func NewWithIO(stdin io.Reader, stdout io.Writer) *Picker {
	p := New()
	if stdin != nil {
		p.stdin = toReadCloser(stdin)
	}
	if stdout != nil {
		p.stdout = toWriteCloser(stdout)
	}
	return p
}

// Pick shows the menu as a selection list and returns the chosen 1-based
// selection, or 0 when the exit row was chosen. Aborting the prompt
// fails with ErrCancelled.
func (p *Picker) Pick(m *climenu.Menu) (int, error) {
	if m.Len() == 0 {
		return 0, climenu.ErrEmptyMenu
	}

	sel := promptui.Select{
		Label:    pickLabel(m),
		Items:    rows(m),
		Size:     p.size,
		HideHelp: true,
		Stdin:    p.stdin,
		Stdout:   p.stdout,
	}

	idx, _, err := sel.Run()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCancelled, err)
	}
	return selectionAt(m, idx), nil
}

// Choose picks once and returns the chosen item's value. The bool
// reports whether a selection was made; choosing the exit row returns
// (nil, false, nil).
func (p *Picker) Choose(m *climenu.Menu) (any, bool, error) {
	selection, err := p.Pick(m)
	if err != nil {
		return nil, false, err
	}
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

// Run picks repeatedly, invoking the chosen item's action each time,
// until the exit row is chosen or the prompt is aborted.
func (p *Picker) Run(m *climenu.Menu) error {
	for {
		selection, err := p.Pick(m)
		if err != nil {
			return err
		}
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

// rows returns the list rows: item display texts plus the exit text when
// the menu shows its exit entry.
func rows(m *climenu.Menu) []string {
	items := m.Items()
	out := make([]string, 0, len(items)+1)
	for _, item := range items {
		out = append(out, item.Display())
	}
	if m.ShowExit {
		out = append(out, m.ExitText)
	}
	return out
}

// selectionAt maps a 0-based list row back to the menu's 1-based
// selection convention, with the trailing exit row mapping to 0.
func selectionAt(m *climenu.Menu, idx int) int {
	if m.ShowExit && idx == m.Len() {
		return 0
	}
	return idx + 1
}

func pickLabel(m *climenu.Menu) string {
	if m.Title != "" {
		return m.Title
	}
	return defaultLabel
}

func toReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}

func toWriteCloser(w io.Writer) io.WriteCloser {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return nopWriteCloser{Writer: w}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
