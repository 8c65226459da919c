package climenu

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRender_ExactFormat(t *testing.T) {
	m := valueMenu(t, "Main Menu", "One", "Two", "Three")

	out := &bytes.Buffer{}
	if err := m.Render(NewConsole(strings.NewReader(""), out)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	want := "\n" +
		"Main Menu\n" +
		"1: One\n" +
		"2: Two\n" +
		"3: Three\n" +
		"0: Exit\n"
	if out.String() != want {
		t.Errorf("unexpected render:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRender_NoTitle(t *testing.T) {
	m := valueMenu(t, "", "Only")

	out := &bytes.Buffer{}
	if err := m.Render(NewConsole(strings.NewReader(""), out)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if out.String() != "\n1: Only\n0: Exit\n" {
		t.Errorf("unexpected render without title: %q", out.String())
	}
}

func TestRender_HiddenExit(t *testing.T) {
	m := valueMenu(t, "", "Only")
	m.ShowExit = false

	out := &bytes.Buffer{}
	if err := m.Render(NewConsole(strings.NewReader(""), out)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if strings.Contains(out.String(), "Exit") {
		t.Errorf("exit entry rendered despite ShowExit=false: %q", out.String())
	}
}

func TestRender_CustomExitText(t *testing.T) {
	m := valueMenu(t, "", "Only")
	m.ExitText = "Quit"

	out := &bytes.Buffer{}
	if err := m.Render(NewConsole(strings.NewReader(""), out)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if !strings.Contains(out.String(), "0: Quit\n") {
		t.Errorf("custom exit text missing: %q", out.String())
	}
}

func TestRender_DigitWidthBoundary(t *testing.T) {
	displays := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("Item %d", i+1)
		}
		return out
	}

	t.Run("9 items use width 1", func(t *testing.T) {
		m := valueMenu(t, "", displays(9)...)
		out := &bytes.Buffer{}
		if err := m.Render(NewConsole(strings.NewReader(""), out)); err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(out.String(), "\n1: Item 1\n") {
			t.Errorf("expected unpadded index, got %q", out.String())
		}
		if !strings.Contains(out.String(), "\n9: Item 9\n") {
			t.Errorf("expected unpadded last index, got %q", out.String())
		}
		if !strings.Contains(out.String(), "\n0: Exit\n") {
			t.Errorf("expected unpadded exit index, got %q", out.String())
		}
	})

	t.Run("10 items use width 2", func(t *testing.T) {
		m := valueMenu(t, "", displays(10)...)
		out := &bytes.Buffer{}
		if err := m.Render(NewConsole(strings.NewReader(""), out)); err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(out.String(), "\n 1: Item 1\n") {
			t.Errorf("expected padded first index, got %q", out.String())
		}
		if !strings.Contains(out.String(), "\n10: Item 10\n") {
			t.Errorf("expected two-digit last index, got %q", out.String())
		}
		if !strings.Contains(out.String(), "\n 0: Exit\n") {
			t.Errorf("expected padded exit index, got %q", out.String())
		}
	})
}

func TestRender_EmptyMenu(t *testing.T) {
	m := New("Empty")

	out := &bytes.Buffer{}
	err := m.Render(NewConsole(strings.NewReader(""), out))
	if !errors.Is(err, ErrEmptyMenu) {
		t.Fatalf("expected ErrEmptyMenu, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("empty menu must not write anything, got %q", out.String())
	}
}
