package climenu

import (
	"errors"
	"testing"
)

func TestNewActionItem(t *testing.T) {
	called := false
	item, err := NewActionItem("Say hello", func() { called = true })
	if err != nil {
		t.Fatalf("NewActionItem error: %v", err)
	}
	if item.Display() != "Say hello" {
		t.Errorf("unexpected display: %q", item.Display())
	}

	action, ok := item.Action()
	if !ok {
		t.Fatal("expected action item to report an action")
	}
	action()
	if !called {
		t.Error("action was not invoked")
	}

	if _, ok := item.Value(); ok {
		t.Error("action item must not report a value")
	}
}

func TestNewActionItem_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		display string
		action  func()
		want    error
	}{
		{"empty display", "", func() {}, ErrEmptyDisplay},
		{"nil action", "Say hello", nil, ErrNilAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewActionItem(tt.display, tt.action); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewValueItem(t *testing.T) {
	item, err := NewValueItem("Blue", "B")
	if err != nil {
		t.Fatalf("NewValueItem error: %v", err)
	}
	if item.Display() != "Blue" {
		t.Errorf("unexpected display: %q", item.Display())
	}

	value, ok := item.Value()
	if !ok {
		t.Fatal("expected value item to report a value")
	}
	if value != "B" {
		t.Errorf("expected B, got %v", value)
	}

	if _, ok := item.Action(); ok {
		t.Error("value item must not report an action")
	}
}

func TestNewValueItem_NilValueIsLegal(t *testing.T) {
	item, err := NewValueItem("None of the above", nil)
	if err != nil {
		t.Fatalf("NewValueItem error: %v", err)
	}
	value, ok := item.Value()
	if !ok {
		t.Fatal("expected a value item")
	}
	if value != nil {
		t.Errorf("expected nil value, got %v", value)
	}
}

func TestNewValueItem_EmptyDisplay(t *testing.T) {
	if _, err := NewValueItem("", "B"); !errors.Is(err, ErrEmptyDisplay) {
		t.Errorf("expected ErrEmptyDisplay, got %v", err)
	}
}

func TestZeroItemHasNoVariant(t *testing.T) {
	var item Item
	if _, ok := item.Action(); ok {
		t.Error("zero item must not report an action")
	}
	if _, ok := item.Value(); ok {
		t.Error("zero item must not report a value")
	}
}
