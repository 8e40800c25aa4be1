package core_test

import (
	"errors"
	"testing"

	"github.com/aretw0/weave/pkg/core"
)

func TestRegistry_SetConflict(t *testing.T) {
	reg := core.NewRendererRegistry()
	key := core.Kind[note]()

	first := core.RendererFunc(func(d core.Data) (string, error) { return "first", nil })
	second := core.RendererFunc(func(d core.Data) (string, error) { return "second", nil })

	if err := reg.Set(key, first, false); err != nil {
		t.Fatalf("initial Set failed: %v", err)
	}

	err := reg.Set(key, second, false)
	if err == nil {
		t.Fatal("expected conflict error for duplicate Set")
	}
	if !errors.Is(err, core.ErrAlreadyRegistered) {
		t.Errorf("expected ErrAlreadyRegistered, got %v", err)
	}

	// Failed Set must leave the prior registration intact.
	got, ok := reg.Get(key)
	if !ok {
		t.Fatal("renderer disappeared after failed Set")
	}
	out, _ := got.Render(note{})
	if out != "first" {
		t.Errorf("expected original renderer to survive, got output %q", out)
	}
}

func TestRegistry_SetReplace(t *testing.T) {
	reg := core.NewRendererRegistry()
	key := core.Kind[note]()

	first := core.RendererFunc(func(d core.Data) (string, error) { return "first", nil })
	second := core.RendererFunc(func(d core.Data) (string, error) { return "second", nil })

	if err := reg.Set(key, first, false); err != nil {
		t.Fatalf("initial Set failed: %v", err)
	}
	if err := reg.Set(key, second, true); err != nil {
		t.Fatalf("Set with replace failed: %v", err)
	}

	got, _ := reg.Get(key)
	out, _ := got.Render(note{})
	if out != "second" {
		t.Errorf("expected replacement renderer, got output %q", out)
	}
}

func TestRegistry_RemoveAbsent(t *testing.T) {
	reg := core.NewFormatterRegistry()

	_, err := reg.Remove(core.Kind[note]())
	if err == nil {
		t.Fatal("expected error removing unregistered type")
	}
	if !errors.Is(err, core.ErrNotRegistered) {
		t.Errorf("expected ErrNotRegistered, got %v", err)
	}
}

func TestRegistry_RemoveReturnsStrategy(t *testing.T) {
	reg := core.NewRendererRegistry()
	key := core.Kind[note]()

	r := core.RendererFunc(func(d core.Data) (string, error) { return "x", nil })
	if err := reg.Set(key, r, false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	removed, err := reg.Remove(key)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	out, _ := removed.Render(note{})
	if out != "x" {
		t.Errorf("Remove returned wrong strategy, output %q", out)
	}

	if reg.Has(key) {
		t.Error("type still registered after Remove")
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, len %d", reg.Len())
	}
}

func TestRegistry_Membership(t *testing.T) {
	reg := core.NewRendererRegistry()

	if reg.Has(core.Kind[note]()) {
		t.Error("empty registry claims membership")
	}

	_ = reg.Set(core.Kind[note](), noteRenderer(), false)
	_ = reg.Set(core.Kind[memo](), core.RendererFunc(func(d core.Data) (string, error) { return "", nil }), false)

	if !reg.Has(core.Kind[note]()) || !reg.Has(core.Kind[memo]()) {
		t.Error("expected both types registered")
	}
	if reg.Len() != 2 {
		t.Errorf("expected len 2, got %d", reg.Len())
	}

	types := reg.Types()
	if len(types) != 2 {
		t.Fatalf("expected 2 type names, got %v", types)
	}
	// Sorted output for deterministic introspection.
	if types[0] > types[1] {
		t.Errorf("expected sorted type names, got %v", types)
	}
}

func TestTypedGuards(t *testing.T) {
	r := core.RendererFor(func(n note) (string, error) { return n.Text, nil })

	if _, err := r.Render(memo{Text: "x"}); !errors.Is(err, core.ErrUnsupportedData) {
		t.Errorf("expected ErrUnsupportedData for foreign payload, got %v", err)
	}

	out, err := r.Render(note{Text: "hello"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "hello" {
		t.Errorf("expected %q, got %q", "hello", out)
	}

	f := core.FormatterFor(func(n note) (note, error) {
		n.Text = n.Text + "!"
		return n, nil
	})
	if _, err := f.Format(memo{}); !errors.Is(err, core.ErrUnsupportedData) {
		t.Errorf("expected ErrUnsupportedData for foreign payload, got %v", err)
	}
	d, err := f.Format(note{Text: "hi"})
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if d.(note).Text != "hi!" {
		t.Errorf("expected formatted payload, got %+v", d)
	}
}
