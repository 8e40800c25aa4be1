package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/weave/pkg/core"
)

// note is a minimal payload used across the core tests.
type note struct {
	Text string
}

func (note) BlockData() {}

// memo is a second payload type for registry dispatch tests.
type memo struct {
	Text string
}

func (memo) BlockData() {}

func mustBlock(t *testing.T, d core.Data, opts ...core.BlockOption) *core.Block {
	t.Helper()
	b, err := core.NewBlock(d, opts...)
	if err != nil {
		t.Fatalf("NewBlock failed: %v", err)
	}
	return b
}

func noteRenderer() core.Renderer {
	return core.RendererFor(func(n note) (string, error) {
		return n.Text, nil
	})
}

func TestContent_AppendOrder(t *testing.T) {
	c := core.NewContent()

	names := []string{"first", "second", "third", "fourth"}
	for _, name := range names {
		c.Append(mustBlock(t, note{Text: name}, core.WithName(name)))
	}

	if c.Len() != len(names) {
		t.Fatalf("expected %d blocks, got %d", len(names), c.Len())
	}

	for i, b := range c.Blocks() {
		if b.Name() != names[i] {
			t.Errorf("position %d: expected %q, got %q", i, names[i], b.Name())
		}
	}
}

func TestContent_Append_OverwriteKeepsPosition(t *testing.T) {
	c := core.NewContent()
	c.Append(mustBlock(t, note{Text: "a"}, core.WithName("a")))
	c.Append(mustBlock(t, note{Text: "b"}, core.WithName("b")))
	c.Append(mustBlock(t, note{Text: "c"}, core.WithName("c")))

	// Re-append under an existing name: size stays, position stays, value changes.
	c.Append(mustBlock(t, note{Text: "b2"}, core.WithName("b")))

	if c.Len() != 3 {
		t.Fatalf("expected 3 blocks after overwrite, got %d", c.Len())
	}

	blocks := c.Blocks()
	if blocks[1].Name() != "b" {
		t.Errorf("expected name %q at position 1, got %q", "b", blocks[1].Name())
	}
	if got := blocks[1].Data().(note).Text; got != "b2" {
		t.Errorf("expected overwritten payload %q, got %q", "b2", got)
	}
}

func TestContent_All_Restartable(t *testing.T) {
	c := core.NewContent()
	c.Append(mustBlock(t, note{Text: "x"}, core.WithName("x")))
	c.Append(mustBlock(t, note{Text: "y"}, core.WithName("y")))

	collect := func() string {
		var sb strings.Builder
		for b := range c.All() {
			sb.WriteString(b.Name())
		}
		return sb.String()
	}

	first := collect()
	second := collect()
	if first != second {
		t.Errorf("iteration not restartable: %q vs %q", first, second)
	}
	if first != "xy" {
		t.Errorf("expected iteration order %q, got %q", "xy", first)
	}
}

func TestContent_All_EarlyStop(t *testing.T) {
	c := core.NewContent()
	c.Append(mustBlock(t, note{Text: "x"}, core.WithName("x")))
	c.Append(mustBlock(t, note{Text: "y"}, core.WithName("y")))

	var seen int
	for range c.All() {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("expected early stop after 1 block, saw %d", seen)
	}
}

func TestContent_Get(t *testing.T) {
	c := core.NewContent()
	c.Append(mustBlock(t, note{Text: "x"}, core.WithName("x")))

	if _, ok := c.Get("x"); !ok {
		t.Error("expected to find block x")
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("did not expect to find block missing")
	}
}

func TestBlock_GeneratedName(t *testing.T) {
	b := mustBlock(t, note{Text: "anything"})
	if !strings.HasPrefix(b.Name(), "note-") {
		t.Errorf("expected generated name with type prefix, got %q", b.Name())
	}

	other := mustBlock(t, note{Text: "anything"})
	if b.Name() == other.Name() {
		t.Errorf("expected distinct generated names, both are %q", b.Name())
	}
}

func TestBlock_NilData(t *testing.T) {
	_, err := core.NewBlock(nil)
	if err == nil {
		t.Fatal("expected error for nil payload")
	}
	if !errors.Is(err, core.ErrDataMissing) {
		t.Errorf("expected ErrDataMissing, got %v", err)
	}
}
