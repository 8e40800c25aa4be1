package core

import "iter"

// Content is an ordered, name-keyed collection of blocks: the body of one
// document. Iteration follows insertion order. Appending a block under an
// existing name replaces the slot in place, keeping its original position.
//
// Content stores, adds and hands out blocks; it knows nothing about
// formatting or rendering, which is the Document's job.
type Content struct {
	blocks map[string]*Block
	order  []string
}

// NewContent returns an empty Content.
func NewContent() *Content {
	return &Content{blocks: make(map[string]*Block)}
}

// Append inserts the block under its name and returns the name used.
// An existing name is overwritten in place without growing the collection.
func (c *Content) Append(b *Block) string {
	name := b.Name()
	if _, exists := c.blocks[name]; !exists {
		c.order = append(c.order, name)
	}
	c.blocks[name] = b
	return name
}

// Get returns the block stored under name.
func (c *Content) Get(name string) (*Block, bool) {
	b, ok := c.blocks[name]
	return b, ok
}

// Len returns the number of distinct block names held.
func (c *Content) Len() int { return len(c.blocks) }

// Blocks returns a snapshot of the blocks in insertion order.
func (c *Content) Blocks() []*Block {
	out := make([]*Block, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.blocks[name])
	}
	return out
}

// All yields the blocks in insertion order. The sequence is restartable:
// ranging over it again yields the same blocks unless the content was mutated
// in between.
func (c *Content) All() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		for _, name := range c.order {
			if !yield(c.blocks[name]) {
				return
			}
		}
	}
}
