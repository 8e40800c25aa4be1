// Package weave assembles documents out of typed, named content blocks and
// renders them to plain text or Markdown.
//
// Philosophy:
//
// Weave keeps format logic out of the document model. A document owns an
// ordered collection of blocks plus two type-indexed registries: one of
// formatting strategies (type-preserving payload transformations) and one of
// rendering strategies (payload to text). New content types and new output
// formats plug in by registering strategies; nothing in the core changes.
//
// Resolution follows a three-tier precedence for every block: an
// instance-level strategy bound to the block wins, otherwise the registry
// default for the payload's concrete type applies, otherwise formatting
// passes through unchanged while rendering fails with a descriptive error.
//
// Features:
//
//   - **Open payload model**: any type implementing core.Data is a payload.
//   - **Per-block overrides**: blocks may carry their own formatter/renderer.
//   - **Conflict-safe registries**: re-registering a type requires explicit
//     replace intent.
//   - **Dual output**: the same pipeline renders to a string or to a seekable
//     byte stream in a configurable character encoding.
//   - **Presets**: NewText and NewMarkdown pre-wire the shipped renderers.
//
// Usage:
//
//	doc := weave.NewMarkdown()
//	doc.AddHeading("Report", 1)
//	doc.AddParagraph("Everything is fine.")
//
//	out, err := doc.Render()
package weave
