// Package element implements the polymorphic element tree: leaves and
// blocks that know how to render themselves into a stream of wire
// deltas addressed by path.
package element

import (
	"fmt"

	"github.com/streamgo-dev/streamgo/internal/render"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// Element is the common contract every leaf and block obeys.
type Element interface {
	// render emits this element's wire delta(s) into ctx and advances
	// ctx's path cursor.
	render(ctx *render.Context) error
}

// Render is the package-external entry point used by the orchestrator
// to walk a single element (root-level or nested).
func Render(e Element, ctx *render.Context) error {
	return e.render(ctx)
}

// Config is the configuration shaping a leaf or block's content-hash
// and wire payload. An element's configuration is fully determined at
// render time.
type Config struct {
	Kind   string
	Fields map[string]string
}

func (c Config) hash() string {
	return wire.ContentHash(c.Kind, c.Fields)
}

func (c Config) payload() *wire.ElementPayload {
	fields := make(map[string]string, len(c.Fields))
	for k, v := range c.Fields {
		fields[k] = v
	}
	return &wire.ElementPayload{Kind: c.Kind, Fields: fields}
}

// Leaf is a childless element emitting exactly one NewElement delta.
type Leaf struct {
	Config Config
}

func NewLeaf(cfg Config) *Leaf { return &Leaf{Config: cfg} }

func (l *Leaf) render(ctx *render.Context) error {
	msg := &wire.ForwardMessage{
		Kind: wire.ForwardDelta,
		Delta: &wire.DeltaPayload{
			DeltaPath:        ctx.PathSnapshot(),
			ActiveScriptHash: ctx.ActiveScriptHash,
			Cacheable:        false,
			NewElement:       l.Config.payload(),
		},
		Hash: l.Config.hash(),
	}
	if err := ctx.Sink.Send(msg); err != nil {
		return wire.Wrap(wire.KindTransport, fmt.Errorf("render leaf %q: %w", l.Config.Kind, err))
	}
	ctx.Advance()
	return nil
}

// Block is a container element: it emits one AddBlock delta, then
// renders each child at one path level deeper.
type Block struct {
	Config   Config
	Children []Element
}

func NewBlock(cfg Config) *Block { return &Block{Config: cfg} }

// Append adds a child in construction order. A block's children list
// is append-only during a script run.
func (b *Block) Append(e Element) { b.Children = append(b.Children, e) }

func (b *Block) render(ctx *render.Context) error {
	msg := &wire.ForwardMessage{
		Kind: wire.ForwardDelta,
		Delta: &wire.DeltaPayload{
			DeltaPath:        ctx.PathSnapshot(),
			ActiveScriptHash: ctx.ActiveScriptHash,
			Cacheable:        false,
			AddBlock:         b.Config.payload(),
		},
		Hash: b.Config.hash(),
	}
	if err := ctx.Sink.Send(msg); err != nil {
		return wire.Wrap(wire.KindTransport, fmt.Errorf("render block %q: %w", b.Config.Kind, err))
	}

	ctx.Descend()
	for _, child := range b.Children {
		if ctx.Cancelled() {
			break
		}
		if err := child.render(ctx); err != nil {
			ctx.Ascend()
			ctx.Advance()
			return err
		}
	}
	ctx.Ascend()
	ctx.Advance()
	return nil
}
