package element_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamgo-dev/streamgo/internal/element"
	"github.com/streamgo-dev/streamgo/internal/render"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// TestRenderSequenceS1 renders a title and a write leaf under the
// synthetic main block and checks their delta paths.
func TestRenderSequenceS1(t *testing.T) {
	main := element.Main()
	main.Append(element.Title("Hello"))
	main.Append(element.Write("world"))

	sink := &wire.CollectingSink{}
	ctx := render.New("sess-1", "hash-1", sink, []uint32{0})

	require.NoError(t, element.Render(main, ctx))

	require.Len(t, sink.Messages, 3)
	require.Equal(t, []uint32{0}, sink.Messages[0].Delta.DeltaPath)
	require.Equal(t, "main", sink.Messages[0].Delta.AddBlock.Kind)
	require.Equal(t, []uint32{0, 0}, sink.Messages[1].Delta.DeltaPath)
	require.Equal(t, "title", sink.Messages[1].Delta.NewElement.Kind)
	require.Equal(t, []uint32{0, 1}, sink.Messages[2].Delta.DeltaPath)
	require.Equal(t, "write", sink.Messages[2].Delta.NewElement.Kind)
}

// TestRenderSequenceS2 renders a columns row whose two children each
// hold one leaf and checks every delta path descends correctly.
func TestRenderSequenceS2(t *testing.T) {
	main := element.Main()
	row := element.Columns()
	left := element.Column(0)
	left.Append(element.Write("L"))
	right := element.Column(0)
	right.Append(element.Write("R"))
	row.Append(left)
	row.Append(right)
	main.Append(row)

	sink := &wire.CollectingSink{}
	ctx := render.New("sess-2", "hash-2", sink, []uint32{0})
	require.NoError(t, element.Render(main, ctx))

	wantPaths := [][]uint32{
		{0},
		{0, 0},
		{0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 1},
		{0, 0, 1, 0},
	}
	require.Len(t, sink.Messages, len(wantPaths))
	for i, want := range wantPaths {
		require.Equal(t, want, sink.Messages[i].Delta.DeltaPath, "message %d", i)
	}
}

// TestPathUniqueness asserts every emitted delta gets a distinct path.
func TestPathUniqueness(t *testing.T) {
	main := element.Main()
	for i := 0; i < 5; i++ {
		main.Append(element.Write("x"))
	}
	sink := &wire.CollectingSink{}
	ctx := render.New("sess-3", "hash-3", sink, []uint32{0})
	require.NoError(t, element.Render(main, ctx))

	seen := map[string]bool{}
	for _, m := range sink.Messages {
		key := pathKey(m.Delta.DeltaPath)
		require.False(t, seen[key], "duplicate path %v", m.Delta.DeltaPath)
		seen[key] = true
	}
}

// TestContentHashStableAcrossRuns asserts that rendering the same tree
// twice produces the same content hash for the same leaf.
func TestContentHashStableAcrossRuns(t *testing.T) {
	build := func() *element.Block {
		main := element.Main()
		main.Append(element.Write("x"))
		return main
	}

	sink1 := &wire.CollectingSink{}
	require.NoError(t, element.Render(build(), render.New("s", "h", sink1, []uint32{0})))

	sink2 := &wire.CollectingSink{}
	require.NoError(t, element.Render(build(), render.New("s", "h", sink2, []uint32{0})))

	require.Equal(t, sink1.Messages[1].Hash, sink2.Messages[1].Hash)
}

// TestCancellationStopsSiblingRendering asserts that once a context is
// cancelled before rendering, no further siblings render.
func TestCancellationStopsSiblingRendering(t *testing.T) {
	main := element.Main()
	main.Append(element.Write("a"))
	main.Append(element.Write("b"))
	main.Append(element.Write("c"))

	sink := &wire.CollectingSink{}
	ctx := render.New("sess-4", "hash-4", sink, []uint32{0})
	ctx.Cancel()

	require.NoError(t, element.Render(main, ctx))
	// Only the main block's own AddBlock delta is emitted; every child
	// render is skipped once cancelled.
	require.Len(t, sink.Messages, 1)
}

func pathKey(p []uint32) string {
	out := make([]byte, 0, len(p)*4)
	for _, v := range p {
		out = append(out, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), '.')
	}
	return string(out)
}
