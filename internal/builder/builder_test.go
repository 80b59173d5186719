package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/streamgo-dev/streamgo/internal/builder"
	"github.com/streamgo-dev/streamgo/internal/element"
	"github.com/streamgo-dev/streamgo/internal/render"
	"github.com/streamgo-dev/streamgo/internal/session"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

func TestButtonConsumesTrigger(t *testing.T) {
	sess := session.New("hash")
	sess.Ingest([]wire.WidgetState{{WidgetID: "button:go", Value: wire.Trigger(true)}})

	b := builder.New(sess)
	root := builder.NewRootSite(element.Main())

	require.True(t, b.Button(root, "Go", "go"))
	require.Nil(t, b.Err())
}

func TestCollisionDetectedOnDuplicateKey(t *testing.T) {
	sess := session.New("hash")
	b := builder.New(sess)
	root := builder.NewRootSite(element.Main())

	b.Button(root, "Go", "go")
	b.Button(root, "Go again", "go")

	require.NotNil(t, b.Err())
	require.Equal(t, wire.KindWidgetCollision, b.Err().Kind)
}

func TestNoCollisionAcrossKinds(t *testing.T) {
	sess := session.New("hash")
	b := builder.New(sess)
	root := builder.NewRootSite(element.Main())

	b.Button(root, "Go", "go")
	b.Checkbox(root, "Go", "go", false)

	require.Nil(t, b.Err())
}

func TestUnkeyedWidgetsHashOnLabel(t *testing.T) {
	sess := session.New("hash")
	b := builder.New(sess)
	root := builder.NewRootSite(element.Main())

	b.Checkbox(root, "Same label", "", false)
	b.Checkbox(root, "Same label", "", false)

	require.NotNil(t, b.Err())
}

func TestContainerNestsChildrenUnderBorderedBlock(t *testing.T) {
	sess := session.New("hash")
	b := builder.New(sess)
	main := element.Main()
	root := builder.NewRootSite(main)

	box := b.Container(root, true)
	b.Spinner(box, "loading...")

	sink := &wire.CollectingSink{}
	require.NoError(t, element.Render(main, render.New("s", "h", sink, []uint32{0})))

	var sawContainer, sawSpinner bool
	for _, m := range sink.Messages {
		if m.Delta == nil {
			continue
		}
		if m.Delta.AddBlock != nil && m.Delta.AddBlock.Kind == "container" {
			sawContainer = true
			require.Equal(t, "true", m.Delta.AddBlock.Fields["border"])
		}
		if m.Delta.NewElement != nil && m.Delta.NewElement.Kind == "spinner" {
			sawSpinner = true
			require.Equal(t, "loading...", m.Delta.NewElement.Fields["text"])
		}
	}
	require.True(t, sawContainer)
	require.True(t, sawSpinner)
}

func TestFormStampsFormIDOntoChildren(t *testing.T) {
	sess := session.New("hash")
	b := builder.New(sess)
	main := element.Main()
	root := builder.NewRootSite(main)

	form := b.Form(root, "settings", true)
	b.TextInput(form, "Setting", "setting", "")

	sink := &wire.CollectingSink{}
	require.NoError(t, element.Render(main, render.New("s", "h", sink, []uint32{0})))

	var textInputField string
	for _, m := range sink.Messages {
		if m.Delta != nil && m.Delta.NewElement != nil && m.Delta.NewElement.Kind == "text_input" {
			textInputField = m.Delta.NewElement.Fields["form_id"]
		}
	}
	require.Equal(t, "form:settings", textInputField)
}
