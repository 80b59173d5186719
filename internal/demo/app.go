// Package demo provides the default user function streamgo serves when
// no other entrypoint is wired in, exercising every supplemented
// element kind.
package demo

import (
	"fmt"

	"github.com/streamgo-dev/streamgo/internal/builder"
)

// App is the demo user function wired into cmd/streamgo's default
// listener. A real deployment replaces it with its own
// orchestrator.UserFunc.
func App(b *builder.Builder, root builder.Site) error {
	b.Title(root, "streamgo demo")
	b.Header(root, "Widgets", 2)
	b.Markdown(root, "A small dashboard exercising every supplemented widget kind.")
	b.Divider(root)

	name := b.TextInput(root, "Your name", "name", "world")
	b.Write(root, fmt.Sprintf("Hello, %s!", name))

	if b.Button(root, "Say hi", "say_hi") {
		b.Markdown(root, "clicked")
	}

	if b.Checkbox(root, "I agree", "agree", false) {
		b.Write(root, "Thanks for agreeing.")
	}

	box := b.Container(root, true)
	level := b.Slider(box, "Volume", "volume", 0, 100, 1, 50)
	b.Progress(box, level/100, fmt.Sprintf("%.0f%%", level))
	if level == 0 {
		b.Spinner(box, "waiting for input...")
	}

	choice := b.Selectbox(root, "Favorite color", "color", []string{"red", "green", "blue"}, 0)
	b.Write(root, "You picked "+choice)

	cols := b.Columns(root, []float64{1, 1})
	b.Write(cols[0], "left column")
	b.Write(cols[1], "right column")

	form := b.Form(root, "settings_form", true)
	b.TextInput(form, "Setting value", "setting", "")
	if b.Button(form, "Submit", "submit_settings") {
		b.Markdown(form, "settings submitted")
	}

	return nil
}
