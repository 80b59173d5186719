// Package builder implements the element-tree builder API: the Site
// abstraction a user function appends elements through, widget-id
// derivation, and the widget resolution rule backed by internal/session.
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/streamgo-dev/streamgo/internal/element"
	"github.com/streamgo-dev/streamgo/internal/session"
	"github.com/streamgo-dev/streamgo/internal/wire"
)

// Site is where a user function appends elements: the root main
// container, a Container/Columns child, or a Form.
type Site interface {
	append(e element.Element)
	formID() string
}

type site struct {
	block *element.Block
	form  string
}

func (s *site) append(e element.Element) { s.block.Append(e) }
func (s *site) formID() string           { return s.form }

// NewRootSite wraps the per-run main container as the top-level site
// that the user function appends into.
func NewRootSite(main *element.Block) Site {
	return &site{block: main}
}

// Builder resolves widget ids against a session and tracks per-run
// collisions.
type Builder struct {
	sess *session.Session
	seen map[string]bool
	err  *wire.Error
}

// New creates a builder bound to one script run's session. A fresh
// Builder must be used per run, since widget-id collision tracking is
// scoped to a single render.
func New(sess *session.Session) *Builder {
	return &Builder{sess: sess, seen: make(map[string]bool)}
}

// Err reports the first widget collision observed this run, if any.
// The tree still renders in full; the orchestrator downgrades
// ScriptFinished to FinishedWithCompileError when Err is non-nil.
func (b *Builder) Err() *wire.Error { return b.err }

func (b *Builder) widgetID(kind, key, label string) string {
	if key != "" {
		return kind + ":" + key
	}
	return wire.ContentHash(kind, map[string]string{"label": label})
}

func (b *Builder) register(kind, id string) {
	if b.seen[id] {
		if b.err == nil {
			b.err = wire.Wrap(wire.KindWidgetCollision, fmt.Errorf("widget id %q of kind %s was already used this run", id, kind))
		}
		return
	}
	b.seen[id] = true
}

// Title appends a stateless level-1 heading (title.rs).
func (b *Builder) Title(s Site, body string) {
	s.append(element.Title(body))
}

// Header appends a stateless heading at an arbitrary level (header.rs).
func (b *Builder) Header(s Site, body string, level int) {
	s.append(element.Header(body, level))
}

// Markdown appends a stateless markdown body (markdown.rs).
func (b *Builder) Markdown(s Site, body string) {
	s.append(element.Markdown(body))
}

// Write appends a stateless plain-text body (write.rs).
func (b *Builder) Write(s Site, body string) {
	s.append(element.Write(body))
}

// Divider appends a stateless rule (divider.rs).
func (b *Builder) Divider(s Site) {
	s.append(element.Divider())
}

// Progress appends a stateless float display (progress.rs).
func (b *Builder) Progress(s Site, value float64, text string) {
	s.append(element.Progress(value, text))
}

// Spinner appends a stateless busy indicator (spinner.rs).
func (b *Builder) Spinner(s Site, text string) {
	s.append(element.Spinner(text))
}

// Button appends a trigger widget and returns whether it fired on this
// run, consuming the trigger (button.rs).
func (b *Builder) Button(s Site, label, key string) bool {
	id := b.widgetID("button", key, label)
	b.register("button", id)
	clicked := b.sess.ConsumeTrigger(id)
	s.append(element.NewLeaf(element.Config{Kind: "button", Fields: map[string]string{
		"label":   label,
		"form_id": s.formID(),
	}}))
	return clicked
}

// Checkbox appends a boolean widget (checkbox.rs).
func (b *Builder) Checkbox(s Site, label, key string, deflt bool) bool {
	id := b.widgetID("checkbox", key, label)
	b.register("checkbox", id)
	resolved := b.sess.Resolve(id, wire.KindBool, wire.Bool(deflt))
	s.append(element.NewLeaf(element.Config{Kind: "checkbox", Fields: map[string]string{
		"label":   label,
		"value":   strconv.FormatBool(resolved.Bool),
		"form_id": s.formID(),
	}}))
	return resolved.Bool
}

// Slider appends a float widget bounded by [min, max] in steps of step
// (slider.rs).
func (b *Builder) Slider(s Site, label, key string, min, max, step, deflt float64) float64 {
	id := b.widgetID("slider", key, label)
	b.register("slider", id)
	resolved := b.sess.Resolve(id, wire.KindFloat, wire.Float(deflt))
	s.append(element.NewLeaf(element.Config{Kind: "slider", Fields: map[string]string{
		"label":   label,
		"min":     formatFloat(min),
		"max":     formatFloat(max),
		"step":    formatFloat(step),
		"value":   formatFloat(resolved.Float),
		"form_id": s.formID(),
	}}))
	return resolved.Float
}

// TextInput appends a string widget (text_input.rs).
func (b *Builder) TextInput(s Site, label, key, deflt string) string {
	id := b.widgetID("text_input", key, label)
	b.register("text_input", id)
	resolved := b.sess.Resolve(id, wire.KindString, wire.String(deflt))
	s.append(element.NewLeaf(element.Config{Kind: "text_input", Fields: map[string]string{
		"label":   label,
		"value":   resolved.Str,
		"form_id": s.formID(),
	}}))
	return resolved.Str
}

// Selectbox appends a string widget over a fixed option list
// (selectbox.rs). defaultIndex is not clamped: an out-of-range value
// falls back to no selection (an empty default).
func (b *Builder) Selectbox(s Site, label, key string, options []string, defaultIndex int) string {
	deflt := ""
	if defaultIndex >= 0 && defaultIndex < len(options) {
		deflt = options[defaultIndex]
	}
	id := b.widgetID("selectbox", key, label)
	b.register("selectbox", id)
	resolved := b.sess.Resolve(id, wire.KindString, wire.String(deflt))
	s.append(element.NewLeaf(element.Config{Kind: "selectbox", Fields: map[string]string{
		"label":   label,
		"value":   resolved.Str,
		"options": strings.Join(options, "\x1f"),
		"form_id": s.formID(),
	}}))
	return resolved.Str
}

// Container appends a vertical container block and returns a site for
// its children (container.rs).
func (b *Builder) Container(s Site, border bool) Site {
	blk := element.Container(border)
	s.append(blk)
	return &site{block: blk, form: s.formID()}
}

// Columns appends a horizontal row of len(weights) column blocks and
// returns one site per column, in order (columns.rs).
func (b *Builder) Columns(s Site, weights []float64) []Site {
	row := element.Columns()
	s.append(row)
	sites := make([]Site, len(weights))
	for i, w := range weights {
		col := element.Column(w)
		row.Append(col)
		sites[i] = &site{block: col, form: s.formID()}
	}
	return sites
}

// Form appends a form container and returns a site that stamps its id
// onto every widget built through it (form.rs). Nesting a Form inside
// another Form's site is a user function error the caller should treat
// as such; the builder does not special-case it: widgets built through
// the inner site carry only the inner form's id.
func (b *Builder) Form(s Site, key string, clearOnSubmit bool) Site {
	id := b.widgetID("form", key, key)
	b.register("form", id)
	blk := element.Form(id, clearOnSubmit)
	s.append(blk)
	return &site{block: blk, form: id}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
