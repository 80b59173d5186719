package element

import "strconv"

// The constructors below build Leaf configurations for every stateless
// display element, grounded on the original Streamlit element sources
// (title.rs, header.rs, markdown.rs, write.rs, divider.rs, progress.rs,
// spinner.rs). None of these carry widget state; their Fields are
// exactly their declared arguments.

// Title builds a level-1 heading leaf (title.rs).
func Title(body string) *Leaf {
	return NewLeaf(Config{Kind: "title", Fields: map[string]string{"body": body}})
}

// Header builds a heading leaf at an arbitrary level (header.rs).
func Header(body string, level int) *Leaf {
	return NewLeaf(Config{Kind: "header", Fields: map[string]string{
		"body":  body,
		"level": strconv.Itoa(level),
	}})
}

// Markdown builds a markdown body leaf (markdown.rs).
func Markdown(body string) *Leaf {
	return NewLeaf(Config{Kind: "markdown", Fields: map[string]string{"body": body}})
}

// Write builds a plain-text body leaf (write.rs). Unlike Markdown, its
// body is rendered without markup interpretation on the client.
func Write(body string) *Leaf {
	return NewLeaf(Config{Kind: "write", Fields: map[string]string{"body": body}})
}

// Divider builds a stateless rule leaf with no configuration
// (divider.rs).
func Divider() *Leaf {
	return NewLeaf(Config{Kind: "divider", Fields: map[string]string{}})
}

// Progress builds a float display leaf. value must be in [0, 1]; it is
// not a widget and carries no session state (progress.rs).
func Progress(value float64, text string) *Leaf {
	return NewLeaf(Config{Kind: "progress", Fields: map[string]string{
		"value": strconv.FormatFloat(value, 'g', -1, 64),
		"text":  text,
	}})
}

// Spinner builds a busy-indicator leaf carrying only its label; it has
// no widget state and no client-visible effect beyond the label the
// render contract already conveys (spinner.rs).
func Spinner(text string) *Leaf {
	return NewLeaf(Config{Kind: "spinner", Fields: map[string]string{"text": text}})
}
