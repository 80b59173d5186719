package element

import "strconv"

// Main builds the synthetic root block the orchestrator emits once per
// run at path [0], as a well-known attachment point for everything the
// user function builds. It is rendered, together with its children,
// after the user function returns.
func Main() *Block {
	return NewBlock(Config{Kind: "main", Fields: map[string]string{"direction": "vertical"}})
}

// Container builds a vertical container block with an optional border
// (container.rs).
func Container(border bool) *Block {
	return NewBlock(Config{Kind: "container", Fields: map[string]string{
		"border": strconv.FormatBool(border),
	}})
}

// Column builds one column of a Columns row. weight is the column's
// relative width; a weight of 0 means "share remaining space equally"
// (columns.rs).
func Column(weight float64) *Block {
	return NewBlock(Config{Kind: "column", Fields: map[string]string{
		"weight": strconv.FormatFloat(weight, 'g', -1, 64),
	}})
}

// Columns builds the horizontal row block that owns a set of Column
// children. Callers append the Column blocks returned alongside it
// (columns.rs: "horizontal block whose children are per-column vertical
// blocks").
func Columns() *Block {
	return NewBlock(Config{Kind: "columns", Fields: map[string]string{}})
}

// Form builds a container whose widget children carry formID (form.rs);
// the client holds back their edits until submit, while the server
// resolves them like any other widget. The block itself carries only its
// id; the stamping onto children happens at the builder layer, where
// widgets are constructed through the site Builder.Form returns.
func Form(formID string, clearOnSubmit bool) *Block {
	return NewBlock(Config{Kind: "form", Fields: map[string]string{
		"form_id":         formID,
		"clear_on_submit": strconv.FormatBool(clearOnSubmit),
	}})
}
