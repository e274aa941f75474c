package store

// Wire types for the gviz tabular feed. Cells are positional; the
// column-to-field mapping lives in pkg/adapters and is not validated
// against upstream column order.

type Cell struct {
	Value     any    `json:"v"`
	Formatted string `json:"f,omitempty"`
}

type Row struct {
	Cells []*Cell `json:"c"`
}

type Column struct {
	Label string `json:"label"`
	Type  string `json:"type"`
}

type Table struct {
	Cols []Column `json:"cols"`
	Rows []Row    `json:"rows"`
}

type SheetResponse struct {
	Table Table `json:"table"`
}
