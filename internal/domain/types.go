package domain

// PanelState is the state of the fare estimate panel.
type PanelState string

const (
	// PanelDefault is the estimate computed once for the seeded zip codes.
	PanelDefault PanelState = "default"
	// PanelFiltered is every estimate recomputed after an edit.
	PanelFiltered PanelState = "filtered"
)

// Selection is the pair of zip codes typed into the panel, unparsed.
type Selection struct {
	Origin      string `json:"from"`
	Destination string `json:"to"`
}

// Pagination carries paging params and totals.
type Pagination struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}
