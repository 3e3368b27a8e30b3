package contracts

// Cell is the API/webhook representation of a single cell.
type Cell struct {
	Column string `json:"column"`
	Row    string `json:"row"`
	Value  Value  `json:"value"`
	Result string `json:"result"`
}

// SheetRecord is the persisted form of a sheet.
type SheetRecord struct {
	Id     string    `json:"id"`
	Schema Schema    `json:"schema"`
	Data   SheetData `json:"data"`
}
