package explore

// Kind is the declared data kind of a column. Numeric columns are eligible
// for the numeric exploration pipeline; everything else gets generic checks
// only.
type Kind string

const (
	KindNumeric    Kind = "numeric"
	KindNonNumeric Kind = "non-numeric"
)

// Column is an ordered sequence of nullable scalar cells with a declared
// kind. A nil cell is a missing value. Numeric cells are float64 (or any Go
// integer type); non-numeric cells are strings.
type Column struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Values []any  `json:"values"`
}

// Len returns the number of entries, nulls included.
func (c Column) Len() int { return len(c.Values) }

// Dataset is a rectangular table: named columns in declared order.
type Dataset struct {
	Columns []Column `json:"columns"`
}

// RowCount returns the number of rows, taken from the first column.
func (d Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return d.Columns[0].Len()
}

// ColumnCount returns the number of declared columns.
func (d Dataset) ColumnCount() int { return len(d.Columns) }

// Column looks a column up by name.
func (d Dataset) Column(name string) (Column, bool) {
	for _, c := range d.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}
