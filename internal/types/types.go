package types

// Table is an in-memory entity table destined for one storage table.
// Every row has exactly len(Columns) cells; an empty cell means NULL.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

type ForeignKey struct {
	Table     string `json:"table" yaml:"table"`
	Column    string `json:"column" yaml:"column"`
	RefTable  string `json:"ref_table" yaml:"ref_table"`
	RefColumn string `json:"ref_column" yaml:"ref_column"`
}

// ColumnKind is the storage class inferred for a column of text cells.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindReal
)

func (k ColumnKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return "text"
	}
}

func NewTable(name string, columns ...string) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
	}
}

func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// ColumnIndex returns the position of a column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of all cells of the named column.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

type LoadStatus string

const (
	StatusLoaded  LoadStatus = "loaded"
	StatusSkipped LoadStatus = "skipped"
	StatusFailed  LoadStatus = "failed"
)

type TableLoadResult struct {
	Table  string     `json:"table"`
	File   string     `json:"file"`
	Status LoadStatus `json:"status"`
	Rows   int        `json:"rows"`
	Error  string     `json:"error,omitempty"`
}

// ColumnInfo describes one column of a stored table.
type ColumnInfo struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}
