package contracts

type ColumnType string

const (
	StringColumnType ColumnType = "string"
	IntColumnType    ColumnType = "int"
	FloatColumnType  ColumnType = "float"
	BoolColumnType   ColumnType = "bool"
)

// Kind maps declared column type to the value variant it accepts.
// ok is false for type names outside the four supported primitives.
func (t ColumnType) Kind() (kind Kind, ok bool) {
	switch t {
	case StringColumnType:
		return KindString, true
	case IntColumnType:
		return KindInt, true
	case FloatColumnType:
		return KindFloat, true
	case BoolColumnType:
		return KindBool, true
	}

	return KindInvalid, false
}

type ColumnDef struct {
	Name string     `json:"name" binding:"required"`
	Type ColumnType `json:"type" binding:"required"`
}

type Schema struct {
	Columns []ColumnDef `json:"columns" binding:"required,dive"`
}

func (s *Schema) Column(name string) (ColumnDef, bool) {
	for _, column := range s.Columns {
		if column.Name == name {
			return column, true
		}
	}

	return ColumnDef{}, false
}

func (s *Schema) HasColumn(name string) bool {
	_, ok := s.Column(name)
	return ok
}

func (s *Schema) Clone() Schema {
	columns := make([]ColumnDef, len(s.Columns))
	copy(columns, s.Columns)
	return Schema{Columns: columns}
}
