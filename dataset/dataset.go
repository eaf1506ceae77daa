// Package dataset provides a typed, column-major table for labeled tabular
// data. Schemas are validated at construction, and the feature view used for
// clustering is a separate type (Matrix) so label columns cannot leak into
// the feature space by accident.
package dataset

import (
	"fmt"
	"slices"
)

// Kind is the value type of a column.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Column describes a single typed column.
type Column struct {
	Name string
	Kind Kind
}

// Schema is an ordered list of typed columns.
type Schema []Column

// NewSchema validates and returns a schema. Column names must be unique and
// non-empty.
func NewSchema(cols ...Column) (Schema, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("dataset: schema must have at least one column")
	}
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("dataset: column name must not be empty")
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("dataset: duplicate column name %q", c.Name)
		}
		seen[c.Name] = true
	}
	return Schema(slices.Clone(cols)), nil
}

// Index returns the position of the named column, or -1 if absent.
func (s Schema) Index(name string) int {
	for i, c := range s {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// column is the typed storage for one column. Exactly one slice is used,
// selected by the column's kind.
type column struct {
	floats []float64
	ints   []int64
	strs   []string
}

// Dataset is an immutable-by-convention column-major table. The core never
// mutates a caller's dataset; partitioning produces fresh copies.
type Dataset struct {
	schema Schema
	cols   []column
	rows   int
}

// New creates an empty dataset with the given schema.
func New(schema Schema) *Dataset {
	return &Dataset{
		schema: slices.Clone(schema),
		cols:   make([]column, len(schema)),
	}
}

// Schema returns a copy of the dataset's schema.
func (d *Dataset) Schema() Schema {
	return slices.Clone(d.schema)
}

// NumRows returns the number of rows.
func (d *Dataset) NumRows() int {
	return d.rows
}

// AppendRow appends one row. Values must match the schema in order and kind:
// float columns accept float64 or int, int columns accept int or int64,
// string columns accept string.
func (d *Dataset) AppendRow(values ...any) error {
	if len(values) != len(d.schema) {
		return fmt.Errorf("dataset: row has %d values, schema has %d columns", len(values), len(d.schema))
	}

	// Validate the whole row before touching any column, so a rejected row
	// leaves the dataset unchanged.
	for i, v := range values {
		switch d.schema[i].Kind {
		case KindFloat:
			switch v.(type) {
			case float64, int:
			default:
				return fmt.Errorf("dataset: column %q expects float, got %T", d.schema[i].Name, v)
			}
		case KindInt:
			switch v.(type) {
			case int, int64:
			default:
				return fmt.Errorf("dataset: column %q expects int, got %T", d.schema[i].Name, v)
			}
		case KindString:
			if _, ok := v.(string); !ok {
				return fmt.Errorf("dataset: column %q expects string, got %T", d.schema[i].Name, v)
			}
		}
	}

	for i, v := range values {
		col := &d.cols[i]
		switch d.schema[i].Kind {
		case KindFloat:
			switch x := v.(type) {
			case float64:
				col.floats = append(col.floats, x)
			case int:
				col.floats = append(col.floats, float64(x))
			}
		case KindInt:
			switch x := v.(type) {
			case int:
				col.ints = append(col.ints, int64(x))
			case int64:
				col.ints = append(col.ints, x)
			}
		case KindString:
			col.strs = append(col.strs, v.(string))
		}
	}
	d.rows++
	return nil
}

// Floats returns the values of a float column.
func (d *Dataset) Floats(name string) ([]float64, error) {
	i := d.schema.Index(name)
	if i < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}
	if d.schema[i].Kind != KindFloat {
		return nil, fmt.Errorf("dataset: column %q is %s, not float", name, d.schema[i].Kind)
	}
	return slices.Clone(d.cols[i].floats), nil
}

// Ints returns the values of an int column.
func (d *Dataset) Ints(name string) ([]int64, error) {
	i := d.schema.Index(name)
	if i < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}
	if d.schema[i].Kind != KindInt {
		return nil, fmt.Errorf("dataset: column %q is %s, not int", name, d.schema[i].Kind)
	}
	return slices.Clone(d.cols[i].ints), nil
}

// Strings returns the values of a string column.
func (d *Dataset) Strings(name string) ([]string, error) {
	i := d.schema.Index(name)
	if i < 0 {
		return nil, &ErrColumnNotFound{Column: name}
	}
	if d.schema[i].Kind != KindString {
		return nil, fmt.Errorf("dataset: column %q is %s, not string", name, d.schema[i].Kind)
	}
	return slices.Clone(d.cols[i].strs), nil
}

// Matrix is the numeric feature view of a dataset: a flat row-major
// []float32 of Rows x Dim values. It carries no label information.
type Matrix struct {
	Data []float32
	Rows int
	Dim  int
}

// Row returns the i-th feature vector. The returned slice aliases Data.
func (m *Matrix) Row(i int) []float32 {
	return m.Data[i*m.Dim : (i+1)*m.Dim]
}

// Select extracts the named numeric columns into a feature matrix,
// preserving row order. String columns are rejected with ErrNotNumeric.
func (d *Dataset) Select(features []string) (*Matrix, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("dataset: feature list must not be empty")
	}

	idx := make([]int, len(features))
	for j, name := range features {
		i := d.schema.Index(name)
		if i < 0 {
			return nil, &ErrColumnNotFound{Column: name}
		}
		if d.schema[i].Kind == KindString {
			return nil, &ErrNotNumeric{Column: name, Kind: d.schema[i].Kind}
		}
		idx[j] = i
	}

	dim := len(features)
	m := &Matrix{
		Data: make([]float32, d.rows*dim),
		Rows: d.rows,
		Dim:  dim,
	}
	for j, i := range idx {
		col := &d.cols[i]
		switch d.schema[i].Kind {
		case KindFloat:
			for r := 0; r < d.rows; r++ {
				m.Data[r*dim+j] = float32(col.floats[r])
			}
		case KindInt:
			for r := 0; r < d.rows; r++ {
				m.Data[r*dim+j] = float32(col.ints[r])
			}
		}
	}
	return m, nil
}

// Subset returns a new dataset containing the given rows, in the given
// order. The result holds fresh copies and shares no storage with d.
func (d *Dataset) Subset(rows []int) (*Dataset, error) {
	out := New(d.schema)
	for _, r := range rows {
		if r < 0 || r >= d.rows {
			return nil, fmt.Errorf("dataset: row index %d out of range [0, %d)", r, d.rows)
		}
	}
	for i := range d.cols {
		col := &d.cols[i]
		dst := &out.cols[i]
		switch d.schema[i].Kind {
		case KindFloat:
			dst.floats = make([]float64, len(rows))
			for j, r := range rows {
				dst.floats[j] = col.floats[r]
			}
		case KindInt:
			dst.ints = make([]int64, len(rows))
			for j, r := range rows {
				dst.ints[j] = col.ints[r]
			}
		case KindString:
			dst.strs = make([]string, len(rows))
			for j, r := range rows {
				dst.strs[j] = col.strs[r]
			}
		}
	}
	out.rows = len(rows)
	return out, nil
}

// Empty returns a zero-row dataset with the same schema.
func (d *Dataset) Empty() *Dataset {
	return New(d.schema)
}

// Equal reports whether two datasets have the same schema and values.
func (d *Dataset) Equal(o *Dataset) bool {
	if o == nil || d.rows != o.rows || !slices.Equal(d.schema, o.schema) {
		return false
	}
	for i := range d.cols {
		if !slices.Equal(d.cols[i].floats, o.cols[i].floats) ||
			!slices.Equal(d.cols[i].ints, o.cols[i].ints) ||
			!slices.Equal(d.cols[i].strs, o.cols[i].strs) {
			return false
		}
	}
	return true
}
