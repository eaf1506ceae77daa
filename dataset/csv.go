package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ReadCSV reads a dataset from CSV. The first record must be a header whose
// names match the schema in order; values are parsed per column kind.
func ReadCSV(r io.Reader, schema Schema) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(schema)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read csv header: %w", err)
	}
	for i, c := range schema {
		if header[i] != c.Name {
			return nil, fmt.Errorf("dataset: csv header %q at position %d, schema expects %q", header[i], i, c.Name)
		}
	}

	d := New(schema)
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read csv row %d: %w", row, err)
		}

		values := make([]any, len(schema))
		for i, c := range schema {
			switch c.Kind {
			case KindFloat:
				f, err := strconv.ParseFloat(rec[i], 64)
				if err != nil {
					return nil, fmt.Errorf("dataset: row %d column %q: %w", row, c.Name, err)
				}
				values[i] = f
			case KindInt:
				n, err := strconv.ParseInt(rec[i], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("dataset: row %d column %q: %w", row, c.Name, err)
				}
				values[i] = n
			case KindString:
				values[i] = rec[i]
			}
		}
		if err := d.AppendRow(values...); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// WriteCSV writes the dataset as CSV with a header row.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(d.schema))
	for i, c := range d.schema {
		header[i] = c.Name
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	rec := make([]string, len(d.schema))
	for r := 0; r < d.rows; r++ {
		for i, c := range d.schema {
			switch c.Kind {
			case KindFloat:
				rec[i] = strconv.FormatFloat(d.cols[i].floats[r], 'g', -1, 64)
			case KindInt:
				rec[i] = strconv.FormatInt(d.cols[i].ints[r], 10)
			case KindString:
				rec[i] = d.cols[i].strs[r]
			}
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
