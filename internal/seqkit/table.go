package seqkit

import "strings"

// Table is parsed tab-separated tool output: an ordered header row and one
// column->value map per data row.
type Table struct {
	// Header holds the column names in file order
	Header []string

	// Rows holds one map per data row, keyed by column name
	Rows []map[string]string
}

// ParseTabular parses seqkit's tab-separated output. Blank lines are dropped;
// fewer than two remaining lines yields an empty table. Each data line is
// zipped positionally with the header, stopping at the shorter of the two.
func ParseTabular(text string) *Table {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return &Table{}
	}

	table := &Table{Header: strings.Split(lines[0], "\t")}
	for _, line := range lines[1:] {
		values := strings.Split(line, "\t")
		row := map[string]string{}
		for i, col := range table.Header {
			if i >= len(values) {
				break
			}
			row[col] = values[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}

// JSONValue returns the shape downstream consumers expect: the flat map when
// exactly one data row exists, the ordered slice of maps otherwise, and an
// empty map for an empty table. The scalar-or-list asymmetry is load-bearing.
func (t *Table) JSONValue() interface{} {
	switch len(t.Rows) {
	case 0:
		return map[string]string{}
	case 1:
		return t.Rows[0]
	}
	return t.Rows
}
