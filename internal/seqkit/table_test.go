package seqkit

import (
	"reflect"
	"testing"
)

const statsOutput = "file\tformat\ttype\tnum_seqs\tsum_len\tmin_len\tavg_len\tmax_len\n" +
	"/tmp/fastx-1.fastq\tFASTQ\tDNA\t25\t2500\t100\t100.0\t100\n"

func TestParseTabular(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantHeader []string
		wantRows   int
	}{
		{
			"header plus one row",
			statsOutput,
			[]string{"file", "format", "type", "num_seqs", "sum_len", "min_len", "avg_len", "max_len"},
			1,
		},
		{
			"header plus two rows with blank lines",
			"name\tlen\n\nseq_1\t100\n\nseq_2\t250\n",
			[]string{"name", "len"},
			2,
		},
		{
			"header only",
			"name\tlen\n",
			nil,
			0,
		},
		{
			"empty input",
			"\n  \n",
			nil,
			0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := ParseTabular(tt.text)
			if !reflect.DeepEqual(table.Header, tt.wantHeader) {
				t.Errorf("ParseTabular() header = %v, want %v", table.Header, tt.wantHeader)
			}
			if len(table.Rows) != tt.wantRows {
				t.Errorf("ParseTabular() rows = %d, want %d", len(table.Rows), tt.wantRows)
			}
		})
	}
}

func TestParseTabularRaggedRow(t *testing.T) {
	// a short data row zips against the header up to its own length
	table := ParseTabular("a\tb\tc\n1\t2\n")
	want := map[string]string{"a": "1", "b": "2"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Errorf("ParseTabular() row = %v, want %v", table.Rows[0], want)
	}
}

func TestJSONValue(t *testing.T) {
	// one data row degenerates to the flat map
	single := ParseTabular(statsOutput).JSONValue()
	row, ok := single.(map[string]string)
	if !ok {
		t.Fatalf("JSONValue() single row = %T, want map", single)
	}
	if row["num_seqs"] != "25" || row["format"] != "FASTQ" {
		t.Errorf("JSONValue() = %v", row)
	}

	// multiple rows keep the list shape, in input order
	multi := ParseTabular("name\tlen\nseq_1\t100\nseq_2\t250\nseq_3\t50\n").JSONValue()
	rows, ok := multi.([]map[string]string)
	if !ok {
		t.Fatalf("JSONValue() multi row = %T, want slice", multi)
	}
	if len(rows) != 3 || rows[0]["name"] != "seq_1" || rows[2]["len"] != "50" {
		t.Errorf("JSONValue() = %v", rows)
	}

	// an empty table is an empty map, not nil
	empty := ParseTabular("").JSONValue()
	if m, ok := empty.(map[string]string); !ok || len(m) != 0 {
		t.Errorf("JSONValue() empty = %#v, want empty map", empty)
	}
}
