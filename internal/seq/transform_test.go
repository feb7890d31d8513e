package seq

import (
	"encoding/base64"
	"reflect"
	"strings"
	"testing"

	"github.com/sunitj/fastx-mcp/internal/fault"
)

// genbank100 is a single record whose origin section holds 100 bases.
const genbank100 = `LOCUS       TEST_SEQ                100 bp    DNA     linear   SYN 01-JAN-2024
DEFINITION  synthetic construct for conversion tests.
ORIGIN
        1 atgcatgcat gcatgcatgc atgcatgcat gcatgcatgc atgcatgcat gcatgcatgc
       61 atgcatgcat gcatgcatgc atgcatgcat gcatgcatgc
//
`

func TestGenBankToFasta(t *testing.T) {
	got, err := GenBankToFasta(genbank100, "plain")
	if err != nil {
		t.Fatalf("GenBankToFasta() error = %v", err)
	}

	if !strings.HasPrefix(got, ">TEST_SEQ") {
		t.Errorf("GenBankToFasta() output starts with %q, want >TEST_SEQ header", got[:20])
	}

	records := ParseFasta(got)
	if len(records) != 1 {
		t.Fatalf("GenBankToFasta() emitted %d records, want 1", len(records))
	}
	if len(records[0].Seq) != 100 {
		t.Errorf("GenBankToFasta() sequence length = %d, want 100", len(records[0].Seq))
	}
	if records[0].Seq != strings.ToLower(records[0].Seq) {
		t.Error("GenBankToFasta() upper-cased the origin sequence")
	}
}

func TestGenBankToFastaBase64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte(genbank100))

	got, err := GenBankToFasta(encoded, "base64")
	if err != nil {
		t.Fatalf("GenBankToFasta() error = %v", err)
	}
	if !strings.HasPrefix(got, ">TEST_SEQ") {
		t.Errorf("GenBankToFasta() = %q", got)
	}
}

func TestGenBankToFastaErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		encoding string
	}{
		{"zero records", "no genbank content here", "plain"},
		{"malformed base64", "%%%not-base64%%%", "base64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenBankToFasta(tt.text, tt.encoding)
			if err == nil {
				t.Fatal("GenBankToFasta() error = nil, want conversion fault")
			}
			if !fault.IsKind(err, fault.Conversion) {
				t.Errorf("GenBankToFasta() kind = %v, want conversion", fault.KindOf(err))
			}
		})
	}
}

func TestConversionSummary(t *testing.T) {
	summary, err := ConversionSummary(genbank100, "plain")
	if err != nil {
		t.Fatalf("ConversionSummary() error = %v", err)
	}

	want := &ConversionResult{RecordCount: 1, TotalLength: 100, RecordIDs: []string{"TEST_SEQ"}}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("ConversionSummary() = %+v, want %+v", summary, want)
	}
}

func TestConversionSummaryZeroRecords(t *testing.T) {
	summary, err := ConversionSummary("nothing to parse", "plain")
	if err != nil {
		t.Fatalf("ConversionSummary() error = %v, want nil for zero records", err)
	}

	want := &ConversionResult{RecordCount: 0, TotalLength: 0, RecordIDs: []string{}}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("ConversionSummary() = %+v, want zero summary", summary)
	}
}

func TestReverseComplement(t *testing.T) {
	got, err := ReverseComplement(">seq_1 a test\nATGC\n>seq_2\nGGAA\n", "plain")
	if err != nil {
		t.Fatalf("ReverseComplement() error = %v", err)
	}

	records := ParseFasta(got)
	if len(records) != 2 {
		t.Fatalf("ReverseComplement() emitted %d records, want 2", len(records))
	}

	first := records[0]
	if first.ID != "seq_1_rc" {
		t.Errorf("ReverseComplement() ID = %q, want seq_1_rc", first.ID)
	}
	if first.Description != "a test (reverse complement)" {
		t.Errorf("ReverseComplement() description = %q", first.Description)
	}
	if first.Seq != "GCAT" {
		t.Errorf("ReverseComplement() Seq = %q, want GCAT", first.Seq)
	}

	if records[1].ID != "seq_2_rc" || records[1].Seq != "TTCC" {
		t.Errorf("ReverseComplement() second record = %+v", records[1])
	}
}

func TestReverseComplementRoundTrip(t *testing.T) {
	in := ">seq_1\nATGCATGCGGTTAACC\n"

	once, err := ReverseComplement(in, "plain")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := ReverseComplement(once, "plain")
	if err != nil {
		t.Fatal(err)
	}

	records := ParseFasta(twice)
	if records[0].Seq != "ATGCATGCGGTTAACC" {
		t.Errorf("double reverse complement = %q, want original sequence", records[0].Seq)
	}
}

func TestReverseComplementNoRecords(t *testing.T) {
	_, err := ReverseComplement("plain text, not fasta", "plain")
	if err == nil || !fault.IsKind(err, fault.Manipulation) {
		t.Errorf("ReverseComplement() error = %v, want manipulation fault", err)
	}
}

func TestExtractSubsequence(t *testing.T) {
	seq50 := strings.Repeat("ATGCG", 10)
	in := ">test_sequence_1 demo record\n" + seq50 + "\n"

	got, err := ExtractSubsequence(in, "plain", "test_sequence_1", 10, 20)
	if err != nil {
		t.Fatalf("ExtractSubsequence() error = %v", err)
	}

	if !strings.Contains(got, "_subseq_10_20") {
		t.Errorf("ExtractSubsequence() header missing _subseq_10_20: %q", got)
	}

	records := ParseFasta(got)
	if len(records) != 1 {
		t.Fatalf("ExtractSubsequence() emitted %d records, want 1", len(records))
	}
	if len(records[0].Seq) != 10 {
		t.Errorf("ExtractSubsequence() length = %d, want 10", len(records[0].Seq))
	}
	if records[0].Seq != seq50[10:20] {
		t.Errorf("ExtractSubsequence() = %q, want %q", records[0].Seq, seq50[10:20])
	}
}

func TestExtractSubsequenceErrors(t *testing.T) {
	in := ">seq_1\nATGCATGCAT\n"

	type args struct {
		id         string
		start, end int
	}
	tests := []struct {
		name string
		args args
	}{
		{"unknown id", args{"seq_2", 0, 5}},
		{"end past sequence", args{"seq_1", 0, 11}},
		{"start after end", args{"seq_1", 5, 2}},
		{"negative start", args{"seq_1", -1, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractSubsequence(in, "plain", tt.args.id, tt.args.start, tt.args.end)
			if err == nil {
				t.Fatal("ExtractSubsequence() error = nil, want manipulation fault")
			}
			if !fault.IsKind(err, fault.Manipulation) {
				t.Errorf("ExtractSubsequence() kind = %v, want manipulation", fault.KindOf(err))
			}
		})
	}
}

func TestFastaSummary(t *testing.T) {
	summary, err := FastaSummary(">seq_1 first\nATGC\n>seq_2\nATGCATGC\n", "plain")
	if err != nil {
		t.Fatalf("FastaSummary() error = %v", err)
	}

	want := &FastaResult{
		RecordCount: 2,
		TotalLength: 12,
		Sequences: []SequenceInfo{
			{ID: "seq_1", Description: "first", Length: 4},
			{ID: "seq_2", Length: 8},
		},
	}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("FastaSummary() = %+v, want %+v", summary, want)
	}
}

func TestFastaSummaryZeroRecords(t *testing.T) {
	summary, err := FastaSummary("", "plain")
	if err != nil {
		t.Fatalf("FastaSummary() error = %v, want nil for zero records", err)
	}
	if summary.RecordCount != 0 || summary.TotalLength != 0 || len(summary.Sequences) != 0 {
		t.Errorf("FastaSummary() = %+v, want zero summary", summary)
	}
}
