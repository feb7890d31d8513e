package validate

import (
	"strings"
	"testing"

	"github.com/sunitj/fastx-mcp/internal/fault"
)

func TestFasta(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			"single record",
			">seq_1 a test sequence\nATGCATGC\n",
			false,
		},
		{
			"multi record with ambiguity codes and gaps",
			">seq_1\nATGCRYSWKM\n>seq_2\nBDHVN-ATGC\n",
			false,
		},
		{
			"lowercase sequence",
			">seq_1\natgcatgc\n",
			false,
		},
		{
			"trailing header without sequence",
			">seq_1\nATGC\n>seq_2\n",
			false,
		},
		{
			"empty content",
			"   \n  ",
			true,
		},
		{
			"missing leading header",
			"ATGCATGC\n>seq_1\nATGC\n",
			true,
		},
		{
			"invalid characters",
			">seq_1\nATGCXZ\n",
			true,
		},
		{
			"header only, no sequence anywhere",
			">seq_1\n>seq_2\n",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Fasta(tt.text); (err != nil) != tt.wantErr {
				t.Errorf("Fasta() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFastq(t *testing.T) {
	record := "@read_1\nATGC\n+\nIIII\n"

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{
			"single record",
			record,
			false,
		},
		{
			"two records",
			record + "@read_2\nGGCC\n+read_2\nFFFF\n",
			false,
		},
		{
			"empty content",
			"",
			true,
		},
		{
			"not a multiple of four lines",
			record + "@read_2\nGGCC\n",
			true,
		},
		{
			"header missing @",
			"read_1\nATGC\n+\nIIII\n",
			true,
		},
		{
			"separator missing +",
			"@read_1\nATGC\nsep\nIIII\n",
			true,
		},
		{
			"length mismatch",
			"@read_1\nATGCA\n+\nIIII\n",
			true,
		},
		{
			"invalid sequence characters",
			"@read_1\nAT1C\n+\nIIII\n",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Fastq(tt.text); (err != nil) != tt.wantErr {
				t.Errorf("Fastq() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenBank(t *testing.T) {
	valid := "LOCUS       TEST_001    100 bp    DNA\nORIGIN\n        1 atgcatgc\n//\n"

	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"valid markers", valid, false},
		{"lowercase markers", strings.ToLower(valid), false},
		{"empty", " ", true},
		{"missing LOCUS", "ORIGIN\natgc\n//\n", true},
		{"missing ORIGIN", "LOCUS TEST\n//\n", true},
		{"missing terminator", "LOCUS TEST\nORIGIN\natgc\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := GenBank(tt.text); (err != nil) != tt.wantErr {
				t.Errorf("GenBank() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCoordinates(t *testing.T) {
	type args struct {
		start, end, maxLength int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{"valid bounded", args{0, 10, 100}, false},
		{"valid at upper bound", args{90, 100, 100}, false},
		{"valid unbounded", args{5, 500, -1}, false},
		{"negative start", args{-1, 10, 100}, true},
		{"end equals start", args{10, 10, 100}, true},
		{"end before start", args{20, 10, 100}, true},
		{"end past sequence", args{0, 101, 100}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Coordinates(tt.args.start, tt.args.end, tt.args.maxLength)
			if (err != nil) != tt.wantErr {
				t.Errorf("Coordinates() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"simple id", "test_sequence_1", false},
		{"dots and dashes", "NM_000797.4-variant", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 256), true},
		{"slash", "seq/1", true},
		{"angle bracket", "seq<1", true},
		{"wildcard", "seq*", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Identifier(tt.id); (err != nil) != tt.wantErr {
				t.Errorf("Identifier() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestContentSize(t *testing.T) {
	if err := ContentSize(strings.Repeat("A", 1024), 1); err != nil {
		t.Errorf("ContentSize() under cap = %v, want nil", err)
	}

	err := ContentSize(strings.Repeat("A", 1024*1024+1), 1)
	if err == nil {
		t.Fatal("ContentSize() over cap = nil, want error")
	}
	if !fault.IsKind(err, fault.Validation) {
		t.Errorf("ContentSize() kind = %v, want validation", fault.KindOf(err))
	}
}

func TestInputFormat(t *testing.T) {
	for _, s := range []string{"", "string", "plain"} {
		got, err := InputFormat(s)
		if err != nil || got != "plain" {
			t.Errorf("InputFormat(%q) = %q, %v, want plain", s, got, err)
		}
	}

	if got, err := InputFormat("base64"); err != nil || got != "base64" {
		t.Errorf("InputFormat(base64) = %q, %v", got, err)
	}

	if _, err := InputFormat("hex"); err == nil {
		t.Error("InputFormat(hex) = nil, want error")
	}
}

func TestOutputFormat(t *testing.T) {
	if got, _ := OutputFormat(""); got != "json" {
		t.Errorf("OutputFormat(\"\") = %q, want json", got)
	}
	if _, err := OutputFormat("yaml"); err == nil {
		t.Error("OutputFormat(yaml) = nil, want error")
	}
}

func TestContentMarker(t *testing.T) {
	if got := ContentMarker("ATGCATGC"); got != "<content_length:8>" {
		t.Errorf("ContentMarker() = %q", got)
	}
}
