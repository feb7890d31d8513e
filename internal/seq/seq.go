// Package seq parses, writes and transforms nucleotide sequence records in
// the FASTA and GenBank text formats.
package seq

import (
	"bufio"
	"strings"
)

// fastaLineLength is the column width sequences are wrapped at on output.
const fastaLineLength = 60

// Record is a single named nucleotide sequence.
type Record struct {
	// ID is the record identifier, unique within a file. In
	// ">example_CDS some description" FASTA it's "example_CDS"
	ID string `json:"id"`

	// Description is the free text after the identifier on the header line
	Description string `json:"description"`

	// Seq is the nucleotide sequence, case preserved as parsed
	Seq string `json:"seq"`
}

// ParseFasta reads zero or more records from multi-FASTA text. The identifier
// is the first whitespace-delimited token of the header, the description is
// the remainder. Records without any sequence lines are dropped.
func ParseFasta(text string) (records []Record) {
	var current *Record
	var seq strings.Builder

	flush := func() {
		if current != nil && seq.Len() > 0 {
			current.Seq = seq.String()
			records = append(records, *current)
		}
		current = nil
		seq.Reset()
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	// token cap sized to the input so a whole-sequence line is never truncated
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			flush()

			header := strings.TrimSpace(line[1:])
			id, desc := header, ""
			if i := strings.IndexAny(header, " \t"); i >= 0 {
				id, desc = header[:i], strings.TrimSpace(header[i+1:])
			}
			current = &Record{ID: id, Description: desc}
			continue
		}

		if current != nil {
			seq.WriteString(line)
		}
	}
	flush()

	return records
}

// ParseGenBank reads zero or more records from GenBank flatfile text. Records
// are delimited by `//` terminator lines; the identifier comes from the LOCUS
// line and the sequence from the ORIGIN section with position numbers and
// whitespace stripped. Case is preserved, so the conventional lowercase
// origin blocks stay lowercase. Annotations beyond LOCUS and ORIGIN are
// ignored.
func ParseGenBank(text string) (records []Record) {
	var id string
	var seq strings.Builder
	inOrigin := false

	flush := func() {
		if id != "" && seq.Len() > 0 {
			records = append(records, Record{ID: id, Seq: seq.String()})
		}
		id = ""
		seq.Reset()
		inOrigin = false
	}

	scanner := bufio.NewScanner(strings.NewReader(text))
	// token cap sized to the input so a whole-sequence line is never truncated
	scanner.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "//" {
			flush()
			continue
		}

		upper := strings.ToUpper(trimmed)
		if strings.HasPrefix(upper, "LOCUS") {
			fields := strings.Fields(trimmed)
			if len(fields) > 1 {
				id = fields[1]
			}
			continue
		}

		if strings.HasPrefix(upper, "ORIGIN") {
			inOrigin = true
			continue
		}

		if inOrigin {
			for _, r := range trimmed {
				if isBase(byte(r)) {
					seq.WriteRune(r)
				}
			}
		}
	}
	flush()

	return records
}

// isBase reports whether c can appear in a sequence: an IUPAC letter or a gap.
func isBase(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-'
}

// WriteFasta renders records as FASTA text with sequences wrapped at 60
// columns. The description is omitted from the header when empty.
func WriteFasta(records []Record) string {
	var out strings.Builder

	for _, r := range records {
		out.WriteString(">")
		out.WriteString(r.ID)
		if r.Description != "" {
			out.WriteString(" ")
			out.WriteString(r.Description)
		}
		out.WriteString("\n")

		for i := 0; i < len(r.Seq); i += fastaLineLength {
			end := i + fastaLineLength
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			out.WriteString(r.Seq[i:end])
			out.WriteString("\n")
		}
	}

	return out.String()
}

// complement maps each IUPAC nucleotide code, both cases, to its complement.
// Ambiguity codes pair as R<->Y, K<->M, B<->V, D<->H; S, W and N are their
// own complements, as is the gap character. Everything else maps to itself.
var complement [256]byte

func init() {
	for i := range complement {
		complement[i] = byte(i)
	}
	pairs := []struct{ a, b byte }{
		{'A', 'T'}, {'C', 'G'}, {'R', 'Y'}, {'K', 'M'}, {'B', 'V'}, {'D', 'H'},
	}
	for _, p := range pairs {
		complement[p.a] = p.b
		complement[p.b] = p.a
		complement[p.a+32] = p.b + 32
		complement[p.b+32] = p.a + 32
	}
}

// RevComp returns the reverse complement of a sequence, preserving case.
func RevComp(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[len(seq)-1-i] = complement[seq[i]]
	}
	return string(rc)
}
