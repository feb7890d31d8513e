// Package validate holds the grammar and parameter checks run against request
// content before it reaches the transform engine or the seqkit bridge. All
// checks are pure and fail on the first problem found.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sunitj/fastx-mcp/internal/content"
	"github.com/sunitj/fastx-mcp/internal/fault"
)

// DefaultMaxContentMB caps request content at 50MB unless configured otherwise.
const DefaultMaxContentMB = 50

var (
	// iupacSeq matches a sequence line over the extended IUPAC nucleotide
	// alphabet, including gaps. Checked against upper-cased lines.
	iupacSeq = regexp.MustCompile(`^[ATCGRYSWKMBDHVN-]+$`)

	// badIDChars are disallowed in sequence identifiers
	badIDChars = regexp.MustCompile(`[<>:"/\\|?*]`)
)

// Fasta checks that content is a syntactically valid FASTA blob: it starts
// with a `>` header and every sequence line is IUPAC. At least one sequence
// line must exist somewhere; a trailing header without sequence lines is
// tolerated as long as another record has sequence content.
func Fasta(text string) error {
	const op = "validate_fasta"

	if strings.TrimSpace(text) == "" {
		return fault.New(fault.Validation, op, "empty content provided")
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if !strings.HasPrefix(lines[0], ">") {
		return fault.New(fault.Validation, op, "FASTA content must start with a header line (>)")
	}

	hasSequence := false
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ">") {
			continue
		}
		if !iupacSeq.MatchString(strings.ToUpper(line)) {
			return fault.New(fault.Validation, op, "invalid sequence characters found: %s", line)
		}
		hasSequence = true
	}

	if !hasSequence {
		return fault.New(fault.Validation, op, "no valid sequence data found in FASTA content")
	}

	return nil
}

// Fastq checks that content is a valid FASTQ blob: a positive multiple of 4
// lines, `@` headers, `+` separators, matching sequence/quality lengths and
// IUPAC sequence lines.
func Fastq(text string) error {
	const op = "validate_fastq"

	if strings.TrimSpace(text) == "" {
		return fault.New(fault.Validation, op, "empty content provided")
	}

	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 4 {
		return fault.New(fault.Validation, op, "FASTQ content must have at least 4 lines per record")
	}
	if len(lines)%4 != 0 {
		return fault.New(fault.Validation, op, "FASTQ content must have complete 4-line records")
	}

	for i := 0; i < len(lines); i += 4 {
		if !strings.HasPrefix(lines[i], "@") {
			return fault.New(fault.Validation, op, "line %d: FASTQ header must start with '@'", i+1)
		}
		if !strings.HasPrefix(lines[i+2], "+") {
			return fault.New(fault.Validation, op, "line %d: FASTQ quality header must start with '+'", i+3)
		}

		seq := strings.TrimSpace(lines[i+1])
		qual := strings.TrimSpace(lines[i+3])
		if len(seq) != len(qual) {
			return fault.New(fault.Validation, op, "record starting at line %d: sequence and quality lengths don't match", i+1)
		}
		if !iupacSeq.MatchString(strings.ToUpper(seq)) {
			return fault.New(fault.Validation, op, "line %d: invalid sequence characters found", i+2)
		}
	}

	return nil
}

// GenBank checks for the structural markers every GenBank record carries:
// a LOCUS line, an ORIGIN section and a `//` terminator. Necessary markers,
// not sufficient ones; the parser does the real work.
func GenBank(text string) error {
	const op = "validate_genbank"

	if strings.TrimSpace(text) == "" {
		return fault.New(fault.Validation, op, "empty content provided")
	}

	upper := strings.ToUpper(text)
	if !strings.Contains(upper, "LOCUS") {
		return fault.New(fault.Validation, op, "GenBank content must contain LOCUS line")
	}
	if !strings.Contains(upper, "ORIGIN") {
		return fault.New(fault.Validation, op, "GenBank content must contain ORIGIN section")
	}
	if !strings.Contains(text, "//") {
		return fault.New(fault.Validation, op, "GenBank content must end with '//'")
	}

	return nil
}

// Coordinates checks a half-open [start, end) range. A negative maxLength
// means the upper bound is unknown and only the relative ordering is checked.
func Coordinates(start, end, maxLength int) error {
	const op = "validate_coordinates"

	if start < 0 {
		return fault.New(fault.Validation, op, "start coordinate must be non-negative")
	}
	if end <= start {
		return fault.New(fault.Validation, op, "end coordinate must be greater than start coordinate")
	}
	if maxLength >= 0 && end > maxLength {
		return fault.New(fault.Validation, op, "end coordinate (%d) exceeds sequence length (%d)", end, maxLength)
	}

	return nil
}

// Identifier checks a sequence id: non-empty, at most 255 characters, and
// free of filesystem-hostile characters.
func Identifier(id string) error {
	const op = "validate_identifier"

	if strings.TrimSpace(id) == "" {
		return fault.New(fault.Validation, op, "sequence ID cannot be empty")
	}
	if len(strings.TrimSpace(id)) > 255 {
		return fault.New(fault.Validation, op, "sequence ID cannot exceed 255 characters")
	}
	if badIDChars.MatchString(id) {
		return fault.New(fault.Validation, op, "sequence ID contains invalid characters")
	}

	return nil
}

// ContentSize checks the UTF-8 byte length of content against a megabyte cap.
// A non-positive maxMB falls back to the default.
func ContentSize(text string, maxMB int) error {
	const op = "validate_content_size"

	if maxMB <= 0 {
		maxMB = DefaultMaxContentMB
	}

	maxBytes := maxMB * 1024 * 1024
	if len(text) > maxBytes {
		return fault.New(fault.Validation, op, "content size (%d bytes) exceeds maximum allowed size (%d bytes)", len(text), maxBytes)
	}

	return nil
}

// InputFormat checks the declared content encoding and returns its canonical
// form. "string" is the wire name for plain text and is accepted as an alias.
func InputFormat(s string) (string, error) {
	switch s {
	case "", "string", content.EncodingPlain:
		return content.EncodingPlain, nil
	case content.EncodingBase64:
		return content.EncodingBase64, nil
	}

	return "", fault.New(fault.Validation, "validate_input_format", "invalid input format %q, must be one of: [string base64]", s)
}

// OutputFormat checks the requested stats output shape, defaulting to json.
func OutputFormat(s string) (string, error) {
	switch s {
	case "", "json":
		return "json", nil
	case "text":
		return "text", nil
	}

	return "", fault.New(fault.Validation, "validate_output_format", "invalid output format %q, must be one of: [json text]", s)
}

// ContentMarker replaces content-bearing parameter values in audit entries,
// keeping only the length. fmt keeps the marker format in one place.
func ContentMarker(text string) string {
	return fmt.Sprintf("<content_length:%d>", len(text))
}
