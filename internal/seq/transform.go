package seq

import (
	"fmt"

	"github.com/sunitj/fastx-mcp/internal/content"
	"github.com/sunitj/fastx-mcp/internal/fault"
	"github.com/sunitj/fastx-mcp/internal/validate"
)

// ConversionResult summarizes the records found in GenBank content.
type ConversionResult struct {
	// RecordCount is the number of records parsed
	RecordCount int `json:"record_count"`

	// TotalLength is the sum of per-record sequence lengths
	TotalLength int `json:"total_length"`

	// RecordIDs are the identifiers in input order
	RecordIDs []string `json:"record_ids"`
}

// SequenceInfo describes one FASTA record in a summary.
type SequenceInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Length      int    `json:"length"`
}

// FastaResult summarizes the records found in FASTA content.
type FastaResult struct {
	RecordCount int            `json:"record_count"`
	TotalLength int            `json:"total_length"`
	Sequences   []SequenceInfo `json:"sequences"`
}

// GenBankToFasta converts GenBank content to FASTA text, one header+sequence
// block per record, preserving record order and identifiers.
func GenBankToFasta(text, encoding string) (string, error) {
	const op = "genbank_to_fasta"

	decoded, err := content.Decode(text, encoding)
	if err != nil {
		return "", fault.Wrap(fault.Conversion, op, "failed to convert GenBank to FASTA", err)
	}

	records := ParseGenBank(decoded)
	if len(records) == 0 {
		return "", fault.New(fault.Conversion, op, "no valid GenBank records found in input")
	}

	return WriteFasta(records), nil
}

// ConversionSummary reports the record count, total sequence length and
// ordered identifiers of GenBank content. Zero records is not an error; the
// zero-valued summary is returned instead.
func ConversionSummary(text, encoding string) (*ConversionResult, error) {
	const op = "conversion_summary"

	decoded, err := content.Decode(text, encoding)
	if err != nil {
		return nil, fault.Wrap(fault.Conversion, op, "failed to analyze GenBank content", err)
	}

	summary := &ConversionResult{RecordIDs: []string{}}
	for _, r := range ParseGenBank(decoded) {
		summary.RecordCount++
		summary.TotalLength += len(r.Seq)
		summary.RecordIDs = append(summary.RecordIDs, r.ID)
	}

	return summary, nil
}

// ReverseComplement replaces every record in FASTA content with its reverse
// complement. The new identifier is "<id>_rc" and the description gains a
// " (reverse complement)" suffix. Record order is preserved.
func ReverseComplement(text, encoding string) (string, error) {
	const op = "reverse_complement"

	decoded, err := content.Decode(text, encoding)
	if err != nil {
		return "", fault.Wrap(fault.Manipulation, op, "failed to reverse complement FASTA", err)
	}

	records := ParseFasta(decoded)
	if len(records) == 0 {
		return "", fault.New(fault.Manipulation, op, "no valid FASTA records found in input")
	}

	rc := make([]Record, len(records))
	for i, r := range records {
		desc := "(reverse complement)"
		if r.Description != "" {
			desc = r.Description + " (reverse complement)"
		}
		rc[i] = Record{
			ID:          r.ID + "_rc",
			Description: desc,
			Seq:         RevComp(r.Seq),
		}
	}

	return WriteFasta(rc), nil
}

// ExtractSubsequence slices the half-open range [start, end) out of the
// record whose identifier exactly equals sequenceID. Out-of-range coordinates
// fail rather than truncate.
func ExtractSubsequence(text, encoding, sequenceID string, start, end int) (string, error) {
	const op = "extract_subsequence"

	decoded, err := content.Decode(text, encoding)
	if err != nil {
		return "", fault.Wrap(fault.Manipulation, op, "failed to extract subsequence", err)
	}

	records := ParseFasta(decoded)
	if len(records) == 0 {
		return "", fault.New(fault.Manipulation, op, "no valid FASTA records found in input")
	}

	var target *Record
	for i := range records {
		if records[i].ID == sequenceID {
			target = &records[i]
			break
		}
	}
	if target == nil {
		return "", fault.New(fault.Manipulation, op, "sequence with ID '%s' not found", sequenceID)
	}

	if err := validate.Coordinates(start, end, len(target.Seq)); err != nil {
		return "", fault.New(
			fault.Manipulation, op,
			"invalid coordinates: start=%d, end=%d, sequence_length=%d", start, end, len(target.Seq),
		)
	}

	desc := fmt.Sprintf("(subsequence %d-%d)", start, end)
	if target.Description != "" {
		desc = fmt.Sprintf("%s (subsequence %d-%d)", target.Description, start, end)
	}

	sub := Record{
		ID:          fmt.Sprintf("%s_subseq_%d_%d", sequenceID, start, end),
		Description: desc,
		Seq:         target.Seq[start:end],
	}

	return WriteFasta([]Record{sub}), nil
}

// FastaSummary reports per-record id, description and length plus aggregate
// counts for FASTA content. Zero records yields the zero-valued summary.
func FastaSummary(text, encoding string) (*FastaResult, error) {
	const op = "fasta_summary"

	decoded, err := content.Decode(text, encoding)
	if err != nil {
		return nil, fault.Wrap(fault.Manipulation, op, "failed to analyze FASTA content", err)
	}

	summary := &FastaResult{Sequences: []SequenceInfo{}}
	for _, r := range ParseFasta(decoded) {
		summary.RecordCount++
		summary.TotalLength += len(r.Seq)
		summary.Sequences = append(summary.Sequences, SequenceInfo{
			ID:          r.ID,
			Description: r.Description,
			Length:      len(r.Seq),
		})
	}

	return summary, nil
}
