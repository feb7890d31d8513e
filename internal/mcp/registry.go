// Package mcp is the static registry of tool descriptors republishing the
// HTTP operations in a machine-readable form for agent integration.
package mcp

import "fmt"

// Tool describes one operation: where it lives, what it takes and returns.
type Tool struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Method       string                 `json:"method"`
	Path         string                 `json:"path"`
	InputSchema  map[string]interface{} `json:"input_schema"`
	OutputSchema map[string]interface{} `json:"output_schema"`
	Tags         []string               `json:"tags"`
}

// Summary counts tools by category and lists the supported formats.
type Summary struct {
	TotalTools       int                    `json:"total_tools"`
	ToolsByCategory  map[string]int         `json:"tools_by_category"`
	SupportedFormats map[string]interface{} `json:"supported_formats"`
}

// schema builders keep the descriptor literals below readable.

func obj(props map[string]interface{}, required ...string) map[string]interface{} {
	s := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

func str(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "string", "description": desc}
}

func strEnum(desc, def string, values ...string) map[string]interface{} {
	return map[string]interface{}{
		"type": "string", "description": desc, "enum": values, "default": def,
	}
}

func boolean(desc string, def bool) map[string]interface{} {
	return map[string]interface{}{"type": "boolean", "description": desc, "default": def}
}

func integer(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "integer", "description": desc}
}

func number(desc string) map[string]interface{} {
	return map[string]interface{}{"type": "number", "description": desc}
}

var inputFormat = strEnum("Format of input content", "string", "string", "base64")

// Tools returns every registered tool descriptor, in registration order.
func Tools() []Tool {
	return []Tool{
		{
			Name:        "genbank_to_fasta",
			Description: "Convert GenBank format files to FASTA format with optional summary statistics",
			Method:      "POST",
			Path:        "/convert/genbank-to-fasta",
			InputSchema: obj(map[string]interface{}{
				"content":         str("GenBank file content"),
				"input_format":    inputFormat,
				"include_summary": boolean("Include conversion summary in response", false),
			}, "content"),
			OutputSchema: obj(map[string]interface{}{
				"fasta_content":      str("Converted FASTA content"),
				"success":            boolean("Whether the conversion succeeded", true),
				"conversion_summary": obj(map[string]interface{}{}),
				"execution_time_ms":  number("Wall-clock duration of the conversion"),
			}),
			Tags: []string{"conversion", "genbank", "fasta"},
		},
		{
			Name:        "reverse_complement",
			Description: "Generate reverse complement of all sequences in a FASTA file",
			Method:      "POST",
			Path:        "/manipulate/reverse-complement",
			InputSchema: obj(map[string]interface{}{
				"content":         str("FASTA file content"),
				"input_format":    inputFormat,
				"include_summary": boolean("Include manipulation summary in response", false),
			}, "content"),
			OutputSchema: obj(map[string]interface{}{
				"fasta_content":        str("Reverse-complemented FASTA content"),
				"success":              boolean("Whether the manipulation succeeded", true),
				"manipulation_summary": obj(map[string]interface{}{}),
				"execution_time_ms":    number("Wall-clock duration of the manipulation"),
			}),
			Tags: []string{"manipulation", "fasta", "reverse-complement"},
		},
		{
			Name:        "extract_subsequence",
			Description: "Extract subsequence by coordinates from a specific sequence in FASTA file",
			Method:      "POST",
			Path:        "/manipulate/extract-subsequence",
			InputSchema: obj(map[string]interface{}{
				"content":      str("FASTA file content"),
				"sequence_id":  str("Identifier of the sequence to slice"),
				"start":        integer("Start coordinate, 0-based inclusive"),
				"end":          integer("End coordinate, exclusive"),
				"input_format": inputFormat,
			}, "content", "sequence_id", "start", "end"),
			OutputSchema: obj(map[string]interface{}{
				"fasta_content":     str("Single-record FASTA holding the slice"),
				"success":           boolean("Whether the extraction succeeded", true),
				"subsequence_info":  obj(map[string]interface{}{}),
				"execution_time_ms": number("Wall-clock duration of the extraction"),
			}),
			Tags: []string{"manipulation", "fasta", "subsequence"},
		},
		{
			Name:        "seqkit_stats",
			Description: "Generate FASTQ statistics using seqkit stats command",
			Method:      "POST",
			Path:        "/seqkit/stats",
			InputSchema: obj(map[string]interface{}{
				"content":       str("FASTQ file content"),
				"input_format":  inputFormat,
				"output_format": strEnum("Format of output statistics", "json", "json", "text"),
			}, "content"),
			OutputSchema: obj(map[string]interface{}{
				"statistics":        obj(map[string]interface{}{}),
				"success":           boolean("Whether the stats run succeeded", true),
				"execution_time_ms": number("Wall-clock duration of the stats run"),
			}),
			Tags: []string{"seqkit", "statistics", "fastq"},
		},
		{
			Name:        "seqkit_command",
			Description: "Run custom seqkit commands on FASTQ files",
			Method:      "POST",
			Path:        "/seqkit/command",
			InputSchema: obj(map[string]interface{}{
				"content": str("FASTQ file content"),
				"command": str("seqkit command to run"),
				"args": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Additional command arguments",
				},
				"input_format": inputFormat,
			}, "content", "command"),
			OutputSchema: obj(map[string]interface{}{
				"output":            str("Raw stdout of the command"),
				"success":           boolean("Whether the command succeeded", true),
				"execution_time_ms": number("Wall-clock duration of the command"),
			}),
			Tags: []string{"seqkit", "command", "fastq"},
		},
	}
}

// ToolByName returns the descriptor registered under name.
func ToolByName(name string) (Tool, error) {
	for _, t := range Tools() {
		if t.Name == name {
			return t, nil
		}
	}
	return Tool{}, fmt.Errorf("tool '%s' not found", name)
}

// BuildSummary aggregates the registry by category tag.
func BuildSummary() Summary {
	tools := Tools()

	byCategory := map[string]int{"conversion": 0, "manipulation": 0, "seqkit": 0}
	for _, t := range tools {
		for _, tag := range t.Tags {
			if _, ok := byCategory[tag]; ok {
				byCategory[tag]++
			}
		}
	}

	return Summary{
		TotalTools:      len(tools),
		ToolsByCategory: byCategory,
		SupportedFormats: map[string]interface{}{
			"input":          []string{"string", "base64"},
			"sequence_types": []string{"FASTA", "FASTQ", "GenBank"},
		},
	}
}
