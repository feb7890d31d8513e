package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sunitj/fastx-mcp/internal/fault"
	"github.com/sunitj/fastx-mcp/internal/mcp"
	"github.com/sunitj/fastx-mcp/internal/seq"
	"github.com/sunitj/fastx-mcp/internal/validate"
)

// decodeBody unmarshals the JSON request body into v.
func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fault.New(fault.Validation, "decode_request", "invalid JSON body: %v", err)
	}
	return nil
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     serverName,
		"version":     serverVersion,
		"description": serverDescription,
		"endpoints": map[string]string{
			"convert":    "/convert/genbank-to-fasta",
			"manipulate": "/manipulate/reverse-complement",
			"seqkit":     "/seqkit/stats",
			"logs":       "/logs",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": float64(time.Now().UnixNano()) / float64(time.Second),
		"services": map[string]bool{
			"seqkit": s.bridge.Available(r.Context()),
		},
	})
}

// conversion

type genbankToFastaRequest struct {
	Content        string `json:"content"`
	InputFormat    string `json:"input_format"`
	IncludeSummary bool   `json:"include_summary"`
}

type genbankToFastaResponse struct {
	FastaContent      string                `json:"fasta_content"`
	Success           bool                  `json:"success"`
	ConversionSummary *seq.ConversionResult `json:"conversion_summary,omitempty"`
	ExecutionTimeMS   float64               `json:"execution_time_ms"`
}

func (s *Server) handleGenBankToFasta(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "genbank_to_fasta_conversion"
	endpoint := r.URL.Path

	var req genbankToFastaRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, op, endpoint, nil, start, err)
		return
	}

	params := map[string]interface{}{
		"input_format":    req.InputFormat,
		"include_summary": req.IncludeSummary,
		"content":         validate.ContentMarker(req.Content),
	}

	encoding, err := validate.InputFormat(req.InputFormat)
	if err == nil {
		err = validate.ContentSize(req.Content, s.cfg.MaxContentMB)
	}
	// base64 bodies are format-checked after decoding inside the engine
	if err == nil && encoding == "plain" {
		err = validate.GenBank(req.Content)
	}
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	fasta, err := seq.GenBankToFasta(req.Content, encoding)
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	var summary *seq.ConversionResult
	if req.IncludeSummary {
		if summary, err = seq.ConversionSummary(req.Content, encoding); err != nil {
			s.fail(w, op, endpoint, params, start, err)
			return
		}
	}

	s.record(op, endpoint, params, start, map[string]interface{}{
		"output_length":      len(fasta),
		"conversion_summary": summary,
	}, "")

	s.writeJSON(w, http.StatusOK, genbankToFastaResponse{
		FastaContent:      fasta,
		Success:           true,
		ConversionSummary: summary,
		ExecutionTimeMS:   elapsedMS(start),
	})
}

func (s *Server) handleConvertFormats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"supported_conversions": []map[string]string{
			{
				"from":        "genbank",
				"to":          "fasta",
				"endpoint":    "/convert/genbank-to-fasta",
				"description": "Convert GenBank format to FASTA format",
			},
		},
		"input_formats": []string{"string", "base64"},
		"features": []string{
			"Conversion summary statistics",
			"Multiple record support",
			"Error handling and validation",
		},
	})
}

// manipulation

type reverseComplementRequest struct {
	Content        string `json:"content"`
	InputFormat    string `json:"input_format"`
	IncludeSummary bool   `json:"include_summary"`
}

type reverseComplementResponse struct {
	FastaContent        string           `json:"fasta_content"`
	Success             bool             `json:"success"`
	ManipulationSummary *seq.FastaResult `json:"manipulation_summary,omitempty"`
	ExecutionTimeMS     float64          `json:"execution_time_ms"`
}

func (s *Server) handleReverseComplement(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "reverse_complement"
	endpoint := r.URL.Path

	var req reverseComplementRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, op, endpoint, nil, start, err)
		return
	}

	params := map[string]interface{}{
		"input_format":    req.InputFormat,
		"include_summary": req.IncludeSummary,
		"content":         validate.ContentMarker(req.Content),
	}

	encoding, err := validate.InputFormat(req.InputFormat)
	if err == nil {
		err = validate.ContentSize(req.Content, s.cfg.MaxContentMB)
	}
	if err == nil && encoding == "plain" {
		err = validate.Fasta(req.Content)
	}
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	fasta, err := seq.ReverseComplement(req.Content, encoding)
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	// the summary describes the input records, matching the conversion side
	var summary *seq.FastaResult
	if req.IncludeSummary {
		if summary, err = seq.FastaSummary(req.Content, encoding); err != nil {
			s.fail(w, op, endpoint, params, start, err)
			return
		}
	}

	s.record(op, endpoint, params, start, map[string]interface{}{
		"output_length":        len(fasta),
		"manipulation_summary": summary,
	}, "")

	s.writeJSON(w, http.StatusOK, reverseComplementResponse{
		FastaContent:        fasta,
		Success:             true,
		ManipulationSummary: summary,
		ExecutionTimeMS:     elapsedMS(start),
	})
}

type subsequenceRequest struct {
	Content     string `json:"content"`
	SequenceID  string `json:"sequence_id"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	InputFormat string `json:"input_format"`
}

type subsequenceResponse struct {
	FastaContent    string                 `json:"fasta_content"`
	Success         bool                   `json:"success"`
	SubsequenceInfo map[string]interface{} `json:"subsequence_info"`
	ExecutionTimeMS float64                `json:"execution_time_ms"`
}

func (s *Server) handleExtractSubsequence(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "extract_subsequence"
	endpoint := r.URL.Path

	var req subsequenceRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, op, endpoint, nil, start, err)
		return
	}

	params := map[string]interface{}{
		"input_format": req.InputFormat,
		"sequence_id":  req.SequenceID,
		"start":        req.Start,
		"end":          req.End,
		"content":      validate.ContentMarker(req.Content),
	}

	encoding, err := validate.InputFormat(req.InputFormat)
	if err == nil {
		err = validate.ContentSize(req.Content, s.cfg.MaxContentMB)
	}
	if err == nil {
		err = validate.Identifier(req.SequenceID)
	}
	if err == nil {
		// the per-record upper bound is checked against the parsed sequence
		err = validate.Coordinates(req.Start, req.End, -1)
	}
	if err == nil && encoding == "plain" {
		err = validate.Fasta(req.Content)
	}
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	fasta, err := seq.ExtractSubsequence(req.Content, encoding, req.SequenceID, req.Start, req.End)
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	s.record(op, endpoint, params, start, map[string]interface{}{
		"output_length":      len(fasta),
		"subsequence_length": req.End - req.Start,
	}, "")

	s.writeJSON(w, http.StatusOK, subsequenceResponse{
		FastaContent: fasta,
		Success:      true,
		SubsequenceInfo: map[string]interface{}{
			"sequence_id": req.SequenceID,
			"start":       req.Start,
			"end":         req.End,
			"length":      req.End - req.Start,
		},
		ExecutionTimeMS: elapsedMS(start),
	})
}

func (s *Server) handleManipulateOperations(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"supported_operations": []map[string]string{
			{
				"operation":    "reverse-complement",
				"endpoint":     "/manipulate/reverse-complement",
				"description":  "Generate reverse complement of all sequences in FASTA file",
				"input_format": "FASTA",
			},
			{
				"operation":    "extract-subsequence",
				"endpoint":     "/manipulate/extract-subsequence",
				"description":  "Extract subsequence by coordinates from a specific sequence",
				"input_format": "FASTA",
			},
		},
		"input_formats": []string{"string", "base64"},
		"features": []string{
			"Manipulation summary statistics",
			"Multiple sequence support",
			"Coordinate-based extraction",
			"Error handling and validation",
		},
	})
}

// seqkit

type seqkitStatsRequest struct {
	Content      string `json:"content"`
	InputFormat  string `json:"input_format"`
	OutputFormat string `json:"output_format"`
}

type seqkitStatsResponse struct {
	Statistics      interface{} `json:"statistics"`
	Success         bool        `json:"success"`
	ExecutionTimeMS float64     `json:"execution_time_ms"`
}

func (s *Server) handleSeqkitStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const op = "seqkit_stats"
	endpoint := r.URL.Path

	var req seqkitStatsRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, op, endpoint, nil, start, err)
		return
	}

	params := map[string]interface{}{
		"input_format":  req.InputFormat,
		"output_format": req.OutputFormat,
		"content":       validate.ContentMarker(req.Content),
	}

	if !s.bridge.Available(r.Context()) {
		s.record(op, endpoint, params, start, nil, "seqkit is not available on this server")
		s.writeError(w, http.StatusServiceUnavailable, "seqkit is not available on this server")
		return
	}

	encoding, err := validate.InputFormat(req.InputFormat)
	var outputFormat string
	if err == nil {
		outputFormat, err = validate.OutputFormat(req.OutputFormat)
	}
	if err == nil {
		err = validate.ContentSize(req.Content, s.cfg.MaxContentMB)
	}
	if err == nil && encoding == "plain" {
		err = validate.Fastq(req.Content)
	}
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	stats, err := s.bridge.Stats(r.Context(), req.Content, encoding, outputFormat)
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	s.record(op, endpoint, params, start, map[string]interface{}{
		"statistics_generated": true,
		"output_format":        outputFormat,
	}, "")

	s.writeJSON(w, http.StatusOK, seqkitStatsResponse{
		Statistics:      stats,
		Success:         true,
		ExecutionTimeMS: elapsedMS(start),
	})
}

type seqkitCommandRequest struct {
	Content     string   `json:"content"`
	Command     string   `json:"command"`
	Args        []string `json:"args"`
	InputFormat string   `json:"input_format"`
}

type seqkitCommandResponse struct {
	Output          string  `json:"output"`
	Success         bool    `json:"success"`
	ExecutionTimeMS float64 `json:"execution_time_ms"`
}

func (s *Server) handleSeqkitCommand(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	endpoint := r.URL.Path

	var req seqkitCommandRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(w, "seqkit_command", endpoint, nil, start, err)
		return
	}

	op := "seqkit_" + req.Command
	params := map[string]interface{}{
		"command":      req.Command,
		"args":         req.Args,
		"input_format": req.InputFormat,
		"content":      validate.ContentMarker(req.Content),
	}

	if !s.bridge.Available(r.Context()) {
		s.record(op, endpoint, params, start, nil, "seqkit is not available on this server")
		s.writeError(w, http.StatusServiceUnavailable, "seqkit is not available on this server")
		return
	}

	encoding, err := validate.InputFormat(req.InputFormat)
	if err == nil {
		err = validate.ContentSize(req.Content, s.cfg.MaxContentMB)
	}
	if err == nil && !s.cfg.CommandAllowed(req.Command) {
		err = fault.New(fault.Validation, op,
			"command '%s' not allowed, allowed commands: %v", req.Command, s.cfg.Seqkit.AllowedCommands)
	}
	if err == nil && encoding == "plain" {
		err = validate.Fastq(req.Content)
	}
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	out, err := s.bridge.Command(r.Context(), req.Content, encoding, req.Command, req.Args)
	if err != nil {
		s.fail(w, op, endpoint, params, start, err)
		return
	}

	s.record(op, endpoint, params, start, map[string]interface{}{
		"output_length": len(out),
		"command":       req.Command,
	}, "")

	s.writeJSON(w, http.StatusOK, seqkitCommandResponse{
		Output:          out,
		Success:         true,
		ExecutionTimeMS: elapsedMS(start),
	})
}

func (s *Server) handleSeqkitInfo(w http.ResponseWriter, r *http.Request) {
	available := s.bridge.Available(r.Context())
	version := ""
	if available {
		version = s.bridge.Version(r.Context())
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"seqkit_available":   available,
		"seqkit_version":     version,
		"supported_commands": s.cfg.Seqkit.AllowedCommands,
		"endpoints": []map[string]string{
			{
				"endpoint":    "/seqkit/stats",
				"description": "Generate FASTQ statistics using seqkit stats",
			},
			{
				"endpoint":    "/seqkit/command",
				"description": "Run custom seqkit commands",
			},
		},
	})
}

// logs

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	limit := 50
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 1000 {
			s.writeError(w, http.StatusBadRequest, "Validation error: limit must be an integer between 1 and 1000")
			return
		}
		limit = parsed
	}

	operation := q.Get("operation")

	var successOnly *bool
	if raw := q.Get("success_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "Validation error: success_only must be a boolean")
			return
		}
		successOnly = &parsed
	}

	totalCount := s.audit.Len()
	entries := s.audit.Entries(limit, operation, successOnly)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"logs":           entries,
		"total_count":    totalCount,
		"filtered_count": len(entries),
		"query_time_ms":  elapsedMS(start),
	})
}

func (s *Server) handleLogStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := s.audit.Stats()

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":         stats,
		"query_time_ms": elapsedMS(start),
	})
}

func (s *Server) handleLogsClear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	removed := s.audit.Clear()

	s.logger.Info("audit log cleared", "removed", removed)

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":           "Logs cleared successfully",
		"logs_removed":      removed,
		"execution_time_ms": elapsedMS(start),
	})
}

func (s *Server) handleLogOperations(w http.ResponseWriter, r *http.Request) {
	ops := s.audit.Operations()

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"available_operations":    ops,
		"total_unique_operations": len(ops),
		"description":             "List of all operation types that have been logged",
	})
}

func (s *Server) handleLogsInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"logging_system":    "In-Memory Audit Logger",
		"max_logs":          s.audit.Capacity(),
		"current_log_count": s.audit.Len(),
		"features": []string{
			"Operation tracking",
			"Performance monitoring",
			"Error logging",
			"Parameter sanitization",
			"Statistical analysis",
		},
		"endpoints": []map[string]string{
			{"endpoint": "/logs", "method": "GET", "description": "Retrieve audit logs with filtering options"},
			{"endpoint": "/logs/stats", "method": "GET", "description": "Get aggregated statistics about operations"},
			{"endpoint": "/logs/clear", "method": "DELETE", "description": "Clear all audit logs"},
			{"endpoint": "/logs/operations", "method": "GET", "description": "List all available operation types"},
		},
	})
}

// mcp

func (s *Server) handleMCPTools(w http.ResponseWriter, r *http.Request) {
	tools := mcp.Tools()

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"tools":        tools,
		"count":        len(tools),
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleMCPManifest(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"protocol_version": s.cfg.MCP.ProtocolVersion,
		"server_version":   serverVersion,
		"server_name":      "FastX-MCP",
		"description":      serverDescription,
		"features":         s.cfg.MCP.Features,
		"capabilities": map[string]bool{
			"tools":              true,
			"logging":            true,
			"seqkit_integration": s.bridge.Available(r.Context()),
		},
		"tools_summary": mcp.BuildSummary(),
		"generated_at":  time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleMCPStatus(w http.ResponseWriter, r *http.Request) {
	tools := mcp.Tools()

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]bool{
			"seqkit": s.bridge.Available(r.Context()),
			"http":   true,
		},
		"tools": map[string]int{
			"total":     len(tools),
			"available": len(tools),
			"disabled":  0,
		},
		"system": map[string]string{
			"protocol_version": s.cfg.MCP.ProtocolVersion,
			"server_version":   serverVersion,
		},
	})
}

func (s *Server) handleMCPInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":             serverName,
		"description":      serverDescription,
		"version":          serverVersion,
		"protocol_version": s.cfg.MCP.ProtocolVersion,
		"endpoints": map[string]string{
			"tools":    "/mcp/tools",
			"manifest": "/mcp/manifest",
			"status":   "/mcp/status",
			"info":     "/mcp/info",
		},
	})
}
