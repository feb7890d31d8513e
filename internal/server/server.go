// Package server is the HTTP API over the sequence transform engine, the
// seqkit bridge, the audit log and the MCP tool registry.
package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/sunitj/fastx-mcp/config"
	"github.com/sunitj/fastx-mcp/internal/audit"
)

const (
	serverName        = "FastX-MCP Server"
	serverVersion     = "1.0.0"
	serverDescription = "MCP Server for FASTA/FASTQ manipulation and file conversion"
)

// Bridge is the slice of the seqkit bridge the server depends on.
// *seqkit.Bridge satisfies it.
type Bridge interface {
	Available(ctx context.Context) bool
	Version(ctx context.Context) string
	Stats(ctx context.Context, text, encoding, outputFormat string) (interface{}, error)
	Command(ctx context.Context, text, encoding, command string, args []string) (string, error)
}

// Server holds the injected collaborators and the route table.
type Server struct {
	cfg    *config.Config
	logger *log.Logger
	audit  *audit.Log
	bridge Bridge
	router *mux.Router
}

// New wires the collaborators into a Server with its routes registered.
func New(cfg *config.Config, logger *log.Logger, auditLog *audit.Log, bridge Bridge) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		audit:  auditLog,
		bridge: bridge,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

// Handler returns the full middleware-wrapped handler: CORS outermost so
// preflight requests never reach the router, then request auditing.
func (s *Server) Handler() http.Handler {
	return s.cors(s.requestAudit(s.router))
}

func (s *Server) routes() {
	r := s.router

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/convert/genbank-to-fasta", s.handleGenBankToFasta).Methods(http.MethodPost)
	r.HandleFunc("/convert/formats", s.handleConvertFormats).Methods(http.MethodGet)

	r.HandleFunc("/manipulate/reverse-complement", s.handleReverseComplement).Methods(http.MethodPost)
	r.HandleFunc("/manipulate/extract-subsequence", s.handleExtractSubsequence).Methods(http.MethodPost)
	r.HandleFunc("/manipulate/operations", s.handleManipulateOperations).Methods(http.MethodGet)

	r.HandleFunc("/seqkit/stats", s.handleSeqkitStats).Methods(http.MethodPost)
	r.HandleFunc("/seqkit/command", s.handleSeqkitCommand).Methods(http.MethodPost)
	r.HandleFunc("/seqkit/info", s.handleSeqkitInfo).Methods(http.MethodGet)

	r.HandleFunc("/logs", s.handleLogs).Methods(http.MethodGet)
	r.HandleFunc("/logs/stats", s.handleLogStats).Methods(http.MethodGet)
	r.HandleFunc("/logs/clear", s.handleLogsClear).Methods(http.MethodDelete)
	r.HandleFunc("/logs/operations", s.handleLogOperations).Methods(http.MethodGet)
	r.HandleFunc("/logs/info", s.handleLogsInfo).Methods(http.MethodGet)

	r.HandleFunc("/mcp/tools", s.handleMCPTools).Methods(http.MethodGet)
	r.HandleFunc("/mcp/manifest", s.handleMCPManifest).Methods(http.MethodGet)
	r.HandleFunc("/mcp/status", s.handleMCPStatus).Methods(http.MethodGet)
	r.HandleFunc("/mcp/info", s.handleMCPInfo).Methods(http.MethodGet)
}
