package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Addr != ":8000" {
		t.Errorf("Addr = %q, want :8000", c.Addr)
	}
	if c.MaxContentMB != 50 {
		t.Errorf("MaxContentMB = %d, want 50", c.MaxContentMB)
	}
	if c.AuditCapacity != 1000 {
		t.Errorf("AuditCapacity = %d, want 1000", c.AuditCapacity)
	}
	if c.Seqkit.Binary != "seqkit" {
		t.Errorf("Seqkit.Binary = %q, want seqkit", c.Seqkit.Binary)
	}
	if c.Seqkit.ProbeTimeout != 10*time.Second ||
		c.Seqkit.StatsTimeout != 30*time.Second ||
		c.Seqkit.CommandTimeout != 60*time.Second {
		t.Errorf("Seqkit timeouts = %v %v %v",
			c.Seqkit.ProbeTimeout, c.Seqkit.StatsTimeout, c.Seqkit.CommandTimeout)
	}
	if len(c.Seqkit.AllowedCommands) != len(AllowedCommands) {
		t.Errorf("AllowedCommands = %d entries, want %d",
			len(c.Seqkit.AllowedCommands), len(AllowedCommands))
	}
	if c.MCP.ProtocolVersion != "2025-06-18" {
		t.Errorf("MCP.ProtocolVersion = %q", c.MCP.ProtocolVersion)
	}
	if len(c.CORSOrigins) != 1 || c.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", c.CORSOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FASTX_ADDR", ":9999")
	t.Setenv("FASTX_LOG_LEVEL", "debug")
	t.Setenv("FASTX_AUDIT_CAPACITY", "25")
	t.Setenv("FASTX_SEQKIT_BINARY", "/opt/bin/seqkit")
	t.Setenv("FASTX_SEQKIT_STATS_TIMEOUT", "5s")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", c.Addr)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", c.LogLevel)
	}
	if c.AuditCapacity != 25 {
		t.Errorf("AuditCapacity = %d, want 25", c.AuditCapacity)
	}
	if c.Seqkit.Binary != "/opt/bin/seqkit" {
		t.Errorf("Seqkit.Binary = %q", c.Seqkit.Binary)
	}
	if c.Seqkit.StatsTimeout != 5*time.Second {
		t.Errorf("Seqkit.StatsTimeout = %v, want 5s", c.Seqkit.StatsTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fastx.yaml")
	yaml := "addr: \":8080\"\nmax_content_mb: 10\nseqkit:\n  binary: seqkit2\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", c.Addr)
	}
	if c.MaxContentMB != 10 {
		t.Errorf("MaxContentMB = %d, want 10", c.MaxContentMB)
	}
	if c.Seqkit.Binary != "seqkit2" {
		t.Errorf("Seqkit.Binary = %q, want seqkit2", c.Seqkit.Binary)
	}
	// untouched keys keep their defaults
	if c.AuditCapacity != 1000 {
		t.Errorf("AuditCapacity = %d, want default 1000", c.AuditCapacity)
	}
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("FASTX_MAX_CONTENT_MB", "-1")

	if _, err := Load(""); err == nil {
		t.Error("Load() with negative content cap = nil, want error")
	}
}

func TestCommandAllowed(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if !c.CommandAllowed("stats") {
		t.Error("CommandAllowed(stats) = false, want true")
	}
	if c.CommandAllowed("exec") {
		t.Error("CommandAllowed(exec) = true, want false")
	}
}
