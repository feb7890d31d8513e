// Package seqkit invokes the external seqkit binary over a temp-file workflow
// and parses its tabular output.
package seqkit

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/sunitj/fastx-mcp/internal/content"
	"github.com/sunitj/fastx-mcp/internal/fault"
)

// Default timeouts for the three invocation shapes.
const (
	DefaultProbeTimeout   = 10 * time.Second
	DefaultStatsTimeout   = 30 * time.Second
	DefaultCommandTimeout = 60 * time.Second
)

// runFunc executes a command and captures stdout and stderr separately.
// Swapped out in tests.
type runFunc func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

// Bridge runs seqkit subcommands against request content. Every call is
// one-shot: decode, write a uniquely named temp file, invoke, parse, remove
// the temp file on all exit paths. Calls share no mutable state, so the
// bridge is safe for concurrent use.
type Bridge struct {
	// Binary is the executable name resolved on PATH, normally "seqkit"
	Binary string

	// ProbeTimeout bounds `seqkit version` probes
	ProbeTimeout time.Duration

	// StatsTimeout bounds `seqkit stats -T` invocations
	StatsTimeout time.Duration

	// CommandTimeout bounds arbitrary subcommand invocations
	CommandTimeout time.Duration

	fs     afero.Fs
	run    runFunc
	logger *log.Logger
}

// New returns a Bridge for the given binary, falling back to the default
// timeouts for any that are unset.
func New(binary string, probe, stats, command time.Duration, logger *log.Logger) *Bridge {
	if binary == "" {
		binary = "seqkit"
	}
	if probe <= 0 {
		probe = DefaultProbeTimeout
	}
	if stats <= 0 {
		stats = DefaultStatsTimeout
	}
	if command <= 0 {
		command = DefaultCommandTimeout
	}

	return &Bridge{
		Binary:         binary,
		ProbeTimeout:   probe,
		StatsTimeout:   stats,
		CommandTimeout: command,
		fs:             afero.NewOsFs(),
		run:            runCommand,
		logger:         logger,
	}
}

// runCommand executes the binary and captures stdout/stderr. The context
// deadline kills the process, which is the only abort path.
func runCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Available probes the binary with `seqkit version`. It never returns an
// error; a failed probe is simply false.
func (b *Bridge) Available(ctx context.Context) bool {
	_, err := b.probe(ctx)
	return err == nil
}

// Version returns the trimmed output of `seqkit version`, or "" when the
// binary is unavailable.
func (b *Bridge) Version(ctx context.Context) string {
	out, err := b.probe(ctx)
	if err != nil {
		return ""
	}
	return out
}

func (b *Bridge) probe(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.ProbeTimeout)
	defer cancel()

	stdout, _, err := b.run(ctx, b.Binary, "version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

// Stats runs `seqkit stats -T` on the decoded content. With outputFormat
// "json" the tabular stdout is parsed into the flat-map-or-list shape; with
// "text" the trimmed stdout is returned under an "output" key.
func (b *Bridge) Stats(ctx context.Context, text, encoding, outputFormat string) (interface{}, error) {
	const op = "seqkit_stats"

	stdout, err := b.exec(ctx, op, text, encoding, b.StatsTimeout, "stats", "-T")
	if err != nil {
		return nil, err
	}

	if outputFormat == "text" {
		return map[string]string{"output": strings.TrimSpace(stdout)}, nil
	}
	return ParseTabular(stdout).JSONValue(), nil
}

// Command runs an arbitrary seqkit subcommand on the decoded content and
// returns raw stdout. Restricting the subcommand to an allow-list is the
// caller's concern.
func (b *Bridge) Command(ctx context.Context, text, encoding, command string, args []string) (string, error) {
	op := "seqkit_" + command

	cmdArgs := append([]string{command}, args...)
	return b.exec(ctx, op, text, encoding, b.CommandTimeout, cmdArgs...)
}

// exec owns the temp-file lifecycle shared by Stats and Command: decode the
// content, write it to a fresh temp file, invoke the binary with the file
// path appended, and remove the file on every exit path.
func (b *Bridge) exec(ctx context.Context, op, text, encoding string, timeout time.Duration, args ...string) (string, error) {
	decoded, err := content.Decode(text, encoding)
	if err != nil {
		return "", fault.Wrap(fault.Tool, op, "failed to decode input content", err)
	}

	tmp, err := afero.TempFile(b.fs, "", "fastx-*.fastq")
	if err != nil {
		return "", fault.Wrap(fault.Tool, op, "failed to create temp input file", err)
	}
	tmpName := tmp.Name()
	defer b.fs.Remove(tmpName)

	if _, err = tmp.WriteString(decoded); err != nil {
		tmp.Close()
		return "", fault.Wrap(fault.Tool, op, "failed to write temp input file", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fault.Wrap(fault.Tool, op, "failed to write temp input file", err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, err := b.run(ctx, b.Binary, append(args, tmpName)...)
	if b.logger != nil {
		b.logger.Debug("seqkit invocation", "args", args, "duration", time.Since(start), "err", err)
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fault.New(fault.Tool, op, "%s %s command timed out after %s", b.Binary, args[0], timeout)
	}
	if err != nil {
		return "", fault.New(fault.Tool, op, "%s %s failed: %s", b.Binary, args[0], strings.TrimSpace(stderr))
	}

	return stdout, nil
}
