// Package config is for app wide settings that are unmarshalled from Viper:
// defaults, an optional YAML file, then FASTX_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, ex: FASTX_ADDR.
const EnvPrefix = "FASTX"

// AllowedCommands is the default allow-list for /seqkit/command.
var AllowedCommands = []string{
	"stats", "head", "tail", "sample", "seq", "subseq",
	"grep", "locate", "rmdup", "common", "split", "sort",
	"shuffle", "sliding", "range", "restart", "concat",
	"tab2fx", "fx2tab", "translate", "watch",
}

// SeqkitConfig is settings for the external seqkit binary.
type SeqkitConfig struct {
	// the executable name resolved on PATH
	Binary string `mapstructure:"binary"`

	// timeout for `seqkit version` probes
	ProbeTimeout time.Duration `mapstructure:"probe_timeout"`

	// timeout for `seqkit stats -T` invocations
	StatsTimeout time.Duration `mapstructure:"stats_timeout"`

	// timeout for arbitrary subcommand invocations
	CommandTimeout time.Duration `mapstructure:"command_timeout"`

	// the subcommands /seqkit/command accepts
	AllowedCommands []string `mapstructure:"allowed_commands"`
}

// MCPConfig is settings for the tool-manifest layer.
type MCPConfig struct {
	// the MCP protocol version advertised in the manifest
	ProtocolVersion string `mapstructure:"protocol_version"`

	// feature names listed in the manifest
	Features []string `mapstructure:"features"`
}

// Config is the root-level settings struct.
type Config struct {
	// the address the HTTP server binds, ex: ":8000"
	Addr string `mapstructure:"addr"`

	// minimum level emitted by the structured logger
	LogLevel string `mapstructure:"log_level"`

	// request content cap in megabytes
	MaxContentMB int `mapstructure:"max_content_mb"`

	// entries retained by the in-memory audit log
	AuditCapacity int `mapstructure:"audit_capacity"`

	// origins allowed by the CORS middleware
	CORSOrigins []string `mapstructure:"cors_origins"`

	// external tool settings
	Seqkit SeqkitConfig `mapstructure:"seqkit"`

	// tool-manifest settings
	MCP MCPConfig `mapstructure:"mcp"`
}

// Load returns a Config populated from defaults, the YAML file at path (or
// fastx.yaml in the working directory when path is empty, if present), and
// the environment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("addr", ":8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("max_content_mb", 50)
	v.SetDefault("audit_capacity", 1000)
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("seqkit.binary", "seqkit")
	v.SetDefault("seqkit.probe_timeout", 10*time.Second)
	v.SetDefault("seqkit.stats_timeout", 30*time.Second)
	v.SetDefault("seqkit.command_timeout", 60*time.Second)
	v.SetDefault("seqkit.allowed_commands", AllowedCommands)
	v.SetDefault("mcp.protocol_version", "2025-06-18")
	v.SetDefault("mcp.features", []string{"tools", "logging", "seqkit_integration"})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	} else {
		v.SetConfigName("fastx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// a missing default file is fine, a malformed one is not
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.MaxContentMB <= 0 {
		return fmt.Errorf("max_content_mb must be positive, got %d", c.MaxContentMB)
	}
	if c.AuditCapacity <= 0 {
		return fmt.Errorf("audit_capacity must be positive, got %d", c.AuditCapacity)
	}
	for name, d := range map[string]time.Duration{
		"seqkit.probe_timeout":   c.Seqkit.ProbeTimeout,
		"seqkit.stats_timeout":   c.Seqkit.StatsTimeout,
		"seqkit.command_timeout": c.Seqkit.CommandTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}

// CommandAllowed reports whether a seqkit subcommand is on the allow-list.
func (c *Config) CommandAllowed(command string) bool {
	for _, allowed := range c.Seqkit.AllowedCommands {
		if command == allowed {
			return true
		}
	}
	return false
}
