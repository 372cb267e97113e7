package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by OutputFormat.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Global configuration structure.
type Global struct {
	// MaxInputBytes rejects larger CSV files; 0 disables the check.
	MaxInputBytes int    `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`
	OutputFormat  string `mapstructure:"output_format" yaml:"output_format"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	// SampleRows is the number of rows shown in profile reports.
	SampleRows int `mapstructure:"sample_rows" yaml:"sample_rows"`
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".dataquery"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.dataquery/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("DATAQUERY")
	v.AutomaticEnv()

	v.SetDefault("max_input_bytes", 10<<20)
	v.SetDefault("output_format", FormatText)
	v.SetDefault("log_level", "info")
	v.SetDefault("sample_rows", 5)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects values the commands cannot honor.
func (c *Global) Validate() error {
	switch c.OutputFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid output_format: %s (use text or json)", c.OutputFormat)
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("invalid max_input_bytes: %d", c.MaxInputBytes)
	}
	if c.SampleRows < 0 {
		return fmt.Errorf("invalid sample_rows: %d", c.SampleRows)
	}
	return nil
}
