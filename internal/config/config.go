// Package config loads roster tool settings from YAML, .env and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/roster-go/pkg/roster/output"
	"github.com/ukaji3/roster-go/pkg/roster/parser"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "roster.yaml"

// Config holds all roster tool configuration.
type Config struct {
	Roster  RosterConfig  `yaml:"roster"`
	Parser  ParserConfig  `yaml:"parser"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// RosterConfig locates the roster folder and output documents.
type RosterConfig struct {
	Folder        string `yaml:"folder"`
	HistoryFolder string `yaml:"history_folder"` // relative paths resolve inside Folder
	OutputName    string `yaml:"output_name"`    // without .json
}

// ParserConfig mirrors parser.Config in YAML form.
type ParserConfig struct {
	AnchorCell      string  `yaml:"anchor_cell"`
	DateSerialMin   float64 `yaml:"date_serial_min"`
	DateSerialMax   float64 `yaml:"date_serial_max"`
	HeaderLabel     string  `yaml:"header_label"`
	FirstTypeColumn int     `yaml:"first_type_column"`
	LookaheadRows   int     `yaml:"lookahead_rows"`
	MaxBlockRows    int     `yaml:"max_block_rows"`
}

// OutputConfig controls serialization.
type OutputConfig struct {
	Pretty bool `yaml:"pretty"`
}

// WatchConfig controls the folder watcher.
type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"` // "production" switches to JSON logs
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	pc := parser.DefaultConfig()
	return &Config{
		Roster: RosterConfig{
			Folder:        "Roster",
			HistoryFolder: "History",
			OutputName:    "Roster",
		},
		Parser: ParserConfig{
			AnchorCell:      pc.AnchorCell,
			DateSerialMin:   pc.DateSerialMin,
			DateSerialMax:   pc.DateSerialMax,
			HeaderLabel:     pc.HeaderLabel,
			FirstTypeColumn: pc.FirstTypeColumn,
			LookaheadRows:   pc.LookaheadRows,
			MaxBlockRows:    pc.MaxBlockRows,
		},
		Output: OutputConfig{Pretty: true},
		Watch:  WatchConfig{Debounce: "2s"},
		Logging: LoggingConfig{
			Level: "",
			Env:   "development",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields defaults.
// Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.ParserConfig().Validate(); err != nil {
		return nil, fmt.Errorf("invalid parser config: %w", err)
	}
	if _, err := cfg.DebounceDuration(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ROSTER_FOLDER"); v != "" {
		c.Roster.Folder = v
	}
	if v := os.Getenv("ROSTER_HISTORY_FOLDER"); v != "" {
		c.Roster.HistoryFolder = v
	}
	if v := os.Getenv("ROSTER_OUTPUT_NAME"); v != "" {
		c.Roster.OutputName = strings.TrimSuffix(v, ".json")
	}
	if v := os.Getenv("ROSTER_WATCH_DEBOUNCE"); v != "" {
		c.Watch.Debounce = v
	}
	if v := os.Getenv("LOGLEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("ENV"); v != "" {
		c.Logging.Env = v
	}
}

// ParserConfig converts the YAML section into parser.Config.
func (c *Config) ParserConfig() parser.Config {
	return parser.Config{
		AnchorCell:      c.Parser.AnchorCell,
		DateSerialMin:   c.Parser.DateSerialMin,
		DateSerialMax:   c.Parser.DateSerialMax,
		HeaderLabel:     c.Parser.HeaderLabel,
		FirstTypeColumn: c.Parser.FirstTypeColumn,
		LookaheadRows:   c.Parser.LookaheadRows,
		MaxBlockRows:    c.Parser.MaxBlockRows,
	}
}

// HistoryDir returns the archive folder, resolved against the roster folder.
func (c *Config) HistoryDir() string {
	if filepath.IsAbs(c.Roster.HistoryFolder) {
		return c.Roster.HistoryFolder
	}
	return filepath.Join(c.Roster.Folder, c.Roster.HistoryFolder)
}

// Writer returns the output writer for the configured folders.
func (c *Config) Writer(dir string) *output.Writer {
	if dir == "" {
		dir = c.Roster.Folder
	}
	return &output.Writer{
		Dir:        dir,
		HistoryDir: c.HistoryDir(),
		BaseName:   c.Roster.OutputName,
	}
}

// DebounceDuration parses the watcher debounce interval.
func (c *Config) DebounceDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	return d, nil
}
