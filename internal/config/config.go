package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/mattetti/cdp-testaudio/internal/oracle"
)

type Config struct {
	GeneralParams GeneralParams
	OracleParams  OracleParams
}

type GeneralParams struct {
	Debug bool
}

type OracleParams struct {
	TimestampRanges  []string
	DataSearchOffset int
	MaxReportedDiffs int
	ChunkAware       bool
}

type ConfigManager struct {
	v      *viper.Viper
	config *Config
}

// NewConfigManager creates a config manager with the comparator defaults.
// configPath is optional; CDP_* environment variables override both.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	v := viper.New()

	defaults := oracle.DefaultOptions()
	ranges := make([]string, 0, len(defaults.TimestampRanges))
	for _, r := range defaults.TimestampRanges {
		ranges = append(ranges, r.String())
	}
	v.SetDefault("general_params.debug", false)
	v.SetDefault("oracle_params.timestamp_ranges", ranges)
	v.SetDefault("oracle_params.data_search_offset", defaults.DataSearchOffset)
	v.SetDefault("oracle_params.max_reported_diffs", defaults.MaxReportedDiffs)
	v.SetDefault("oracle_params.chunk_aware", false)

	v.AutomaticEnv()
	v.SetEnvPrefix("CDP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cm := &ConfigManager{v: v}
	cm.loadConfig()

	return cm, nil
}

// Extracting data from viper into Config
func (cm *ConfigManager) loadConfig() {
	cm.config = &Config{
		GeneralParams: GeneralParams{
			Debug: cm.v.GetBool("general_params.debug"),
		},
		OracleParams: OracleParams{
			TimestampRanges:  cm.v.GetStringSlice("oracle_params.timestamp_ranges"),
			DataSearchOffset: cm.v.GetInt("oracle_params.data_search_offset"),
			MaxReportedDiffs: cm.v.GetInt("oracle_params.max_reported_diffs"),
			ChunkAware:       cm.v.GetBool("oracle_params.chunk_aware"),
		},
	}
}

func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// ParseRange parses "start-end" where both ends accept 0x, 0o, 0b or decimal
func ParseRange(s string) (oracle.Range, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return oracle.Range{}, fmt.Errorf("range %q must look like start-end", s)
	}
	start, err := strconv.ParseUint(strings.TrimSpace(lo), 0, 32)
	if err != nil {
		return oracle.Range{}, fmt.Errorf("range %q: bad start: %w", s, err)
	}
	end, err := strconv.ParseUint(strings.TrimSpace(hi), 0, 32)
	if err != nil {
		return oracle.Range{}, fmt.Errorf("range %q: bad end: %w", s, err)
	}
	if end <= start {
		return oracle.Range{}, fmt.Errorf("range %q is empty", s)
	}
	return oracle.Range{Start: int(start), End: int(end)}, nil
}

// Options converts the comparator parameters into oracle options
func (p OracleParams) Options() (oracle.Options, error) {
	opts := oracle.Options{
		DataSearchOffset: p.DataSearchOffset,
		MaxReportedDiffs: p.MaxReportedDiffs,
	}
	for _, s := range p.TimestampRanges {
		r, err := ParseRange(s)
		if err != nil {
			return opts, err
		}
		opts.TimestampRanges = append(opts.TimestampRanges, r)
	}
	return opts, nil
}

func (c *Config) Validate() error {
	// Checking comparator params
	if c.OracleParams.DataSearchOffset < 0 {
		return fmt.Errorf("data_search_offset must not be negative")
	}
	if c.OracleParams.MaxReportedDiffs <= 0 {
		return fmt.Errorf("max_reported_diffs must be positive")
	}
	if _, err := c.OracleParams.Options(); err != nil {
		return fmt.Errorf("timestamp_ranges: %w", err)
	}
	return nil
}
