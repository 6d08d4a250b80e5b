package contract

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mariam-attia/dealscore/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // 0 = show every factor
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultAddr        = "127.0.0.1:8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultFailBelow   = "moderate"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a scoring run.
// This struct is the "final, validated" config.
type Config struct {
	Ratings schema.Ratings

	Weight      float64
	Factors     []schema.SuccessFactor
	FactorsFile string
	SortFactors bool
	ResultLimit int

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)
	UseEmojis  bool
	UseColors  bool

	FailBelow schema.Tier

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Addr        string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RatingArgs []string

	// --- Ratings (flags, env or config file) ---
	CulturalFit          int `mapstructure:"cultural-fit"`
	LeadershipRetention  int `mapstructure:"leadership-retention"`
	StrategicAlignment   int `mapstructure:"strategic-alignment"`
	FinancialStructure   int `mapstructure:"financial-structure"`
	OperationalSynergies int `mapstructure:"operational-synergies"`
	StakeholderBuyIn     int `mapstructure:"stakeholder-buy-in"`

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from factorsCmd.Flags() ---
	Weight      float64 `mapstructure:"weight"`
	FactorsFile string  `mapstructure:"factors-file"`
	Sort        bool    `mapstructure:"sort"`
	Limit       int     `mapstructure:"limit"`

	// --- Fields from checkCmd.Flags() ---
	FailBelow string `mapstructure:"fail-below"`

	// --- Fields from serveCmd.Flags() ---
	Addr        string `mapstructure:"addr"`
	CORSOrigins string `mapstructure:"cors-origins"`
	LogLevel    string `mapstructure:"log-level"`
	LogFormat   string `mapstructure:"log-format"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Factors != nil {
		clone.Factors = slices.Clone(c.Factors)
	}
	if c.CORSOrigins != nil {
		clone.CORSOrigins = slices.Clone(c.CORSOrigins)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processRatings(cfg, input); err != nil {
		return err
	}
	if err := processFactors(cfg, input); err != nil {
		return err
	}
	if err := processServerInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ResolveHistoryBackend treats an empty backend as NoneBackend.
func ResolveHistoryBackend(s string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(s) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' followed by host:port")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates the output and storage fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 2. Width Validation ---
	if input.Width < 0 {
		return fmt.Errorf("width must be 0 or greater (received %d)", input.Width)
	}

	// --- 3. Fail-below Validation ---
	failBelow := input.FailBelow
	if failBelow == "" {
		failBelow = DefaultFailBelow
	}
	tier, err := schema.ParseTier(failBelow)
	if err != nil {
		return fmt.Errorf("invalid --fail-below value: %w", err)
	}
	cfg.FailBelow = tier

	// --- 4. Backend Validation ---
	backend, err := ResolveHistoryBackend(input.HistoryBackend)
	if err != nil {
		return err
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// processRatings resolves the six ratings. Positional arguments take precedence
// over flags, env and config file values.
func processRatings(cfg *Config, input *ConfigRawInput) error {
	ratings := schema.Ratings{
		CulturalFit:          input.CulturalFit,
		LeadershipRetention:  input.LeadershipRetention,
		StrategicAlignment:   input.StrategicAlignment,
		FinancialStructure:   input.FinancialStructure,
		OperationalSynergies: input.OperationalSynergies,
		StakeholderBuyIn:     input.StakeholderBuyIn,
	}

	if len(input.RatingArgs) > 0 {
		values, err := ParseRatingArgs(input.RatingArgs)
		if err != nil {
			return err
		}
		if ratings, err = schema.NewRatings(values...); err != nil {
			return err
		}
	}

	if err := ratings.Validate(); err != nil {
		return err
	}
	cfg.Ratings = ratings
	return nil
}

// ParseRatingArgs converts positional rating arguments into integers.
func ParseRatingArgs(args []string) ([]int, error) {
	if len(args) != len(schema.AllRatingFactors) {
		return nil, fmt.Errorf("expected %d ratings (received %d)", len(schema.AllRatingFactors), len(args))
	}
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer (received %q)", schema.AllRatingFactors[i], arg)
		}
		values[i] = v
	}
	return values, nil
}

// processFactors validates the weight and loads the success factor table.
func processFactors(cfg *Config, input *ConfigRawInput) error {
	if math.IsNaN(input.Weight) || input.Weight < schema.MinWeight || input.Weight > schema.MaxWeight {
		return fmt.Errorf("%w: weight must be between %.1f and %.1f (received %g)", schema.ErrWeightOutOfRange, schema.MinWeight, schema.MaxWeight, input.Weight)
	}
	cfg.Weight = input.Weight

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("%w: limit must be between 0 and %d (received %d)", schema.ErrLimitOutOfRange, MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit
	cfg.SortFactors = input.Sort

	cfg.FactorsFile = strings.TrimSpace(input.FactorsFile)
	if cfg.FactorsFile == "" {
		cfg.Factors = schema.DefaultSuccessFactors()
		return nil
	}
	factors, err := LoadSuccessFactors(cfg.FactorsFile)
	if err != nil {
		return err
	}
	cfg.Factors = factors
	return nil
}

// processServerInputs handles the HTTP server settings.
func processServerInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Addr = strings.TrimSpace(input.Addr)
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	cfg.CORSOrigins = nil
	if input.CORSOrigins != "" {
		for origin := range strings.SplitSeq(input.CORSOrigins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, trimmed)
			}
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, ok := validLogLevels[cfg.LogLevel]; !ok {
		return fmt.Errorf("invalid log level '%s'. must be debug, info, warn, error", input.LogLevel)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(input.LogFormat))
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log format '%s'. must be console, json", input.LogFormat)
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
