package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Inputs   InputConfig    `yaml:"inputs" mapstructure:"inputs"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Prettier PrettierConfig `yaml:"prettier" mapstructure:"prettier"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// InputConfig locates the curated spreadsheet exports.
type InputConfig struct {
	SmechCSV string `yaml:"smech_csv" mapstructure:"smech_csv"`
	BccCSV   string `yaml:"bcc_csv" mapstructure:"bcc_csv"`
}

// OutputConfig locates the generated data modules.
type OutputConfig struct {
	Benchmark string `yaml:"benchmark" mapstructure:"benchmark"`
	BCC       string `yaml:"bcc" mapstructure:"bcc"`
}

// PrettierConfig configures the optional formatting pass.
type PrettierConfig struct {
	Enabled         bool   `yaml:"enabled" mapstructure:"enabled"`
	Cmd             string `yaml:"cmd" mapstructure:"cmd"`
	Config          string `yaml:"config" mapstructure:"config"`
	ConfigBCC       string `yaml:"config_bcc" mapstructure:"config_bcc"`
	ConfigBenchmark string `yaml:"config_benchmark" mapstructure:"config_benchmark"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SMECHGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("inputs.smech_csv", "data/smech_sectors.csv")
	v.SetDefault("inputs.bcc_csv", "data/bcc_sectors.csv")
	v.SetDefault("output.benchmark", "dist/naces.ts")
	v.SetDefault("output.bcc", "dist/sectors.data.ts")
	v.SetDefault("prettier.cmd", "npx prettier")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
