package app

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/OP439/excalidraw/pkg/constants"
	"github.com/OP439/excalidraw/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Format is the report format: table, json, yaml or wide.
	Format string
	// InputFormat forces the snapshot encoding instead of the file extension.
	InputFormat string
	// Metrics dumps reconciler metrics to stderr after a run.
	Metrics bool

	// Config file
	ConfigFile string

	// Logging configuration. LogLevel is the explicit --log-level value,
	// EnvLogLevel comes from LOG_LEVEL or the config file and ranks below
	// -v and -q.
	LogLevel    string
	EnvLogLevel string
	LogFormat   string
	LogOutput   string
}

// configKeys are read from the config file and from the environment, both
// plain (LOG_LEVEL) and prefixed (EXCALIDRAW_LOG_LEVEL). The prefixed
// variable wins.
var configKeys = []string{
	"verbose",
	"quiet",
	"no_color",
	"format",
	"input_format",
	"metrics",
	"log_level",
	"log_format",
	"log_output",
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by the root command)
//  2. Environment variables
//  3. .env files
//  4. Config file (configFile, $EXCALIDRAW_CONFIG or ~/.excalidraw-reconcile.yaml)
//  5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		env := strings.ToUpper(key)
		if err := v.BindEnv(key, constants.EnvPrefix+"_"+env, env); err != nil {
			return nil, errors.NewConfigError("env", fmt.Sprintf("binding %s", key), err)
		}
	}
	if err := v.BindEnv("config", constants.EnvPrefix+"_CONFIG"); err != nil {
		return nil, errors.NewConfigError("env", "binding config", err)
	}

	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine, an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !stderrors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", "reading config file", err)
		}
	}

	return &Config{
		Verbose:     v.GetBool("verbose"),
		Quiet:       v.GetBool("quiet"),
		NoColor:     v.GetBool("no_color"),
		Format:      v.GetString("format"),
		InputFormat: v.GetString("input_format"),
		Metrics:     v.GetBool("metrics"),
		ConfigFile:  v.ConfigFileUsed(),
		EnvLogLevel: strings.ToLower(v.GetString("log_level")),
		LogFormat:   v.GetString("log_format"),
		LogOutput:   v.GetString("log_output"),
	}, nil
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overwrites a variable that is already set, so .env.local is loaded first
// to take precedence over .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
