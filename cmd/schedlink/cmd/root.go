// Package cmd implements the schedlink command tree.
package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/schedlink/schedlink/pkg/logging"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	logFormat string
)

// rootCmd is the base command all subcommands hang off.
var rootCmd = &cobra.Command{
	Use:   "schedlink",
	Short: "Reconcile two schedule sources into one merged dataset",
	Long: `schedlink links session records across two independently produced
schedule sources (a spreadsheet export and a production content store),
merges duplicates under a deterministic precedence policy, and preserves
sessions unique to either source.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Default().Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}

// SetVersionInfo records build information for the version command.
func SetVersionInfo(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .schedlink.yaml in home or cwd)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json")
}

// setup loads configuration from .env files, environment variables and
// the optional config file, then configures the default logger.
// Precedence: flags > env > .env > config file > defaults.
func setup() error {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SCHEDLINK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".schedlink")
	}
	// Config file is optional.
	_ = viper.ReadInConfig()

	configureLogging()
	return nil
}

// configureLogging builds the default logger from flags and config.
func configureLogging() {
	level := zerolog.InfoLevel
	if configured := viper.GetString("log_level"); configured != "" {
		if parsed, err := zerolog.ParseLevel(configured); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(level)

	format := logFormat
	if format == "" {
		format = viper.GetString("log_format")
	}

	var logger zerolog.Logger
	switch format {
	case "json":
		logger = logging.NewJSON(os.Stderr)
	case "console":
		logger = logging.NewConsole()
	default:
		logger = *logging.Default()
	}
	logging.SetDefault(logger.Level(level))
}
