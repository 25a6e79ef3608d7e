package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var dsn string

var rootCmd = &cobra.Command{
	Use:   "billfold",
	Short: "Personal bill-tracking backend",
	Long: `Maintenance commands for the billfold database: schema migration and
bootstrap of the administrator account.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "db", defaultDSN(), "SQLite DSN to operate on")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(createAdminCmd)
}

func defaultDSN() string {
	if env, ok := os.LookupEnv("DB_DSN"); ok {
		return env
	}

	return "data/billfold.db?_pragma=foreign_keys(1)"
}

// Log format can be explicitly set.
// If it is not set, it defaults to human readable.
func setupLogging() {
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if !ok || logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("LOG_LEVEL") == "debug" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
}
