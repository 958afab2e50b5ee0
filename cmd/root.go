package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Optional YAML/TOML config file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "crewplan",
	Short: "Field-crew logistics estimator for regional equipment replacement",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; real environment variables win over it
		if err := godotenv.Load(); err != nil {
			logrus.Debugf("No .env file loaded: %v", err)
		}

		level := logLevel
		if !cmd.Flags().Changed("log") {
			if env := os.Getenv(envLogLevel); env != "" {
				level = env
			}
		}
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", level)
		}
		logrus.SetLevel(parsed)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or TOML config file overriding defaults")
}
