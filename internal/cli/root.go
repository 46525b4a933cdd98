package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "testlab-publish",
	Short: "testlab-publish — push automated test results to Testlab",
	Long: `testlab-publish consolidates xUnit (JUnit) or Robot Framework XML test
results produced by a build into a single test run and publishes it to a
Testlab installation. Intended to be run by CI pipelines after the test phase.

Configuration is read from testlab.yaml (or --config). The api key and
endpoint can also come from the TESTLAB_API_KEY, TESTLAB_COMPANY_ID and
TESTLAB_URL environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(configCmd)
}
