package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/testlabtools/testlab-publish/internal/config"
	"github.com/testlabtools/testlab-publish/internal/run"
	"github.com/testlabtools/testlab-publish/internal/testlab"
)

var (
	configFile        string
	forcePublish      bool
	ignoreFailedTests bool
	testSelector      string
	itTestSelector    string
	dryRun            bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Resolve, merge and publish test results",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadValidConfig()
		if err != nil {
			return err
		}

		// Command-line switches override the config file only when given.
		if cmd.Flags().Changed("force-publish") {
			cfg.ForcePublish = forcePublish
		}
		if cmd.Flags().Changed("ignore-failed-tests") {
			cfg.IgnoreFailedTests = ignoreFailedTests
		}

		log := slog.Default()
		log.Info("publishing test results to Testlab")

		client := testlab.NewClient(cfg.CompanyID, cfg.OnpremiseURL, cfg.APIKey, nil)
		runner := run.NewRunner(cfg, client, log)

		_, err = runner.Run(cmd.Context(), run.Options{
			TestSelector:   testSelector,
			ITTestSelector: itTestSelector,
			DryRun:         dryRun,
		})
		return err
	},
}

// loadValidConfig loads and validates the configuration, returning the
// aggregate validation error so callers exit with the configuration-error
// code before any file or network I/O.
func loadValidConfig() (*config.Config, error) {
	cfg, err := loadConfigAt(configFile)
	if err != nil {
		return nil, err
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			slog.Error("configuration error", "field", e.Field, "message", e.Message)
		}
		slog.Error("hint: run with --verbose for more detail")
		return nil, config.ValidationErrors(errs)
	}
	return cfg, nil
}

func init() {
	publishCmd.Flags().StringVarP(&configFile, "config", "c", "", "path to publish config file")
	publishCmd.Flags().BoolVar(&forcePublish, "force-publish", false, "publish even when a test selector is set")
	publishCmd.Flags().BoolVar(&ignoreFailedTests, "ignore-failed-tests", false, "exit 0 even when published results carry failures")
	publishCmd.Flags().StringVar(&testSelector, "test-selector", "", "test subset selector the unit test runner was invoked with, if any")
	publishCmd.Flags().StringVar(&itTestSelector, "it-test-selector", "", "test subset selector the integration test runner was invoked with, if any")
	publishCmd.Flags().BoolVar(&dryRun, "dry-run", false, "assemble the request but do not send it")
}
