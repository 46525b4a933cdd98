package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/testlabtools/testlab-publish/internal/resource"
)

var resolveConfigFile string

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "List the result files the configured resources resolve to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigAt(resolveConfigFile)
		if err != nil {
			return err
		}

		specs := make([]resource.Spec, len(cfg.Resources))
		for i, r := range cfg.Resources {
			specs[i] = resource.Spec{Directory: r.Directory, Includes: r.Includes, Excludes: r.Excludes}
		}

		files := resource.Locate(slog.Default(), specs)
		if len(files) == 0 {
			cmd.Println("No files resolved.")
			return nil
		}
		for _, f := range files {
			cmd.Println(f)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveConfigFile, "config", "c", "", "path to publish config file")
}
