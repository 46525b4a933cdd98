package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/testlabtools/testlab-publish/internal/config"
)

var configCmdFile string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate and inspect the publish configuration",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the publish configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigAt(configCmdFile)
		if err != nil {
			return err
		}

		errs := config.Validate(cfg)
		if len(errs) == 0 {
			cmd.Println("Configuration is valid.")
			return nil
		}

		cmd.Println("Validation errors:")
		for _, e := range errs {
			cmd.Printf("  - %s\n", e)
		}
		return config.ValidationErrors(errs)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration with defaults merged",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigAt(configCmdFile)
		if err != nil {
			return err
		}

		// Never echo the credential.
		if cfg.APIKey != "" {
			cfg.APIKey = "<redacted>"
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshalling config: %w", err)
		}

		cmd.Print(string(data))
		return nil
	},
}

// loadConfigAt loads the config at path, or from the default search
// locations when path is empty.
func loadConfigAt(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadDefault()
}

func init() {
	configCmd.PersistentFlags().StringVarP(&configCmdFile, "file", "f", "", "path to publish config file")
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
}
