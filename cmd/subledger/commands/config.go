package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CLIConfig is the on-disk shape of ~/.subledger/config.yml.
type CLIConfig struct {
	API    string `yaml:"api,omitempty"`
	Key    string `yaml:"key,omitempty"`
	Secret string `yaml:"secret,omitempty"`
	Org    string `yaml:"org,omitempty"`
	Book   string `yaml:"book,omitempty"`
	Output string `yaml:"output,omitempty"`
}

var settableConfigKeys = []string{"api", "key", "secret", "org", "book", "output"}

func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".subledger", "config.yml"), nil
}

func loadCLIConfig() (*CLIConfig, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &CLIConfig{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

func saveCLIConfig(config *CLIConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// Secrets live in this file, keep it private.
	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func (c *CLIConfig) field(key string) (*string, error) {
	switch key {
	case "api":
		return &c.API, nil
	case "key":
		return &c.Key, nil
	case "secret":
		return &c.Secret, nil
	case "org":
		return &c.Org, nil
	case "book":
		return &c.Book, nil
	case "output":
		return &c.Output, nil
	default:
		return nil, fmt.Errorf("%w: %s (valid keys: %v)", ErrConfigKeyUnknown, key, settableConfigKeys)
	}
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the persisted CLI configuration",
	}

	cmd.AddCommand(newConfigListCommand())
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configuration values",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			// Never print the secret itself.
			masked := *config
			if masked.Secret != "" {
				masked.Secret = "***"
			}

			return StandardYAMLRenderer(masked)
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			value, err := config.field(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, *value)

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			value, err := config.field(args[0])
			if err != nil {
				return err
			}

			*value = args[1]

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			value, err := config.field(args[0])
			if err != nil {
				return err
			}

			*value = ""

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Unset %s\n", args[0])

			return nil
		},
	}
}
