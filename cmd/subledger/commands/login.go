package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/subledger-io/subledger-go/pkg/subledger"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		key         string
		secret      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  "Store an API endpoint and identity key credentials in the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				apiEndpoint = subledger.DefaultBaseURL
			}

			reader := bufio.NewReader(os.Stdin)

			if key == "" {
				fmt.Print("Identity key: ")
				key, _ = reader.ReadString('\n')
				key = strings.TrimSpace(key)
			}

			if secret == "" {
				fmt.Print("Identity secret: ")

				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read secret: %w", err)
				}

				secret = string(byteSecret)

				fmt.Println()
			}

			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			config.API = apiEndpoint
			config.Key = key
			config.Secret = secret

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Credentials stored for %s\n", apiEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiEndpoint, "api", "", "API endpoint URL")
	cmd.Flags().StringVar(&key, "key", "", "identity key ID")
	cmd.Flags().StringVar(&secret, "secret", "", "identity key secret")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadCLIConfig()
			if err != nil {
				return err
			}

			config.Key = ""
			config.Secret = ""

			if err := saveCLIConfig(config); err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, "Credentials removed")

			return nil
		},
	}
}
