package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// NewIdentitiesCommand creates the identities command group.
func NewIdentitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "identities",
		Aliases: []string{"identity"},
		Short:   "Manage identities and keys",
		Long:    "Create and inspect identities and their credential keys",
	}

	cmd.AddCommand(newIdentitiesCreateCommand())
	cmd.AddCommand(newIdentitiesGetCommand())
	cmd.AddCommand(newIdentitiesUpdateCommand())
	cmd.AddCommand(newIdentityKeysCommand())

	return cmd
}

func newIdentitiesCreateCommand() *cobra.Command {
	var email, description, reference string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an identity",
		Long:  "Create an identity and its first key. The key secret is only shown once.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return ErrEmailRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Identities().Create(context.Background(), &subledger.IdentityCreateRequest{
				Email:       email,
				Description: description,
				Reference:   reference,
			})
			if err != nil {
				return fmt.Errorf("failed to create identity: %w", err)
			}

			if done, err := renderStructured(result); done {
				return err
			}

			if result.Identity != nil {
				fmt.Fprintf(os.Stdout, "Identity: %s\n", result.Identity.ID)
			}

			if result.ActiveKey != nil {
				fmt.Fprintf(os.Stdout, "Key:      %s\n", result.ActiveKey.ID)
				fmt.Fprintf(os.Stdout, "Secret:   %s\n", result.ActiveKey.Secret)
				_, _ = os.Stdout.WriteString("Store the secret now; it will not be shown again.\n")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "identity email (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "identity description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newIdentitiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTITY_ID",
		Short: "Get identity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Identity(args[0]).Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get identity: %w", err)
			}

			return outputIdentity(result.Identity)
		},
	}
}

func newIdentitiesUpdateCommand() *cobra.Command {
	var (
		email, description, reference string
		version                       int
	)

	cmd := &cobra.Command{
		Use:   "update IDENTITY_ID",
		Short: "Update an identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Identity(args[0]).Update(context.Background(), &subledger.IdentityUpdateRequest{
				Email:       email,
				Description: description,
				Reference:   reference,
				Version:     version,
			})
			if err != nil {
				return fmt.Errorf("failed to update identity: %w", err)
			}

			return outputIdentity(result.Identity)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "identity email")
	cmd.Flags().StringVarP(&description, "description", "d", "", "identity description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().IntVar(&version, "version", 0, "current resource version (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newIdentityKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage identity keys",
	}

	cmd.AddCommand(newIdentityKeysCreateCommand())
	cmd.AddCommand(newIdentityKeysGetCommand())
	cmd.AddCommand(newIdentityKeysArchiveCommand())

	return cmd
}

func newIdentityKeysCreateCommand() *cobra.Command {
	var description, reference string

	cmd := &cobra.Command{
		Use:   "create IDENTITY_ID",
		Short: "Create an identity key",
		Long:  "Issue a new key for an identity. The key secret is only shown once.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Identity(args[0]).Keys().Create(context.Background(), &subledger.KeyCreateRequest{
				Description: description,
				Reference:   reference,
			})
			if err != nil {
				return fmt.Errorf("failed to create identity key: %w", err)
			}

			if done, err := renderStructured(result); done {
				return err
			}

			key := result.Key()
			if key != nil {
				fmt.Fprintf(os.Stdout, "Key:    %s\n", key.ID)
				fmt.Fprintf(os.Stdout, "Secret: %s\n", key.Secret)
				_, _ = os.Stdout.WriteString("Store the secret now; it will not be shown again.\n")
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "key description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")

	return cmd
}

func newIdentityKeysGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get IDENTITY_ID KEY_ID",
		Short: "Get identity key details",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Identity(args[0]).Key(args[1]).Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get identity key: %w", err)
			}

			return outputKey(result.Key())
		},
	}
}

func newIdentityKeysArchiveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archive IDENTITY_ID KEY_ID",
		Short: "Archive an identity key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			result, err := client.Identity(args[0]).Key(args[1]).Archive(context.Background())
			if err != nil {
				return fmt.Errorf("failed to archive identity key: %w", err)
			}

			return outputKey(result.Key())
		},
	}
}

func outputIdentity(identity *subledger.Identity) error {
	if identity == nil {
		_, _ = os.Stdout.WriteString("No identity returned\n")

		return nil
	}

	if done, err := renderStructured(identity); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Email", "Description", "Version")
	_ = table.Append(identity.ID, orDefault(identity.Email), orDefault(identity.Description),
		fmt.Sprintf("%d", identity.Version))
	_ = table.Render()

	return nil
}

func outputKey(key *subledger.Key) error {
	if key == nil {
		_, _ = os.Stdout.WriteString("No key returned\n")

		return nil
	}

	if done, err := renderStructured(key); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Identity", "Version")
	_ = table.Append(key.ID, orDefault(key.Identity), fmt.Sprintf("%d", key.Version))
	_ = table.Render()

	return nil
}
