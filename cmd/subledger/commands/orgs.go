package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List, create, and update Subledger organizations",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())
	cmd.AddCommand(newOrgsCreateCommand())
	cmd.AddCommand(newOrgsUpdateCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var action, ref string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			params := &subledger.ListParams{Action: action, Description: ref}

			orgs, err := client.Organizations().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list organizations: %w", err)
			}

			return outputOrganizations(orgs.Organizations())
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&ref, "cursor", "", "pagination cursor")

	return cmd
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_ID",
		Short: "Get organization details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			org, err := client.Org(args[0]).Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get organization: %w", err)
			}

			return outputOrganization(org.Organization())
		},
	}
}

func newOrgsCreateCommand() *cobra.Command {
	var description, reference string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			org, err := client.Organizations().Create(context.Background(), &subledger.OrganizationCreateRequest{
				Description: description,
				Reference:   reference,
			})
			if err != nil {
				return fmt.Errorf("failed to create organization: %w", err)
			}

			return outputOrganization(org.Organization())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "organization description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")

	return cmd
}

func newOrgsUpdateCommand() *cobra.Command {
	var (
		description, reference string
		version                int
	)

	cmd := &cobra.Command{
		Use:   "update ORG_ID",
		Short: "Update an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			org, err := client.Org(args[0]).Update(context.Background(), &subledger.OrganizationUpdateRequest{
				Description: description,
				Reference:   reference,
				Version:     version,
			})
			if err != nil {
				return fmt.Errorf("failed to update organization: %w", err)
			}

			return outputOrganization(org.Organization())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "organization description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().IntVar(&version, "version", 0, "current resource version (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func outputOrganizations(orgs []subledger.Organization) error {
	if done, err := renderStructured(orgs); done {
		return err
	}

	if len(orgs) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Reference", "Version")

	for _, org := range orgs {
		_ = table.Append(org.ID, orDefault(org.Description), orDefault(org.Reference),
			fmt.Sprintf("%d", org.Version))
	}

	_ = table.Render()

	return nil
}

func outputOrganization(org *subledger.Organization) error {
	if org == nil {
		_, _ = os.Stdout.WriteString("No organization returned\n")

		return nil
	}

	if done, err := renderStructured(org); done {
		return err
	}

	return outputOrganizations([]subledger.Organization{*org})
}
