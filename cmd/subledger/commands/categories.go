package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage categories",
		Long:    "List, create, update, and attach categories within a book",
	}

	cmd.PersistentFlags().String("org", "", "organization ID")
	cmd.PersistentFlags().String("book", "", "book ID")

	cmd.AddCommand(newCategoriesListCommand())
	cmd.AddCommand(newCategoriesGetCommand())
	cmd.AddCommand(newCategoriesCreateCommand())
	cmd.AddCommand(newCategoriesUpdateCommand())
	cmd.AddCommand(newCategoryStateCommand("activate", "Activate an archived category"))
	cmd.AddCommand(newCategoryStateCommand("archive", "Archive a category"))
	cmd.AddCommand(newCategoriesAttachCommand())
	cmd.AddCommand(newCategoriesDetachCommand())

	return cmd
}

func categoriesClient(cmd *cobra.Command) (subledger.CategoriesClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.Categories(), nil
}

func categoryClient(cmd *cobra.Command, categoryID string) (subledger.CategoryClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.Category(categoryID), nil
}

func newCategoriesListCommand() *cobra.Command {
	var state, action, cursor string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := categoriesClient(cmd)
			if err != nil {
				return err
			}

			params := &subledger.ListParams{State: state, Action: action, Description: cursor}

			result, err := categories.List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			return outputCategories(result.Categories())
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "category state (active, archived)")
	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	return cmd
}

func newCategoriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CATEGORY_ID",
		Short: "Get category details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := category.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get category: %w", err)
			}

			return outputCategory(result.Category())
		},
	}
}

func newCategoriesCreateCommand() *cobra.Command {
	var description, reference string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := categoriesClient(cmd)
			if err != nil {
				return err
			}

			result, err := categories.Create(context.Background(), &subledger.CategoryCreateRequest{
				Description: description,
				Reference:   reference,
			})
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			return outputCategory(result.Category())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")

	return cmd
}

func newCategoriesUpdateCommand() *cobra.Command {
	var (
		description, reference string
		version                int
	)

	cmd := &cobra.Command{
		Use:   "update CATEGORY_ID",
		Short: "Update a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := category.Update(context.Background(), &subledger.CategoryUpdateRequest{
				Description: description,
				Reference:   reference,
				Version:     version,
			})
			if err != nil {
				return fmt.Errorf("failed to update category: %w", err)
			}

			return outputCategory(result.Category())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "category description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().IntVar(&version, "version", 0, "current resource version (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newCategoryStateCommand(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " CATEGORY_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryClient(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			var result *subledger.CategoryResponse
			if verb == "activate" {
				result, err = category.Activate(ctx)
			} else {
				result, err = category.Archive(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to %s category: %w", verb, err)
			}

			return outputCategory(result.Category())
		},
	}
}

func newCategoriesAttachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attach CATEGORY_ID ACCOUNT_ID",
		Short: "Attach an account to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := category.Attach(context.Background(), args[1])
			if err != nil {
				return fmt.Errorf("failed to attach account: %w", err)
			}

			return outputCategory(result.Category())
		},
	}
}

func newCategoriesDetachCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detach CATEGORY_ID ACCOUNT_ID",
		Short: "Detach an account from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := categoryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := category.Detach(context.Background(), args[1])
			if err != nil {
				return fmt.Errorf("failed to detach account: %w", err)
			}

			return outputCategory(result.Category())
		},
	}
}

func outputCategories(categories []subledger.Category) error {
	if done, err := renderStructured(categories); done {
		return err
	}

	if len(categories) == 0 {
		_, _ = os.Stdout.WriteString("No categories found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Reference", "Version")

	for _, category := range categories {
		_ = table.Append(category.ID, orDefault(category.Description),
			orDefault(category.Reference), fmt.Sprintf("%d", category.Version))
	}

	_ = table.Render()

	return nil
}

func outputCategory(category *subledger.Category) error {
	if category == nil {
		_, _ = os.Stdout.WriteString("No category returned\n")

		return nil
	}

	if done, err := renderStructured(category); done {
		return err
	}

	return outputCategories([]subledger.Category{*category})
}
