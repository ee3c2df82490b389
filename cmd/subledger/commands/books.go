package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// NewBooksCommand creates the books command group.
func NewBooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "books",
		Aliases: []string{"book"},
		Short:   "Manage books",
		Long:    "List, create, update, activate, and archive books within an organization",
	}

	cmd.PersistentFlags().String("org", "", "organization ID")

	cmd.AddCommand(newBooksListCommand())
	cmd.AddCommand(newBooksGetCommand())
	cmd.AddCommand(newBooksCreateCommand())
	cmd.AddCommand(newBooksUpdateCommand())
	cmd.AddCommand(newBookStateCommand("activate", "Activate an archived book"))
	cmd.AddCommand(newBookStateCommand("archive", "Archive a book"))

	return cmd
}

func booksClient(cmd *cobra.Command) (subledger.BooksClient, error) {
	client, err := createClient()
	if err != nil {
		return nil, err
	}

	org, err := requireOrg(cmd.Flag("org").Value.String())
	if err != nil {
		return nil, err
	}

	return client.Org(org).Books(), nil
}

func bookClient(cmd *cobra.Command, bookID string) (subledger.BookClient, error) {
	client, err := createClient()
	if err != nil {
		return nil, err
	}

	org, err := requireOrg(cmd.Flag("org").Value.String())
	if err != nil {
		return nil, err
	}

	return client.Org(org).Book(bookID), nil
}

func newBooksListCommand() *cobra.Command {
	var state, action, cursor string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List books",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := booksClient(cmd)
			if err != nil {
				return err
			}

			params := &subledger.ListParams{State: state, Action: action, Description: cursor}

			result, err := books.List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list books: %w", err)
			}

			return outputBooks(result.Books())
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "book state (active, archived)")
	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	return cmd
}

func newBooksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BOOK_ID",
		Short: "Get book details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := bookClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := book.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get book: %w", err)
			}

			return outputBook(result.Book())
		},
	}
}

func newBooksCreateCommand() *cobra.Command {
	var description, reference string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a book",
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := booksClient(cmd)
			if err != nil {
				return err
			}

			result, err := books.Create(context.Background(), &subledger.BookCreateRequest{
				Description: description,
				Reference:   reference,
			})
			if err != nil {
				return fmt.Errorf("failed to create book: %w", err)
			}

			return outputBook(result.Book())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "book description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")

	return cmd
}

func newBooksUpdateCommand() *cobra.Command {
	var (
		description, reference string
		version                int
	)

	cmd := &cobra.Command{
		Use:   "update BOOK_ID",
		Short: "Update a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := bookClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := book.Update(context.Background(), &subledger.BookUpdateRequest{
				Description: description,
				Reference:   reference,
				Version:     version,
			})
			if err != nil {
				return fmt.Errorf("failed to update book: %w", err)
			}

			return outputBook(result.Book())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "book description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().IntVar(&version, "version", 0, "current resource version (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newBookStateCommand(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " BOOK_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := bookClient(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			var result *subledger.BookResponse
			if verb == "activate" {
				result, err = book.Activate(ctx)
			} else {
				result, err = book.Archive(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to %s book: %w", verb, err)
			}

			return outputBook(result.Book())
		},
	}
}

func outputBooks(books []subledger.Book) error {
	if done, err := renderStructured(books); done {
		return err
	}

	if len(books) == 0 {
		_, _ = os.Stdout.WriteString("No books found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Reference", "Version")

	for _, book := range books {
		_ = table.Append(book.ID, orDefault(book.Description), orDefault(book.Reference),
			fmt.Sprintf("%d", book.Version))
	}

	_ = table.Render()

	return nil
}

func outputBook(book *subledger.Book) error {
	if book == nil {
		_, _ = os.Stdout.WriteString("No book returned\n")

		return nil
	}

	if done, err := renderStructured(book); done {
		return err
	}

	return outputBooks([]subledger.Book{*book})
}
