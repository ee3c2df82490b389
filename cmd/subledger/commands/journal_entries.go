package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
	"gopkg.in/yaml.v3"
)

// NewJournalEntriesCommand creates the journal entries command group.
func NewJournalEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journal-entries",
		Aliases: []string{"journal-entry", "je"},
		Short:   "Manage journal entries",
		Long:    "List, create, post, and inspect journal entries within a book",
	}

	cmd.PersistentFlags().String("org", "", "organization ID")
	cmd.PersistentFlags().String("book", "", "book ID")

	cmd.AddCommand(newJournalEntriesListCommand())
	cmd.AddCommand(newJournalEntriesGetCommand())
	cmd.AddCommand(newJournalEntriesCreateAndPostCommand())
	cmd.AddCommand(newJournalEntriesPostCommand())
	cmd.AddCommand(newJournalEntryStateCommand("activate", "Activate an archived journal entry"))
	cmd.AddCommand(newJournalEntryStateCommand("archive", "Archive a journal entry"))
	cmd.AddCommand(newJournalEntriesBalanceCommand())
	cmd.AddCommand(newJournalEntriesProgressCommand())
	cmd.AddCommand(newJournalEntriesLinesCommand())

	return cmd
}

func journalEntriesClient(cmd *cobra.Command) (subledger.JournalEntriesClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.JournalEntries(), nil
}

func journalEntryClient(cmd *cobra.Command, entryID string) (subledger.JournalEntryClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.JournalEntry(entryID), nil
}

// readLinesFile parses a JSON or YAML file containing journal entry lines.
func readLinesFile(path string) ([]subledger.LineInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lines file: %w", err)
	}

	var lines []subledger.LineInput

	if strings.HasSuffix(path, ".yml") || strings.HasSuffix(path, ".yaml") {
		err = yaml.Unmarshal(data, &lines)
	} else {
		err = json.Unmarshal(data, &lines)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing lines file: %w", err)
	}

	if len(lines) == 0 {
		return nil, ErrNoLinesInFile
	}

	return lines, nil
}

func newJournalEntriesListCommand() *cobra.Command {
	var state, action, at string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := journalEntriesClient(cmd)
			if err != nil {
				return err
			}

			atTime, err := parseAtFlag(at)
			if err != nil {
				return err
			}

			params := &subledger.ListParams{State: state, Action: action, EffectiveAt: atTime}

			result, err := entries.List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list journal entries: %w", err)
			}

			return outputJournalEntries(result.JournalEntries())
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "journal entry state (active, archived, posted)")
	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&at, "at", "", "effective-at cursor (RFC3339, default now)")

	return cmd
}

func newJournalEntriesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTRY_ID",
		Short: "Get journal entry details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journalEntryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := entry.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get journal entry: %w", err)
			}

			return outputJournalEntry(result.JournalEntry())
		},
	}
}

func newJournalEntriesCreateAndPostCommand() *cobra.Command {
	var (
		description, reference, at string
		linesFile                  string
	)

	cmd := &cobra.Command{
		Use:   "create-and-post",
		Short: "Create and post a journal entry with its lines",
		Long: `Create a journal entry together with its lines and post it in a single
call. Lines are read from a JSON or YAML file containing an array of objects:

  [{"account": "a1", "value": {"type": "debit", "amount": "100.00"}}, ...]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if linesFile == "" {
				return ErrLinesFileRequired
			}

			lines, err := readLinesFile(linesFile)
			if err != nil {
				return err
			}

			entries, err := journalEntriesClient(cmd)
			if err != nil {
				return err
			}

			atTime, err := parseAtFlag(at)
			if err != nil {
				return err
			}

			result, err := entries.CreateAndPost(context.Background(), &subledger.JournalEntryCreateAndPostRequest{
				Description: description,
				Reference:   reference,
				EffectiveAt: atTime,
				Lines:       lines,
			})
			if err != nil {
				return fmt.Errorf("failed to create and post journal entry: %w", err)
			}

			return outputJournalEntry(result.JournalEntry())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "journal entry description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().StringVar(&at, "at", "", "effective-at timestamp (RFC3339, default now)")
	cmd.Flags().StringVar(&linesFile, "lines-file", "", "JSON or YAML file with the entry lines (required)")
	_ = cmd.MarkFlagRequired("lines-file")

	return cmd
}

func newJournalEntriesPostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post ENTRY_ID",
		Short: "Post a draft journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journalEntryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := entry.Post(context.Background())
			if err != nil {
				return fmt.Errorf("failed to post journal entry: %w", err)
			}

			return outputJournalEntry(result.JournalEntry())
		},
	}
}

func newJournalEntryStateCommand(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ENTRY_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journalEntryClient(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			var result *subledger.JournalEntryResponse
			if verb == "activate" {
				result, err = entry.Activate(ctx)
			} else {
				result, err = entry.Archive(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to %s journal entry: %w", verb, err)
			}

			return outputJournalEntry(result.JournalEntry())
		},
	}
}

func newJournalEntriesBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance ENTRY_ID",
		Short: "Get the balance of a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journalEntryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := entry.Balance(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get journal entry balance: %w", err)
			}

			return outputBalance(&result.Balance)
		},
	}
}

func newJournalEntriesProgressCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "progress ENTRY_ID",
		Short: "Get the posting progress of a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journalEntryClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := entry.Progress(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get journal entry progress: %w", err)
			}

			if done, err := renderStructured(result); done {
				return err
			}

			fmt.Fprintf(os.Stdout, "%.2f%% complete\n", result.Progress.Percentage)

			return nil
		},
	}
}

func newJournalEntriesLinesCommand() *cobra.Command {
	var action string

	cmd := &cobra.Command{
		Use:   "lines ENTRY_ID",
		Short: "List the lines of a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := journalEntryClient(cmd, args[0])
			if err != nil {
				return err
			}

			params := &subledger.ListParams{Action: action}

			result, err := entry.Lines().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list journal entry lines: %w", err)
			}

			return outputLines(result.Lines())
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "pagination action (starting, after)")

	return cmd
}

func outputJournalEntries(entries []subledger.JournalEntry) error {
	if done, err := renderStructured(entries); done {
		return err
	}

	if len(entries) == 0 {
		_, _ = os.Stdout.WriteString("No journal entries found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Effective At", "Version")

	for _, entry := range entries {
		_ = table.Append(entry.ID, orDefault(entry.Description),
			formatTimestamp(entry.EffectiveAt), fmt.Sprintf("%d", entry.Version))
	}

	_ = table.Render()

	return nil
}

func outputJournalEntry(entry *subledger.JournalEntry) error {
	if entry == nil {
		_, _ = os.Stdout.WriteString("No journal entry returned\n")

		return nil
	}

	if done, err := renderStructured(entry); done {
		return err
	}

	return outputJournalEntries([]subledger.JournalEntry{*entry})
}
