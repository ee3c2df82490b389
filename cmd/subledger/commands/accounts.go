package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/subledger-io/subledger-go/pkg/subledger"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Manage accounts",
		Long:    "List, create, update, and inspect accounts within a book",
	}

	cmd.PersistentFlags().String("org", "", "organization ID")
	cmd.PersistentFlags().String("book", "", "book ID")

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newAccountsUpdateCommand())
	cmd.AddCommand(newAccountStateCommand("activate", "Activate an archived account"))
	cmd.AddCommand(newAccountStateCommand("archive", "Archive an account"))
	cmd.AddCommand(newAccountsBalanceCommand())
	cmd.AddCommand(newAccountsFirstAndLastLineCommand())
	cmd.AddCommand(newAccountsLinesCommand())

	return cmd
}

func accountsClient(cmd *cobra.Command) (subledger.AccountsClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.Accounts(), nil
}

func accountClient(cmd *cobra.Command, accountID string) (subledger.AccountClient, error) {
	book, err := targetBook(cmd)
	if err != nil {
		return nil, err
	}

	return book.Account(accountID), nil
}

// targetBook resolves the working book from the --org and --book flags or
// the persisted configuration.
func targetBook(cmd *cobra.Command) (subledger.BookClient, error) {
	client, err := createClient()
	if err != nil {
		return nil, err
	}

	org, err := requireOrg(cmd.Flag("org").Value.String())
	if err != nil {
		return nil, err
	}

	book, err := requireBook(cmd.Flag("book").Value.String())
	if err != nil {
		return nil, err
	}

	return client.Org(org).Book(book), nil
}

func newAccountsListCommand() *cobra.Command {
	var state, action, cursor string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := accountsClient(cmd)
			if err != nil {
				return err
			}

			params := &subledger.ListParams{State: state, Action: action, Description: cursor}

			result, err := accounts.List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return outputAccounts(result.Accounts())
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "account state (active, archived)")
	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&cursor, "cursor", "", "pagination cursor")

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := account.Get(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return outputAccount(result.Account())
		},
	}
}

func newAccountsCreateCommand() *cobra.Command {
	var description, reference, normalBalance string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			accounts, err := accountsClient(cmd)
			if err != nil {
				return err
			}

			result, err := accounts.Create(context.Background(), &subledger.AccountCreateRequest{
				Description:   description,
				Reference:     reference,
				NormalBalance: normalBalance,
			})
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			return outputAccount(result.Account())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "account description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().StringVar(&normalBalance, "normal-balance", "debit", "normal balance side (debit, credit)")

	return cmd
}

func newAccountsUpdateCommand() *cobra.Command {
	var (
		description, reference, normalBalance string
		version                               int
	)

	cmd := &cobra.Command{
		Use:   "update ACCOUNT_ID",
		Short: "Update an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := account.Update(context.Background(), &subledger.AccountUpdateRequest{
				Description:   description,
				Reference:     reference,
				NormalBalance: normalBalance,
				Version:       version,
			})
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			return outputAccount(result.Account())
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "account description")
	cmd.Flags().StringVar(&reference, "reference", "", "external reference URL")
	cmd.Flags().StringVar(&normalBalance, "normal-balance", "", "normal balance side (debit, credit)")
	cmd.Flags().IntVar(&version, "version", 0, "current resource version (required)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newAccountStateCommand(verb, short string) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ACCOUNT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountClient(cmd, args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()

			var result *subledger.AccountResponse
			if verb == "activate" {
				result, err = account.Activate(ctx)
			} else {
				result, err = account.Archive(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to %s account: %w", verb, err)
			}

			return outputAccount(result.Account())
		},
	}
}

func newAccountsBalanceCommand() *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "balance ACCOUNT_ID",
		Short: "Get the balance of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountClient(cmd, args[0])
			if err != nil {
				return err
			}

			atTime, err := parseAtFlag(at)
			if err != nil {
				return err
			}

			result, err := account.Balance(context.Background(), atTime)
			if err != nil {
				return fmt.Errorf("failed to get account balance: %w", err)
			}

			return outputBalance(&result.Balance)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "balance timestamp (RFC3339, default now)")

	return cmd
}

func newAccountsFirstAndLastLineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "first-and-last-line ACCOUNT_ID",
		Short: "Get the first and last posted lines of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountClient(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := account.FirstAndLastLine(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get first and last line: %w", err)
			}

			if done, err := renderStructured(result); done {
				return err
			}

			var lines []subledger.Line
			if result.FirstLine != nil {
				lines = append(lines, *result.FirstLine)
			}

			if result.LastLine != nil {
				lines = append(lines, *result.LastLine)
			}

			return outputLines(lines)
		},
	}
}

func newAccountsLinesCommand() *cobra.Command {
	var action, at string

	cmd := &cobra.Command{
		Use:   "lines ACCOUNT_ID",
		Short: "List the posted lines of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := accountClient(cmd, args[0])
			if err != nil {
				return err
			}

			atTime, err := parseAtFlag(at)
			if err != nil {
				return err
			}

			params := &subledger.ListParams{Action: action, EffectiveAt: atTime}

			result, err := account.Lines().List(context.Background(), params)
			if err != nil {
				return fmt.Errorf("failed to list account lines: %w", err)
			}

			return outputLines(result.Lines())
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "pagination action (ending, before, starting, after)")
	cmd.Flags().StringVar(&at, "at", "", "effective-at cursor (RFC3339, default now)")

	return cmd
}

func outputAccounts(accounts []subledger.Account) error {
	if done, err := renderStructured(accounts); done {
		return err
	}

	if len(accounts) == 0 {
		_, _ = os.Stdout.WriteString("No accounts found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Normal Balance", "Balance", "Version")

	for _, account := range accounts {
		balance := NotAvailable
		if account.Balance != nil {
			balance = formatValue(account.Balance.Value)
		}

		_ = table.Append(account.ID, orDefault(account.Description),
			orDefault(account.NormalBalance), balance, fmt.Sprintf("%d", account.Version))
	}

	_ = table.Render()

	return nil
}

func outputAccount(account *subledger.Account) error {
	if account == nil {
		_, _ = os.Stdout.WriteString("No account returned\n")

		return nil
	}

	if done, err := renderStructured(account); done {
		return err
	}

	return outputAccounts([]subledger.Account{*account})
}

func outputBalance(balance *subledger.Balance) error {
	if done, err := renderStructured(balance); done {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Debits", "Credits", "Balance")
	_ = table.Append(formatValue(balance.DebitValue), formatValue(balance.CreditValue),
		formatValue(balance.Value))
	_ = table.Render()

	return nil
}

func outputLines(lines []subledger.Line) error {
	if done, err := renderStructured(lines); done {
		return err
	}

	if len(lines) == 0 {
		_, _ = os.Stdout.WriteString("No lines found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Description", "Value", "Effective At", "Balance")

	for _, line := range lines {
		balance := NotAvailable
		if line.Balance != nil {
			balance = formatValue(line.Balance.Value)
		}

		_ = table.Append(line.ID, orDefault(line.Description), formatValue(line.Value),
			formatTimestamp(line.EffectiveAt), balance)
	}

	_ = table.Render()

	return nil
}
