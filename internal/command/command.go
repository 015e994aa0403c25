package command

import (
	commandHandler "socialelections/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewLedgerHandler, commandHandler.NewRosterHandler)

type Command struct {
	ledgerCommandHandler *commandHandler.LedgerHandler
	rosterCommandHandler *commandHandler.RosterHandler
}

// NewCommand .
func NewCommand(
	ledgerCommandHandler *commandHandler.LedgerHandler,
	rosterCommandHandler *commandHandler.RosterHandler,
) *Command {
	return &Command{
		ledgerCommandHandler: ledgerCommandHandler,
		rosterCommandHandler: rosterCommandHandler,
	}
}

// withCommand 每個子命令各自建立依賴，跑完就 cleanup
func withCommand(newCmd func() (*Command, func(), error), run func(command *Command, cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		command, cleanup, err := newCmd()
		if err != nil {
			return err
		}
		defer cleanup()
		return run(command, cmd, args)
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "OR membership ledger maintenance",
	}
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "check order density, duplicates and orphans for every (unit, category)",
		RunE: withCommand(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.ledgerCommandHandler.Check(cmd, args)
		}),
	}
	checkCmd.Flags().Bool("repair", false, "delete duplicates/orphans and compact orders")
	ledgerCmd.AddCommand(checkCmd)

	rosterCmd := &cobra.Command{
		Use:   "roster",
		Short: "xlsx roster export / import",
	}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write the OR roster of a technical unit to an xlsx file",
		RunE: withCommand(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.rosterCommandHandler.Export(cmd, args)
		}),
	}
	exportCmd.Flags().String("unit", "", "technical unit id")
	exportCmd.Flags().String("out", "", "output file, default derived from the unit code")
	_ = exportCmd.MarkFlagRequired("unit")

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "bulk add employees listed in an xlsx file",
		RunE: withCommand(newCmd, func(command *Command, cmd *cobra.Command, args []string) error {
			return command.rosterCommandHandler.Import(cmd, args)
		}),
	}
	importCmd.Flags().String("unit", "", "technical unit id")
	importCmd.Flags().String("file", "", "xlsx file to import")
	_ = importCmd.MarkFlagRequired("unit")
	_ = importCmd.MarkFlagRequired("file")
	rosterCmd.AddCommand(exportCmd, importCmd)

	rootCmd.AddCommand(ledgerCmd, rosterCmd)
}
