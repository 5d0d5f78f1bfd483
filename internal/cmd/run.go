package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive transaction manager",
	Long: `Load the account records, then read commands from standard input.

Commands:
  O kind branch first last dob amount [campus | term openDate]
                              open an account
  C closeDate number          close one account
  C closeDate first last dob  close every account of a holder
  D number amount             deposit
  W number amount             withdraw
  A                           replay the activity records
  PA PB PH PT PS              archive, by branch, by holder, by type, statements
  Q                           quit

Example:
  rubank run --accounts accounts.txt`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	u := newUI(cmd.OutOrStdout())
	m := newManager(logger)

	accounts, err := accountRecords()
	if err != nil {
		return err
	}
	if _, errs := m.LoadAccounts(bytes.NewReader(accounts.data)); len(errs) > 0 {
		logger.Warn("some account records were skipped", zap.String("file", accounts.name), zap.Int("skipped", len(errs)))
	}

	u.Println(fmt.Sprintf("Accounts in %q loaded to the database.", accounts.name))
	u.Println("Transaction Manager is running.\n")

	return newShell(m, u, activityRecords).run(cmd.InOrStdin())
}
