package cmd

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/willfong/rubank/internal/data"
	"github.com/willfong/rubank/internal/ui"
)

var loadWithActivities bool

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk-load account records and print the reports",
	Long: `Load an account record file into a fresh ledger, optionally replay the
activity records against it, and print the ledger by branch, by holder
and by account type.

Records that cannot be parsed are skipped and counted.

Examples:
  rubank load
  rubank load --accounts accounts.txt --with-activities --activities activities.txt`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().BoolVar(&loadWithActivities, "with-activities", false, "replay the activity records after loading")
}

func runLoad(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	u := newUI(cmd.OutOrStdout())
	m := newManager(logger)
	db := m.Database()

	u.Println(u.Header("RU Bank"), "")

	accounts, err := accountRecords()
	if err != nil {
		return err
	}

	bar := u.NewProgressBar(accounts.name, data.CountRecords(accounts.data))
	db.OnRecord(bar.Increment)
	loaded, skipped := m.LoadAccounts(bytes.NewReader(accounts.data))
	bar.Complete(len(skipped))
	u.Println(u.Success(fmt.Sprintf("%d accounts loaded from %s", loaded, accounts.name)))

	summary := []ui.KV{
		{Key: "Accounts", Value: strconv.Itoa(loaded)},
		{Key: "Skipped", Value: strconv.Itoa(len(skipped))},
	}
	for _, e := range skipped {
		u.Println(u.Warning(e.Error()))
	}

	if loadWithActivities {
		activities, err := activityRecords()
		if err != nil {
			bar.Fail(err)
			return err
		}

		bar = u.NewProgressBar(activities.name, data.CountRecords(activities.data))
		db.OnRecord(bar.Increment)
		lines, bad := m.ProcessActivities(bytes.NewReader(activities.data))
		bar.Complete(len(bad))

		summary = append(summary,
			ui.KV{Key: "Activities", Value: strconv.Itoa(len(lines))},
			ui.KV{Key: "Bad records", Value: strconv.Itoa(len(bad))},
		)
	}
	db.OnRecord(nil)

	u.Println(u.SummaryBox("Load complete", summary), "")
	for _, report := range []string{db.ReportByBranch(), db.ReportByHolder(), db.ReportByKind()} {
		u.Println(report)
	}
	return nil
}
