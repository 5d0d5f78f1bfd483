package bank

import (
	"io"

	"go.uber.org/zap"

	"github.com/willfong/rubank/internal/ledger"
	"github.com/willfong/rubank/internal/models"
)

// LoadAccounts bulk-loads account records into the ledger, dating the
// accounts today. Bad records are logged and skipped.
func (m *Manager) LoadAccounts(r io.Reader) (int, []*ledger.RecordError) {
	n, errs := m.db.LoadAccounts(r, m.numbers, m.today(), moneyMarketLoyalty)
	for _, e := range errs {
		m.logger.Warn("account record skipped", zap.Int("line", e.Line), zap.Error(e))
	}
	m.logger.Info("accounts loaded", zap.Int("count", n), zap.Int("skipped", len(errs)))
	return n, errs
}

// ProcessActivities replays activity records against the ledger and returns
// one line per activity of each account touched, as "number::activity".
func (m *Manager) ProcessActivities(r io.Reader) ([]string, []*ledger.RecordError) {
	touched, errs := m.db.ProcessActivities(r)
	for _, e := range errs {
		m.logger.Warn("activity record skipped", zap.Int("line", e.Line), zap.Error(e))
	}
	m.logger.Info("activities processed", zap.Int("accounts", len(touched)), zap.Int("skipped", len(errs)))
	return activityLines(touched), errs
}

func activityLines(accounts []*models.Account) []string {
	var lines []string
	for _, a := range accounts {
		for _, act := range a.Activities {
			lines = append(lines, a.Number.String()+"::"+act.String())
		}
	}
	return lines
}
