// Package bank applies the bank's account policies on top of the ledger:
// opening rules, loyalty changes, closing interest, and the messages shown
// for each transaction.
package bank

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/willfong/rubank/internal/config"
	"github.com/willfong/rubank/internal/ledger"
	"github.com/willfong/rubank/internal/models"
	"github.com/willfong/rubank/internal/utils"
)

var (
	moneyMarketMinimum = utils.Dollars(config.MoneyMarketMinimum)
	moneyMarketLoyalty = utils.Dollars(config.MoneyMarketLoyaltyThreshold)
	cdMinimum          = utils.Dollars(config.CDMinimum)
)

// Manager runs transactions against one ledger. It is not safe for
// concurrent use.
type Manager struct {
	db       *ledger.Database
	numbers  models.SuffixSource
	today    func() models.Date
	logger   *zap.Logger
	validate *validator.Validate
}

// Option configures a Manager
type Option func(*Manager)

// WithClock sets the source of today's date
func WithClock(today func() models.Date) Option {
	return func(m *Manager) {
		m.today = today
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a Manager over db that draws account number suffixes
// from numbers
func NewManager(db *ledger.Database, numbers models.SuffixSource, opts ...Option) *Manager {
	m := &Manager{
		db:       db,
		numbers:  numbers,
		today:    models.Today,
		logger:   zap.NewNop(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Database returns the ledger the manager works on
func (m *Manager) Database() *ledger.Database {
	return m.db
}

// Today returns the manager's current date
func (m *Manager) Today() models.Date {
	return m.today()
}

// maxNumberDraws bounds the search for a free account number. A branch and
// kind pair has 9,999 suffixes, so running out of draws means the pair is
// full or nearly so.
const maxNumberDraws = 100_000

// nextNumber draws account numbers until one is not already in use
func (m *Manager) nextNumber(branch models.Branch, kind models.AccountKind) (models.AccountNumber, error) {
	for range maxNumberDraws {
		n := models.NewAccountNumber(branch, kind, m.numbers)
		if m.db.FindNumber(n) == nil {
			return n, nil
		}
	}
	return models.AccountNumber{}, refused(ErrNumbersExhausted, "No %s account numbers left at %s.", kind, branch)
}

// rejected logs a refused operation at debug level and returns err
func (m *Manager) rejected(op string, err error) error {
	m.logger.Debug("operation rejected",
		zap.String("op", op),
		zap.String("type", string(TypeOf(err))),
		zap.Error(err),
	)
	return err
}
