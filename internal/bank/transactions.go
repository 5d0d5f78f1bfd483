package bank

import (
	"go.uber.org/zap"

	"github.com/willfong/rubank/internal/models"
	"github.com/willfong/rubank/internal/utils"
)

// Deposit adds amount to the account numbered number and records a teller
// activity dated today at the account's branch. A Money Market account
// becomes loyal once its balance reaches the loyalty threshold.
func (m *Manager) Deposit(number, amount string) (string, error) {
	value, err := utils.ParseMoney(amount)
	if err != nil {
		return "", m.rejected("deposit", invalidAmount(amount))
	}
	if !value.IsPositive() {
		return "", m.rejected("deposit", invalid(ErrNonPositive, "%s - deposit amount cannot be 0 or negative.", amount))
	}

	a := m.db.Find(number)
	if a == nil {
		return "", m.rejected("deposit", notFound(ErrAccountNotFound, "%s does not exist.", number))
	}

	m.db.Deposit(a.Number, value)
	if a.Kind == models.KindMoneyMarket && a.Balance.GreaterThanOrEqual(moneyMarketLoyalty) {
		a.SetLoyal(true)
	}
	a.AddActivity(m.tellerActivity(a, models.ActivityDeposit, value))

	m.logger.Info("deposit",
		zap.String("number", number),
		zap.String("amount", value.String()),
		zap.String("balance", a.Balance.String()),
	)
	return value.FormatUSD() + " deposited to " + number, nil
}

// Withdraw removes amount from the account numbered number.
//
// A Money Market withdrawal counts toward the excess withdrawal fee, flags a
// balance left under the opening minimum, and drops loyalty once the balance
// is under the loyalty threshold.
func (m *Manager) Withdraw(number, amount string) (string, error) {
	value, err := utils.ParseMoney(amount)
	if err != nil {
		return "", m.rejected("withdraw", invalidAmount(amount))
	}
	if !value.IsPositive() {
		return "", m.rejected("withdraw", invalid(ErrNonPositive, "%s withdrawal amount cannot be 0 or negative.", amount))
	}

	a := m.db.Find(number)
	if a == nil {
		return "", m.rejected("withdraw", notFound(ErrAccountNotFound, "%s does not exist.", number))
	}

	if a.Balance.LessThan(value) {
		if a.Balance.LessThan(moneyMarketMinimum) {
			return "", m.rejected("withdraw", refused(ErrInsufficientFunds,
				"%s balance below %s - withdrawing %s - insufficient funds.",
				number, moneyMarketMinimum.FormatWholeUSD(), value.FormatUSD()))
		}
		return "", m.rejected("withdraw", refused(ErrInsufficientFunds, "%s - insufficient funds.", number))
	}

	a.AddActivity(m.tellerActivity(a, models.ActivityWithdrawal, value))
	m.db.Withdraw(a.Number, value)

	msg := value.FormatUSD() + " withdrawn from " + number
	if a.Kind == models.KindMoneyMarket {
		a.RecordWithdrawal()
		if a.Balance.LessThan(moneyMarketMinimum) {
			msg = number + " balance below " + moneyMarketMinimum.FormatWholeUSD() + " - " + msg
		}
		if a.Balance.LessThan(moneyMarketLoyalty) {
			a.SetLoyal(false)
		}
	}

	m.logger.Info("withdrawal",
		zap.String("number", number),
		zap.String("amount", value.String()),
		zap.String("balance", a.Balance.String()),
		zap.Int("withdrawals", a.Withdrawals),
	)
	return msg, nil
}

func (m *Manager) tellerActivity(a *models.Account, typ models.ActivityType, amount utils.Money) models.Activity {
	return models.Activity{
		Date:   m.today(),
		Branch: a.Number.Branch,
		Type:   typ,
		Amount: amount,
	}
}
