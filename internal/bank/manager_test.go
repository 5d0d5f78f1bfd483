package bank

import (
	"errors"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/willfong/rubank/internal/ledger"
	"github.com/willfong/rubank/internal/models"
	"github.com/willfong/rubank/internal/utils"
)

var today = models.NewDate(2025, 3, 1)

func newTestManager(opts ...Option) *Manager {
	opts = append([]Option{
		WithClock(func() models.Date { return today }),
		WithLogger(zap.NewNop()),
	}, opts...)
	return NewManager(ledger.New(), utils.NewRandom(9999), opts...)
}

func request(kind, branch, first, last, dob, amount string) OpenRequest {
	return OpenRequest{Kind: kind, Branch: branch, FirstName: first, LastName: last, DateOfBirth: dob, Amount: amount}
}

func mustOpen(t *testing.T, m *Manager, req OpenRequest) *models.Account {
	t.Helper()
	a, err := m.Open(req)
	require.NoError(t, err)
	return a
}

func TestOpen_Checking(t *testing.T) {
	m := newTestManager()
	a, err := m.Open(request("checking", "Edison", "John", "Doe", "2/19/1990", "1500"))
	require.NoError(t, err)

	assert.Equal(t, models.KindChecking, a.Kind)
	assert.True(t, strings.HasPrefix(a.Number.String(), "10001"))
	assert.Len(t, a.Number.String(), 9)
	assert.Equal(t, today, a.Opened)
	assert.Equal(t, "CHECKING account "+a.Number.String()+" has been opened.", OpenedMessage(a))
	assert.True(t, m.Database().Contains(a))
}

func TestOpen_Rejections(t *testing.T) {
	cd := func(amount, term, open string) OpenRequest {
		r := request("certificate", "warren", "Jane", "Doe", "5/1/1996", amount)
		r.Term, r.OpenDate = term, open
		return r
	}
	college := func(dob, campus string) OpenRequest {
		r := request("college", "princeton", "Kate", "Lindsey", dob, "250")
		r.Campus = campus
		return r
	}

	tests := []struct {
		name    string
		req     OpenRequest
		want    string
		wantErr error
		errType ErrorType
	}{
		{"missing last name", request("checking", "edison", "John", "", "2/19/1990", "100"),
			"Missing data tokens for opening an account.", ErrMissingTokens, ErrorTypeValidation},
		{"unknown kind", request("brokerage", "edison", "John", "Doe", "2/19/1990", "100"),
			"brokerage - invalid account type.", ErrInvalidKind, ErrorTypeValidation},
		{"unknown branch", request("checking", "newark", "John", "Doe", "2/19/1990", "100"),
			"newark - invalid branch.", ErrInvalidBranch, ErrorTypeValidation},
		{"impossible dob", request("checking", "edison", "John", "Doe", "2/30/2000", "100"),
			"DOB invalid: 2/30/2000 not a valid calendar date!", ErrInvalidDate, ErrorTypeValidation},
		{"future dob", request("checking", "edison", "John", "Doe", "1/1/2026", "100"),
			"DOB invalid: 1/1/2026 cannot be today or a future day.", ErrFutureDate, ErrorTypeValidation},
		{"under 18", request("checking", "edison", "John", "Doe", "3/2/2007", "100"),
			"Not eligible to open: 3/2/2007 under 18.", ErrUnderage, ErrorTypeBusiness},
		{"bad amount", request("checking", "edison", "John", "Doe", "2/19/1990", "12a"),
			`For input string: "12a" - not a valid amount.`, ErrInvalidAmount, ErrorTypeValidation},
		{"cd bad term", cd("3000", "7", "1/1/2025"),
			"7 is not a valid term.", ErrInvalidTerm, ErrorTypeValidation},
		{"cd missing term", cd("3000", "", ""),
			"Missing data tokens for opening an account.", ErrMissingTokens, ErrorTypeValidation},
		{"money market minimum", request("moneymarket", "edison", "John", "Doe", "2/19/1990", "1999.99"),
			"Minimum of $2,000 to open a Money Market account.", ErrBelowMinimum, ErrorTypeBusiness},
		{"money market negative hits minimum first", request("moneymarket", "edison", "John", "Doe", "2/19/1990", "-5"),
			"Minimum of $2,000 to open a Money Market account.", ErrBelowMinimum, ErrorTypeBusiness},
		{"cd minimum", cd("999", "6", "1/1/2025"),
			"Minimum of $1,000 to open a Certificate Deposit account.", ErrBelowMinimum, ErrorTypeBusiness},
		{"zero deposit", request("checking", "edison", "John", "Doe", "2/19/1990", "0"),
			"Initial deposit cannot be 0 or negative.", ErrNonPositive, ErrorTypeValidation},
		{"negative deposit", request("savings", "edison", "John", "Doe", "2/19/1990", "-1"),
			"Initial deposit cannot be 0 or negative.", ErrNonPositive, ErrorTypeValidation},
		{"college bad campus", college("6/1/2003", "4"),
			"4 - not a valid campus.", ErrInvalidCampus, ErrorTypeValidation},
		{"college missing campus", college("6/1/2003", ""),
			"Missing data tokens for opening an account.", ErrMissingTokens, ErrorTypeValidation},
		{"college over age", college("1/1/1990", "1"),
			"Not eligible to open: 1/1/1990 over 24.", ErrNotEligible, ErrorTypeBusiness},
		{"cd impossible open date", cd("3000", "6", "2/30/2025"),
			"DOB invalid: 2/30/2025 not a valid calendar date!", ErrInvalidDate, ErrorTypeValidation},
		{"cd future open date", cd("3000", "6", "4/1/2025"),
			"DOB invalid: 4/1/2025 cannot be today or a future day.", ErrFutureDate, ErrorTypeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager()
			a, err := m.Open(tt.req)

			require.Error(t, err)
			assert.Nil(t, a)
			assert.Equal(t, tt.want, err.Error())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.errType, TypeOf(err))
			assert.True(t, m.Database().IsEmpty())
		})
	}
}

func TestOpen_College(t *testing.T) {
	m := newTestManager()
	req := request("college", "princeton", "Kate", "Lindsey", "6/1/2003", "250")
	req.Campus = "3"

	a := mustOpen(t, m, req)
	assert.Equal(t, models.CampusCamden, a.Campus)
	assert.True(t, strings.HasPrefix(a.Number.String(), "30004"))
}

func TestOpen_Duplicate(t *testing.T) {
	m := newTestManager()
	mustOpen(t, m, request("checking", "edison", "John", "Doe", "2/19/1990", "100"))

	_, err := m.Open(request("checking", "warren", "john", "DOE", "2/19/1990", "500"))
	require.ErrorIs(t, err, ErrDuplicateAccount)
	assert.Equal(t, "john DOE already has a CHECKING account.", err.Error())
	assert.Equal(t, 1, m.Database().Len())

	// a different date of birth is a different holder
	mustOpen(t, m, request("checking", "edison", "John", "Doe", "2/20/1990", "100"))
}

func TestOpen_DuplicateCDNeedsSameTerm(t *testing.T) {
	m := newTestManager()
	req := request("certificate", "warren", "Jane", "Doe", "5/1/1996", "3000")
	req.Term, req.OpenDate = "6", "1/1/2025"
	mustOpen(t, m, req)

	_, err := m.Open(req)
	assert.ErrorIs(t, err, ErrDuplicateAccount)

	req.Term = "12"
	a := mustOpen(t, m, req)
	assert.Equal(t, 12, a.Term)
	assert.Equal(t, models.NewDate(2025, 1, 1), a.Opened)
	assert.True(t, a.Loyal)
}

func TestSavingsLoyaltyFollowsChecking(t *testing.T) {
	m := newTestManager()
	holder := func(kind, amount string) OpenRequest {
		return request(kind, "bridgewater", "April", "March", "1/15/1987", amount)
	}

	checking := mustOpen(t, m, holder("checking", "1500"))
	savings := mustOpen(t, m, holder("savings", "600"))
	require.True(t, savings.Loyal)

	_, err := m.Close("3/1/2025", checking.Number.String())
	require.NoError(t, err)
	assert.False(t, savings.Loyal)

	other := mustOpen(t, m, request("savings", "edison", "Roy", "Brooks", "10/31/1979", "600"))
	assert.False(t, other.Loyal)
}

func TestOpen_MoneyMarketLoyalAtThreshold(t *testing.T) {
	m := newTestManager()
	low := mustOpen(t, m, request("moneymarket", "edison", "Roy", "Brooks", "10/31/1979", "4999.99"))
	high := mustOpen(t, m, request("moneymarket", "edison", "Kate", "Lindsey", "8/31/1991", "5000"))

	assert.False(t, low.Loyal)
	assert.True(t, high.Loyal)
}

func TestOpen_NumbersAreDeterministic(t *testing.T) {
	first := mustOpen(t, newTestManager(), request("savings", "piscataway", "A", "B", "1/1/1980", "10"))
	second := mustOpen(t, newTestManager(), request("savings", "piscataway", "A", "B", "1/1/1980", "10"))
	assert.Equal(t, first.Number, second.Number)
}

// sameSuffix always draws the same account number suffix
type sameSuffix string

func (s sameSuffix) Suffix() string { return string(s) }

func TestOpen_NumbersExhausted(t *testing.T) {
	m := NewManager(ledger.New(), sameSuffix("0001"),
		WithClock(func() models.Date { return today }),
		WithLogger(zap.NewNop()),
	)
	first := mustOpen(t, m, request("checking", "edison", "John", "Doe", "2/19/1990", "100"))
	assert.Equal(t, "100010001", first.Number.String())

	a, err := m.Open(request("checking", "edison", "Jane", "Doe", "2/19/1990", "100"))
	require.Error(t, err)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, ErrNumbersExhausted)
	assert.Equal(t, ErrorTypeBusiness, TypeOf(err))
	assert.Equal(t, "No CHECKING account numbers left at EDISON.", err.Error())
	assert.Equal(t, 1, m.Database().Len())

	// other pairs still draw freely
	savings := mustOpen(t, m, request("savings", "edison", "Jane", "Doe", "2/19/1990", "100"))
	assert.Equal(t, "100020001", savings.Number.String())
}

func TestOpen_FakeHolders(t *testing.T) {
	m := newTestManager()
	for i := 0; i < 25; i++ {
		dob := models.DateOf(gofakeit.DateRange(
			models.NewDate(1950, 1, 1).Time(),
			models.NewDate(2000, 1, 1).Time(),
		))
		req := request("checking", "edison", gofakeit.FirstName(), gofakeit.LastName(), dob.String(), "100")
		if _, err := m.Open(req); err != nil {
			require.ErrorIs(t, err, ErrDuplicateAccount)
		}
	}

	seen := make(map[string]bool)
	for _, a := range m.Database().Accounts() {
		assert.False(t, seen[a.Number.String()], "number %s reused", a.Number)
		seen[a.Number.String()] = true
	}
}

func TestOpen_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newTestManager(WithLogger(zap.New(core)))

	a := mustOpen(t, m, request("checking", "edison", "John", "Doe", "2/19/1990", "100"))
	_, _ = m.Open(request("checking", "edison", "John", "Doe", "2/19/1990", "100"))

	opened := logs.FilterMessage("account opened").All()
	require.Len(t, opened, 1)
	assert.Equal(t, a.Number.String(), opened[0].ContextMap()["number"])

	rejected := logs.FilterMessage("operation rejected").All()
	require.Len(t, rejected, 1)
	assert.Equal(t, "business", rejected[0].ContextMap()["type"])
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeUnknown, TypeOf(errors.New("boom")))
	assert.Equal(t, ErrorTypeUnknown, TypeOf(nil))
	assert.Equal(t, ErrorTypeValidation, TypeOf(MissingTokens("the deposit")))
	assert.Equal(t, "Missing data tokens for the deposit.", MissingTokens("the deposit").Error())
}
