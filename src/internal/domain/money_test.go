package domain_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/api-sage/corebank-client/src/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, raw string) domain.Money {
	t.Helper()
	m, err := domain.MoneyOf(raw)
	require.NoError(t, err)
	return m
}

func TestMoneyOfParsesTwoDecimalInput(t *testing.T) {
	cases := map[string]string{
		"0":        "0.00",
		"100":      "100.00",
		"100.5":    "100.50",
		"2500.75":  "2500.75",
		" 42.10 ":  "42.10",
		"-12.3":    "-12.30",
		"0.01":     "0.01",
		"15000.50": "15000.50",
	}

	for raw, want := range cases {
		m, err := domain.MoneyOf(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, m.String(), raw)
	}
}

func TestMoneyOfRejectsMalformedInput(t *testing.T) {
	for _, raw := range []string{"", "abc", "1.234", "1e-3", "12,50"} {
		_, err := domain.MoneyOf(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, raw)
	}
}

func TestNonNegativeMoneyOfRejectsNegative(t *testing.T) {
	_, err := domain.NonNegativeMoneyOf("-0.01")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	m, err := domain.NonNegativeMoneyOf("0")
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

func TestMoneyFromFloatRejectsNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := domain.MoneyFromFloat(f)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}

	m, err := domain.MoneyFromFloat(0.1 + 0.2)
	require.NoError(t, err)
	assert.Equal(t, "0.30", m.String())
}

func TestMoneyRepeatedAddSubtractIsExact(t *testing.T) {
	start := mustMoney(t, "0.00")
	step := mustMoney(t, "0.10")

	balance := start
	for i := 0; i < 1000; i++ {
		balance = balance.Add(step)
	}
	assert.Equal(t, "100.00", balance.String())

	for i := 0; i < 1000; i++ {
		balance = balance.Sub(step)
	}
	assert.True(t, balance.Equal(start))
	assert.Equal(t, "0.00", balance.String())
}

func TestMoneyDepositWithdrawExample(t *testing.T) {
	balance := mustMoney(t, "0.00").
		Add(mustMoney(t, "1000.00")).
		Sub(mustMoney(t, "200.00"))

	assert.Equal(t, "800.00", balance.String())
	assert.Equal(t, int64(80000), balance.Minor())
}

func TestMoneyCompare(t *testing.T) {
	a := mustMoney(t, "1.00")
	b := mustMoney(t, "2.00")

	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(mustMoney(t, "1")))
	assert.True(t, a.Neg().IsNegative())
	assert.True(t, b.IsPositive())
}

func TestMoneyJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Balance domain.Money `json:"balance"`
	}{Balance: mustMoney(t, "100")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"balance":100.00}`, string(raw))

	var decoded struct {
		A domain.Money `json:"a"`
		B domain.Money `json:"b"`
		C domain.Money `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":100,"b":"12.5","c":2500.75}`), &decoded))
	assert.Equal(t, "100.00", decoded.A.String())
	assert.Equal(t, "12.50", decoded.B.String())
	assert.Equal(t, "2500.75", decoded.C.String())
	assert.Equal(t, domain.DefaultCurrency, decoded.A.Currency())

	assert.Error(t, json.Unmarshal([]byte(`{"a":"lots"}`), &decoded))
}

func TestMoneyDecimalRoundTrip(t *testing.T) {
	m, err := domain.MoneyFromDecimal(decimal.RequireFromString("19.99"))
	require.NoError(t, err)
	assert.True(t, m.Decimal().Equal(decimal.RequireFromString("19.99")))
}

func TestTransactionKindSigned(t *testing.T) {
	amount := mustMoney(t, "25.00")

	assert.Equal(t, "25.00", domain.TransactionKindDeposit.Signed(amount).String())
	assert.Equal(t, "-25.00", domain.TransactionKindWithdrawal.Signed(amount).String())
	assert.False(t, domain.TransactionKind("transfer").Valid())
	assert.True(t, domain.AccountTypeBusiness.Valid())
	assert.False(t, domain.AccountType("crypto").Valid())
}

func TestErrorTaxonomy(t *testing.T) {
	verr := domain.NewValidationError(domain.ErrInvalidAmount, "amount is required", "description is required")
	assert.ErrorIs(t, verr, domain.ErrValidation)
	assert.ErrorIs(t, verr, domain.ErrInvalidAmount)
	assert.Equal(t, "amount is required; description is required", verr.Error())

	terr := &domain.TransportError{Operation: "create_account", StatusCode: 500, Message: "boom"}
	assert.ErrorIs(t, terr, domain.ErrTransport)
	assert.NotErrorIs(t, terr, domain.ErrValidation)
	assert.Contains(t, terr.Error(), "status 500")
}

func TestMoneyCheckedArithmeticRejectsOverflow(t *testing.T) {
	top := domain.MoneyFromMinor(math.MaxInt64)
	bottom := domain.MoneyFromMinor(math.MinInt64)
	cent := domain.MoneyFromMinor(1)

	_, err := top.AddChecked(cent)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = bottom.AddChecked(cent.Neg())
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = bottom.SubChecked(cent)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = domain.ZeroMoney().SubChecked(bottom)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	sum, err := top.AddChecked(top.Neg())
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	diff, err := mustMoney(t, "10.00").SubChecked(mustMoney(t, "2.50"))
	require.NoError(t, err)
	assert.Equal(t, "7.50", diff.String())
}

func TestMoneyJSONStringsFollowMoneyOf(t *testing.T) {
	var m domain.Money

	err := json.Unmarshal([]byte(`"10.005"`), &m)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = domain.MoneyOf("10.005")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	require.NoError(t, json.Unmarshal([]byte(`10.005`), &m))
	assert.Equal(t, "10.01", m.String(), "wire numbers are snapped to cents")

	require.NoError(t, json.Unmarshal([]byte(`" 10.50 "`), &m))
	assert.Equal(t, "10.50", m.String())
}
