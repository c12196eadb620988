package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/beanfilter/extract"
	"github.com/iho/beanfilter/internal/ledgertest"
	"github.com/iho/beanfilter/ledger"
)

func TestDescription(t *testing.T) {
	txns := []*ledger.Transaction{
		ledgertest.Txn("2024-03-01", "Cafe", "lunch"),
		ledgertest.Txn("2024-03-02", "", "atm withdrawal"),
		ledgertest.Txn("2024-03-03", "Employer", ""),
	}

	keys := extract.Description().Extract(txns)

	assert.Equal(t, []string{"Cafe\rlunch", "\ratm withdrawal", "Employer\r"}, keys)
}

func TestAccountMatching(t *testing.T) {
	txns := []*ledger.Transaction{
		ledgertest.Txn("2024-03-01", "Cafe", "lunch",
			ledgertest.Post("Liabilities:CreditCard", "-12.00", "USD"),
			ledgertest.Post("Expenses:Food", "12.00", "USD"),
		),
		ledgertest.Txn("2024-03-02", "Shop", "groceries",
			ledgertest.Post("Expenses:Groceries", "40.00", "USD"),
			ledgertest.Post("Expenses:Household", "5.00", "USD"),
			ledgertest.Post("Liabilities:CreditCard", "-45.00", "USD"),
		),
		ledgertest.Txn("2024-03-03", "Employer", "salary",
			ledgertest.Post("Assets:Checking", "5000.00", "USD"),
			ledgertest.Post("Income:Salary", "-5000.00", "USD"),
		),
	}

	ext, err := extract.AccountMatching("^Expenses:")
	require.NoError(t, err)

	keys := ext.Extract(txns)

	assert.Equal(t, []string{"Expenses:Food", "Expenses:Groceries", ""}, keys)
}

func TestAccountMatching_BadPattern(t *testing.T) {
	_, err := extract.AccountMatching("([")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account pattern")
}

func TestAccountMatching_AnchorsAtStart(t *testing.T) {
	txns := []*ledger.Transaction{
		ledgertest.Txn("2024-03-01", "Cafe", "lunch",
			ledgertest.Post("Expenses:Food", "12.00", "USD"),
		),
		ledgertest.Txn("2024-03-02", "Agency", "reimbursable travel",
			ledgertest.Post("Assets:Expenses:Receivable", "180.00", "USD"),
		),
	}

	ext, err := extract.AccountMatching("Expenses:")
	require.NoError(t, err)

	// The pattern applies from the first character of the account, so the
	// subaccount does not match.
	assert.Equal(t, []string{"Expenses:Food", ""}, ext.Extract(txns))
}

func TestSourceFilename(t *testing.T) {
	tagged := ledgertest.Txn("2024-03-01", "Cafe", "lunch")
	tagged.Meta = ledger.Metadata{ledger.MetaFilename: "imports/march.bean"}
	untagged := ledgertest.Txn("2024-03-02", "Shop", "groceries")
	wrongType := ledgertest.Txn("2024-03-03", "Employer", "salary")
	wrongType.Meta = ledger.Metadata{ledger.MetaFilename: 42}

	keys := extract.SourceFilename().Extract([]*ledger.Transaction{tagged, untagged, wrongType})

	assert.Equal(t, []string{"imports/march.bean", "", ""}, keys)
}

func TestDateInts(t *testing.T) {
	txns := []*ledger.Transaction{
		ledgertest.Txn("2024-03-01", "", ""),
		ledgertest.Txn("1999-12-31", "", ""),
	}

	assert.Equal(t, []int{20240301, 19991231}, extract.DateInts(txns))
}

func TestAmountSigns(t *testing.T) {
	txns := []*ledger.Transaction{
		ledgertest.Txn("2024-03-01", "Cafe", "lunch",
			ledgertest.Post("Liabilities:CreditCard", "-12.00", "USD"),
			ledgertest.Post("Expenses:Food", "12.00", "USD"),
		),
		ledgertest.Txn("2024-03-02", "Employer", "salary",
			ledgertest.Post("Assets:Checking", "5000.00", "USD"),
			ledgertest.Post("Income:Salary", "-5000.00", "USD"),
		),
		ledgertest.Txn("2024-03-03", "", "no match",
			ledgertest.Post("Expenses:Food", "9.00", "USD"),
		),
		ledgertest.Txn("2024-03-04", "", "missing units",
			ledgertest.MissingPost("Assets:Checking"),
		),
	}

	signs, err := extract.AmountSigns("^(Assets|Liabilities):", txns)
	require.NoError(t, err)

	assert.Equal(t, []int{-1, 1, 0, 0}, signs)
}

func TestAmountSigns_BadPattern(t *testing.T) {
	_, err := extract.AmountSigns("([", nil)
	require.Error(t, err)
}

func TestAmountSigns_AnchorsAtStart(t *testing.T) {
	txns := []*ledger.Transaction{
		ledgertest.Txn("2024-03-01", "Agency", "reimbursable travel",
			ledgertest.Post("Assets:Expenses:Receivable", "180.00", "USD"),
		),
	}

	signs, err := extract.AmountSigns("Expenses:", txns)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, signs)
}
