package analyzer

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/bill-analyzer/internal/catalog"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testDictionary() catalog.Dictionary {
	return catalog.Dictionary{
		{Name: "餐饮", Keywords: []string{"星巴克", "starbucks", "咖啡"}},
		{Name: "购物", Keywords: []string{"京东", "超市"}},
	}
}

// -- enrichment --

func TestAnalyze_ExpenseRecord(t *testing.T) {
	dictionary := catalog.Dictionary{{Name: "Dining", Keywords: []string{"starbucks"}}}
	result := New(dictionary).Analyze([]Transaction{
		{TransactionDate: "2024-01-05", Merchant: "STARBUCKS", Amount: dec("-35.00")},
	})

	assert.Len(t, result.Records, 1)
	record := result.Records[0]
	assert.Equal(t, "Dining", record.Category)
	assert.Equal(t, FlowExpense, record.Flow)
	assert.Empty(t, record.IncomeType)
	assert.True(t, result.Summary.TotalExpense.Equal(dec("35.00")))
	assert.True(t, result.Summary.CategorySummary["Dining"].Equal(dec("35.00")))
	assert.Len(t, result.TopExpenses, 1)
}

func TestAnalyze_RepaymentRecord(t *testing.T) {
	result := New(testDictionary()).Analyze([]Transaction{
		{TransactionDate: "2024-01-10", Merchant: "手机银行", Amount: dec("1000.00")},
	})

	record := result.Records[0]
	assert.Equal(t, FlowIncome, record.Flow)
	assert.Equal(t, IncomeRepayment, record.IncomeType)
	assert.True(t, result.Summary.RepaymentAmount.Equal(dec("1000.00")))
	assert.True(t, result.Summary.RefundAmount.IsZero())
	assert.True(t, result.Summary.NetExpense.Equal(result.Summary.TotalExpense))
}

func TestAnalyze_RefundRecord(t *testing.T) {
	result := New(testDictionary()).Analyze([]Transaction{
		{TransactionDate: "2024-01-12", Merchant: "京东商城", Amount: dec("20.50")},
	})

	record := result.Records[0]
	assert.Equal(t, FlowIncome, record.Flow)
	assert.Equal(t, IncomeRefund, record.IncomeType)
	assert.True(t, result.Summary.RefundAmount.Equal(dec("20.50")))
	assert.True(t, result.Summary.RepaymentAmount.IsZero())
}

func TestAnalyze_UnmatchedMerchantFallsBackToOther(t *testing.T) {
	result := New(testDictionary()).Analyze([]Transaction{
		{TransactionDate: "2024-02-01", Merchant: "路边摊", Amount: dec("-12.00")},
	})

	assert.Equal(t, catalog.FallbackCategory, result.Records[0].Category)
	assert.True(t, result.Summary.CategorySummary[catalog.FallbackCategory].Equal(dec("12.00")))
}

func TestAnalyze_EmptyMerchantGetsSentinel(t *testing.T) {
	result := New(testDictionary()).Analyze([]Transaction{
		{TransactionDate: "2024-02-02", Merchant: "", Amount: dec("-5.00")},
	})

	assert.Equal(t, UnknownMerchant, result.Records[0].Merchant)
	assert.Equal(t, catalog.FallbackCategory, result.Records[0].Category)
}

func TestAnalyze_ZeroAmountIsIncome(t *testing.T) {
	result := New(testDictionary()).Analyze([]Transaction{
		{TransactionDate: "2024-02-03", Merchant: "某商户", Amount: dec("0.00")},
	})

	assert.Equal(t, FlowIncome, result.Records[0].Flow)
	assert.Equal(t, IncomeRefund, result.Records[0].IncomeType)
}

// -- aggregation --

func mixedTransactions() []Transaction {
	return []Transaction{
		{TransactionDate: "2024-01-05", Merchant: "星巴克咖啡", Amount: dec("-35.00")},
		{TransactionDate: "2024-01-08", Merchant: "京东商城", Amount: dec("-120.50")},
		{TransactionDate: "2024-01-10", Merchant: "手机银行转账", Amount: dec("500.00")},
		{TransactionDate: "2024-01-12", Merchant: "京东退款", Amount: dec("20.50")},
	}
}

func TestAnalyze_SummaryTotals(t *testing.T) {
	result := New(testDictionary()).Analyze(mixedTransactions())

	summary := result.Summary
	assert.Equal(t, 4, summary.TotalTransactions)
	assert.Equal(t, len(result.Records), summary.TotalTransactions)
	assert.True(t, summary.TotalExpense.Equal(dec("155.50")))
	assert.True(t, summary.TotalIncome.Equal(dec("520.50")))
	assert.True(t, summary.RepaymentAmount.Equal(dec("500.00")))
	assert.True(t, summary.RefundAmount.Equal(dec("20.50")))
	assert.True(t, summary.NetExpense.Equal(summary.TotalExpense.Sub(summary.RefundAmount)))
}

func TestAnalyze_CategorySummaryIsExpenseOnly(t *testing.T) {
	result := New(testDictionary()).Analyze(mixedTransactions())

	// 京东退款 is income and must not add 购物 income to the breakdown.
	assert.Len(t, result.Summary.CategorySummary, 2)
	assert.True(t, result.Summary.CategorySummary["餐饮"].Equal(dec("35.00")))
	assert.True(t, result.Summary.CategorySummary["购物"].Equal(dec("120.50")))
}

func TestAnalyze_FlowMatchesSignForAllRecords(t *testing.T) {
	result := New(testDictionary()).Analyze(mixedTransactions())

	for _, record := range result.Records {
		if record.Amount.IsNegative() {
			assert.Equal(t, FlowExpense, record.Flow)
			assert.Empty(t, record.IncomeType)
		} else {
			assert.Equal(t, FlowIncome, record.Flow)
			assert.NotEmpty(t, record.IncomeType)
		}
	}
}

func TestAnalyze_RecordsPreserveInputOrder(t *testing.T) {
	transactions := mixedTransactions()
	result := New(testDictionary()).Analyze(transactions)

	for i, record := range result.Records {
		assert.Equal(t, transactions[i].Merchant, record.Merchant)
	}
}

// -- top expenses --

func TestAnalyze_TopExpensesSortedDescending(t *testing.T) {
	result := New(testDictionary()).Analyze(mixedTransactions())

	assert.Len(t, result.TopExpenses, 2)
	assert.Equal(t, "京东商城", result.TopExpenses[0].Merchant)
	assert.Equal(t, "星巴克咖啡", result.TopExpenses[1].Merchant)
	for i := 1; i < len(result.TopExpenses); i++ {
		previous := result.TopExpenses[i-1].Amount.Abs()
		current := result.TopExpenses[i].Amount.Abs()
		assert.False(t, current.GreaterThan(previous))
	}
}

func TestAnalyze_TopExpensesCappedAtFive(t *testing.T) {
	transactions := make([]Transaction, 7)
	for i := range transactions {
		transactions[i] = Transaction{
			TransactionDate: "2024-03-01",
			Merchant:        "商户",
			Amount:          decimal.NewFromInt(int64(-10 - i)),
		}
	}

	result := New(testDictionary()).Analyze(transactions)

	assert.Len(t, result.TopExpenses, 5)
	assert.True(t, result.TopExpenses[0].Amount.Equal(dec("-16")))
}

func TestAnalyze_TopExpensesTieKeepsInputOrder(t *testing.T) {
	result := New(testDictionary()).Analyze([]Transaction{
		{TransactionDate: "2024-01-01", Merchant: "X", Amount: dec("-50.00")},
		{TransactionDate: "2024-01-02", Merchant: "Y", Amount: dec("-50.00")},
	})

	assert.Equal(t, "X", result.TopExpenses[0].Merchant)
	assert.Equal(t, "Y", result.TopExpenses[1].Merchant)
}

// -- edge cases --

func TestAnalyze_EmptyInput(t *testing.T) {
	result := New(testDictionary()).Analyze(nil)

	assert.Empty(t, result.Records)
	assert.Empty(t, result.TopExpenses)
	assert.Equal(t, 0, result.Summary.TotalTransactions)
	assert.True(t, result.Summary.TotalExpense.IsZero())
	assert.True(t, result.Summary.TotalIncome.IsZero())
	assert.True(t, result.Summary.NetExpense.IsZero())
	assert.Empty(t, result.Summary.CategorySummary)
	assert.NotEmpty(t, result.Report, "headers are rendered even without data")
}

func TestAnalyze_Idempotent(t *testing.T) {
	analyzer := New(testDictionary())
	transactions := mixedTransactions()

	first := analyzer.Analyze(transactions)
	second := analyzer.Analyze(transactions)

	assert.Equal(t, first, second)
}
