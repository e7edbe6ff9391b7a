package analyzer

import (
	"github.com/shopspring/decimal"
)

// CashFlow is the direction of money movement for a transaction.
type CashFlow string

const (
	FlowExpense CashFlow = "expense"
	FlowIncome  CashFlow = "income"
)

// IncomeType sub-classifies an income transaction.
type IncomeType string

const (
	IncomeRepayment IncomeType = "repayment"
	IncomeRefund    IncomeType = "refund"
)

// UnknownMerchant stands in when extraction yields no usable merchant text.
const UnknownMerchant = "未知商户"

// Transaction is one statement entry. Amount carries the sign convention all
// downstream logic depends on: negative means money leaving the account.
type Transaction struct {
	TransactionDate string
	Merchant        string
	Amount          decimal.Decimal
}

// EnrichedTransaction is a Transaction with its derived classification.
// IncomeType is empty for expense records.
type EnrichedTransaction struct {
	Transaction
	Category   string
	Flow       CashFlow
	IncomeType IncomeType
}

// AnalysisSummary holds the aggregate counters of one analysis run.
// CategorySummary covers expenses only; categories with no expense record are
// absent rather than zero.
type AnalysisSummary struct {
	TotalTransactions int
	TotalExpense      decimal.Decimal
	TotalIncome       decimal.Decimal
	RepaymentAmount   decimal.Decimal
	RefundAmount      decimal.Decimal
	NetExpense        decimal.Decimal
	CategorySummary   map[string]decimal.Decimal
}

// AnalysisResult is the complete output of one analysis run. Records preserve
// input order; Report is derived purely from the other fields.
type AnalysisResult struct {
	Records     []EnrichedTransaction
	Summary     AnalysisSummary
	TopExpenses []EnrichedTransaction
	Report      string
}
