package analyzer

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bill-analyzer/internal/catalog"
)

// topExpenseCount caps the top-expense ranking used for report highlights.
const topExpenseCount = 5

// repaymentKeywords mark an income transaction as a credit-line repayment
// rather than a refund. Matched case-insensitively as substrings.
var repaymentKeywords = []string{"还款", "转账", "手机银行"}

// Analyzer runs the enrich-and-aggregate pipeline over a batch of
// transactions. It holds no state beyond the immutable dictionary and is safe
// for concurrent use; every Analyze call produces an independent result.
type Analyzer struct {
	classifier *Classifier
}

// New creates an Analyzer classifying against the given dictionary.
func New(dictionary catalog.Dictionary) *Analyzer {
	return &Analyzer{classifier: NewClassifier(dictionary)}
}

// Analyze enriches every transaction with category, flow, and income type,
// aggregates the batch into a summary, ranks the top expenses, and renders
// the report. An empty batch yields an all-zero summary, not an error.
func (a *Analyzer) Analyze(transactions []Transaction) *AnalysisResult {
	records := make([]EnrichedTransaction, 0, len(transactions))
	for _, transaction := range transactions {
		records = append(records, a.enrich(transaction))
	}

	summary := summarize(records)
	topExpenses := rankTopExpenses(records, topExpenseCount)

	return &AnalysisResult{
		Records:     records,
		Summary:     summary,
		TopExpenses: topExpenses,
		Report:      buildReport(summary, topExpenses),
	}
}

func (a *Analyzer) enrich(transaction Transaction) EnrichedTransaction {
	enriched := EnrichedTransaction{
		Transaction: transaction,
		// Classify sees the merchant as scraped, before the sentinel applies.
		Category: a.classifier.Classify(transaction.Merchant),
	}
	if enriched.Merchant == "" {
		enriched.Merchant = UnknownMerchant
	}

	if enriched.Amount.IsNegative() {
		enriched.Flow = FlowExpense
		return enriched
	}

	enriched.Flow = FlowIncome
	enriched.IncomeType = IncomeRefund
	normalized := strings.ToLower(enriched.Merchant)
	for _, keyword := range repaymentKeywords {
		if strings.Contains(normalized, keyword) {
			enriched.IncomeType = IncomeRepayment
			break
		}
	}
	return enriched
}

func summarize(records []EnrichedTransaction) AnalysisSummary {
	summary := AnalysisSummary{
		TotalTransactions: len(records),
		CategorySummary:   map[string]decimal.Decimal{},
	}

	for _, record := range records {
		if record.Flow == FlowExpense {
			expense := record.Amount.Abs()
			summary.TotalExpense = summary.TotalExpense.Add(expense)
			summary.CategorySummary[record.Category] = summary.CategorySummary[record.Category].Add(expense)
			continue
		}

		summary.TotalIncome = summary.TotalIncome.Add(record.Amount)
		if record.IncomeType == IncomeRepayment {
			summary.RepaymentAmount = summary.RepaymentAmount.Add(record.Amount)
		} else {
			summary.RefundAmount = summary.RefundAmount.Add(record.Amount)
		}
	}

	summary.NetExpense = summary.TotalExpense.Sub(summary.RefundAmount)
	return summary
}

// rankTopExpenses returns the n largest-magnitude expense records. The sort is
// stable so records tied on amount keep their input order.
func rankTopExpenses(records []EnrichedTransaction, n int) []EnrichedTransaction {
	expenses := make([]EnrichedTransaction, 0, len(records))
	for _, record := range records {
		if record.Flow == FlowExpense {
			expenses = append(expenses, record)
		}
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.Abs().GreaterThan(expenses[j].Amount.Abs())
	})

	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}
