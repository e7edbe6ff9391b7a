package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/bill-analyzer/internal/format"
)

var oneHundred = decimal.NewFromInt(100)

// buildReport renders the textual analysis report. It reads only the summary
// and the top-expense list, so the text is reproducible from those values
// alone. An empty run still renders the section headers.
func buildReport(summary AnalysisSummary, topExpenses []EnrichedTransaction) string {
	lines := []string{
		"--- 账单分析报告 ---",
		fmt.Sprintf("总交易笔数: %d 笔", summary.TotalTransactions),
		"总支出: " + format.Currency(summary.TotalExpense),
		"总收入: " + format.Currency(summary.TotalIncome),
		"上月还款金额: " + format.Currency(summary.RepaymentAmount),
		"本月退款金额: " + format.Currency(summary.RefundAmount),
		"本月净支出: " + format.Currency(summary.NetExpense),
		"",
		"--- 消费分类统计 ---",
	}

	for _, entry := range sortedCategories(summary.CategorySummary) {
		lines = append(lines, fmt.Sprintf("%s: %s (%s%%)",
			entry.name, format.Currency(entry.amount), percentage(entry.amount, summary.TotalExpense)))
	}

	lines = append(lines, "", "--- 最大单笔消费 Top 5 ---")
	for i, record := range topExpenses {
		lines = append(lines, fmt.Sprintf("%d. %s | %s | %s",
			i+1, record.TransactionDate, record.Merchant, format.Currency(record.Amount.Abs())))
	}

	return strings.Join(lines, "\n")
}

type categoryAmount struct {
	name   string
	amount decimal.Decimal
}

// sortedCategories orders the breakdown by amount descending, ties by name, so
// the report stays a deterministic function of the summary map.
func sortedCategories(categorySummary map[string]decimal.Decimal) []categoryAmount {
	entries := make([]categoryAmount, 0, len(categorySummary))
	for name, amount := range categorySummary {
		entries = append(entries, categoryAmount{name: name, amount: amount})
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].amount.Equal(entries[j].amount) {
			return entries[i].amount.GreaterThan(entries[j].amount)
		}
		return entries[i].name < entries[j].name
	})
	return entries
}

// percentage is the share of total as a one-decimal string, 0.0 when there is
// no expense total to divide by.
func percentage(amount, total decimal.Decimal) string {
	if !total.IsPositive() {
		return "0.0"
	}
	return amount.Mul(oneHundred).Div(total).StringFixed(1)
}
