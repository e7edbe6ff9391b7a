// Package export serializes analysis records for external consumers.
package export

import (
	"strings"

	"github.com/carson-networks/bill-analyzer/internal/analyzer"
)

var csvHeader = []string{"交易日期", "商户", "分类", "金额方向", "金额"}

// FlowLabel returns the user-facing direction label for a record.
func FlowLabel(record analyzer.EnrichedTransaction) string {
	if record.Flow == analyzer.FlowExpense {
		return "支出"
	}
	switch record.IncomeType {
	case analyzer.IncomeRepayment:
		return "还款"
	case analyzer.IncomeRefund:
		return "退款"
	default:
		return "收入"
	}
}

// ToCSV renders records as CSV with a header line. Every data field is quoted
// and embedded quotes are doubled, so merchant text containing commas or
// quotes survives a round trip through a standard CSV reader. Amounts are
// signed with two decimal places.
func ToCSV(records []analyzer.EnrichedTransaction) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(csvHeader, ","))

	for _, record := range records {
		fields := []string{
			record.TransactionDate,
			record.Merchant,
			record.Category,
			FlowLabel(record),
			record.Amount.StringFixed(2),
		}
		quoted := make([]string, len(fields))
		for i, field := range fields {
			quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(quoted, ","))
	}

	return strings.Join(lines, "\n")
}
